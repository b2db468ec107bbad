package service

import (
	"context"

	"github.com/forgo/chrono/api/internal/model"
)

// EventRepository defines the interface for event storage. Create
// persists the event and appends its ID to the creator's and the parent
// planner's event lists in one commit; callers pass the parents'
// current lists.
type EventRepository interface {
	Create(ctx context.Context, event *model.Event, userEventIDs, plannerEventIDs []int64) error
	GetByID(ctx context.Context, id int64) (*model.Event, error)
}

// EventService handles event creation and lookup
type EventService struct {
	eventRepo   EventRepository
	plannerRepo PlannerRepository
	userRepo    UserRepository
	locks       *RefLocks
}

// EventServiceConfig holds configuration for the event service
type EventServiceConfig struct {
	EventRepo   EventRepository
	PlannerRepo PlannerRepository
	UserRepo    UserRepository

	// Locks serializes reference-list writes per parent record. Share
	// one instance with the planner service so both guard the same keys.
	Locks *RefLocks
}

// NewEventService creates a new event service
func NewEventService(cfg EventServiceConfig) *EventService {
	locks := cfg.Locks
	if locks == nil {
		locks = NewRefLocks()
	}
	return &EventService{
		eventRepo:   cfg.EventRepo,
		plannerRepo: cfg.PlannerRepo,
		userRepo:    cfg.UserRepo,
		locks:       locks,
	}
}

// CreateEvent creates an event under plannerID owned by username and
// records the new ID on both parents: the creator's event list and the
// planner's event list. Both parent lookups must succeed before anything
// is written; missing parents are reported as explicit not-found errors.
// The event row and both reference appends land in a single commit, so
// the event exists with its ID on both parents or does not exist at all.
func (s *EventService) CreateEvent(ctx context.Context, date, description, username string, plannerID int64) (*model.Event, error) {
	unlock := s.locks.Lock(userKey(username), plannerKey(plannerID))
	defer unlock()

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	planner, err := s.plannerRepo.GetByID(ctx, plannerID)
	if err != nil {
		return nil, err
	}
	if planner == nil {
		return nil, ErrPlannerNotFound
	}

	event := &model.Event{
		Date:          date,
		Description:   description,
		CreatorName:   username,
		ParentPlanner: plannerID,
	}
	if err := s.eventRepo.Create(ctx, event, user.EventIDs, planner.EventIDs); err != nil {
		return nil, err
	}

	return event, nil
}

// GetEvent looks up an event by ID.
func (s *EventService) GetEvent(ctx context.Context, id int64) (*model.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}
