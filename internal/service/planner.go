package service

import (
	"context"
	"strconv"

	"github.com/forgo/chrono/api/internal/model"
	"github.com/forgo/chrono/api/internal/reflist"
)

// PlannerRepository defines the interface for planner storage. Create
// persists the planner and appends its ID and title to the creator's
// paired reference lists in one commit; callers pass the creator's
// current lists.
type PlannerRepository interface {
	Create(ctx context.Context, planner *model.Planner, plannerIDs []int64, plannerTitles []string) error
	GetByID(ctx context.Context, id int64) (*model.Planner, error)
}

// PlannerService handles planner creation and lookup
type PlannerService struct {
	plannerRepo PlannerRepository
	userRepo    UserRepository
	locks       *RefLocks
}

// PlannerServiceConfig holds configuration for the planner service
type PlannerServiceConfig struct {
	PlannerRepo PlannerRepository
	UserRepo    UserRepository

	// Locks serializes reference-list writes per parent record. Share
	// one instance with the event service so both guard the same keys.
	Locks *RefLocks
}

// NewPlannerService creates a new planner service
func NewPlannerService(cfg PlannerServiceConfig) *PlannerService {
	locks := cfg.Locks
	if locks == nil {
		locks = NewRefLocks()
	}
	return &PlannerService{
		plannerRepo: cfg.PlannerRepo,
		userRepo:    cfg.UserRepo,
		locks:       locks,
	}
}

// CreatePlanner creates a planner owned by username and records its ID
// and title on the creator's paired reference lists. The creator must
// exist; a missing user is reported as ErrUserNotFound rather than
// surfacing as a nil dereference downstream. The planner row and both
// reference appends land in a single commit, so the planner is created
// and referenced or not created at all.
func (s *PlannerService) CreatePlanner(ctx context.Context, title, username string) (*model.Planner, error) {
	unlock := s.locks.Lock(userKey(username))
	defer unlock()

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if err := reflist.CheckPair(user.PlannerIDs, user.PlannerTitles); err != nil {
		return nil, err
	}

	planner := &model.Planner{
		Title:          title,
		CreatorName:    username,
		MembersAllowed: []string{username},
	}
	if err := s.plannerRepo.Create(ctx, planner, user.PlannerIDs, user.PlannerTitles); err != nil {
		return nil, err
	}

	return planner, nil
}

// GetPlanner looks up a planner by ID.
func (s *PlannerService) GetPlanner(ctx context.Context, id int64) (*model.Planner, error) {
	planner, err := s.plannerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if planner == nil {
		return nil, ErrPlannerNotFound
	}
	return planner, nil
}

func userKey(username string) string {
	return "user:" + username
}

func plannerKey(id int64) string {
	return "planner:" + strconv.FormatInt(id, 10)
}
