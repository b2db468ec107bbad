package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/forgo/chrono/api/internal/model"
	"github.com/forgo/chrono/api/internal/reflist"
)

type mockEventRepo struct {
	mu       sync.Mutex
	events   map[int64]*model.Event
	nextID   int64
	userRepo *mockUserRepo
	planRepo *mockPlannerRepo

	createErr error
}

func newMockEventRepo(userRepo *mockUserRepo, planRepo *mockPlannerRepo) *mockEventRepo {
	return &mockEventRepo{
		events:   make(map[int64]*model.Event),
		userRepo: userRepo,
		planRepo: planRepo,
	}
}

// Create mirrors the real repository: the event insert and both parent
// reference appends happen as one step.
func (m *mockEventRepo) Create(ctx context.Context, event *model.Event, userEventIDs, plannerEventIDs []int64) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	event.ID = m.nextID
	stored := *event
	m.events[event.ID] = &stored
	m.userRepo.setEventRefs(event.CreatorName, reflist.AppendID(userEventIDs, event.ID))
	m.planRepo.setEventRefs(event.ParentPlanner, reflist.AppendID(plannerEventIDs, event.ID))
	return nil
}

func (m *mockEventRepo) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.events[id]
	if !ok {
		return nil, nil
	}
	copied := *e
	return &copied, nil
}

func setupEventService(t *testing.T) (*EventService, *mockUserRepo, *mockPlannerRepo, *mockEventRepo) {
	t.Helper()

	userRepo := newMockUserRepo()
	plannerRepo := newMockPlannerRepo(userRepo)
	eventRepo := newMockEventRepo(userRepo, plannerRepo)

	svc := NewEventService(EventServiceConfig{
		EventRepo:   eventRepo,
		PlannerRepo: plannerRepo,
		UserRepo:    userRepo,
	})
	return svc, userRepo, plannerRepo, eventRepo
}

func seedPlanner(t *testing.T, plannerRepo *mockPlannerRepo, creator string) *model.Planner {
	t.Helper()
	planner := &model.Planner{
		Title:          "Trip",
		CreatorName:    creator,
		MembersAllowed: []string{creator},
	}
	if err := plannerRepo.Create(context.Background(), planner, nil, nil); err != nil {
		t.Fatalf("seed planner: %v", err)
	}
	return planner
}

// Tests

func TestEventService_CreateEvent(t *testing.T) {
	svc, userRepo, plannerRepo, _ := setupEventService(t)
	ctx := context.Background()
	registerUser(t, userRepo, "alice")
	planner := seedPlanner(t, plannerRepo, "alice")

	event, err := svc.CreateEvent(ctx, "2025-06-01", "flight out", "alice", planner.ID)
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}
	if event.ID == 0 {
		t.Error("expected a generated event ID")
	}
	if event.ParentPlanner != planner.ID {
		t.Errorf("expected parent planner %d, got %d", planner.ID, event.ParentPlanner)
	}
	if event.CreatorName != "alice" {
		t.Errorf("expected creator alice, got %s", event.CreatorName)
	}

	// The new ID must land on both parents.
	user, _ := userRepo.GetByUsername(ctx, "alice")
	if len(user.EventIDs) != 1 || user.EventIDs[0] != event.ID {
		t.Errorf("expected user event_ids [%d], got %v", event.ID, user.EventIDs)
	}
	stored, _ := plannerRepo.GetByID(ctx, planner.ID)
	if len(stored.EventIDs) != 1 || stored.EventIDs[0] != event.ID {
		t.Errorf("expected planner event_ids [%d], got %v", event.ID, stored.EventIDs)
	}
}

func TestEventService_CreateEvent_AppendsInOrder(t *testing.T) {
	svc, userRepo, plannerRepo, _ := setupEventService(t)
	ctx := context.Background()
	registerUser(t, userRepo, "alice")
	planner := seedPlanner(t, plannerRepo, "alice")

	first, err := svc.CreateEvent(ctx, "2025-06-01", "flight out", "alice", planner.ID)
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}
	second, err := svc.CreateEvent(ctx, "2025-06-09", "flight home", "alice", planner.ID)
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}

	stored, _ := plannerRepo.GetByID(ctx, planner.ID)
	if len(stored.EventIDs) != 2 || stored.EventIDs[0] != first.ID || stored.EventIDs[1] != second.ID {
		t.Errorf("expected planner event_ids [%d %d], got %v", first.ID, second.ID, stored.EventIDs)
	}
}

func TestEventService_CreateEvent_MissingUser(t *testing.T) {
	svc, _, plannerRepo, eventRepo := setupEventService(t)
	planner := seedPlanner(t, plannerRepo, "alice")

	_, err := svc.CreateEvent(context.Background(), "2025-06-01", "x", "ghost", planner.ID)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if len(eventRepo.events) != 0 {
		t.Error("no event should be created for a missing user")
	}
}

func TestEventService_CreateEvent_MissingPlanner(t *testing.T) {
	svc, userRepo, _, eventRepo := setupEventService(t)
	registerUser(t, userRepo, "alice")

	_, err := svc.CreateEvent(context.Background(), "2025-06-01", "x", "alice", 42)
	if !errors.Is(err, ErrPlannerNotFound) {
		t.Fatalf("expected ErrPlannerNotFound, got %v", err)
	}
	if len(eventRepo.events) != 0 {
		t.Error("no event should be created for a missing planner")
	}
}

func TestEventService_CreateEvent_ConcurrentSamePlanner(t *testing.T) {
	svc, userRepo, plannerRepo, _ := setupEventService(t)
	ctx := context.Background()
	registerUser(t, userRepo, "alice")
	planner := seedPlanner(t, plannerRepo, "alice")

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateEvent(ctx, "2025-06-01", "concurrent", "alice", planner.ID)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("CreateEvent %d failed: %v", i, err)
		}
	}

	// Per-parent serialization means no append may be lost.
	stored, _ := plannerRepo.GetByID(ctx, planner.ID)
	if len(stored.EventIDs) != n {
		t.Errorf("expected %d planner refs, got %v", n, stored.EventIDs)
	}
	user, _ := userRepo.GetByUsername(ctx, "alice")
	if len(user.EventIDs) != n {
		t.Errorf("expected %d user refs, got %v", n, user.EventIDs)
	}
}

func TestEventService_CreateEvent_FailedCreateLeavesParentsUntouched(t *testing.T) {
	svc, userRepo, plannerRepo, eventRepo := setupEventService(t)
	ctx := context.Background()
	registerUser(t, userRepo, "alice")
	planner := seedPlanner(t, plannerRepo, "alice")
	eventRepo.createErr = errors.New("db down")

	_, err := svc.CreateEvent(ctx, "2025-06-01", "flight out", "alice", planner.ID)
	if err == nil {
		t.Fatal("expected create to fail")
	}

	// Creation is all-or-nothing: a failed create must not leave a
	// stored event or a dangling reference on either parent.
	if len(eventRepo.events) != 0 {
		t.Error("no event should survive a failed create")
	}
	user, _ := userRepo.GetByUsername(ctx, "alice")
	if len(user.EventIDs) != 0 {
		t.Errorf("expected untouched user refs, got %v", user.EventIDs)
	}
	stored, _ := plannerRepo.GetByID(ctx, planner.ID)
	if len(stored.EventIDs) != 0 {
		t.Errorf("expected untouched planner refs, got %v", stored.EventIDs)
	}
}

func TestEventService_GetEvent(t *testing.T) {
	svc, userRepo, plannerRepo, _ := setupEventService(t)
	ctx := context.Background()
	registerUser(t, userRepo, "alice")
	planner := seedPlanner(t, plannerRepo, "alice")

	created, err := svc.CreateEvent(ctx, "2025-06-01", "flight out", "alice", planner.ID)
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}

	got, err := svc.GetEvent(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetEvent failed: %v", err)
	}
	if got.Description != "flight out" || got.Date != "2025-06-01" {
		t.Errorf("unexpected event %+v", got)
	}
}

func TestEventService_GetEvent_NotFound(t *testing.T) {
	svc, _, _, _ := setupEventService(t)

	_, err := svc.GetEvent(context.Background(), 999)
	if !errors.Is(err, ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound, got %v", err)
	}
}
