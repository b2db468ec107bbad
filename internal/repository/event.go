package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/forgo/chrono/api/internal/database"
	"github.com/forgo/chrono/api/internal/model"
	"github.com/forgo/chrono/api/internal/reflist"
)

// EventRepository handles event data access
type EventRepository struct {
	db database.Database
}

// NewEventRepository creates a new event repository
func NewEventRepository(db database.Database) *EventRepository {
	return &EventRepository{db: db}
}

// Create stores a new event under the next ID from the event sequence
// and appends that ID to the creator's and the parent planner's event
// lists. The counter increment, the CREATE, and both parent updates run
// in one transaction: the event exists and both parents reference it,
// or nothing is written. userEventIDs and plannerEventIDs are the
// parents' current lists; the new ID is appended server-side because it
// is only assigned inside the transaction. The assigned ID is written
// back onto the model.
func (r *EventRepository) Create(ctx context.Context, event *model.Event, userEventIDs, plannerEventIDs []int64) error {
	tb := database.NewTxBuilder()
	tb.Add(`LET $seq = (UPSERT seq:event SET value += 1 RETURN AFTER)[0].value`, nil)
	tb.Add(
		`CREATE type::thing('event', $seq) CONTENT {
			date: $date,
			description: $description,
			creator_name: $creator_name,
			parent_planner: $parent_planner
		}`,
		map[string]interface{}{
			"date":           event.Date,
			"description":    event.Description,
			"creator_name":   event.CreatorName,
			"parent_planner": event.ParentPlanner,
		},
	)
	tb.Add(
		`UPDATE type::thing('user', $username) SET
			event_ids = IF $refs = '' THEN <string>$seq ELSE string::concat($refs, ',', <string>$seq) END
		RETURN NONE`,
		map[string]interface{}{
			"username": event.CreatorName,
			"refs":     reflist.EncodeIDs(userEventIDs),
		},
	)
	tb.Add(
		`UPDATE type::thing('planner', $planner_id) SET
			event_ids = IF $refs = '' THEN <string>$seq ELSE string::concat($refs, ',', <string>$seq) END
		RETURN NONE`,
		map[string]interface{}{
			"planner_id": event.ParentPlanner,
			"refs":       reflist.EncodeIDs(plannerEventIDs),
		},
	)

	results, err := database.ExecuteTransaction(ctx, r.db, tb)
	if err != nil {
		return err
	}

	record, err := lastQueryRecord(results)
	if err != nil {
		return fmt.Errorf("event create: %w", err)
	}

	id, err := recordNumericID(record["id"])
	if err != nil {
		return fmt.Errorf("event create: %w", err)
	}
	event.ID = id
	return nil
}

// GetByID retrieves an event by its numeric ID. Returns (nil, nil) when
// no such event exists.
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	query := `SELECT * FROM type::thing('event', $id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	record, err := asRecord(result)
	if err != nil {
		return nil, err
	}

	return &model.Event{
		ID:            id,
		Date:          getString(record, "date"),
		Description:   getString(record, "description"),
		CreatorName:   getString(record, "creator_name"),
		ParentPlanner: getInt64(record, "parent_planner"),
	}, nil
}
