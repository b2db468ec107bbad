package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/forgo/chrono/api/internal/database"
	"github.com/forgo/chrono/api/internal/model"
	"github.com/forgo/chrono/api/internal/reflist"
)

// PlannerRepository handles planner data access
type PlannerRepository struct {
	db database.Database
}

// NewPlannerRepository creates a new planner repository
func NewPlannerRepository(db database.Database) *PlannerRepository {
	return &PlannerRepository{db: db}
}

// Create stores a new planner under the next ID from the planner
// sequence and appends that ID and the planner's title to the creator's
// paired reference lists. The counter increment, the CREATE, and the
// creator update run in one transaction: the planner exists and is
// referenced, or nothing is written. plannerIDs and plannerTitles are
// the creator's current lists; the new entries are appended server-side
// because the ID is only assigned inside the transaction. The assigned
// ID is written back onto the model.
func (r *PlannerRepository) Create(ctx context.Context, planner *model.Planner, plannerIDs []int64, plannerTitles []string) error {
	if err := reflist.CheckPair(plannerIDs, plannerTitles); err != nil {
		return fmt.Errorf("user %s: %w", planner.CreatorName, err)
	}

	tb := database.NewTxBuilder()
	tb.Add(`LET $seq = (UPSERT seq:planner SET value += 1 RETURN AFTER)[0].value`, nil)
	tb.Add(
		`CREATE type::thing('planner', $seq) CONTENT {
			title: $title,
			creator_name: $creator_name,
			members_allowed: $members_allowed,
			event_ids: $event_ids,
			password: $password
		}`,
		map[string]interface{}{
			"title":           planner.Title,
			"creator_name":    planner.CreatorName,
			"members_allowed": reflist.EncodeNames(planner.MembersAllowed),
			"event_ids":       reflist.EncodeIDs(planner.EventIDs),
			"password":        planner.Password,
		},
	)
	tb.Add(
		`UPDATE type::thing('user', $username) SET
			planner_ids = IF $id_refs = '' THEN <string>$seq ELSE string::concat($id_refs, ',', <string>$seq) END,
			planner_titles = IF $title_refs = '' THEN $new_title ELSE string::concat($title_refs, ',', $new_title) END
		RETURN NONE`,
		map[string]interface{}{
			"username":   planner.CreatorName,
			"id_refs":    reflist.EncodeIDs(plannerIDs),
			"title_refs": reflist.EncodeNames(plannerTitles),
			"new_title":  planner.Title,
		},
	)

	results, err := database.ExecuteTransaction(ctx, r.db, tb)
	if err != nil {
		return err
	}

	record, err := lastQueryRecord(results)
	if err != nil {
		return fmt.Errorf("planner create: %w", err)
	}

	id, err := recordNumericID(record["id"])
	if err != nil {
		return fmt.Errorf("planner create: %w", err)
	}
	planner.ID = id
	return nil
}

// GetByID retrieves a planner by its numeric ID. Returns (nil, nil) when
// no such planner exists.
func (r *PlannerRepository) GetByID(ctx context.Context, id int64) (*model.Planner, error) {
	query := `SELECT * FROM type::thing('planner', $id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	planner, err := parsePlannerRecord(id, result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return planner, nil
}

// parsePlannerRecord maps a raw record onto the model, decoding the
// stored delimited reference lists.
func parsePlannerRecord(id int64, result interface{}) (*model.Planner, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	record, err := asRecord(result)
	if err != nil {
		return nil, err
	}

	eventIDs, err := reflist.DecodeIDs(getString(record, "event_ids"))
	if err != nil {
		return nil, fmt.Errorf("planner %d: %w", id, err)
	}

	return &model.Planner{
		ID:             id,
		Title:          getString(record, "title"),
		CreatorName:    getString(record, "creator_name"),
		MembersAllowed: reflist.DecodeNames(getString(record, "members_allowed")),
		EventIDs:       eventIDs,
		Password:       getString(record, "password"),
	}, nil
}
