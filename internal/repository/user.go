package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/forgo/chrono/api/internal/database"
	"github.com/forgo/chrono/api/internal/model"
	"github.com/forgo/chrono/api/internal/reflist"
)

// UserRepository handles user data access
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create stores a new user keyed by username. List fields are persisted
// in their delimited string form.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		CREATE type::thing('user', $username) CONTENT {
			password_digest: $password_digest,
			preferred_name: $preferred_name,
			planner_ids: $planner_ids,
			planner_titles: $planner_titles,
			event_ids: $event_ids
		}
	`

	vars := map[string]interface{}{
		"username":        user.Username,
		"password_digest": user.PasswordDigest,
		"preferred_name":  user.PreferredName,
		"planner_ids":     reflist.EncodeIDs(user.PlannerIDs),
		"planner_titles":  reflist.EncodeNames(user.PlannerTitles),
		"event_ids":       reflist.EncodeIDs(user.EventIDs),
	}

	if _, err := r.db.Query(ctx, query, vars); err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: username already exists", database.ErrDuplicate)
		}
		return err
	}
	return nil
}

// GetByUsername retrieves a user by username. Returns (nil, nil) when no
// such user exists.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT * FROM type::thing('user', $username)`
	vars := map[string]interface{}{"username": username}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	user, err := parseUserRecord(username, result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// parseUserRecord maps a raw record onto the model, decoding the stored
// delimited reference lists.
func parseUserRecord(username string, result interface{}) (*model.User, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	record, err := asRecord(result)
	if err != nil {
		return nil, err
	}

	plannerIDs, err := reflist.DecodeIDs(getString(record, "planner_ids"))
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", username, err)
	}
	eventIDs, err := reflist.DecodeIDs(getString(record, "event_ids"))
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", username, err)
	}

	return &model.User{
		Username:       username,
		PasswordDigest: getString(record, "password_digest"),
		PreferredName:  getString(record, "preferred_name"),
		PlannerIDs:     plannerIDs,
		PlannerTitles:  reflist.DecodeNames(getString(record, "planner_titles")),
		EventIDs:       eventIDs,
	}, nil
}
