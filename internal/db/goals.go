package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const goalColumns = `id, user_id, title, description, goal_type, category, priority, status, target_date, created_at, updated_at`

func scanGoal(row pgx.Row) (*Goal, error) {
	var g Goal
	err := row.Scan(&g.ID, &g.UserID, &g.Title, &g.Description, &g.GoalType,
		&g.Category, &g.Priority, &g.Status, &g.TargetDate, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// GoalInput holds the caller-supplied fields for creating or updating
// a goal
type GoalInput struct {
	Title       string
	Description string
	GoalType    string
	Category    string
	Priority    string
	Status      string
	TargetDate  *time.Time
}

// ListGoals retrieves all goals for a user, newest first
func (db *DB) ListGoals(ctx context.Context, userID uuid.UUID) ([]Goal, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+goalColumns+` FROM goals WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	defer rows.Close()

	var goals []Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, *g)
	}
	return goals, rows.Err()
}

// CreateGoal inserts a goal row. Returns ErrDuplicate when the user
// already has a goal with the same title.
func (db *DB) CreateGoal(ctx context.Context, userID uuid.UUID, in GoalInput) (*Goal, error) {
	goal, err := scanGoal(db.pool.QueryRow(ctx,
		`INSERT INTO goals (user_id, title, description, goal_type, category, priority, status, target_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+goalColumns,
		userID, in.Title, in.Description, in.GoalType, in.Category, in.Priority, in.Status, in.TargetDate,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("goal %q already exists: %w", in.Title, ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}
	return goal, nil
}

// UpdateGoal updates a goal owned by the user. Returns nil when the row
// does not exist or belongs to someone else, ErrDuplicate when the new
// title collides with another goal.
func (db *DB) UpdateGoal(ctx context.Context, userID, goalID uuid.UUID, in GoalInput) (*Goal, error) {
	goal, err := scanGoal(db.pool.QueryRow(ctx,
		`UPDATE goals SET title = $1, description = $2, goal_type = $3, category = $4,
		        priority = $5, status = $6, target_date = $7, updated_at = NOW()
		 WHERE id = $8 AND user_id = $9
		 RETURNING `+goalColumns,
		in.Title, in.Description, in.GoalType, in.Category, in.Priority, in.Status, in.TargetDate, goalID, userID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("goal %q already exists: %w", in.Title, ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}
	return goal, nil
}

// DeleteGoal removes a goal owned by the user; reports whether a row
// was deleted
func (db *DB) DeleteGoal(ctx context.Context, userID, goalID uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM goals WHERE id = $1 AND user_id = $2`,
		goalID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete goal: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
