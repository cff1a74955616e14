package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const interestColumns = `id, user_id, interest_name, category, description, level_of_interest, created_at`

func scanInterest(row pgx.Row) (*Interest, error) {
	var i Interest
	err := row.Scan(&i.ID, &i.UserID, &i.InterestName, &i.Category,
		&i.Description, &i.LevelOfInterest, &i.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// ListInterests retrieves all interests for a user, newest first
func (db *DB) ListInterests(ctx context.Context, userID uuid.UUID) ([]Interest, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+interestColumns+` FROM interests WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list interests: %w", err)
	}
	defer rows.Close()

	var interests []Interest
	for rows.Next() {
		i, err := scanInterest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan interest: %w", err)
		}
		interests = append(interests, *i)
	}
	return interests, rows.Err()
}

// CreateInterest inserts an interest row. Returns ErrDuplicate when the
// user already has an interest with the same name.
func (db *DB) CreateInterest(ctx context.Context, userID uuid.UUID, name, category string, description *string, level string) (*Interest, error) {
	interest, err := scanInterest(db.pool.QueryRow(ctx,
		`INSERT INTO interests (user_id, interest_name, category, description, level_of_interest)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+interestColumns,
		userID, name, category, description, level,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("interest %q already exists: %w", name, ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to create interest: %w", err)
	}
	return interest, nil
}

// UpdateInterest updates an interest owned by the user. Returns nil when
// the row does not exist or belongs to someone else, and ErrDuplicate
// when the new name collides with another of the user's interests.
func (db *DB) UpdateInterest(ctx context.Context, userID, interestID uuid.UUID, name, category string, description *string, level string) (*Interest, error) {
	interest, err := scanInterest(db.pool.QueryRow(ctx,
		`UPDATE interests SET interest_name = $1, category = $2, description = $3, level_of_interest = $4
		 WHERE id = $5 AND user_id = $6
		 RETURNING `+interestColumns,
		name, category, description, level, interestID, userID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("interest %q already exists: %w", name, ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to update interest: %w", err)
	}
	return interest, nil
}

// DeleteInterest removes an interest owned by the user; reports whether
// a row was deleted
func (db *DB) DeleteInterest(ctx context.Context, userID, interestID uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM interests WHERE id = $1 AND user_id = $2`,
		interestID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete interest: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
