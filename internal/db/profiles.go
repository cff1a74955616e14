package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProfileUpdate holds optional profile fields; nil means leave unchanged
type ProfileUpdate struct {
	YearLevel    *string
	MajorProgram *string
	Bio          *string
}

// GetProfile retrieves a student profile by user ID, nil when absent
func (db *DB) GetProfile(ctx context.Context, userID uuid.UUID) (*StudentProfile, error) {
	var p StudentProfile
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, year_level, major_program, bio, profile_completion_percentage, created_at, updated_at
		 FROM student_profiles WHERE user_id = $1`,
		userID,
	).Scan(&p.ID, &p.UserID, &p.YearLevel, &p.MajorProgram, &p.Bio, &p.ProfileCompletion, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}

// UpdateProfile applies a partial update to a student profile and
// recomputes the completion percentage
func (db *DB) UpdateProfile(ctx context.Context, userID uuid.UUID, update ProfileUpdate) error {
	query := `UPDATE student_profiles SET updated_at = NOW()`
	args := []any{}
	argNum := 1

	if update.YearLevel != nil {
		query += fmt.Sprintf(", year_level = $%d", argNum)
		args = append(args, *update.YearLevel)
		argNum++
	}
	if update.MajorProgram != nil {
		query += fmt.Sprintf(", major_program = $%d", argNum)
		args = append(args, *update.MajorProgram)
		argNum++
	}
	if update.Bio != nil {
		query += fmt.Sprintf(", bio = $%d", argNum)
		args = append(args, *update.Bio)
		argNum++
	}

	query += fmt.Sprintf(" WHERE user_id = $%d", argNum)
	args = append(args, userID)

	result, err := db.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile not found: %s", userID)
	}

	return db.RefreshProfileCompletion(ctx, userID)
}

// RefreshProfileCompletion recomputes the completion percentage from
// the filled profile fields and the entity counts. Six tracked fields:
// year level, major, bio (over 10 chars), plus having at least one
// goal, skill and interest.
func (db *DB) RefreshProfileCompletion(ctx context.Context, userID uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `
		UPDATE student_profiles p SET profile_completion_percentage = ROUND((
			(CASE WHEN p.year_level IS NOT NULL THEN 1 ELSE 0 END) +
			(CASE WHEN p.major_program IS NOT NULL THEN 1 ELSE 0 END) +
			(CASE WHEN COALESCE(LENGTH(p.bio), 0) > 10 THEN 1 ELSE 0 END) +
			(CASE WHEN EXISTS (SELECT 1 FROM goals g WHERE g.user_id = p.user_id) THEN 1 ELSE 0 END) +
			(CASE WHEN EXISTS (SELECT 1 FROM skills s WHERE s.user_id = p.user_id) THEN 1 ELSE 0 END) +
			(CASE WHEN EXISTS (SELECT 1 FROM interests i WHERE i.user_id = p.user_id) THEN 1 ELSE 0 END)
		) * 100.0 / 6)
		WHERE p.user_id = $1`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to refresh profile completion: %w", err)
	}
	return nil
}

// ProfileCounts holds entity counts shown alongside a profile
type ProfileCounts struct {
	Goals     int `json:"goals"`
	Skills    int `json:"skills"`
	Interests int `json:"interests"`
}

// GetProfileCounts returns the number of goals, skills and interests
// a user has
func (db *DB) GetProfileCounts(ctx context.Context, userID uuid.UUID) (*ProfileCounts, error) {
	var c ProfileCounts
	err := db.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM goals WHERE user_id = $1),
			(SELECT COUNT(*) FROM skills WHERE user_id = $1),
			(SELECT COUNT(*) FROM interests WHERE user_id = $1)`,
		userID,
	).Scan(&c.Goals, &c.Skills, &c.Interests)
	if err != nil {
		return nil, fmt.Errorf("failed to count profile entities: %w", err)
	}
	return &c, nil
}
