package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/studenthub/internal/resume"
)

// The methods below implement resume.ProfileStore so extracted resume
// data can be merged into a user's records.

// UpdateProfileFields applies a partial update of the extracted profile
// fields, leaving unset fields untouched
func (db *DB) UpdateProfileFields(ctx context.Context, userID uuid.UUID, fields resume.ProfileFields) error {
	update := ProfileUpdate{}
	if fields.YearLevel != "" {
		update.YearLevel = &fields.YearLevel
	}
	if fields.MajorProgram != "" {
		update.MajorProgram = &fields.MajorProgram
	}
	return db.UpdateProfile(ctx, userID, update)
}

func (db *DB) rowExists(ctx context.Context, query string, args ...any) (bool, error) {
	var one int
	err := db.pool.QueryRow(ctx, query, args...).Scan(&one)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// SkillExists reports whether the user has a skill with exactly this
// name. The match is case sensitive.
func (db *DB) SkillExists(ctx context.Context, userID uuid.UUID, name string) (bool, error) {
	exists, err := db.rowExists(ctx,
		`SELECT 1 FROM skills WHERE user_id = $1 AND skill_name = $2`, userID, name)
	if err != nil {
		return false, fmt.Errorf("failed to check skill: %w", err)
	}
	return exists, nil
}

// InsertSkill stores an extracted skill candidate
func (db *DB) InsertSkill(ctx context.Context, userID uuid.UUID, skill resume.CandidateSkill) error {
	_, err := db.CreateSkill(ctx, userID, skill.Name, skill.Category, skill.ProficiencyLevel, nil)
	return err
}

// GoalExists reports whether the user has a goal with exactly this
// title. The match is case sensitive.
func (db *DB) GoalExists(ctx context.Context, userID uuid.UUID, title string) (bool, error) {
	exists, err := db.rowExists(ctx,
		`SELECT 1 FROM goals WHERE user_id = $1 AND title = $2`, userID, title)
	if err != nil {
		return false, fmt.Errorf("failed to check goal: %w", err)
	}
	return exists, nil
}

// InsertGoal stores an extracted goal candidate
func (db *DB) InsertGoal(ctx context.Context, userID uuid.UUID, goal resume.CandidateGoal) error {
	_, err := db.CreateGoal(ctx, userID, GoalInput{
		Title:       goal.Title,
		Description: goal.Description,
		GoalType:    goal.Type,
		Category:    goal.Category,
		Priority:    goal.Priority,
		Status:      "active",
	})
	return err
}

// InterestExists reports whether the user has an interest with exactly
// this name. The match is case sensitive.
func (db *DB) InterestExists(ctx context.Context, userID uuid.UUID, name string) (bool, error) {
	exists, err := db.rowExists(ctx,
		`SELECT 1 FROM interests WHERE user_id = $1 AND interest_name = $2`, userID, name)
	if err != nil {
		return false, fmt.Errorf("failed to check interest: %w", err)
	}
	return exists, nil
}

// InsertInterest stores an extracted interest candidate
func (db *DB) InsertInterest(ctx context.Context, userID uuid.UUID, interest resume.CandidateInterest) error {
	_, err := db.CreateInterest(ctx, userID, interest.Name, interest.Category, nil, interest.Level)
	return err
}
