package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const skillColumns = `id, user_id, skill_name, category, proficiency_level, notes, is_verified, created_at, updated_at`

func scanSkill(row pgx.Row) (*Skill, error) {
	var s Skill
	err := row.Scan(&s.ID, &s.UserID, &s.SkillName, &s.Category, &s.ProficiencyLevel,
		&s.Notes, &s.IsVerified, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListSkills retrieves all skills for a user, newest first
func (db *DB) ListSkills(ctx context.Context, userID uuid.UUID) ([]Skill, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+skillColumns+` FROM skills WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	var skills []Skill
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, *s)
	}
	return skills, rows.Err()
}

// CreateSkill inserts a skill row. Returns ErrDuplicate when the user
// already has a skill with the same name.
func (db *DB) CreateSkill(ctx context.Context, userID uuid.UUID, name, category, proficiencyLevel string, notes *string) (*Skill, error) {
	skill, err := scanSkill(db.pool.QueryRow(ctx,
		`INSERT INTO skills (user_id, skill_name, category, proficiency_level, notes)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+skillColumns,
		userID, name, category, proficiencyLevel, notes,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("skill %q already exists: %w", name, ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}
	return skill, nil
}

// UpdateSkill updates a skill owned by the user. Returns nil when the
// row does not exist or belongs to someone else.
func (db *DB) UpdateSkill(ctx context.Context, userID, skillID uuid.UUID, category, proficiencyLevel string, notes *string) (*Skill, error) {
	skill, err := scanSkill(db.pool.QueryRow(ctx,
		`UPDATE skills SET category = $1, proficiency_level = $2, notes = $3, updated_at = NOW()
		 WHERE id = $4 AND user_id = $5
		 RETURNING `+skillColumns,
		category, proficiencyLevel, notes, skillID, userID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update skill: %w", err)
	}
	return skill, nil
}

// DeleteSkill removes a skill owned by the user; reports whether a row
// was deleted
func (db *DB) DeleteSkill(ctx context.Context, userID, skillID uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM skills WHERE id = $1 AND user_id = $2`,
		skillID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete skill: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
