package resume

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// ProfileStore is the persistence port the populator merges candidates
// through. Existence checks and inserts are separate calls and are not atomic
// as a pair: two concurrent populations for the same user can both observe
// "absent" and insert twice. The schema's per-user unique indexes are the
// actual dedup guarantee; callers wanting strict behavior serialize per user.
type ProfileStore interface {
	UpdateProfileFields(ctx context.Context, userID uuid.UUID, fields ProfileFields) error

	SkillExists(ctx context.Context, userID uuid.UUID, name string) (bool, error)
	InsertSkill(ctx context.Context, userID uuid.UUID, skill CandidateSkill) error

	GoalExists(ctx context.Context, userID uuid.UUID, title string) (bool, error)
	InsertGoal(ctx context.Context, userID uuid.UUID, goal CandidateGoal) error

	InterestExists(ctx context.Context, userID uuid.UUID, name string) (bool, error)
	InsertInterest(ctx context.Context, userID uuid.UUID, interest CandidateInterest) error
}

// Populator merges extracted candidate data into persisted profile records.
type Populator struct {
	store ProfileStore
}

// NewPopulator creates a Populator backed by the given store.
func NewPopulator(store ProfileStore) *Populator {
	return &Populator{store: store}
}

// AutoPopulateProfile merges a ParseResult into the user's persisted state:
// profile fields first, then skills, goals, and interests, in that order.
// Candidates whose name (or title) already exists for the user are skipped by
// exact, case-sensitive match; existing rows are never modified. The first
// store error aborts the merge and propagates; entity kinds merged before the
// failure stay merged (no rollback).
func (p *Populator) AutoPopulateProfile(ctx context.Context, userID uuid.UUID, parsed *ParseResult) (*PopulationResult, error) {
	result := &PopulationResult{}

	if !parsed.Profile.IsEmpty() {
		if err := p.store.UpdateProfileFields(ctx, userID, parsed.Profile); err != nil {
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
		result.ProfileUpdated = true
	}

	for _, skill := range parsed.Skills {
		exists, err := p.store.SkillExists(ctx, userID, skill.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check skill %q: %w", skill.Name, err)
		}
		if exists {
			continue
		}
		if err := p.store.InsertSkill(ctx, userID, skill); err != nil {
			return nil, fmt.Errorf("failed to insert skill %q: %w", skill.Name, err)
		}
		result.SkillsAdded++
	}

	for _, goal := range parsed.Goals {
		exists, err := p.store.GoalExists(ctx, userID, goal.Title)
		if err != nil {
			return nil, fmt.Errorf("failed to check goal %q: %w", goal.Title, err)
		}
		if exists {
			continue
		}
		if err := p.store.InsertGoal(ctx, userID, goal); err != nil {
			return nil, fmt.Errorf("failed to insert goal %q: %w", goal.Title, err)
		}
		result.GoalsAdded++
	}

	for _, interest := range parsed.Interests {
		exists, err := p.store.InterestExists(ctx, userID, interest.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check interest %q: %w", interest.Name, err)
		}
		if exists {
			continue
		}
		if err := p.store.InsertInterest(ctx, userID, interest); err != nil {
			return nil, fmt.Errorf("failed to insert interest %q: %w", interest.Name, err)
		}
		result.InterestsAdded++
	}

	return result, nil
}
