package server

import (
	"time"

	"github.com/jonathan/studenthub/internal/db"
)

// RegisterRequest is the payload for POST /auth/register
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

// LoginRequest is the payload for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdatePasswordRequest is the payload for PUT /auth/password
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

// AuthResponse carries the user and a fresh token after register/login
type AuthResponse struct {
	User  *db.User `json:"user"`
	Token string   `json:"token"`
}

// UpdateProfileRequest is the payload for PUT /profile. Nil fields are
// left unchanged.
type UpdateProfileRequest struct {
	YearLevel    *string `json:"yearLevel" validate:"omitempty,oneof=freshman sophomore junior senior graduate"`
	MajorProgram *string `json:"majorProgram"`
	Bio          *string `json:"bio" validate:"omitempty,max=2000"`
}

// SkillRequest is the payload for creating or updating a skill
type SkillRequest struct {
	SkillName        string  `json:"skillName" validate:"required,max=100"`
	Category         string  `json:"category" validate:"required,oneof=technical tools_software soft language"`
	ProficiencyLevel string  `json:"proficiencyLevel" validate:"required,oneof=beginner intermediate advanced expert"`
	Notes            *string `json:"notes" validate:"omitempty,max=500"`
}

// GoalRequest is the payload for creating or updating a goal
type GoalRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"max=2000"`
	GoalType    string     `json:"goalType" validate:"required,oneof=short_term long_term"`
	Category    string     `json:"category" validate:"required,max=50"`
	Priority    string     `json:"priority" validate:"required,oneof=low medium high"`
	Status      string     `json:"status" validate:"omitempty,oneof=active completed abandoned"`
	TargetDate  *time.Time `json:"targetDate"`
}

// InterestRequest is the payload for creating an interest
type InterestRequest struct {
	InterestName    string  `json:"interestName" validate:"required,max=100"`
	Category        string  `json:"category" validate:"required,oneof=academic hobby extracurricular industry"`
	Description     *string `json:"description" validate:"omitempty,max=500"`
	LevelOfInterest string  `json:"levelOfInterest" validate:"required,oneof=low medium high"`
}

// ParseResumeRequest is the payload for POST /files/{id}/parse-resume.
// AutoPopulate defaults to true when omitted.
type ParseResumeRequest struct {
	AutoPopulate *bool `json:"autoPopulate"`
}
