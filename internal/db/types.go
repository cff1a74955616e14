package db

import (
	"time"

	"github.com/google/uuid"
)

// User represents a row in the users table
type User struct {
	ID            uuid.UUID  `json:"id"`
	Email         string     `json:"email"`
	PasswordHash  string     `json:"-"`
	FirstName     string     `json:"firstName"`
	LastName      string     `json:"lastName"`
	Role          string     `json:"role"`
	EmailVerified bool       `json:"emailVerified"`
	LastLogin     *time.Time `json:"lastLogin,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// StudentProfile represents a row in the student_profiles table.
// Nullable columns map to pointers.
type StudentProfile struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"userId"`
	YearLevel         *string   `json:"yearLevel"`
	MajorProgram      *string   `json:"majorProgram"`
	Bio               *string   `json:"bio"`
	ProfileCompletion int       `json:"profileCompletion"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Skill represents a row in the skills table
type Skill struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"userId"`
	SkillName        string    `json:"skillName"`
	Category         string    `json:"category"`
	ProficiencyLevel string    `json:"proficiencyLevel"`
	Notes            *string   `json:"notes,omitempty"`
	IsVerified       bool      `json:"isVerified"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Goal represents a row in the goals table
type Goal struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"userId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	GoalType    string     `json:"goalType"`
	Category    string     `json:"category"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	TargetDate  *time.Time `json:"targetDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Interest represents a row in the interests table
type Interest struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"userId"`
	InterestName    string    `json:"interestName"`
	Category        string    `json:"category"`
	Description     *string   `json:"description,omitempty"`
	LevelOfInterest string    `json:"levelOfInterest"`
	CreatedAt       time.Time `json:"createdAt"`
}

// UploadedFile represents a row in the uploaded_files table,
// including the stored bytes
type UploadedFile struct {
	ID               uuid.UUID  `json:"id"`
	UserID           uuid.UUID  `json:"userId"`
	FileName         string     `json:"fileName"`
	OriginalName     string     `json:"originalName"`
	FileType         string     `json:"fileType"`
	FileSize         int64      `json:"fileSize"`
	FileData         []byte     `json:"-"`
	FileHash         string     `json:"fileHash"`
	UploadPurpose    string     `json:"purpose"`
	ExtractedText    *string    `json:"-"`
	ProcessingStatus string     `json:"processingStatus"`
	UploadDate       time.Time  `json:"uploadDate"`
	LastAccessed     *time.Time `json:"lastAccessed,omitempty"`
}

// FileSummary is a lightweight view of an uploaded file for listing,
// without the stored bytes
type FileSummary struct {
	ID               uuid.UUID  `json:"id"`
	FileName         string     `json:"fileName"`
	OriginalName     string     `json:"originalName"`
	FileType         string     `json:"fileType"`
	FileSize         int64      `json:"fileSize"`
	UploadPurpose    string     `json:"purpose"`
	ProcessingStatus string     `json:"processingStatus"`
	HasExtractedText bool       `json:"hasExtractedText"`
	UploadDate       time.Time  `json:"uploadDate"`
	LastAccessed     *time.Time `json:"lastAccessed,omitempty"`
}
