// Package resume extracts structured candidate data from resume text and
// merges it into a student's persisted profile.
package resume

// Skill categories recognized by the extractor.
const (
	CategoryTechnical     = "technical"
	CategoryToolsSoftware = "tools_software"
	CategorySoft          = "soft"
	CategoryLanguage      = "language"
)

// Interest categories recognized by the extractor.
const (
	InterestAcademic        = "academic"
	InterestHobby           = "hobby"
	InterestExtracurricular = "extracurricular"
	InterestIndustry        = "industry"
)

// DefaultProficiency is assigned to every extracted skill; keyword matching
// carries no signal about actual proficiency.
const DefaultProficiency = "intermediate"

// CandidateSkill is an unpersisted skill proposed by the extractor.
type CandidateSkill struct {
	Name             string `json:"name"`
	Category         string `json:"category"`
	ProficiencyLevel string `json:"proficiencyLevel"`
}

// CandidateGoal is an unpersisted goal proposed by the extractor.
type CandidateGoal struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
}

// CandidateInterest is an unpersisted interest proposed by the extractor.
type CandidateInterest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    string `json:"level"`
}

// ProfileFields is a partial profile update. Empty fields mean "not detected"
// and are never written to the profile.
type ProfileFields struct {
	YearLevel    string `json:"yearLevel,omitempty"`
	MajorProgram string `json:"majorProgram,omitempty"`
}

// IsEmpty reports whether no field was detected.
func (f ProfileFields) IsEmpty() bool {
	return f.YearLevel == "" && f.MajorProgram == ""
}

// ContactInfo holds the first email and phone number found in the text.
// Fields are pattern matches only, not validated addresses or numbers.
type ContactInfo struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// ParseResult aggregates everything extracted from one resume. It is a pure
// value: callers construct it via ParseResume and discard it after use.
type ParseResult struct {
	Profile   ProfileFields       `json:"profile"`
	Skills    []CandidateSkill    `json:"skills"`
	Goals     []CandidateGoal     `json:"goals"`
	Interests []CandidateInterest `json:"interests"`
	Contact   ContactInfo         `json:"contact"`
}

// PopulationResult summarizes the persistence side effects of one
// auto-population pass.
type PopulationResult struct {
	ProfileUpdated bool `json:"profileUpdated"`
	SkillsAdded    int  `json:"skillsAdded"`
	GoalsAdded     int  `json:"goalsAdded"`
	InterestsAdded int  `json:"interestsAdded"`
}

// ValidationError indicates the input text cannot be parsed as a resume.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
