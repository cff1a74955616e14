package resume

import (
	"regexp"
	"strings"
	"unicode"
)

// Result size caps. Resume text routinely mentions far more keywords than a
// profile should absorb in one pass.
const (
	maxSkills    = 20
	maxGoals     = 3
	maxInterests = 10
)

// minTextLength guards against parsing placeholder strings produced by failed
// text extraction ("File: resume.pdf (text extraction failed)" and friends).
const minTextLength = 50

const (
	defaultGoalTitle       = "Advance my career in my field of study"
	defaultGoalDescription = "Develop professional skills and gain experience in my chosen field"
)

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe = regexp.MustCompile(`(\+?1[-.\s]?)?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`)

	goalLabelRe = regexp.MustCompile(`(?i)(objective|goal|career objective|professional objective)[:\s]+`)
)

// ParseResume extracts structured candidate data from raw resume text.
// It returns a ValidationError when the trimmed text is shorter than 50
// characters; beyond that guard it always succeeds, with each sub-extraction
// degrading to an empty or default result when nothing matches.
func ParseResume(text string) (*ParseResult, error) {
	if len(strings.TrimSpace(text)) < minTextLength {
		return nil, &ValidationError{Message: "resume text is too short or empty"}
	}

	result := &ParseResult{
		Skills:    ExtractSkills(text),
		Goals:     ExtractGoals(text),
		Interests: ExtractInterests(text),
		Contact:   ExtractContactInfo(text),
	}

	if level := ExtractEducationLevel(text); level != "" {
		result.Profile.YearLevel = level
	}
	if major := ExtractMajor(text); major != "" {
		result.Profile.MajorProgram = major
	}

	return result, nil
}

// ExtractSkills scans the text against the skill keyword tables. Category
// order (technical, tools_software, soft, language) and keyword order within
// each category determine which duplicate survives and which entries survive
// the cap, so output order is deterministic for a given input.
func ExtractSkills(text string) []CandidateSkill {
	lower := strings.ToLower(text)

	skills := []CandidateSkill{}
	seen := make(map[string]bool)
	for _, category := range skillKeywords {
		for _, keyword := range category.keywords {
			if !strings.Contains(lower, keyword) {
				continue
			}
			if seen[keyword] {
				continue
			}
			seen[keyword] = true
			skills = append(skills, CandidateSkill{
				Name:             keyword,
				Category:         category.name,
				ProficiencyLevel: DefaultProficiency,
			})
		}
	}

	if len(skills) > maxSkills {
		skills = skills[:maxSkills]
	}
	return skills
}

// ExtractEducationLevel returns the first year level whose any synonym occurs
// in the text, or "" when none match. Levels are checked freshman through
// graduate; the first matching level wins regardless of where its keyword
// appears in the text.
func ExtractEducationLevel(text string) string {
	lower := strings.ToLower(text)

	for _, level := range educationKeywords {
		for _, synonym := range level.synonyms {
			if strings.Contains(lower, synonym) {
				return level.level
			}
		}
	}
	return ""
}

// ExtractMajor returns the first known major/program mentioned in the text,
// capitalized for display, or "" when none match.
func ExtractMajor(text string) string {
	lower := strings.ToLower(text)

	for _, major := range majorKeywords {
		if strings.Contains(lower, major) {
			return capitalizeWords(major)
		}
	}
	return ""
}

// ExtractContactInfo returns the first email address and the first North
// American phone number found in the text. Matches are accepted on pattern
// shape alone.
func ExtractContactInfo(text string) ContactInfo {
	return ContactInfo{
		Email: emailRe.FindString(text),
		Phone: phoneRe.FindString(text),
	}
}

// ExtractGoals finds objective/goal sections and turns them into candidate
// goals. A section is a line introduced by an "objective"-style label whose
// text runs to a blank line, a line starting with an uppercase letter, or the
// end of the text. Sections are scanned left to right without overlap. When
// no section qualifies, a single default goal is synthesized instead.
func ExtractGoals(text string) []CandidateGoal {
	goals := []CandidateGoal{}

	pos := 0
	for pos < len(text) {
		loc := goalLabelRe.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		labelStart := pos + loc[0]
		bodyStart := pos + loc[1]

		bodyEnd := strings.IndexByte(text[bodyStart:], '\n')
		if bodyEnd < 0 {
			bodyEnd = len(text)
		} else {
			bodyEnd += bodyStart
		}

		if !goalSectionEndsAt(text, bodyEnd) {
			// Not a section boundary; resume the scan just past this label.
			pos = labelStart + 1
			continue
		}

		goalText := strings.TrimSpace(text[bodyStart:bodyEnd])
		if n := len(goalText); n > 10 && n < 500 {
			goals = append(goals, CandidateGoal{
				Title:       truncateTitle(goalText),
				Description: goalText,
				Type:        "long_term",
				Category:    "career",
				Priority:    "high",
			})
		}
		pos = bodyEnd
	}

	// The default is a fallback only; it is never appended after explicit
	// matches.
	if len(goals) == 0 {
		goals = append(goals, CandidateGoal{
			Title:       defaultGoalTitle,
			Description: defaultGoalDescription,
			Type:        "long_term",
			Category:    "career",
			Priority:    "medium",
		})
	}

	if len(goals) > maxGoals {
		goals = goals[:maxGoals]
	}
	return goals
}

// goalSectionEndsAt reports whether position end in text terminates a goal
// section: end of text, a blank line, or a following line that starts with an
// uppercase letter.
func goalSectionEndsAt(text string, end int) bool {
	if end >= len(text) {
		return true
	}
	// end points at a newline; look at the first char of the next line.
	next := end + 1
	if next >= len(text) {
		return true
	}
	c := text[next]
	return c == '\n' || (c >= 'A' && c <= 'Z')
}

// truncateTitle bounds a goal title to 100 characters, appending an ellipsis
// when the source text is longer.
func truncateTitle(s string) string {
	runes := []rune(s)
	if len(runes) <= 100 {
		return s
	}
	return string(runes[:100]) + "..."
}

// ExtractInterests scans the text against the interest keyword tables
// (academic, hobby, extracurricular, industry, in that order), deduplicating
// case-insensitively with the first occurrence winning.
func ExtractInterests(text string) []CandidateInterest {
	lower := strings.ToLower(text)

	interests := []CandidateInterest{}
	seen := make(map[string]bool)
	for _, category := range interestKeywords {
		for _, keyword := range category.keywords {
			if !strings.Contains(lower, keyword) {
				continue
			}
			if seen[keyword] {
				continue
			}
			seen[keyword] = true
			interests = append(interests, CandidateInterest{
				Name:     capitalizeFirst(keyword),
				Category: category.name,
				Level:    "medium",
			})
		}
	}

	if len(interests) > maxInterests {
		interests = interests[:maxInterests]
	}
	return interests
}

// capitalizeFirst upper-cases the first rune of s.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// capitalizeWords upper-cases the first rune of each space-separated word.
func capitalizeWords(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		words[i] = capitalizeFirst(w)
	}
	return strings.Join(words, " ")
}
