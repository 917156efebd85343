package domain

// Report is the result of validating a single Record. It is a value: once
// produced it is never mutated by the engine.
type Report struct {
	IsValid     bool         `json:"is_valid"`
	Score       int          `json:"score"`
	Issues      []Issue      `json:"issues,omitempty"`
	Warnings    []Warning    `json:"warnings,omitempty"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
}

func (r Report) Grade() string { return GradeFor(r.Score) }

func GradeFor(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}

func BadgeColor(score int) string {
	switch {
	case score >= 90:
		return "brightgreen"
	case score >= 80:
		return "green"
	case score >= 70:
		return "yellow"
	case score >= 60:
		return "orange"
	case score >= 50:
		return "red"
	default:
		return "critical"
	}
}

// Issue is a rule violation on a specific field. Critical issues block
// publishing; major and minor issues only degrade the score.
type Issue struct {
	Field          string `json:"field"`
	Severity       string `json:"severity"`
	Message        string `json:"message"`
	Recommendation string `json:"recommendation,omitempty"`
}

const (
	SeverityCritical = "critical"
	SeverityMajor    = "major"
	// SeverityMinor is reserved: no current rule emits it, but the scorer
	// handles it so new rules can use the level without a format change.
	SeverityMinor = "minor"
)

// Warning is advisory and never affects IsValid.
type Warning struct {
	Field          string `json:"field"`
	Message        string `json:"message"`
	Recommendation string `json:"recommendation,omitempty"`
}

// Suggestion is a content improvement hint tagged with a category and
// priority. Suggestions never affect IsValid or the score.
type Suggestion struct {
	Category string `json:"category"`
	Priority string `json:"priority"`
	Message  string `json:"message"`
}

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// CriticalCount returns the number of critical issues in the report.
func (r Report) CriticalCount() int {
	n := 0
	for _, iss := range r.Issues {
		if iss.Severity == SeverityCritical {
			n++
		}
	}
	return n
}

// CountBySeverity returns issue counts keyed by severity.
func CountBySeverity(issues []Issue) map[string]int {
	counts := make(map[string]int, 3)
	for _, iss := range issues {
		counts[iss.Severity]++
	}
	return counts
}
