package rules

import "github.com/seokraft/seokraft/internal/domain"

// fragment is the output of a single field-rule: issues, warnings and
// suggestions for that field family. Rules are independent; the validator
// concatenates fragments in a fixed order so report ordering is stable.
type fragment struct {
	issues      []domain.Issue
	warnings    []domain.Warning
	suggestions []domain.Suggestion
}

func (f *fragment) critical(field, message, recommendation string) {
	f.issues = append(f.issues, domain.Issue{
		Field: field, Severity: domain.SeverityCritical,
		Message: message, Recommendation: recommendation,
	})
}

func (f *fragment) major(field, message, recommendation string) {
	f.issues = append(f.issues, domain.Issue{
		Field: field, Severity: domain.SeverityMajor,
		Message: message, Recommendation: recommendation,
	})
}

func (f *fragment) warn(field, message, recommendation string) {
	f.warnings = append(f.warnings, domain.Warning{
		Field: field, Message: message, Recommendation: recommendation,
	})
}

func (f *fragment) suggest(category, priority, message string) {
	f.suggestions = append(f.suggestions, domain.Suggestion{
		Category: category, Priority: priority, Message: message,
	})
}

func (f *fragment) merge(other fragment) {
	f.issues = append(f.issues, other.issues...)
	f.warnings = append(f.warnings, other.warnings...)
	f.suggestions = append(f.suggestions, other.suggestions...)
}
