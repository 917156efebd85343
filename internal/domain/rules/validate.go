// Package rules implements the content metadata quality engine: a
// sanitizer for free-text fields, per-field constraint rules that emit
// severity-classified findings, and a deterministic 0-100 scorer. The
// engine is pure computation: no I/O, no logging, no shared state, safe
// for concurrent callers.
package rules

import "github.com/seokraft/seokraft/internal/domain"

// Validate runs the full pipeline against rec with the default limits.
func Validate(rec domain.Record) domain.Report {
	return ValidateWith(domain.DefaultLimits(), rec)
}

// ValidateWith sanitizes rec, runs every field rule in a fixed order,
// scores the result, and returns the report. Rule-level problems surface
// as findings, never as errors; a truly unexpected panic inside a rule is
// converted into the documented fallback report instead of propagating.
func ValidateWith(limits domain.Limits, rec domain.Record) (report domain.Report) {
	defer func() {
		if r := recover(); r != nil {
			report = fallbackReport()
		}
	}()

	clean := SanitizeRecord(rec, limits)

	// Fixed rule order keeps report ordering stable across runs.
	var all fragment
	all.merge(checkTitle(&rec, &clean, limits))
	all.merge(checkDescription(&rec, &clean, limits))
	all.merge(checkFocusKeyword(&clean, limits))
	all.merge(checkKeywords(&clean, limits))
	all.merge(checkCanonicalURL(&rec, &clean, limits))
	all.merge(checkJSONLD(&clean))
	all.merge(checkRobots(&clean))
	all.merge(checkSocial(&rec, &clean, limits))

	report = domain.Report{
		Score:       ScoreRecord(&clean, all.issues, all.warnings),
		Issues:      all.issues,
		Warnings:    all.warnings,
		Suggestions: all.suggestions,
	}
	report.IsValid = report.CriticalCount() == 0

	return report
}

// fallbackReport is returned when validation itself fails. Deterministic
// and documented: callers can rely on its exact shape.
func fallbackReport() domain.Report {
	return domain.Report{
		IsValid: false,
		Score:   0,
		Issues: []domain.Issue{{
			Field:    "title",
			Severity: domain.SeverityCritical,
			Message:  "Validation failed due to internal error",
		}},
	}
}
