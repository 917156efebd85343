package rules

import "github.com/seokraft/seokraft/internal/domain"

// Penalty and bonus weights for the quality score. Calibrated so a record
// with one critical issue can still not reach the publish-gate grades, and
// a fully-filled record absorbs a couple of advisory findings without
// dropping a grade band.
const (
	penaltyCritical = 25
	penaltyMajor    = 15
	penaltyMinor    = 5
	penaltyWarning  = 3

	bonusCoreFields     = 10 // title + description + focus keyword all present
	bonusStructuredData = 5  // JSON-LD present and parseable
	bonusSocialCard     = 5  // complete social override set
)

// ScoreRecord computes the 0-100 quality score from the sanitized record
// and the collected findings. All terms are additive, so evaluation order
// does not matter; the clamp is applied last.
func ScoreRecord(clean *domain.Record, issues []domain.Issue, warnings []domain.Warning) int {
	score := 100

	for _, iss := range issues {
		switch iss.Severity {
		case domain.SeverityCritical:
			score -= penaltyCritical
		case domain.SeverityMajor:
			score -= penaltyMajor
		case domain.SeverityMinor:
			score -= penaltyMinor
		}
	}

	score -= penaltyWarning * len(warnings)

	if clean.Title != "" && clean.Description != "" && clean.FocusKeyword != "" {
		score += bonusCoreFields
	}
	if jsonLDParses(clean.JSONLD) {
		score += bonusStructuredData
	}
	if clean.SocialTitle != "" && clean.SocialDescription != "" && clean.SocialImageURL != "" {
		score += bonusSocialCard
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
