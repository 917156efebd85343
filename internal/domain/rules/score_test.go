package rules

import (
	"testing"

	"github.com/seokraft/seokraft/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestScoreRecord_EmptyRecordNoFindings(t *testing.T) {
	assert.Equal(t, 100, ScoreRecord(&domain.Record{}, nil, nil))
}

func TestScoreRecord_Penalties(t *testing.T) {
	issues := []domain.Issue{
		{Severity: domain.SeverityCritical},
		{Severity: domain.SeverityMajor},
		{Severity: domain.SeverityMinor},
	}
	warnings := []domain.Warning{{}, {}}
	// 100 - 25 - 15 - 5 - 2*3 = 49
	assert.Equal(t, 49, ScoreRecord(&domain.Record{}, issues, warnings))
}

func TestScoreRecord_CoreFieldBonus(t *testing.T) {
	rec := domain.Record{Title: "t", Description: "d", FocusKeyword: "k"}
	// 100 + 10, clamped to 100
	assert.Equal(t, 100, ScoreRecord(&rec, nil, nil))

	issues := []domain.Issue{{Severity: domain.SeverityCritical}}
	// 100 - 25 + 10 = 85
	assert.Equal(t, 85, ScoreRecord(&rec, issues, nil))
}

func TestScoreRecord_JSONLDBonusIndependentOfIssues(t *testing.T) {
	// Parseable but structurally wrong JSON-LD still earns the bonus.
	rec := domain.Record{JSONLD: `{"@type":"Product"}`}
	issues := []domain.Issue{{Severity: domain.SeverityMajor}}
	// 100 - 15 + 5 = 90
	assert.Equal(t, 90, ScoreRecord(&rec, issues, nil))
}

func TestScoreRecord_NoJSONLDBonusForBrokenJSON(t *testing.T) {
	rec := domain.Record{JSONLD: "not json"}
	assert.Equal(t, 100, ScoreRecord(&rec, nil, nil))
}

func TestScoreRecord_SocialBonusRequiresAllThree(t *testing.T) {
	partial := domain.Record{SocialTitle: "t", SocialDescription: "d"}
	issues := []domain.Issue{{Severity: domain.SeverityMajor}}
	assert.Equal(t, 85, ScoreRecord(&partial, issues, nil))

	full := partial
	full.SocialImageURL = "https://example.com/card.png"
	assert.Equal(t, 90, ScoreRecord(&full, issues, nil))
}

func TestScoreRecord_ClampsAtZero(t *testing.T) {
	var issues []domain.Issue
	for i := 0; i < 10; i++ {
		issues = append(issues, domain.Issue{Severity: domain.SeverityCritical})
	}
	assert.Equal(t, 0, ScoreRecord(&domain.Record{}, issues, nil))
}

func TestScoreRecord_ClampsAtHundred(t *testing.T) {
	rec := domain.Record{
		Title: "t", Description: "d", FocusKeyword: "k",
		JSONLD:      `{"@context":"https://schema.org","@type":"Product"}`,
		SocialTitle: "st", SocialDescription: "sd",
		SocialImageURL: "https://example.com/card.png",
	}
	assert.Equal(t, 100, ScoreRecord(&rec, nil, nil))
}
