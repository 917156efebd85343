package rules

import (
	"strings"
	"testing"

	"github.com/seokraft/seokraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// goodDescription is 120-160 characters and contains a call to action.
const goodDescription = "Explore our modular office buildings and learn more about flexible floor plans, fast delivery, and nationwide installation support."

func descriptionFragment(raw string) fragment {
	rec := domain.Record{Description: raw}
	limits := domain.DefaultLimits()
	clean := SanitizeRecord(rec, limits)
	return checkDescription(&rec, &clean, limits)
}

func TestCheckDescription_MissingIsCritical(t *testing.T) {
	f := descriptionFragment("")
	require.Len(t, f.issues, 1)
	assert.Equal(t, domain.SeverityCritical, f.issues[0].Severity)
	assert.Equal(t, "description", f.issues[0].Field)
}

func TestCheckDescription_GoodIsClean(t *testing.T) {
	f := descriptionFragment(goodDescription)
	assert.Empty(t, f.issues)
	assert.Empty(t, f.warnings)
	assert.Empty(t, f.suggestions)
}

func TestCheckDescription_TooShortIsWarningNotIssue(t *testing.T) {
	f := descriptionFragment("Visit our short description.")
	assert.Empty(t, f.issues)
	require.Len(t, f.warnings, 1)
	assert.Contains(t, f.warnings[0].Message, "below")
}

func TestCheckDescription_TooLongIsMajor(t *testing.T) {
	f := descriptionFragment("Visit us. " + strings.Repeat("Filler words here. ", 10))
	require.Len(t, f.issues, 1)
	assert.Equal(t, domain.SeverityMajor, f.issues[0].Severity)
	assert.Contains(t, f.issues[0].Message, "above")
}

func TestCheckDescription_MultibyteCountsCharactersNotBytes(t *testing.T) {
	// 150 characters but 280 bytes: a byte count would flag it as too long.
	f := descriptionFragment("Visitez notre site. " + strings.Repeat("é", 130))
	assert.Empty(t, f.issues)
	assert.Empty(t, f.warnings)
}

func TestCheckDescription_HTMLIsCritical(t *testing.T) {
	f := descriptionFragment("<script>x</script>" + goodDescription)
	var severities []string
	for _, iss := range f.issues {
		severities = append(severities, iss.Severity)
	}
	assert.Contains(t, severities, domain.SeverityCritical)
}

func TestCheckDescription_NoCTASuggestion(t *testing.T) {
	// In range but with no call-to-action phrase anywhere.
	desc := "Our modular buildings are assembled off site and delivered ready " +
		"to occupy, with flexible floor plans available in every state today."
	f := descriptionFragment(desc)
	assert.Empty(t, f.issues)
	require.Len(t, f.suggestions, 1)
	assert.Equal(t, domain.PriorityMedium, f.suggestions[0].Priority)
}

func TestContainsCTA_CaseInsensitive(t *testing.T) {
	assert.True(t, containsCTA("LEARN MORE about us"))
	assert.True(t, containsCTA("Contact our team"))
	assert.False(t, containsCTA("nothing actionable here"))
}
