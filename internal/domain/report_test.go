package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradeFor(t *testing.T) {
	assert.Equal(t, "A+", GradeFor(95))
	assert.Equal(t, "A", GradeFor(85))
	assert.Equal(t, "B", GradeFor(75))
	assert.Equal(t, "C", GradeFor(65))
	assert.Equal(t, "D", GradeFor(55))
	assert.Equal(t, "F", GradeFor(20))
}

func TestBadgeColor(t *testing.T) {
	assert.Equal(t, "brightgreen", BadgeColor(95))
	assert.Equal(t, "critical", BadgeColor(10))
}

func TestReport_CriticalCount(t *testing.T) {
	r := Report{Issues: []Issue{
		{Severity: SeverityCritical},
		{Severity: SeverityMajor},
		{Severity: SeverityCritical},
	}}
	assert.Equal(t, 2, r.CriticalCount())
	assert.Equal(t, 0, Report{}.CriticalCount())
}

func TestCountBySeverity(t *testing.T) {
	counts := CountBySeverity([]Issue{
		{Severity: SeverityCritical},
		{Severity: SeverityMajor},
		{Severity: SeverityMajor},
	})
	assert.Equal(t, 1, counts[SeverityCritical])
	assert.Equal(t, 2, counts[SeverityMajor])
	assert.Equal(t, 0, counts[SeverityMinor])
}

func TestIsValidRobotsDirective(t *testing.T) {
	assert.True(t, IsValidRobotsDirective("index,follow"))
	assert.True(t, IsValidRobotsDirective("noindex,nofollow"))
	assert.False(t, IsValidRobotsDirective("index, follow"))
	assert.False(t, IsValidRobotsDirective(""))
}
