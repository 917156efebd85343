package tui_test

import (
	"strings"
	"testing"

	"github.com/seokraft/seokraft/internal/adapters/outbound/tui"
	"github.com/seokraft/seokraft/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleReport() *domain.Report {
	return &domain.Report{
		IsValid: false,
		Score:   42,
		Issues: []domain.Issue{
			{Field: "description", Severity: domain.SeverityMajor, Message: "Description too long: 190 characters (maximum 160)"},
			{Field: "title", Severity: domain.SeverityCritical, Message: "Title contains HTML tags", Recommendation: "Remove markup from the title"},
		},
		Warnings: []domain.Warning{
			{Field: "focus_keyword", Message: "Focus keyword not found in title"},
		},
		Suggestions: []domain.Suggestion{
			{Category: "description", Priority: domain.PriorityMedium, Message: "Add a call-to-action phrase to the description"},
		},
	}
}

func TestRenderReport_ContainsScoreAndGrade(t *testing.T) {
	output := tui.RenderReport("content/home.seo.yaml", sampleReport())
	assert.Contains(t, output, "42")
	assert.Contains(t, output, "100")
	assert.Contains(t, output, "F")
}

func TestRenderReport_ShowsSource(t *testing.T) {
	output := tui.RenderReport("content/home.seo.yaml", sampleReport())
	assert.Contains(t, output, "content/home.seo.yaml")
}

func TestRenderReport_ShowsValidity(t *testing.T) {
	output := tui.RenderReport("", sampleReport())
	assert.Contains(t, output, "invalid")
}

func TestRenderReport_ShowsIssues(t *testing.T) {
	output := tui.RenderReport("", sampleReport())
	assert.Contains(t, output, "Title contains HTML tags")
	assert.Contains(t, output, "Description too long")
	assert.Contains(t, output, "Issues")
}

func TestRenderReport_ShowsRecommendation(t *testing.T) {
	output := tui.RenderReport("", sampleReport())
	assert.Contains(t, output, "Remove markup from the title")
}

func TestRenderReport_IssueSummaryCounts(t *testing.T) {
	output := tui.RenderReport("", sampleReport())
	assert.Contains(t, output, "1 critical")
	assert.Contains(t, output, "1 major")
}

func TestRenderReport_CriticalsBeforeMajors(t *testing.T) {
	output := tui.RenderReport("", sampleReport())
	critIdx := strings.Index(output, "Title contains HTML tags")
	majorIdx := strings.Index(output, "Description too long")
	assert.True(t, critIdx < majorIdx, "critical issues should appear before major ones")
}

func TestRenderReport_ShowsWarningsAndSuggestions(t *testing.T) {
	output := tui.RenderReport("", sampleReport())
	assert.Contains(t, output, "Focus keyword not found in title")
	assert.Contains(t, output, "Add a call-to-action phrase")
	assert.Contains(t, output, "Warnings")
	assert.Contains(t, output, "Suggestions")
}

func TestRenderReport_CleanReport(t *testing.T) {
	output := tui.RenderReport("", &domain.Report{IsValid: true, Score: 100})
	assert.Contains(t, output, "No issues found.")
	assert.Contains(t, output, "valid")
	assert.NotContains(t, output, "Warnings")
}

func TestRenderAudit_ShowsPagesAndStatus(t *testing.T) {
	audit := &domain.Audit{
		RootPath:     "content",
		Status:       domain.AuditWarn,
		AverageScore: 76,
		Pages: []domain.PageReport{
			{Path: "content/home.seo.yaml", Report: domain.Report{IsValid: true, Score: 92}},
			{Path: "content/about.seo.yaml", Report: domain.Report{IsValid: true, Score: 60}},
		},
	}

	output := tui.RenderAudit(audit)
	assert.Contains(t, output, "76")
	assert.Contains(t, output, "WARN")
	assert.Contains(t, output, "content/home.seo.yaml")
	assert.Contains(t, output, "content/about.seo.yaml")
	assert.Contains(t, output, "2 pages audited")
}

func TestRenderAudit_NoPages(t *testing.T) {
	output := tui.RenderAudit(&domain.Audit{Status: domain.AuditPass})
	assert.Contains(t, output, "No metadata documents found.")
}

func TestRenderHistory_ShowsEntries(t *testing.T) {
	entries := []domain.HistoryEntry{
		{Score: 60, Grade: "C", CommitHash: "aaaabbbbccccddddeeee", Timestamp: "2026-08-01T10:00:00Z"},
		{Score: 85, Grade: "A", Timestamp: "2026-08-02T10:00:00Z"},
	}

	output := tui.RenderHistory(entries)
	assert.Contains(t, output, "Validation History")
	assert.Contains(t, output, "2026-08-01")
	assert.Contains(t, output, "aaaabbb", "commit hash should be shortened")
	assert.Contains(t, output, "↑25", "should show score delta")
}

func TestRenderHistory_Empty(t *testing.T) {
	output := tui.RenderHistory(nil)
	assert.Contains(t, output, "No validation history found.")
}
