package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/seokraft/seokraft/internal/domain"
)

// ── Warm terminal palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	gradeColors = map[string]lipgloss.Color{
		"A+": success,
		"A":  success,
		"B":  lipgloss.Color("#A3E635"), // lime
		"C":  warning,
		"D":  lipgloss.Color("#FB923C"), // orange
		"F":  danger,
	}

	dimStyle         = lipgloss.NewStyle().Foreground(dim)
	faintStyle       = lipgloss.NewStyle().Foreground(faint)
	passStyle        = lipgloss.NewStyle().Foreground(success)
	failStyle        = lipgloss.NewStyle().Foreground(danger)
	warnStyle        = lipgloss.NewStyle().Foreground(warning)
	criticalTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	majorTagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FB923C")).Bold(true)
	minorTagStyle    = lipgloss.NewStyle().Foreground(warning)
	warnTagStyle     = lipgloss.NewStyle().Foreground(warning).Bold(true)
	suggestTagStyle  = lipgloss.NewStyle().Foreground(info)
	fieldStyle       = lipgloss.NewStyle().Foreground(dim)
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine    = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport formats a validation report for terminal output.
func RenderReport(source string, report *domain.Report) string {
	var b strings.Builder

	// ── Header ──
	grade := report.Grade()
	title := headerStyle.Render("seokraft")
	subtitle := dimStyle.Render("Metadata Quality Score")
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(fmt.Sprintf("%d / 100", report.Score))
	gradeStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(grade)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + gradeStyled))
	b.WriteString("\n\n")

	if source != "" {
		b.WriteString("  " + fieldStyle.Render(source) + "  " + validityTag(report.IsValid) + "\n")
	} else {
		b.WriteString("  " + validityTag(report.IsValid) + "\n")
	}
	b.WriteString("\n")

	// ── Issues ──
	if len(report.Issues) > 0 {
		criticals, majors, minors := countSeverities(report.Issues)
		b.WriteString("  ")
		b.WriteString(titleStyle.Render("Issues"))
		b.WriteString("  ")
		if criticals > 0 {
			b.WriteString(criticalTagStyle.Render(fmt.Sprintf("%d critical", criticals)))
			b.WriteString("  ")
		}
		if majors > 0 {
			b.WriteString(majorTagStyle.Render(fmt.Sprintf("%d major", majors)))
			b.WriteString("  ")
		}
		if minors > 0 {
			b.WriteString(minorTagStyle.Render(fmt.Sprintf("%d minor", minors)))
		}
		b.WriteString("\n\n")

		for _, issue := range sortedIssues(report.Issues) {
			renderIssue(&b, issue)
		}
	} else {
		b.WriteString("  " + passStyle.Render("No issues found.") + "\n")
	}

	// ── Warnings ──
	if len(report.Warnings) > 0 {
		b.WriteString("\n")
		b.WriteString("  " + titleStyle.Render("Warnings") + "\n\n")
		for _, w := range report.Warnings {
			fmt.Fprintf(&b, "    %s %s\n", warnTagStyle.Render("warn "), fieldStyle.Render(w.Field))
			fmt.Fprintf(&b, "         %s\n", dimStyle.Render(w.Message))
		}
	}

	// ── Suggestions ──
	if len(report.Suggestions) > 0 {
		b.WriteString("\n")
		b.WriteString("  " + separatorLine)
		b.WriteString("\n\n")
		b.WriteString("  " + titleStyle.Render("Suggestions") + "\n\n")
		for _, s := range report.Suggestions {
			fmt.Fprintf(&b, "    %s %s\n", suggestTagStyle.Render(padRight(s.Priority, 6)), dimStyle.Render(s.Message))
		}
	}

	b.WriteString("\n")
	return b.String()
}

func renderIssue(b *strings.Builder, issue domain.Issue) {
	tag := severityTag(issue.Severity)
	fmt.Fprintf(b, "    %s %s\n", tag, fieldStyle.Render(issue.Field))
	fmt.Fprintf(b, "         %s\n", dimStyle.Render(issue.Message))
	if issue.Recommendation != "" {
		fmt.Fprintf(b, "         %s\n", faintStyle.Render(issue.Recommendation))
	}
}

func validityTag(valid bool) string {
	if valid {
		return passStyle.Render("valid")
	}
	return failStyle.Render("invalid")
}

func severityTag(severity string) string {
	switch severity {
	case domain.SeverityCritical:
		return criticalTagStyle.Render("crit ")
	case domain.SeverityMajor:
		return majorTagStyle.Render("major")
	default:
		return minorTagStyle.Render("minor")
	}
}

func countSeverities(issues []domain.Issue) (criticals, majors, minors int) {
	for _, i := range issues {
		switch i.Severity {
		case domain.SeverityCritical:
			criticals++
		case domain.SeverityMajor:
			majors++
		default:
			minors++
		}
	}
	return
}

func sortedIssues(issues []domain.Issue) []domain.Issue {
	order := map[string]int{
		domain.SeverityCritical: 0,
		domain.SeverityMajor:    1,
		domain.SeverityMinor:    2,
	}
	sorted := make([]domain.Issue, len(issues))
	copy(sorted, issues)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && order[sorted[j].Severity] < order[sorted[j-1].Severity]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	return sorted
}

// RenderAudit formats a directory audit summary for terminal output.
func RenderAudit(audit *domain.Audit) string {
	var b strings.Builder

	title := headerStyle.Render("seokraft")
	subtitle := dimStyle.Render("Content Audit")
	avgStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(scoreColor(audit.AverageScore)).
		Render(fmt.Sprintf("%d / 100", audit.AverageScore))
	statusStyled := statusTag(audit.Status)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + avgStyled + "  " + statusStyled))
	b.WriteString("\n\n")

	if len(audit.Pages) == 0 {
		b.WriteString("  " + dimStyle.Render("No metadata documents found.") + "\n")
		return b.String()
	}

	for _, page := range audit.Pages {
		grade := domain.GradeFor(page.Report.Score)
		scoreStyled := lipgloss.NewStyle().
			Foreground(scoreColor(page.Report.Score)).
			Render(fmt.Sprintf("%3d", page.Report.Score))
		line := fmt.Sprintf("  %s %s  %s  %s",
			scoreStyled,
			grade,
			validityTag(page.Report.IsValid),
			fieldStyle.Render(page.Path),
		)
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s\n", dimStyle.Render(fmt.Sprintf("%d pages audited", len(audit.Pages))))

	return b.String()
}

func statusTag(status string) string {
	switch status {
	case domain.AuditPass:
		return passStyle.Bold(true).Render("PASS")
	case domain.AuditWarn:
		return warnStyle.Bold(true).Render("WARN")
	default:
		return failStyle.Bold(true).Render("FAIL")
	}
}

// RenderHistory formats validation history for terminal output.
func RenderHistory(entries []domain.HistoryEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No validation history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Validation History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		date := e.Timestamp
		if len(date) > 10 {
			date = date[:10]
		}

		scoreStyled := lipgloss.NewStyle().
			Foreground(scoreColor(e.Score)).
			Render(fmt.Sprintf("%d/100", e.Score))

		line := fmt.Sprintf("  %s  %s  %s  %s",
			dimStyle.Render(date),
			faintStyle.Render(hash),
			scoreStyled,
			e.Grade,
		)

		if i > 0 {
			diff := e.Score - entries[i-1].Score
			if diff > 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↑%d", diff))
			} else if diff < 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↓%d", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 80:
		return success
	case score >= 60:
		return lipgloss.Color("#A3E635") // lime
	case score >= 40:
		return warning
	default:
		return danger
	}
}

func gradeColor(grade string) lipgloss.Color {
	if c, ok := gradeColors[grade]; ok {
		return c
	}
	return fg
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
