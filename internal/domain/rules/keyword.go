package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/seokraft/seokraft/internal/domain"
)

// checkFocusKeyword validates the primary target keyword and its placement.
// The density check is the one rule with a cross-field dependency: it reads
// the already-sanitized title and description.
func checkFocusKeyword(clean *domain.Record, limits domain.Limits) fragment {
	var f fragment
	keyword := clean.FocusKeyword

	if keyword == "" {
		f.major("focus_keyword", "Focus keyword is missing",
			"Pick one primary keyword the page should rank for")
		return f
	}

	if utf8.RuneCountInString(keyword) < 2 {
		f.major("focus_keyword",
			fmt.Sprintf("Focus keyword %q is too short to target", keyword),
			"Use a keyword of at least 2 characters")
		return f
	}

	lowerKeyword := strings.ToLower(keyword)

	if clean.Title != "" && !strings.Contains(strings.ToLower(clean.Title), lowerKeyword) {
		f.warn("focus_keyword", "Focus keyword does not appear in the title",
			"Titles containing the keyword rank better for it")
	}

	if clean.Description != "" && !strings.Contains(strings.ToLower(clean.Description), lowerKeyword) {
		f.warn("focus_keyword", "Focus keyword does not appear in the description",
			"Mention the keyword once in the description")
	}

	if density := keywordDensity(clean.Title, clean.Description, keyword); density > limits.StuffingThreshold {
		f.major("focus_keyword",
			fmt.Sprintf("Keyword stuffing: density %.1f%% exceeds %.1f%%", density, limits.StuffingThreshold),
			"Reduce keyword repetitions in the title and description")
	}

	return f
}

// keywordDensity returns keyword occurrences as a percentage of the total
// word count of title+description. Occurrences are counted case-insensitively
// and non-overlapping.
func keywordDensity(title, description, keyword string) float64 {
	text := strings.ToLower(title + " " + description)
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	occurrences := strings.Count(text, strings.ToLower(keyword))
	return float64(occurrences) / float64(words) * 100
}
