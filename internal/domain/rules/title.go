package rules

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/seokraft/seokraft/internal/domain"
)

// htmlTagPattern matches anything tag-shaped. It runs against the RAW
// value: the sanitizer deletes angle brackets, so markup is disallowed
// outright rather than quietly cleaned and accepted.
var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

func checkTitle(raw, clean *domain.Record, limits domain.Limits) fragment {
	var f fragment
	title := clean.Title

	if title == "" {
		f.critical("title", "Title is required",
			fmt.Sprintf("Add a title of %d-%d characters", limits.TitleMin, limits.TitleMax))
		return f
	}

	if htmlTagPattern.MatchString(raw.Title) {
		f.critical("title", "Title must not contain HTML", "Remove all markup from the title")
	}

	// Bounds are in characters, not bytes: accented text must not overflow.
	switch n := utf8.RuneCountInString(title); {
	case n < limits.TitleMin:
		f.major("title",
			fmt.Sprintf("Title is %d characters, below the recommended minimum of %d", n, limits.TitleMin),
			"Expand the title to describe the page more fully")
	case n > limits.TitleMax:
		f.major("title",
			fmt.Sprintf("Title is %d characters, above the recommended maximum of %d", n, limits.TitleMax),
			"Shorten the title so search results do not truncate it")
	}

	if title == strings.ToLower(title) {
		f.suggest("title", domain.PriorityLow, "Title has no capitalization; consider title case")
	}

	return f
}
