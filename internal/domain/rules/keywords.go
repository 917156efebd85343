package rules

import (
	"fmt"
	"strings"

	"github.com/seokraft/seokraft/internal/domain"
)

// checkKeywords validates the secondary keyword list. Count violations are
// advisory only: a thin or padded list degrades quality, it does not block
// publishing.
func checkKeywords(clean *domain.Record, limits domain.Limits) fragment {
	var f fragment
	keywords := clean.Keywords

	switch n := len(keywords); {
	case n < limits.KeywordsMin:
		f.warn("keywords",
			fmt.Sprintf("Only %d keywords provided; at least %d recommended", n, limits.KeywordsMin),
			"Add secondary keywords covering related queries")
	case n > limits.KeywordsMax:
		f.warn("keywords",
			fmt.Sprintf("%d keywords provided; at most %d recommended", n, limits.KeywordsMax),
			"Trim the list to the keywords that matter")
	}

	if dups := duplicateKeywords(keywords); len(dups) > 0 {
		f.warn("keywords",
			fmt.Sprintf("Duplicate keywords: %s", strings.Join(dups, ", ")),
			"Each keyword should appear once")
	}

	return f
}

// duplicateKeywords returns keywords appearing more than once, in first-seen
// order, each listed a single time.
func duplicateKeywords(keywords []string) []string {
	seen := make(map[string]int, len(keywords))
	var dups []string
	for _, k := range keywords {
		seen[k]++
		if seen[k] == 2 {
			dups = append(dups, k)
		}
	}
	return dups
}
