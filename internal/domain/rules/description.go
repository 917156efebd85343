package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/seokraft/seokraft/internal/domain"
)

// ctaPhrases are call-to-action fragments a good meta description contains
// at least one of.
var ctaPhrases = []string{
	"learn more", "get quote", "contact", "call", "visit", "discover", "explore",
}

func checkDescription(raw, clean *domain.Record, limits domain.Limits) fragment {
	var f fragment
	desc := clean.Description

	if desc == "" {
		f.critical("description", "Description is required",
			fmt.Sprintf("Add a meta description of %d-%d characters", limits.DescriptionMin, limits.DescriptionMax))
		return f
	}

	if htmlTagPattern.MatchString(raw.Description) {
		f.critical("description", "Description must not contain HTML", "Remove all markup from the description")
	}

	switch n := utf8.RuneCountInString(desc); {
	case n < limits.DescriptionMin:
		// Short descriptions still render; this is advisory, not a defect.
		f.warn("description",
			fmt.Sprintf("Description is %d characters, below the recommended minimum of %d", n, limits.DescriptionMin),
			"Longer descriptions use more of the search snippet")
	case n > limits.DescriptionMax:
		f.major("description",
			fmt.Sprintf("Description is %d characters, above the recommended maximum of %d", n, limits.DescriptionMax),
			"Shorten the description so the snippet does not truncate it")
	}

	if !containsCTA(desc) {
		f.suggest("description", domain.PriorityMedium,
			"Description has no call to action (e.g. \"learn more\", \"contact\", \"explore\")")
	}

	return f
}

func containsCTA(desc string) bool {
	lower := strings.ToLower(desc)
	for _, phrase := range ctaPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
