package rules

import (
	"strings"
	"unicode/utf8"

	"github.com/seokraft/seokraft/internal/domain"
)

// unsafeSchemes are URL scheme prefixes deleted from free-text fields.
// Removal repeats until no occurrence remains, so deleting one occurrence
// can never splice a new one together ("javajavascript:script:" still
// sanitizes clean). This also makes Sanitize idempotent.
var unsafeSchemes = []string{"javascript:", "data:"}

// Sanitize normalizes a raw string for rule-checking and storage: trims
// whitespace, deletes angle brackets, deletes unsafe scheme substrings
// case-insensitively, and caps the result at the default length. It is
// pure and total: any input yields a string, never an error.
func Sanitize(s string) string {
	return sanitizeTo(s, domain.DefaultLimits().SanitizeMax)
}

func sanitizeTo(s string, maxLen int) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	s = stripSchemes(s)
	s = truncateRunes(s, maxLen)
	// Truncation can expose trailing whitespace; trim again so a second
	// pass is a no-op.
	return strings.TrimSpace(s)
}

// SanitizeRecord returns a copy of rec with every string field sanitized,
// including each keyword. The input record is never mutated.
func SanitizeRecord(rec domain.Record, limits domain.Limits) domain.Record {
	clean := domain.Record{
		Title:             sanitizeTo(rec.Title, limits.SanitizeMax),
		Description:       sanitizeTo(rec.Description, limits.SanitizeMax),
		FocusKeyword:      sanitizeTo(rec.FocusKeyword, limits.SanitizeMax),
		CanonicalURL:      sanitizeTo(rec.CanonicalURL, limits.SanitizeMax),
		JSONLD:            sanitizeTo(rec.JSONLD, limits.SanitizeMax),
		RobotsDirective:   sanitizeTo(rec.RobotsDirective, limits.SanitizeMax),
		SocialTitle:       sanitizeTo(rec.SocialTitle, limits.SanitizeMax),
		SocialDescription: sanitizeTo(rec.SocialDescription, limits.SanitizeMax),
		SocialImageURL:    sanitizeTo(rec.SocialImageURL, limits.SanitizeMax),
	}

	if len(rec.Keywords) > 0 {
		clean.Keywords = make([]string, len(rec.Keywords))
		for i, k := range rec.Keywords {
			clean.Keywords[i] = sanitizeTo(k, limits.SanitizeMax)
		}
	}

	return clean
}

// truncateRunes caps s at maxLen characters. Cutting on a rune boundary
// keeps the result valid UTF-8 whatever the input.
func truncateRunes(s string, maxLen int) string {
	if maxLen <= 0 || utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen])
}

// stripSchemes deletes unsafe scheme substrings until none remain.
// Terminates because every removal strictly shortens the string.
func stripSchemes(s string) string {
	for {
		idx, width := -1, 0
		for _, scheme := range unsafeSchemes {
			if i := indexFold(s, scheme); i >= 0 && (idx == -1 || i < idx) {
				idx, width = i, len(scheme)
			}
		}
		if idx == -1 {
			return s
		}
		s = s[:idx] + s[idx+width:]
	}
}

// indexFold returns the index of the first ASCII case-insensitive match of
// pattern in s, or -1. pattern must be lowercase ASCII. Byte-wise matching
// keeps offsets valid for slicing, which strings.ToLower would not.
func indexFold(s, pattern string) int {
	if len(pattern) == 0 || len(s) < len(pattern) {
		return -1
	}
	for i := 0; i+len(pattern) <= len(s); i++ {
		if matchFoldAt(s, pattern, i) {
			return i
		}
	}
	return -1
}

func matchFoldAt(s, pattern string, at int) bool {
	for j := 0; j < len(pattern); j++ {
		c := s[at+j]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != pattern[j] {
			return false
		}
	}
	return true
}
