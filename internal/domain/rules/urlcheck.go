package rules

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fatih/camelcase"
	"github.com/seokraft/seokraft/internal/domain"
)

// suspiciousURLPatterns are substrings that mark a URL value as hostile no
// matter what the URL parser makes of it. They are tested against the RAW
// value: the sanitizer deletes several of these, so checking the sanitized
// copy would hide exactly the inputs this rule exists to catch.
var suspiciousURLPatterns = []string{
	"<", ">", "'", `"`, "javascript:", "data:", "vbscript:", "file:",
}

func checkCanonicalURL(raw, clean *domain.Record, _ domain.Limits) fragment {
	f := checkURLField("canonical_url", raw.CanonicalURL)

	// Slug readability only applies to URLs that survived the hard checks.
	if len(f.issues) == 0 && raw.CanonicalURL != "" {
		if fixed, ok := slugSuggestion(raw.CanonicalURL); ok {
			f.suggest("canonical_url", domain.PriorityLow,
				fmt.Sprintf("URL path has uppercase or camelCase segments; prefer lowercase hyphenated slugs (e.g. %s)", fixed))
		}
	}

	return f
}

// checkURLField applies the shared URL rule: suspicious-content scan on the
// raw value, then absolute-https parsing. Empty values are skipped here;
// field-specific rules decide whether absence matters.
func checkURLField(field, rawValue string) fragment {
	var f fragment
	if rawValue == "" {
		return f
	}

	lower := strings.ToLower(rawValue)
	for _, pattern := range suspiciousURLPatterns {
		if strings.Contains(lower, pattern) {
			f.critical(field,
				fmt.Sprintf("URL contains potentially malicious content (%q)", pattern),
				"Use a plain https URL")
			break
		}
	}

	u, err := url.Parse(strings.TrimSpace(rawValue))
	switch {
	case err != nil || !u.IsAbs() || u.Host == "":
		f.major(field, "Invalid URL format", "Use an absolute URL including scheme and host")
	case u.Scheme != "https":
		f.major(field,
			fmt.Sprintf("URL scheme %q is not allowed; only https is accepted", u.Scheme),
			"Serve the page over https")
	}

	return f
}

// slugSuggestion reports whether the URL path contains uppercase or
// camelCase segments and returns a lowercase hyphenated rewrite.
func slugSuggestion(rawURL string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Path == "" {
		return "", false
	}

	if u.Path == strings.ToLower(u.Path) {
		return "", false
	}

	segments := strings.Split(u.Path, "/")
	for i, seg := range segments {
		if seg == "" || seg == strings.ToLower(seg) {
			continue
		}
		var words []string
		for _, w := range camelcase.Split(seg) {
			if w = strings.ToLower(strings.Trim(w, "-_ ")); w != "" {
				words = append(words, w)
			}
		}
		segments[i] = strings.Join(words, "-")
	}

	rewritten := *u
	rewritten.Path = strings.Join(segments, "/")
	return rewritten.String(), true
}
