package domain

// Record holds the SEO metadata attached to a single page. All fields are
// optional; the rule engine reports missing required fields as findings
// rather than rejecting the record up front.
type Record struct {
	Title             string   `json:"title,omitempty"              yaml:"title,omitempty"`
	Description       string   `json:"description,omitempty"        yaml:"description,omitempty"`
	FocusKeyword      string   `json:"focus_keyword,omitempty"      yaml:"focus_keyword,omitempty"`
	Keywords          []string `json:"keywords,omitempty"           yaml:"keywords,omitempty"`
	CanonicalURL      string   `json:"canonical_url,omitempty"      yaml:"canonical_url,omitempty"`
	JSONLD            string   `json:"json_ld,omitempty"            yaml:"json_ld,omitempty"`
	RobotsDirective   string   `json:"robots_directive,omitempty"   yaml:"robots_directive,omitempty"`
	SocialTitle       string   `json:"social_title,omitempty"       yaml:"social_title,omitempty"`
	SocialDescription string   `json:"social_description,omitempty" yaml:"social_description,omitempty"`
	SocialImageURL    string   `json:"social_image_url,omitempty"   yaml:"social_image_url,omitempty"`
}

// ValidRobotsDirectives enumerates the accepted robots directive values.
var ValidRobotsDirectives = []string{
	"index,follow",
	"noindex,follow",
	"noindex,nofollow",
	"index,nofollow",
}

// IsValidRobotsDirective reports whether v is an accepted robots directive.
func IsValidRobotsDirective(v string) bool {
	for _, d := range ValidRobotsDirectives {
		if v == d {
			return true
		}
	}
	return false
}
