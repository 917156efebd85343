package rules

import (
	"fmt"
	"unicode/utf8"

	"github.com/seokraft/seokraft/internal/domain"
)

// checkSocial validates the social-card override fields. The image URL is
// held to the same rule as the canonical URL, raw value included; whether
// an image is present at all is judged on the sanitized value, so a
// whitespace-only field counts as absent.
func checkSocial(raw, clean *domain.Record, limits domain.Limits) fragment {
	var f fragment

	if n := utf8.RuneCountInString(clean.SocialTitle); n > limits.SocialTitleMax {
		f.warn("social_title",
			fmt.Sprintf("Social title is %d characters; platforms truncate above %d", n, limits.SocialTitleMax),
			"Shorten the social title")
	}

	if n := utf8.RuneCountInString(clean.SocialDescription); n > limits.SocialDescMax {
		f.warn("social_description",
			fmt.Sprintf("Social description is %d characters; platforms truncate above %d", n, limits.SocialDescMax),
			"Shorten the social description")
	}

	if clean.SocialImageURL == "" {
		f.suggest("social", domain.PriorityMedium,
			"Add a social share image; cards with images get more clicks")
	} else {
		f.merge(checkURLField("social_image_url", raw.SocialImageURL))
	}

	return f
}
