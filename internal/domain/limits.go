package domain

// Limits holds every tunable constant used by the rule engine. The defaults
// are product decisions, not search-engine guarantees, so they live in
// configuration rather than hard-coded inside individual rules.
type Limits struct {
	TitleMin       int `json:"title_min"        yaml:"title_min"`
	TitleMax       int `json:"title_max"        yaml:"title_max"`
	DescriptionMin int `json:"description_min"  yaml:"description_min"`
	DescriptionMax int `json:"description_max"  yaml:"description_max"`
	KeywordsMin    int `json:"keywords_min"     yaml:"keywords_min"`
	KeywordsMax    int `json:"keywords_max"     yaml:"keywords_max"`
	SocialTitleMax int `json:"social_title_max" yaml:"social_title_max"`
	SocialDescMax  int `json:"social_desc_max"  yaml:"social_desc_max"`

	// StuffingThreshold is the keyword density (percent of total words)
	// above which the focus keyword counts as stuffed.
	StuffingThreshold float64 `json:"stuffing_threshold" yaml:"stuffing_threshold"`

	// SanitizeMax caps every sanitized string field, bounding all later
	// string work.
	SanitizeMax int `json:"sanitize_max" yaml:"sanitize_max"`
}

// DefaultLimits returns the stock rule constants.
func DefaultLimits() Limits {
	return Limits{
		TitleMin:          30,
		TitleMax:          60,
		DescriptionMin:    120,
		DescriptionMax:    160,
		KeywordsMin:       3,
		KeywordsMax:       10,
		SocialTitleMax:    60,
		SocialDescMax:     200,
		StuffingThreshold: 5.0,
		SanitizeMax:       1000,
	}
}
