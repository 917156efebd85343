package domain

import "fmt"

// ProjectConfig holds project-level configuration loaded from .seokraft.yaml.
type ProjectConfig struct {
	// MinScore is the score below which audit and --ci validation fail.
	MinScore int `yaml:"min_score" json:"min_score,omitempty"`

	// IncludeGlobs restricts which metadata documents an audit picks up.
	// Empty means the built-in patterns (*.seo.yaml, *.seo.yml, *.seo.json,
	// markdown front matter).
	IncludeGlobs []string `yaml:"include" json:"include,omitempty"`

	// ExcludePaths are directory prefixes skipped during an audit walk.
	ExcludePaths []string `yaml:"exclude_paths" json:"exclude_paths,omitempty"`

	// Limits overrides individual rule constants. Pointer types distinguish
	// "not specified" from zero values.
	Limits *LimitOverrides `yaml:"limits,omitempty" json:"limits,omitempty"`
}

// LimitOverrides allows users to tune specific rule constants.
type LimitOverrides struct {
	TitleMin          *int     `yaml:"title_min,omitempty"          json:"title_min,omitempty"`
	TitleMax          *int     `yaml:"title_max,omitempty"          json:"title_max,omitempty"`
	DescriptionMin    *int     `yaml:"description_min,omitempty"    json:"description_min,omitempty"`
	DescriptionMax    *int     `yaml:"description_max,omitempty"    json:"description_max,omitempty"`
	KeywordsMin       *int     `yaml:"keywords_min,omitempty"       json:"keywords_min,omitempty"`
	KeywordsMax       *int     `yaml:"keywords_max,omitempty"       json:"keywords_max,omitempty"`
	SocialTitleMax    *int     `yaml:"social_title_max,omitempty"   json:"social_title_max,omitempty"`
	SocialDescMax     *int     `yaml:"social_desc_max,omitempty"    json:"social_desc_max,omitempty"`
	StuffingThreshold *float64 `yaml:"stuffing_threshold,omitempty" json:"stuffing_threshold,omitempty"`
}

// DefaultConfig returns a zero-value config that changes nothing.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{}
}

// EffectiveLimits applies the config's overrides on top of the defaults.
func (c ProjectConfig) EffectiveLimits() Limits {
	base := DefaultLimits()
	o := c.Limits
	if o == nil {
		return base
	}

	if o.TitleMin != nil {
		base.TitleMin = *o.TitleMin
	}
	if o.TitleMax != nil {
		base.TitleMax = *o.TitleMax
	}
	if o.DescriptionMin != nil {
		base.DescriptionMin = *o.DescriptionMin
	}
	if o.DescriptionMax != nil {
		base.DescriptionMax = *o.DescriptionMax
	}
	if o.KeywordsMin != nil {
		base.KeywordsMin = *o.KeywordsMin
	}
	if o.KeywordsMax != nil {
		base.KeywordsMax = *o.KeywordsMax
	}
	if o.SocialTitleMax != nil {
		base.SocialTitleMax = *o.SocialTitleMax
	}
	if o.SocialDescMax != nil {
		base.SocialDescMax = *o.SocialDescMax
	}
	if o.StuffingThreshold != nil {
		base.StuffingThreshold = *o.StuffingThreshold
	}

	return base
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	if c.MinScore < 0 || c.MinScore > 100 {
		return fmt.Errorf("min_score = %d (must be between 0 and 100)", c.MinScore)
	}

	if c.Limits == nil {
		return nil
	}

	intFields := map[string]*int{
		"title_min":        c.Limits.TitleMin,
		"title_max":        c.Limits.TitleMax,
		"description_min":  c.Limits.DescriptionMin,
		"description_max":  c.Limits.DescriptionMax,
		"keywords_min":     c.Limits.KeywordsMin,
		"keywords_max":     c.Limits.KeywordsMax,
		"social_title_max": c.Limits.SocialTitleMax,
		"social_desc_max":  c.Limits.SocialDescMax,
	}
	for name, ptr := range intFields {
		if ptr != nil && *ptr <= 0 {
			return fmt.Errorf("limits.%s must be > 0 (got %d)", name, *ptr)
		}
	}

	pairs := [][3]any{
		{"title", c.Limits.TitleMin, c.Limits.TitleMax},
		{"description", c.Limits.DescriptionMin, c.Limits.DescriptionMax},
		{"keywords", c.Limits.KeywordsMin, c.Limits.KeywordsMax},
	}
	for _, p := range pairs {
		lo, _ := p[1].(*int)
		hi, _ := p[2].(*int)
		if lo != nil && hi != nil && *lo > *hi {
			return fmt.Errorf("limits.%s_min %d exceeds %s_max %d", p[0], *lo, p[0], *hi)
		}
	}

	if c.Limits.StuffingThreshold != nil {
		v := *c.Limits.StuffingThreshold
		if v <= 0 || v > 100 {
			return fmt.Errorf("limits.stuffing_threshold must be in (0, 100] (got %.1f)", v)
		}
	}

	return nil
}
