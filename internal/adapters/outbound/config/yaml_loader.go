package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/seokraft/seokraft/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".seokraft.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .seokraft.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .seokraft.yaml from path. Returns DefaultConfig if the file
// does not exist, so unconfigured directories validate with stock limits.
func (l *YAMLLoader) Load(path string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(path, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ProjectConfig{}, err
	}

	var cfg domain.ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	// Validate before use so typos fail loudly instead of silently
	// loosening or tightening rules.
	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return cfg, nil
}
