package recordfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/seokraft/seokraft/internal/domain"
	"gopkg.in/yaml.v3"
)

// Loader implements domain.RecordLoader for the supported document kinds:
// YAML and JSON metadata files, and markdown pages carrying YAML front
// matter.
type Loader struct{}

func New() *Loader { return &Loader{} }

func (l *Loader) Load(path string) (domain.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Record{}, fmt.Errorf("reading %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAML(path, data)
	case ".json":
		var rec domain.Record
		if err := json.Unmarshal(data, &rec); err != nil {
			return domain.Record{}, fmt.Errorf("parsing %s: %w", path, err)
		}
		return rec, nil
	case ".md", ".markdown":
		front, err := frontMatter(data)
		if err != nil {
			return domain.Record{}, fmt.Errorf("%s: %w", path, err)
		}
		return parseYAML(path, front)
	default:
		return domain.Record{}, fmt.Errorf("unsupported document type %q", filepath.Ext(path))
	}
}

func parseYAML(path string, data []byte) (domain.Record, error) {
	var rec domain.Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return domain.Record{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return rec, nil
}

// frontMatter extracts the YAML block between the leading "---" fence and
// the next one.
func frontMatter(data []byte) ([]byte, error) {
	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	if !strings.HasPrefix(content, "---\n") {
		return nil, fmt.Errorf("no front matter found")
	}

	rest := content[len("---\n"):]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return nil, fmt.Errorf("unterminated front matter")
	}

	return []byte(rest[:end]), nil
}
