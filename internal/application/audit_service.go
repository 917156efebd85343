package application

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/seokraft/seokraft/internal/domain"
	"github.com/seokraft/seokraft/internal/domain/rules"
)

// defaultIncludeGlobs are the document patterns an audit picks up when the
// project config does not specify its own.
var defaultIncludeGlobs = []string{"*.seo.yaml", "*.seo.yml", "*.seo.json", "*.seo.md"}

// AuditService validates every metadata document under a content directory
// and aggregates the results.
type AuditService struct {
	records domain.RecordLoader
	config  domain.ConfigLoader
	git     domain.GitInfo
}

func NewAuditService(records domain.RecordLoader, config domain.ConfigLoader, git domain.GitInfo) *AuditService {
	return &AuditService{records: records, config: config, git: git}
}

// AuditDirectory walks root, validates every matching document, and returns
// the aggregate. A document that fails to load becomes a failed page (the
// engine's fallback report) rather than aborting the whole audit.
func (s *AuditService) AuditDirectory(root string) (*domain.Audit, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := s.config.Load(absRoot)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	paths, err := s.collectDocuments(absRoot, cfg)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", absRoot, err)
	}

	limits := cfg.EffectiveLimits()
	pages := make([]domain.PageReport, 0, len(paths))
	for _, p := range paths {
		rel, relErr := filepath.Rel(absRoot, p)
		if relErr != nil {
			rel = p
		}

		var report domain.Report
		if rec, loadErr := s.records.Load(p); loadErr == nil {
			report = rules.ValidateWith(limits, rec)
		} else {
			report = domain.Report{
				IsValid: false,
				Issues: []domain.Issue{{
					Field:    "title",
					Severity: domain.SeverityCritical,
					Message:  fmt.Sprintf("Document could not be read: %v", loadErr),
				}},
			}
		}

		pages = append(pages, domain.PageReport{Path: filepath.ToSlash(rel), Report: report})
	}

	audit := &domain.Audit{
		RootPath:     absRoot,
		Status:       domain.AuditStatus(pages, cfg.MinScore),
		AverageScore: domain.AverageScore(pages),
		Pages:        pages,
	}

	if s.git != nil && s.git.IsGitRepo(absRoot) {
		if hash, err := s.git.CommitHash(absRoot); err == nil {
			audit.CommitHash = hash
		}
	}

	return audit, nil
}

func (s *AuditService) collectDocuments(root string, cfg domain.ProjectConfig) ([]string, error) {
	globs := cfg.IncludeGlobs
	if len(globs) == 0 {
		globs = defaultIncludeGlobs
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, ".") || excluded(root, path, cfg.ExcludePaths)) {
				return filepath.SkipDir
			}
			return nil
		}

		for _, glob := range globs {
			if ok, _ := filepath.Match(glob, d.Name()); ok {
				paths = append(paths, path)
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths) // deterministic page order
	return paths, nil
}

func excluded(root, path string, excludePaths []string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, ex := range excludePaths {
		ex = strings.TrimSuffix(filepath.ToSlash(ex), "/")
		if rel == ex || strings.HasPrefix(rel, ex+"/") {
			return true
		}
	}
	return false
}
