package application

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/seokraft/seokraft/internal/domain"
	"github.com/seokraft/seokraft/internal/domain/rules"
)

// ValidateService orchestrates validating a single metadata document:
// load config → load record → run the rule engine → record the run.
type ValidateService struct {
	records domain.RecordLoader
	config  domain.ConfigLoader
	history domain.HistoryStore
	git     domain.GitInfo
}

// NewValidateService creates a ValidateService. history and git are
// optional; pass nil to skip run recording and commit stamping.
func NewValidateService(
	records domain.RecordLoader,
	config domain.ConfigLoader,
	history domain.HistoryStore,
	git domain.GitInfo,
) *ValidateService {
	return &ValidateService{records: records, config: config, history: history, git: git}
}

// ValidateFile validates the metadata document at path using the project
// config found next to it. The history entry is saved best-effort: a
// failing store never fails the validation itself.
func (s *ValidateService) ValidateFile(path string) (domain.Report, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return domain.Report{}, fmt.Errorf("resolving path: %w", err)
	}

	dir := filepath.Dir(absPath)
	cfg, err := s.config.Load(dir)
	if err != nil {
		return domain.Report{}, fmt.Errorf("loading config: %w", err)
	}

	rec, err := s.records.Load(absPath)
	if err != nil {
		return domain.Report{}, fmt.Errorf("loading record: %w", err)
	}

	report := rules.ValidateWith(cfg.EffectiveLimits(), rec)
	s.recordRun(absPath, dir, report)

	return report, nil
}

// ValidateRecord validates an in-memory record with the default limits.
// Used by the HTTP and MCP adapters, which have no project directory.
func (s *ValidateService) ValidateRecord(rec domain.Record) domain.Report {
	return rules.Validate(rec)
}

func (s *ValidateService) recordRun(path, dir string, report domain.Report) {
	if s.history == nil {
		return
	}

	counts := domain.CountBySeverity(report.Issues)
	entry := domain.HistoryEntry{
		ID:        uuid.NewString(),
		Path:      path,
		Score:     report.Score,
		Grade:     report.Grade(),
		IsValid:   report.IsValid,
		Criticals: counts[domain.SeverityCritical],
		Majors:    counts[domain.SeverityMajor],
		Warnings:  len(report.Warnings),
		Timestamp: time.Now().Format(time.RFC3339),
	}

	if s.git != nil && s.git.IsGitRepo(dir) {
		if hash, err := s.git.CommitHash(dir); err == nil {
			entry.CommitHash = hash
		}
	}

	_ = s.history.Save(entry) // best-effort
}
