package domain

// ConfigLoader loads the project configuration for a content directory.
type ConfigLoader interface {
	Load(path string) (ProjectConfig, error)
}

// RecordLoader reads a metadata Record from a document on disk.
type RecordLoader interface {
	Load(path string) (Record, error)
}

// PageFetcher retrieves a live page and extracts its metadata Record.
type PageFetcher interface {
	Fetch(url string) (Record, error)
}

// HistoryStore persists validation runs for later inspection.
type HistoryStore interface {
	Save(entry HistoryEntry) error
	Recent(limit int) ([]HistoryEntry, error)
	Close() error
}

// HistoryEntry is one recorded validation run.
type HistoryEntry struct {
	ID         string `json:"id"`
	Path       string `json:"path"`
	Score      int    `json:"score"`
	Grade      string `json:"grade"`
	IsValid    bool   `json:"is_valid"`
	Criticals  int    `json:"criticals"`
	Majors     int    `json:"majors"`
	Warnings   int    `json:"warnings"`
	CommitHash string `json:"commit_hash,omitempty"`
	Timestamp  string `json:"timestamp"`
}

// GitInfo exposes version-control metadata for a content directory.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
}
