package domain

// Audit aggregates validation reports for every metadata document found
// under a content directory.
type Audit struct {
	RootPath     string       `json:"root_path"`
	Status       string       `json:"status"`
	AverageScore int          `json:"average_score"`
	CommitHash   string       `json:"commit_hash,omitempty"`
	Pages        []PageReport `json:"pages"`
}

const (
	AuditPass = "pass"
	AuditWarn = "warn"
	AuditFail = "fail"
)

// PageReport pairs a metadata document with its validation report.
type PageReport struct {
	Path   string `json:"path"`
	Report Report `json:"report"`
}

// AuditStatus classifies an audit result. Any invalid page fails the audit;
// any page below minScore downgrades it to warn.
func AuditStatus(pages []PageReport, minScore int) string {
	status := AuditPass
	for _, p := range pages {
		if !p.Report.IsValid {
			return AuditFail
		}
		if p.Report.Score < minScore {
			status = AuditWarn
		}
	}
	return status
}

// AverageScore returns the rounded mean score across pages, 0 for none.
func AverageScore(pages []PageReport) int {
	if len(pages) == 0 {
		return 0
	}
	sum := 0
	for _, p := range pages {
		sum += p.Report.Score
	}
	return (sum + len(pages)/2) / len(pages)
}
