package model

// ParsedRelease represents the latest qualifying release section extracted
// from one changelog document.
type ParsedRelease struct {
	// VersionLabel is the raw header text of the release: a semantic
	// version for markdown sources, a free-form title for HTML sources.
	// Non-empty whenever parsing succeeds.
	VersionLabel string
	// BulletBlock is a newline-joined sequence of cleaned, prefixed bullet
	// lines. May be empty for releases without qualifying bullets.
	BulletBlock string
}

// CheckStatus represents the outcome of checking one source.
type CheckStatus string

const (
	StatusUpdated   CheckStatus = "updated"
	StatusUnchanged CheckStatus = "unchanged"
	StatusFailed    CheckStatus = "failed"
)

// CheckResult represents what happened when one source was checked.
type CheckResult struct {
	Source  SourceConfig
	Status  CheckStatus
	Message string // Formatted notification, set only when Status is StatusUpdated
	Err     error  // Underlying failure, set only when Status is StatusFailed
}

// RunSummary aggregates the results of one full check cycle.
type RunSummary struct {
	Results []CheckResult
}

// Count returns the number of results with the given status.
func (s *RunSummary) Count(status CheckStatus) int {
	var n int
	for _, r := range s.Results {
		if r.Status == status {
			n++
		}
	}
	return n
}
