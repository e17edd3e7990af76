package journal

import "time"

// Run is one organize invocation against a source directory.
type Run struct {
	ID             string
	SourceDir      string
	StartedAt      time.Time
	FinishedAt     time.Time
	Finished       bool
	OrganizedCount int
	TotalCount     int
}

// Move is one relocated file within a run.
type Move struct {
	ID          int64
	RunID       string
	SourceName  string
	Category    string
	Destination string
	MovedAt     time.Time
}
