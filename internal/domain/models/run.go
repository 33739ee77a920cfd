package models

import (
	"time"

	"github.com/google/uuid"
)

// FileStatus represents the outcome of processing one input file
type FileStatus string

const (
	FileStatusProcessed   FileStatus = "processed"
	FileStatusNotFound    FileStatus = "not_found"
	FileStatusUnsupported FileStatus = "unsupported"
	FileStatusFailed      FileStatus = "failed"
)

// FileResult holds the counters for one input file
type FileResult struct {
	Path         string     `json:"path"`
	Format       string     `json:"format,omitempty"`
	OutputPath   string     `json:"output_path,omitempty"`
	Status       FileStatus `json:"status"`
	LinesRead    int        `json:"lines_read"`
	LinesWritten int        `json:"lines_written"`
	InvalidLines int        `json:"invalid_lines"`
}

// RunSummary describes one pass over an ordered list of input files
type RunSummary struct {
	RunID       uuid.UUID    `json:"run_id"`
	StartedAt   time.Time    `json:"started_at"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
	Files       []FileResult `json:"files"`
	Diagnostics []string     `json:"diagnostics"`
}

// NewRunSummary creates an empty summary stamped with a fresh run ID
func NewRunSummary() *RunSummary {
	return &RunSummary{
		RunID:       uuid.New(),
		StartedAt:   time.Now().UTC(),
		Files:       []FileResult{},
		Diagnostics: []string{},
	}
}

// Complete marks the run as finished
func (r *RunSummary) Complete() {
	now := time.Now().UTC()
	r.CompletedAt = &now
}

// TotalWritten returns the number of output lines written across all files
func (r *RunSummary) TotalWritten() int {
	total := 0
	for _, f := range r.Files {
		total += f.LinesWritten
	}
	return total
}

// TotalInvalid returns the number of malformed lines across all files
func (r *RunSummary) TotalInvalid() int {
	total := 0
	for _, f := range r.Files {
		total += f.InvalidLines
	}
	return total
}

// CountStatus returns how many files ended with the given status
func (r *RunSummary) CountStatus(status FileStatus) int {
	n := 0
	for _, f := range r.Files {
		if f.Status == status {
			n++
		}
	}
	return n
}
