package models

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewRunSummary(t *testing.T) {
	r := NewRunSummary()

	if r.RunID == uuid.Nil {
		t.Error("NewRunSummary() RunID is nil")
	}
	if r.CompletedAt != nil {
		t.Error("NewRunSummary() CompletedAt should be nil before Complete()")
	}

	r.Complete()
	if r.CompletedAt == nil {
		t.Fatal("Complete() did not set CompletedAt")
	}
	if r.CompletedAt.Before(r.StartedAt) {
		t.Errorf("CompletedAt %v before StartedAt %v", r.CompletedAt, r.StartedAt)
	}
}

func TestRunSummary_Totals(t *testing.T) {
	r := &RunSummary{
		Files: []FileResult{
			{Path: "a.csv", Status: FileStatusProcessed, LinesRead: 3, LinesWritten: 2, InvalidLines: 1},
			{Path: "b.txt", Status: FileStatusProcessed, LinesRead: 4, LinesWritten: 4},
			{Path: "c.json", Status: FileStatusUnsupported},
			{Path: "d.csv", Status: FileStatusNotFound},
		},
	}

	if got := r.TotalWritten(); got != 6 {
		t.Errorf("TotalWritten() = %d, want 6", got)
	}
	if got := r.TotalInvalid(); got != 1 {
		t.Errorf("TotalInvalid() = %d, want 1", got)
	}

	tests := []struct {
		status   FileStatus
		expected int
	}{
		{FileStatusProcessed, 2},
		{FileStatusUnsupported, 1},
		{FileStatusNotFound, 1},
		{FileStatusFailed, 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := r.CountStatus(tt.status); got != tt.expected {
				t.Errorf("CountStatus(%q) = %d, want %d", tt.status, got, tt.expected)
			}
		})
	}
}
