package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollector_RecordFileAndLines(t *testing.T) {
	c := NewCollector()

	c.RecordFile("csv", "processed")
	c.RecordFile("csv", "processed")
	c.RecordFile("", "not_found")
	c.RecordLines("csv", 3, 1)
	c.RecordLines("pipe", 0, 0)

	if got := testutil.ToFloat64(c.FilesTotal.WithLabelValues("csv", "processed")); got != 2 {
		t.Errorf("files_total{csv,processed} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.FilesTotal.WithLabelValues("none", "not_found")); got != 1 {
		t.Errorf("files_total{none,not_found} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.LinesTotal.WithLabelValues("csv", "written")); got != 3 {
		t.Errorf("lines_total{csv,written} = %v, want 3", got)
	}
	if got := testutil.ToFloat64(c.LinesTotal.WithLabelValues("csv", "invalid")); got != 1 {
		t.Errorf("lines_total{csv,invalid} = %v, want 1", got)
	}
}

func TestCollector_RunGauge(t *testing.T) {
	c := NewCollector()

	c.RecordRunStarted()
	if got := testutil.ToFloat64(c.RunsActive); got != 1 {
		t.Errorf("runs_active = %v, want 1", got)
	}
	c.RecordRunCompleted(0.01)
	if got := testutil.ToFloat64(c.RunsActive); got != 0 {
		t.Errorf("runs_active = %v, want 0", got)
	}
}

func TestCollector_IndependentRegistries(t *testing.T) {
	// two collectors must not collide on registration
	a := NewCollector()
	b := NewCollector()
	a.RecordFile("csv", "processed")

	if got := testutil.ToFloat64(b.FilesTotal.WithLabelValues("csv", "processed")); got != 0 {
		t.Errorf("second collector saw %v, want 0", got)
	}
}

func TestCollector_WriteTextfile(t *testing.T) {
	c := NewCollector()
	c.RecordFile("pipe", "processed")

	path := filepath.Join(t.TempDir(), "delimfmt.prom")
	if err := c.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read textfile: %v", err)
	}
	if !strings.Contains(string(data), `delimfmt_files_total{format="pipe",status="processed"} 1`) {
		t.Errorf("textfile missing files_total sample:\n%s", data)
	}
}
