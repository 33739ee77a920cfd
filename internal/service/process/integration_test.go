package processservice

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/rohit/delimfmt/internal/config"
	"github.com/rohit/delimfmt/internal/diag"
	"github.com/rs/zerolog"
)

// copyTestData copies the sample inputs into a fresh directory so output
// files never land in testdata
func copyTestData(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join("testdata", name))
		if err != nil {
			t.Skipf("Test data file not found: %s", name)
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
			t.Fatalf("failed to copy %s: %v", name, err)
		}
	}
	return dir
}

func TestIntegration_SampleFiles(t *testing.T) {
	dir := copyTestData(t, "SampleCSV.csv", "SamplePipe.txt")
	csvPath := filepath.Join(dir, "SampleCSV.csv")
	pipePath := filepath.Join(dir, "SamplePipe.txt")

	svc := NewService(nil, zerolog.Nop(), config.ProcessConfig{})
	rec := diag.NewRecorder()

	summary, err := svc.ProcessFiles(context.Background(), []string{csvPath, pipePath}, rec)
	if err != nil {
		t.Fatalf("ProcessFiles() error: %v", err)
	}

	wantDiag := []string{
		"Processed SampleCSV.csv successfully.",
		"Processed SampleCSV.csv successfully.",
		"Invalid format in line 3 of " + csvPath,
		"Processed SampleCSV.csv successfully.",
		"Processed SamplePipe.txt successfully.",
		"Invalid format in line 2 of " + pipePath,
		"Processed SamplePipe.txt successfully.",
	}
	if got := rec.Messages(); !reflect.DeepEqual(got, wantDiag) {
		t.Errorf("diagnostics =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(wantDiag, "\n"))
	}

	csvOut, err := os.ReadFile(filepath.Join(dir, "SampleCSV_out.txt"))
	if err != nil {
		t.Fatalf("csv output missing: %v", err)
	}
	wantCSV := "Line#1 :Field#1=id ==> Field#2=name ==> Field#3=city ==> Field#4=state ==> Field#5=zip ==> Field#6=phone\n" +
		"Line#2 :Field#1=1001 ==> Field#2=Alice Smith ==> Field#3=Springfield ==> Field#4=IL ==> Field#5=62701 ==> Field#6=555-0100\n" +
		"Line#4 :Field#1=1003 ==> Field#2=Carol White ==> Field#3=Capital City ==> Field#4=IL ==> Field#5=62702 ==> Field#6=555-0102\n"
	if string(csvOut) != wantCSV {
		t.Errorf("csv output =\n%s\nwant\n%s", csvOut, wantCSV)
	}

	pipeOut, err := os.ReadFile(filepath.Join(dir, "SamplePipe_out.txt"))
	if err != nil {
		t.Fatalf("pipe output missing: %v", err)
	}
	wantPipe := "Line#1 :Field#1=ORD-1 ==> Field#2=2024-01-15 ==> Field#3=widget ==> Field#4=4 ==> Field#5=9.99 ==> Field#6=39.96 ==> Field#7=shipped\n" +
		"Line#3 :Field#1=ORD-3 ==> Field#2=2024-01-17 ==> Field#3=gizmo ==> Field#4=2 ==> Field#5=4.50 ==> Field#6=9.00 ==> Field#7=pending\n"
	if string(pipeOut) != wantPipe {
		t.Errorf("pipe output =\n%s\nwant\n%s", pipeOut, wantPipe)
	}

	if summary.TotalWritten() != 5 || summary.TotalInvalid() != 2 {
		t.Errorf("totals = written %d, invalid %d; want 5, 2", summary.TotalWritten(), summary.TotalInvalid())
	}

	// a second run appends instead of overwriting
	if _, err := svc.ProcessFiles(context.Background(), []string{csvPath, pipePath}, nil); err != nil {
		t.Fatalf("second ProcessFiles() error: %v", err)
	}
	csvOut, _ = os.ReadFile(filepath.Join(dir, "SampleCSV_out.txt"))
	if string(csvOut) != wantCSV+wantCSV {
		t.Errorf("csv output after second run =\n%s", csvOut)
	}

	// the output of the pipe file is itself a .txt file; it is only read when listed
	if _, err := os.Stat(filepath.Join(dir, "SamplePipe_out_out.txt")); !os.IsNotExist(err) {
		t.Errorf("unexpected output of output, stat err = %v", err)
	}
}
