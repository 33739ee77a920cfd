package diag

import "testing"

func TestMessages(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"not found", FileNotFound("data/SampleCSV.csv"), "File not found: data/SampleCSV.csv"},
		{"unsupported", UnsupportedFileType(".json"), "Unsupported file type: .json"},
		{"unsupported no extension", UnsupportedFileType(""), "Unsupported file type: "},
		{"invalid", InvalidFormat(3, "data/SamplePipe.txt"), "Invalid format in line 3 of data/SamplePipe.txt"},
		{"processed", Processed("SampleCSV.csv"), "Processed SampleCSV.csv successfully."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %q, want %q", tt.got, tt.expected)
			}
		})
	}
}
