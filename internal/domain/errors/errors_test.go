package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestIOError_Unwrap(t *testing.T) {
	err := NewReadError("read", "data/a.csv", fs.ErrPermission)

	if !stderrors.Is(err, fs.ErrPermission) {
		t.Errorf("errors.Is(%v, fs.ErrPermission) = false, want true", err)
	}
	if err.Code != ErrCodeFileReadError {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeFileReadError)
	}
}

func TestIsIOError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"read error", NewReadError("open", "a.csv", fs.ErrPermission), true},
		{"write error", NewWriteError("write", "a_out.txt", fs.ErrClosed), true},
		{"wrapped", fmt.Errorf("run aborted: %w", NewWriteError("open", "x", fs.ErrPermission)), true},
		{"plain", stderrors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsIOError(tt.err); got != tt.expected {
				t.Errorf("IsIOError() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{"without field", ErrInvalidRequest("files is required"), "[INVALID_REQUEST] files is required"},
		{"with field", NewAppErrorWithField(ErrCodeInvalidRequest, "must not be empty", "files", 400), "[INVALID_REQUEST] must not be empty (field: files)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}
