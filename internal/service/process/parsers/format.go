package parsers

import (
	"path/filepath"
	"strings"
)

// FileFormat represents the delimiter variant chosen for an input file
type FileFormat string

const (
	FormatComma       FileFormat = "csv"
	FormatPipe        FileFormat = "pipe"
	FormatUnsupported FileFormat = ""
)

// Extension returns the lower-cased extension of filename including the dot,
// or "" when there is none
func Extension(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "." {
		return ""
	}
	return ext
}

// DetectFormat determines the delimiter variant from the filename extension
func DetectFormat(filename string) FileFormat {
	switch Extension(filename) {
	case ".csv":
		return FormatComma
	case ".txt":
		return FormatPipe
	default:
		return FormatUnsupported
	}
}

// IsSupported returns true if a variant exists for the format
func (f FileFormat) IsSupported() bool {
	return f == FormatComma || f == FormatPipe
}

// VariantFor returns the parser configuration for a format
func VariantFor(f FileFormat) (Variant, bool) {
	switch f {
	case FormatComma:
		return CommaVariant, true
	case FormatPipe:
		return PipeVariant, true
	default:
		return Variant{}, false
	}
}
