package parsers

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rohit/delimfmt/internal/diag"
	"github.com/rohit/delimfmt/internal/domain/errors"
	"github.com/rohit/delimfmt/internal/domain/models"
)

// OutputSuffix is appended to the input base name to build the output file name
const OutputSuffix = "_out.txt"

// MaxLineLength bounds a single input line; longer lines fail the run with a read error
const MaxLineLength = 16 * 1024 * 1024

const utf8BOM = "\ufeff"

// Variant is the delimiter and minimum field count for one input format
type Variant struct {
	Format    FileFormat
	Delimiter string
	MinFields int
}

var (
	// CommaVariant handles comma-delimited .csv files
	CommaVariant = Variant{Format: FormatComma, Delimiter: ",", MinFields: 6}
	// PipeVariant handles pipe-delimited .txt files
	PipeVariant = Variant{Format: FormatPipe, Delimiter: "|", MinFields: 7}
)

// DelimitedParser reads a delimited text file line by line and appends a
// formatted line to the output file for every record with enough fields
type DelimitedParser struct {
	variant   Variant
	reporter  diag.Reporter
	outputDir string
}

// NewDelimitedParser creates a parser for the given variant. An empty
// outputDir writes output next to each input file.
func NewDelimitedParser(variant Variant, reporter diag.Reporter, outputDir string) *DelimitedParser {
	if reporter == nil {
		reporter = diag.Discard
	}
	return &DelimitedParser{
		variant:   variant,
		reporter:  reporter,
		outputDir: outputDir,
	}
}

// Variant returns the parser configuration
func (p *DelimitedParser) Variant() Variant {
	return p.variant
}

// OutputPath derives the output file path for an input file: same directory
// (or outputDir when set), same base name, "_out.txt" suffix
func OutputPath(inputPath, outputDir string) string {
	dir := outputDir
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, base+OutputSuffix)
}

// FileExists reports whether path names an existing regular file
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ParseFile processes one input file. Missing files and malformed lines are
// reported as diagnostics; the returned error is non-nil only for context
// cancellation or an unanticipated I/O failure (*errors.IOError).
func (p *DelimitedParser) ParseFile(ctx context.Context, filePath string) (models.FileResult, error) {
	result := models.FileResult{
		Path:   filePath,
		Format: string(p.variant.Format),
	}

	if !FileExists(filePath) {
		p.reporter.Report(diag.FileNotFound(filePath))
		result.Status = models.FileStatusNotFound
		return result, nil
	}

	file, err := os.Open(filePath)
	if err != nil {
		result.Status = models.FileStatusFailed
		return result, errors.NewReadError("open", filePath, err)
	}
	defer file.Close()

	result.OutputPath = OutputPath(filePath, p.outputDir)
	fileName := filepath.Base(filePath)

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), MaxLineLength)
	scanner.Split(ScanLines)
	lineNumber := 1

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			result.Status = models.FileStatusFailed
			return result, err
		}

		line := scanner.Text()
		if lineNumber == 1 {
			line = strings.TrimPrefix(line, utf8BOM)
		}

		result.LinesRead++
		fields := SplitLine(line, p.variant.Delimiter)

		if formatted, ok := FormatLine(fields, p.variant.MinFields, lineNumber); ok {
			if err := appendLine(result.OutputPath, formatted); err != nil {
				result.Status = models.FileStatusFailed
				return result, err
			}
			result.LinesWritten++
			p.reporter.Report(diag.Processed(fileName))
		} else {
			result.InvalidLines++
			p.reporter.Report(diag.InvalidFormat(lineNumber, filePath))
		}
		lineNumber++
	}
	if err := scanner.Err(); err != nil {
		result.Status = models.FileStatusFailed
		return result, errors.NewReadError("read", filePath, err)
	}

	result.Status = models.FileStatusProcessed
	return result, nil
}

// ScanLines is a bufio.SplitFunc ending lines on "\n", "\r\n" or a bare "\r".
// The terminator is not part of the token, and a trailing terminator at EOF
// does not produce an extra empty line.
func ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// bare '\r': need one more byte to tell it apart from "\r\n"
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		return 0, nil, nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// appendLine opens the output file in append mode, writes one line and
// closes it again. Every successful line gets its own open/write/close so
// a later failure never loses lines already written.
func appendLine(path, line string) (err error) {
	out, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.NewWriteError("open", path, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = errors.NewWriteError("close", path, cerr)
		}
	}()

	if _, werr := io.WriteString(out, line+"\n"); werr != nil {
		return errors.NewWriteError("write", path, werr)
	}
	return nil
}
