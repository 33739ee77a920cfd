// Package diag carries the human-readable diagnostic stream: one status or
// error line per processed input line or per file-level event.
package diag

import (
	"fmt"
	"io"
	"sync"
)

// Reporter receives diagnostic messages in the order they are produced
type Reporter interface {
	Report(msg string)
}

// WriterReporter writes each diagnostic as one line to an io.Writer
type WriterReporter struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriterReporter creates a reporter writing to out
func NewWriterReporter(out io.Writer) *WriterReporter {
	return &WriterReporter{out: out}
}

// Report writes msg followed by a newline. Write errors on the diagnostic
// sink are ignored, the same way fmt.Println on stdout would.
func (w *WriterReporter) Report(msg string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, _ = fmt.Fprintln(w.out, msg)
}

// Recorder keeps diagnostics in memory
type Recorder struct {
	mu       sync.Mutex
	messages []string
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Report appends msg
func (r *Recorder) Report(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
}

// Messages returns a copy of everything recorded so far
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.messages))
	copy(out, r.messages)
	return out
}

type multiReporter []Reporter

func (m multiReporter) Report(msg string) {
	for _, r := range m {
		r.Report(msg)
	}
}

// Multi fans every diagnostic out to all non-nil reporters
func Multi(reporters ...Reporter) Reporter {
	var m multiReporter
	for _, r := range reporters {
		if r != nil {
			m = append(m, r)
		}
	}
	return m
}

// Discard drops every diagnostic
var Discard Reporter = multiReporter(nil)
