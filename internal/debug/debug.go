package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// sink is where log lines go. A nil w means logging is off.
type sink struct {
	mu     sync.Mutex
	w      io.Writer
	closer io.Closer
}

var std sink

// DefaultPath returns the log path used when --debug is given without a value.
func DefaultPath() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return filepath.Join(cacheDir, "rhymer", "debug.log")
}

// Enable starts logging to the file at path, truncating it.
func Enable(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}

	std.set(f, f)
	Log("Debug logging enabled")
	return nil
}

// EnableWriter starts logging to w. The caller keeps ownership of w.
func EnableWriter(w io.Writer) {
	std.set(w, nil)
}

// Close stops logging and closes the log file, if one was opened.
func Close() {
	std.set(nil, nil)
}

// IsEnabled reports whether log lines are being written.
func IsEnabled() bool {
	std.mu.Lock()
	defer std.mu.Unlock()
	return std.w != nil
}

// Log writes a timestamped line when logging is on.
func Log(format string, args ...any) {
	std.printf(format, args...)
}

// Error logs a failed operation.
func Error(op string, err error) {
	std.printf("ERROR %s: %v", op, err)
}

// Request traces one word-service request from start to finish.
type Request struct {
	label string
	start time.Time
}

// StartRequest logs that a request labelled label has gone out for url.
func StartRequest(label, url string) *Request {
	std.printf("%s: GET %s", label, url)
	return &Request{label: label, start: time.Now()}
}

// Done logs how the request ended: the number of words it returned, or
// the error it failed with.
func (r *Request) Done(words int, err error) {
	elapsed := time.Since(r.start).Round(time.Millisecond)
	if err != nil {
		std.printf("ERROR %s after %v: %v", r.label, elapsed, err)
		return
	}
	std.printf("%s: %d words in %v", r.label, words, elapsed)
}

func (s *sink) set(w io.Writer, c io.Closer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closer != nil {
		_ = s.closer.Close()
	}
	s.w, s.closer = w, c
}

func (s *sink) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.w == nil {
		return
	}
	ts := time.Now().Format("15:04:05.000")
	_, _ = fmt.Fprintf(s.w, "[%s] %s\n", ts, fmt.Sprintf(format, args...))
}
