package debug

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogDisabled(t *testing.T) {
	var buf bytes.Buffer
	EnableWriter(&buf)
	Close()

	Log("nothing %d", 1)
	if IsEnabled() {
		t.Error("Expected logging to be disabled")
	}
	if buf.Len() != 0 {
		t.Errorf("Expected no output, got %q", buf.String())
	}
}

func TestEnableWriter(t *testing.T) {
	var buf bytes.Buffer
	EnableWriter(&buf)
	defer Close()

	Log("request %s", "abc")
	Error("fetch rhymes", errors.New("connection refused"))

	out := buf.String()
	if !strings.Contains(out, "request abc") {
		t.Errorf("Expected log line, got %q", out)
	}
	if !strings.Contains(out, "ERROR fetch rhymes: connection refused") {
		t.Errorf("Expected error line, got %q", out)
	}
}

func TestRequest(t *testing.T) {
	tests := []struct {
		name  string
		words int
		err   error
		want  string
	}{
		{"ok", 3, nil, "rhymes \"night\": 3 words in"},
		{"failed", 0, errors.New("status 503"), "ERROR rhymes \"night\" after"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			EnableWriter(&buf)
			defer Close()

			req := StartRequest(`rhymes "night"`, "https://example.test/words?rel_rhy=night")
			req.Done(tt.words, tt.err)

			out := buf.String()
			if !strings.Contains(out, `rhymes "night": GET https://example.test/words?rel_rhy=night`) {
				t.Errorf("Expected request line, got %q", out)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("Expected %q, got %q", tt.want, out)
			}
			if tt.err != nil && !strings.Contains(out, "status 503") {
				t.Errorf("Expected error text, got %q", out)
			}
		})
	}
}

func TestRequestDisabled(t *testing.T) {
	Close()
	req := StartRequest("rhymes", "http://x")
	req.Done(1, nil)
	if IsEnabled() {
		t.Error("Expected logging to be disabled")
	}
}

func TestEnableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")
	if err := Enable(path); err != nil {
		t.Fatalf("Enable() error: %v", err)
	}
	Log("hello")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "Debug logging enabled") || !strings.Contains(string(data), "hello") {
		t.Errorf("unexpected log contents: %q", data)
	}
}
