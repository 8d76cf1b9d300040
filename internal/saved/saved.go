// Package saved holds the words a user has saved during a session.
package saved

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
)

// Separator joins saved words for display.
const Separator = ", "

// Placeholder is displayed before anything has been saved.
const Placeholder = "(none)"

// List is an append-only list of words. Duplicates are kept.
type List struct {
	words []string
}

// New returns an empty list.
func New() *List {
	return &List{}
}

// Add appends word to the list.
func (l *List) Add(word string) {
	l.words = append(l.words, word)
}

// Words returns a copy of the saved words in save order.
func (l *List) Words() []string {
	out := make([]string, len(l.words))
	copy(out, l.words)
	return out
}

// Clone returns an independent copy of the list.
func (l *List) Clone() *List {
	return &List{words: l.Words()}
}

// Len returns the number of saved words.
func (l *List) Len() int {
	return len(l.words)
}

// String renders the list for display.
func (l *List) String() string {
	if len(l.words) == 0 {
		return Placeholder
	}
	return strings.Join(l.words, Separator)
}

// Export writes the list to path, one word per line. The file is written
// under an exclusive lock and replaced atomically.
func (l *List) Export(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	fileLock := flock.New(path + ".lock")
	if err := fileLock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", path, err)
	}
	defer fileLock.Unlock()

	var b strings.Builder
	for _, w := range l.words {
		b.WriteString(w)
		b.WriteString("\n")
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(b.String()), 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write export: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename export: %w", err)
	}
	return nil
}
