package app

import (
	"github.com/henri123lemoine/rhymer/internal/datamuse"
)

// Message types for the bubbletea app.

// WordsLoadedMsg is sent when a word-service request finishes.
type WordsLoadedMsg struct {
	RequestID string
	Relation  datamuse.Relation
	Query     string
	Words     []datamuse.Word
	Err       error
}

// SavedExportedMsg is sent when the saved list has been written to disk.
type SavedExportedMsg struct {
	Path  string
	Count int
	Err   error
}
