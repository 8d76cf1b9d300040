// Package app provides the main Bubble Tea application model for rhymer.
//
// Model binds key presses to word-service lookups: enter in the input or
// ctrl+r asks for rhymes, ctrl+t for similar-meaning words. Responses
// arrive as WordsLoadedMsg and replace the results view. Saving a word
// appends it to the session's saved list.
package app
