// Package ui provides rendering functions for the rhymer terminal UI.
//
// Render takes RenderParams and produces the terminal output: the word
// input, the results region with its save controls, and the saved-words
// line. Rendering is pure and separate from state management.
package ui
