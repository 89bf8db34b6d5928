// Package lesson holds the embedded narrative that walks a reader through
// the idea of a distribution, rendered for the terminal with glamour.
package lesson

import (
	_ "embed"

	"github.com/charmbracelet/glamour"
)

//go:embed lesson.md
var markdown string

// Markdown returns the raw lesson text.
func Markdown() string {
	return markdown
}

// Render returns the lesson styled for the current terminal.
// It falls back to the raw markdown if the renderer cannot be built.
func Render() (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return markdown, err
	}
	return r.Render(markdown)
}
