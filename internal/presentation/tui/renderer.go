package tui

import (
	"github.com/charmbracelet/glamour"
)

// Renderer turns Markdown into styled terminal output.
type Renderer func(markdown string) (string, error)

// NewRenderer returns a glamour renderer that wraps at width columns
// (0 keeps glamour's default) and picks a light or dark style from the
// terminal background.
func NewRenderer(width int) (Renderer, error) {
	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}
	return r.Render, nil
}

// PlainRenderer returns Markdown unchanged, for pipes and tests.
func PlainRenderer(markdown string) (string, error) {
	return markdown, nil
}
