package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// Styles accepted by NewRenderer.
const (
	StyleAuto  = "auto"
	StyleDark  = "dark"
	StyleLight = "light"
	StyleNoTTY = "notty"
)

// DefaultWordWrap is the column at which rendered text wraps.
const DefaultWordWrap = 100

// Renderer renders markdown to a terminal-friendly string.
type Renderer struct {
	term *glamour.TermRenderer
}

// NewRenderer creates a renderer for one of the standard glamour styles.
func NewRenderer(style string) (*Renderer, error) {
	if style == "" {
		style = StyleAuto
	}
	term, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(DefaultWordWrap),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer for style '%s': %w", style, err)
	}
	return &Renderer{term: term}, nil
}

// Render renders markdown.
func (r *Renderer) Render(markdown string) (string, error) {
	out, err := r.term.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

// Fprint renders markdown and writes the result to w.
func (r *Renderer) Fprint(w io.Writer, markdown string) error {
	out, err := r.Render(markdown)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
