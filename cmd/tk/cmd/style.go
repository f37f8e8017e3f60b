package cmd

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorType   = lipgloss.Color("#89b4fa")
	colorName   = lipgloss.Color("#a6e3a1")
	colorMuted  = lipgloss.Color("#7f849c")
	colorError  = lipgloss.Color("#f38ba8")
	colorHeader = lipgloss.Color("#f9e2af")
)

// styles renders for one writer; colors are dropped when it is not a
// terminal.
type styles struct {
	header lipgloss.Style
	typ    lipgloss.Style
	name   lipgloss.Style
	muted  lipgloss.Style
	err    lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		header: r.NewStyle().Foreground(colorHeader).Bold(true),
		typ:    r.NewStyle().Foreground(colorType),
		name:   r.NewStyle().Foreground(colorName),
		muted:  r.NewStyle().Foreground(colorMuted),
		err:    r.NewStyle().Foreground(colorError).Bold(true),
	}
}
