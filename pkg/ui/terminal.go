package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Banner is printed by the version command and on verbose runs
const Banner = `
  ╔═══════════════════════════════════════╗
  ║   LOGOFETCH · team logo downloader    ║
  ╚═══════════════════════════════════════╝
`

var (
	green   = lipgloss.Color("#39FF14")
	red     = lipgloss.Color("#FF3B3B")
	cyan    = lipgloss.Color("#00FFFF")
	yellow  = lipgloss.Color("#FFFF00")
	magenta = lipgloss.Color("#FF00FF")
	dim     = lipgloss.Color("#B0B0B0")
)

// styles holds the console palette bound to one renderer
type styles struct {
	title   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	info    lipgloss.Style
	value   lipgloss.Style
	hint    lipgloss.Style
	dim     lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:   r.NewStyle().Foreground(cyan).Bold(true),
		success: r.NewStyle().Foreground(green),
		failure: r.NewStyle().Foreground(red),
		info:    r.NewStyle().Foreground(cyan),
		value:   r.NewStyle().Foreground(yellow),
		hint:    r.NewStyle().Foreground(magenta),
		dim:     r.NewStyle().Foreground(dim),
	}
}

// IsTerminal reports whether w is attached to a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
