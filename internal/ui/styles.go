// Package ui provides the terminal colour roles used for status text.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Semantic colours
var (
	Destructive = lipgloss.Color("#e53935") // Red
	Warning     = lipgloss.Color("#FFC107") // Yellow
	Success     = lipgloss.Color("#8BC34A") // Lime Green
	Ink         = lipgloss.Color("#101F38") // Dark Blue
)

// Renderer renders a piece of status text.
type Renderer interface {
	Render(strs ...string) string
}

// Styles holds one renderer per status role.
type Styles struct {
	Err  Renderer // failures and cancellation notices
	Warn Renderer // rejected input
	Info Renderer // successful writes
	Out  Renderer // echoed record labels
}

// DefaultStyles returns the coloured role set. lipgloss drops the colours
// itself when the output is not a terminal.
func DefaultStyles() Styles {
	return Styles{
		Err:  lipgloss.NewStyle().Background(Destructive).Foreground(lipgloss.Color("#f2f2f2")),
		Warn: lipgloss.NewStyle().Background(Warning).Foreground(Ink),
		Info: lipgloss.NewStyle().Background(Success).Foreground(Ink),
		Out:  lipgloss.NewStyle().Reverse(true),
	}
}

// Plain returns renderers that pass text through unchanged.
func Plain() Styles {
	p := plain{}
	return Styles{Err: p, Warn: p, Info: p, Out: p}
}

type plain struct{}

func (plain) Render(strs ...string) string { return strings.Join(strs, " ") }
