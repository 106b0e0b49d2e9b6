package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/kflux/internal/ui"
)

// Styles colors the parts of a rendered row
type Styles struct {
	Label       lipgloss.Style
	Description lipgloss.Style
	Current     lipgloss.Style
	Flux        lipgloss.Style
	Warning     lipgloss.Style
	Enumerator  lipgloss.Style
	Border      lipgloss.Style
	Header      lipgloss.Style
}

// PlainStyles applies no formatting
func PlainStyles() Styles {
	s := lipgloss.NewStyle()
	return Styles{
		Label:       s,
		Description: s,
		Current:     s,
		Flux:        s,
		Warning:     s,
		Enumerator:  s,
		Border:      s,
		Header:      s,
	}
}

// StylesFromTheme derives row styles from a TUI theme
func StylesFromTheme(t *ui.Theme) Styles {
	return Styles{
		Label:       lipgloss.NewStyle().Foreground(t.Foreground),
		Description: lipgloss.NewStyle().Foreground(t.Muted),
		Current:     lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Flux:        lipgloss.NewStyle().Foreground(t.Success),
		Warning:     lipgloss.NewStyle().Foreground(t.Warning),
		Enumerator:  lipgloss.NewStyle().Foreground(t.Border),
		Border:      lipgloss.NewStyle().Foreground(t.Border),
		Header:      t.Header,
	}
}
