package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/kflux/internal/keyboard"
	"github.com/renato0307/kflux/internal/tree"
	"github.com/renato0307/kflux/internal/ui"
)

// StatusBar shows the key hints that apply to the selected node
type StatusBar struct {
	keys      *keyboard.Keys
	actions   []tree.Action
	filtering bool
	width     int
	theme     *ui.Theme
}

func NewStatusBar(theme *ui.Theme, keys *keyboard.Keys) *StatusBar {
	return &StatusBar{
		keys:  keys,
		theme: theme,
	}
}

// SetActions sets the actions enabled for the selected node
func (sb *StatusBar) SetActions(actions []tree.Action) {
	sb.actions = actions
}

func (sb *StatusBar) SetFiltering(filtering bool) {
	sb.filtering = filtering
}

func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
}

func keyLabel(key string) string {
	if key == " " {
		return "space"
	}
	return key
}

// Hints lists "key action" pairs in display order
func (sb *StatusBar) Hints() []string {
	if sb.filtering {
		return []string{"enter apply", sb.keys.Back + " clear"}
	}

	hints := []string{}
	for _, a := range sb.actions {
		switch a {
		case tree.ActionSetCurrentContext:
			hints = append(hints, sb.keys.Select+" use context")
		case tree.ActionViewYAML:
			hints = append(hints, sb.keys.YAML+" yaml")
		case tree.ActionCopyLocator:
			hints = append(hints, sb.keys.Copy+" copy locator")
		case tree.ActionCopyLink:
			hints = append(hints, sb.keys.Copy+" copy link")
		}
	}

	return append(hints,
		keyLabel(sb.keys.Toggle)+" expand",
		sb.keys.FilterActivate+" filter",
		sb.keys.NextView+" view",
		sb.keys.Refresh+" refresh",
		sb.keys.Details+" details",
		sb.keys.Quit+" quit",
	)
}

func (sb *StatusBar) View() string {
	style := lipgloss.NewStyle().
		Foreground(sb.theme.Dimmed).
		MaxWidth(sb.width).
		Padding(0, 1)
	return style.Render(strings.Join(sb.Hints(), " • "))
}
