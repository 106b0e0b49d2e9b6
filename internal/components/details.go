package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/kflux/internal/render"
	"github.com/renato0307/kflux/internal/tree"
	"github.com/renato0307/kflux/internal/ui"
)

// Details renders the selected node's tooltip next to the tree
type Details struct {
	node   *tree.Node
	width  int
	height int
	theme  *ui.Theme
	styles render.Styles
}

func NewDetails(theme *ui.Theme) *Details {
	return &Details{
		theme:  theme,
		styles: render.StylesFromTheme(theme),
	}
}

func (d *Details) SetNode(n *tree.Node) {
	d.node = n
}

func (d *Details) SetSize(width, height int) {
	d.width = width
	d.height = height
}

func (d *Details) View() string {
	if d.width == 0 {
		return ""
	}

	// border (2) + padding (2)
	inner := max(d.width-4, 1)
	panel := d.theme.Panel.
		Width(inner).
		Height(max(d.height-2, 1)).
		MaxHeight(d.height)

	if d.node == nil {
		return panel.Render(d.styles.Description.Render("Nothing selected"))
	}

	sections := []string{d.theme.Header.Render(d.node.Label)}
	if d.node.Description != "" {
		sections = append(sections, d.styles.Description.Render(d.node.Description))
	}
	if d.node.Context != tree.ContextNone {
		sections = append(sections, d.styles.Description.Render("context: "+string(d.node.Context)))
	}
	if tip := render.Tooltip(d.node.Tooltip, d.styles); tip != "" {
		sections = append(sections, "", tip)
	}
	if d.node.ResourceURI != "" {
		sections = append(sections, "", d.styles.Description.Render(d.node.ResourceURI))
	}

	body := lipgloss.NewStyle().MaxWidth(inner).Render(strings.Join(sections, "\n"))
	return panel.Render(body)
}
