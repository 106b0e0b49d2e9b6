package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Layout sizes and stacks the screen sections
type Layout struct {
	width  int
	height int
}

func NewLayout(width, height int) *Layout {
	return &Layout{
		width:  width,
		height: height,
	}
}

func (l *Layout) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// CalculateBodyHeight returns the available height for the body content
func (l *Layout) CalculateBodyHeight() int {
	// header (2) + empty line (1) + hints (1) + message (1)
	reserved := 5
	return max(l.height-reserved, 3)
}

// SplitWidth divides the body between the tree and the details panel. The
// details width is 0 when hidden or when the terminal is too narrow.
func (l *Layout) SplitWidth(showDetails bool) (treeWidth, detailsWidth int) {
	if !showDetails {
		return l.width, 0
	}
	detailsWidth = int(float64(l.width) * DetailsPanelRatio)
	treeWidth = l.width - detailsWidth
	if treeWidth < MinTreeWidth {
		return l.width, 0
	}
	return treeWidth, detailsWidth
}

// Render builds the full layout
func (l *Layout) Render(header, body, hints, message string) string {
	sections := []string{}

	if header != "" {
		sections = append(sections, header, "")
	}
	if body != "" {
		sections = append(sections, body)
	}
	sections = append(sections, hints, message)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
