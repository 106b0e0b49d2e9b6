package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/kflux/internal/tree"
	"github.com/renato0307/kflux/internal/ui"
)

// Header shows the view tabs, the active context and refresh timing
type Header struct {
	appName     string
	views       []tree.View
	active      tree.View
	contextName string
	itemCount   int
	lastRefresh time.Time
	now         func() time.Time
	width       int
	theme       *ui.Theme
}

func NewHeader(theme *ui.Theme, appName string) *Header {
	return &Header{
		appName: appName,
		views:   tree.Views,
		active:  tree.ViewClusters,
		now:     time.Now,
		theme:   theme,
	}
}

func (h *Header) SetActiveView(v tree.View) {
	h.active = v
}

func (h *Header) SetContext(name string) {
	h.contextName = name
}

func (h *Header) SetItemCount(count int) {
	h.itemCount = count
}

func (h *Header) SetLastRefresh(t time.Time) {
	h.lastRefresh = t
}

func (h *Header) SetWidth(width int) {
	h.width = width
}

// relativeTime formats d as "5s ago", "3m ago" or "2h ago"
func relativeTime(d time.Duration) string {
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	default:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	}
}

func (h *Header) tabs() string {
	tabs := make([]string, 0, len(h.views))
	for _, v := range h.views {
		style := h.theme.Tab
		if v == h.active {
			style = h.theme.ActiveTab
		}
		tabs = append(tabs, style.Render(v.Title()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (h *Header) View() string {
	mutedStyle := lipgloss.NewStyle().
		Foreground(h.theme.Muted).
		Padding(0, 1)

	// "kflux • context: kind-dev • 5 items"
	leftParts := []string{h.appName}
	if h.contextName != "" {
		leftParts = append(leftParts, "context: "+h.contextName)
	}
	if h.itemCount > 0 {
		leftParts = append(leftParts, fmt.Sprintf("%d items", h.itemCount))
	}
	left := h.theme.Header.Render(strings.Join(leftParts, " • "))

	var right string
	if !h.lastRefresh.IsZero() {
		right = mutedStyle.Render("Last refresh: " + relativeTime(h.now().Sub(h.lastRefresh)))
	}

	spacing := max(h.width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	title := lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", spacing), right)

	return lipgloss.JoinVertical(lipgloss.Left, title, h.tabs())
}
