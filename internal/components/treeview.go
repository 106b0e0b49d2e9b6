package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/renato0307/kflux/internal/keyboard"
	"github.com/renato0307/kflux/internal/render"
	"github.com/renato0307/kflux/internal/tree"
	"github.com/renato0307/kflux/internal/ui"
)

// row is one visible line of the flattened tree
type row struct {
	node   *tree.Node
	depth  int
	parent int // index of the parent row, -1 for roots
}

// TreeView is a scrollable, filterable tree of nodes
type TreeView struct {
	nodes    []*tree.Node
	rows     []row
	cursor   int
	offset   int
	width    int
	height   int
	keys     *keyboard.Keys
	theme    *ui.Theme
	styles   render.Styles
	empty    string
	filter   textinput.Model
	editing  bool
	matching map[*tree.Node]bool
}

func NewTreeView(theme *ui.Theme, keys *keyboard.Keys) *TreeView {
	input := textinput.New()
	input.Prompt = "/"
	input.Placeholder = "filter"

	return &TreeView{
		keys:   keys,
		theme:  theme,
		styles: render.StylesFromTheme(theme),
		empty:  "Nothing to show",
		filter: input,
		width:  80,
		height: 20,
	}
}

// SetEmptyText sets what is shown when there are no rows
func (tv *TreeView) SetEmptyText(text string) {
	tv.empty = text
}

// SetNodes replaces the forest, keeping the selection on the same node ID
// when it still exists
func (tv *TreeView) SetNodes(nodes []*tree.Node) {
	selected := tv.SelectedID()
	tv.nodes = nodes
	tv.rebuild()
	if selected != "" {
		tv.SelectByID(selected)
	}
}

func (tv *TreeView) Nodes() []*tree.Node {
	return tv.nodes
}

func (tv *TreeView) SetSize(width, height int) {
	tv.width = width
	tv.height = max(height, 1)
	tv.filter.Width = max(width-2, 1)
	tv.scrollToCursor()
}

// Selected returns the node under the cursor, nil when empty
func (tv *TreeView) Selected() *tree.Node {
	if tv.cursor >= 0 && tv.cursor < len(tv.rows) {
		return tv.rows[tv.cursor].node
	}
	return nil
}

func (tv *TreeView) SelectedID() string {
	if n := tv.Selected(); n != nil {
		return n.ID
	}
	return ""
}

// SelectByID moves the cursor to the node with the given ID
func (tv *TreeView) SelectByID(id string) bool {
	for i, r := range tv.rows {
		if r.node.ID == id {
			tv.cursor = i
			tv.scrollToCursor()
			return true
		}
	}
	return false
}

// RowCount returns the number of visible rows
func (tv *TreeView) RowCount() int {
	return len(tv.rows)
}

// IsFiltering reports whether the filter input has focus
func (tv *TreeView) IsFiltering() bool {
	return tv.editing
}

// Filter returns the active filter text
func (tv *TreeView) Filter() string {
	return tv.filter.Value()
}

// SetFilter applies a filter without going through the input
func (tv *TreeView) SetFilter(text string) {
	tv.filter.SetValue(text)
	tv.rebuild()
}

func (tv *TreeView) ClearFilter() {
	tv.editing = false
	tv.filter.Blur()
	tv.SetFilter("")
}

// rebuild flattens the forest into rows. Without a filter only children of
// expanded nodes are visible. With a filter every node whose label fuzzy
// matches is visible together with its ancestors.
func (tv *TreeView) rebuild() {
	tv.rows = tv.rows[:0]
	tv.matching = nil

	if pattern := tv.filter.Value(); pattern != "" {
		tv.matching = tv.match(pattern)
	}
	for _, n := range tv.nodes {
		tv.appendVisible(n, 0, -1)
	}

	if tv.cursor >= len(tv.rows) {
		tv.cursor = len(tv.rows) - 1
	}
	if tv.cursor < 0 {
		tv.cursor = 0
	}
	tv.scrollToCursor()
}

func (tv *TreeView) match(pattern string) map[*tree.Node]bool {
	var all []*tree.Node
	var labels []string
	tree.Walk(tv.nodes, func(n *tree.Node, _ int) bool {
		all = append(all, n)
		labels = append(labels, n.Label)
		return true
	})

	matching := make(map[*tree.Node]bool)
	for _, m := range fuzzy.Find(pattern, labels) {
		matching[all[m.Index]] = true
	}
	return matching
}

// visible reports whether n or one of its descendants matches the filter
func (tv *TreeView) visible(n *tree.Node) bool {
	if tv.matching == nil || tv.matching[n] {
		return true
	}
	for _, c := range n.Children {
		if tv.visible(c) {
			return true
		}
	}
	return false
}

func (tv *TreeView) appendVisible(n *tree.Node, depth, parent int) {
	if !tv.visible(n) {
		return
	}
	tv.rows = append(tv.rows, row{node: n, depth: depth, parent: parent})
	index := len(tv.rows) - 1

	if tv.matching == nil && !n.IsExpanded() {
		return
	}
	for _, c := range n.Children {
		tv.appendVisible(c, depth+1, index)
	}
}

func (tv *TreeView) scrollToCursor() {
	if tv.cursor < tv.offset {
		tv.offset = tv.cursor
	}
	if tv.cursor >= tv.offset+tv.bodyHeight() {
		tv.offset = tv.cursor - tv.bodyHeight() + 1
	}
	tv.offset = max(tv.offset, 0)
}

// bodyHeight is the number of rows that fit below the filter line
func (tv *TreeView) bodyHeight() int {
	if tv.editing || tv.filter.Value() != "" {
		return max(tv.height-1, 1)
	}
	return tv.height
}

func (tv *TreeView) moveTo(i int) {
	tv.cursor = min(max(i, 0), max(len(tv.rows)-1, 0))
	tv.scrollToCursor()
}

// ExpandOrMoveToChild expands a collapsed node, or moves into an expanded one
func (tv *TreeView) ExpandOrMoveToChild() {
	n := tv.Selected()
	if n == nil || !n.IsExpandable() {
		return
	}
	if !n.IsExpanded() {
		n.Expand()
		tv.rebuild()
		return
	}
	if tv.cursor+1 < len(tv.rows) && tv.rows[tv.cursor+1].parent == tv.cursor {
		tv.moveTo(tv.cursor + 1)
	}
}

// CollapseOrJumpToParent collapses an expanded node, otherwise selects its
// parent
func (tv *TreeView) CollapseOrJumpToParent() {
	n := tv.Selected()
	if n == nil {
		return
	}
	if n.IsExpanded() && tv.matching == nil {
		n.Collapse()
		tv.rebuild()
		return
	}
	if p := tv.rows[tv.cursor].parent; p >= 0 {
		tv.moveTo(p)
	}
}

// ToggleExpand flips the selected node between collapsed and expanded
func (tv *TreeView) ToggleExpand() {
	n := tv.Selected()
	if n == nil || !n.IsExpandable() {
		return
	}
	n.Toggle()
	tv.rebuild()
}

// Update handles navigation and filter keys
func (tv *TreeView) Update(msg tea.Msg) (*TreeView, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return tv, nil
	}

	if tv.editing {
		switch key.String() {
		case tv.keys.Back:
			tv.ClearFilter()
			return tv, nil
		case "enter":
			tv.editing = false
			tv.filter.Blur()
			return tv, nil
		}
		var cmd tea.Cmd
		tv.filter, cmd = tv.filter.Update(msg)
		tv.rebuild()
		return tv, cmd
	}

	switch key.String() {
	case tv.keys.FilterActivate:
		tv.editing = true
		return tv, tv.filter.Focus()
	case tv.keys.Back:
		if tv.filter.Value() != "" {
			tv.ClearFilter()
		}
	case tv.keys.Up, "up":
		tv.moveTo(tv.cursor - 1)
	case tv.keys.Down, "down":
		tv.moveTo(tv.cursor + 1)
	case tv.keys.Expand, "right":
		tv.ExpandOrMoveToChild()
	case tv.keys.Collapse, "left":
		tv.CollapseOrJumpToParent()
	case tv.keys.Toggle:
		tv.ToggleExpand()
	case tv.keys.JumpTop, "home":
		tv.moveTo(0)
	case tv.keys.JumpBottom, "end":
		tv.moveTo(len(tv.rows) - 1)
	case tv.keys.PageUp, "pgup":
		tv.moveTo(tv.cursor - max(tv.bodyHeight()/2, 1))
	case tv.keys.PageDown, "pgdown":
		tv.moveTo(tv.cursor + max(tv.bodyHeight()/2, 1))
	}
	return tv, nil
}

func indicator(n *tree.Node) string {
	switch n.Collapsible {
	case tree.Expanded:
		return "▾"
	case tree.Collapsed:
		return "▸"
	default:
		return "•"
	}
}

func (tv *TreeView) renderRow(r row, selected bool) string {
	prefix := strings.Repeat("  ", r.depth) + indicator(r.node) + " "
	line := lipgloss.NewStyle().MaxWidth(tv.width)

	if selected {
		plain := prefix + render.Line(r.node, render.PlainStyles())
		return line.Render(tv.theme.SelectedRow.Width(tv.width).Render(plain))
	}
	if tv.matching != nil && !tv.matching[r.node] {
		return line.Render(tv.styles.Description.Render(prefix + render.Line(r.node, render.PlainStyles())))
	}
	return line.Render(tv.styles.Enumerator.Render(prefix) + render.Line(r.node, tv.styles))
}

func (tv *TreeView) View() string {
	var lines []string
	if tv.editing || tv.filter.Value() != "" {
		lines = append(lines, tv.filter.View())
	}

	if len(tv.rows) == 0 {
		lines = append(lines, tv.styles.Description.Padding(0, 1).Render(tv.empty))
	}

	end := min(tv.offset+tv.bodyHeight(), len(tv.rows))
	for i := tv.offset; i < end; i++ {
		lines = append(lines, tv.renderRow(tv.rows[i], i == tv.cursor))
	}

	return lipgloss.NewStyle().
		Width(tv.width).
		Height(tv.height).
		MaxHeight(tv.height).
		Render(strings.Join(lines, "\n"))
}
