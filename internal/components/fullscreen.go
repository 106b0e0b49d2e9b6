package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/kflux/internal/ui"
)

// FullScreen shows a resource's YAML over the whole terminal
type FullScreen struct {
	title    string
	content  string
	width    int
	height   int
	theme    *ui.Theme
	viewport viewport.Model
}

func NewFullScreen(title, content string, theme *ui.Theme) *FullScreen {
	fs := &FullScreen{
		title:   title,
		content: content,
		theme:   theme,
	}
	fs.viewport = viewport.New(80, 24-FullScreenReservedLines)
	fs.viewport.SetContent(fs.highlightYAML(content))
	fs.width, fs.height = 80, 24
	return fs
}

// SetSize updates the size of the full-screen view
func (fs *FullScreen) SetSize(width, height int) {
	fs.width = width
	fs.height = height
	fs.viewport.Width = width
	fs.viewport.Height = max(height-FullScreenReservedLines, 1)
}

func (fs *FullScreen) Title() string {
	return fs.title
}

// Update scrolls the content
func (fs *FullScreen) Update(msg tea.Msg) (*FullScreen, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "home", "g":
			fs.viewport.GotoTop()
			return fs, nil
		case "end", "G":
			fs.viewport.GotoBottom()
			return fs, nil
		}
	}

	var cmd tea.Cmd
	fs.viewport, cmd = fs.viewport.Update(msg)
	return fs, cmd
}

func (fs *FullScreen) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(fs.theme.Primary).
		Bold(true)
	hintStyle := lipgloss.NewStyle().
		Foreground(fs.theme.Muted)

	title := titleStyle.Render("YAML: " + fs.title)
	hint := hintStyle.Render("[ESC] Back  [↑↓/jk] Scroll  [PgUp/PgDn] Page  [g/G] Top/Bottom")

	headerLine := lipgloss.JoinHorizontal(
		lipgloss.Top,
		title,
		strings.Repeat(" ", max(0, fs.width-lipgloss.Width(title)-lipgloss.Width(hint))),
		hint,
	)
	separator := hintStyle.Render(strings.Repeat("─", fs.width))

	scrollInfo := ""
	if total := fs.viewport.TotalLineCount(); total > fs.viewport.Height {
		first := fs.viewport.YOffset + 1
		last := min(fs.viewport.YOffset+fs.viewport.Height, total)
		scrollInfo = hintStyle.Render(fmt.Sprintf("  %d-%d of %d", first, last, total))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		headerLine,
		separator,
		fs.viewport.View(),
		scrollInfo,
	)
}

// highlightYAML colors keys, values and comments
func (fs *FullScreen) highlightYAML(yaml string) string {
	keyStyle := lipgloss.NewStyle().Foreground(fs.theme.Primary)
	valueStyle := lipgloss.NewStyle().Foreground(fs.theme.Success)
	commentStyle := lipgloss.NewStyle().Foreground(fs.theme.Muted)

	lines := strings.Split(yaml, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(strings.TrimSpace(line), "#"):
			lines[i] = commentStyle.Render(line)
		case strings.Contains(line, ":"):
			key, value, _ := strings.Cut(line, ":")
			lines[i] = keyStyle.Render(key+":") + valueStyle.Render(value)
		}
	}
	return strings.Join(lines, "\n")
}
