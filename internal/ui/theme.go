package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme and styles for the TUI
type Theme struct {
	Name string

	// Core colors
	Primary    lipgloss.AdaptiveColor
	Secondary  lipgloss.AdaptiveColor
	Accent     lipgloss.AdaptiveColor
	Foreground lipgloss.AdaptiveColor
	Muted      lipgloss.AdaptiveColor
	Error      lipgloss.AdaptiveColor
	Success    lipgloss.AdaptiveColor
	Warning    lipgloss.AdaptiveColor

	// UI element colors
	Border     lipgloss.AdaptiveColor // Separator lines, panel borders
	Dimmed     lipgloss.AdaptiveColor // Very subtle text (shortcuts)
	Subtle     lipgloss.AdaptiveColor
	Background lipgloss.AdaptiveColor

	// Status message colors
	MessageInfo    lipgloss.AdaptiveColor
	MessageSuccess lipgloss.AdaptiveColor
	MessageError   lipgloss.AdaptiveColor
	MessageLoading lipgloss.AdaptiveColor

	// Component styles
	AppTitle    lipgloss.Style
	Header      lipgloss.Style
	StatusBar   lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	SelectedRow lipgloss.Style
	Panel       lipgloss.Style
}

// palette is the raw color set a theme is built from
type palette struct {
	primary, secondary, accent, foreground, muted lipgloss.AdaptiveColor
	err, success, warning                         lipgloss.AdaptiveColor
	border, dimmed, subtle, background            lipgloss.AdaptiveColor

	// selection colors are fixed, independent of terminal background
	selectedFg, selectedBg, titleBg string
}

func adaptive(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func same(c string) lipgloss.AdaptiveColor {
	return adaptive(c, c)
}

var palettes = map[string]palette{
	"charm": {
		primary: adaptive("#5A56E0", "#7571F9"), secondary: adaptive("#02BA84", "#02BF87"),
		accent: same("#F780E2"), foreground: adaptive("235", "252"), muted: same("243"),
		err: adaptive("#FF4672", "#ED567A"), success: adaptive("#02BA84", "#02BF87"), warning: same("#FFAA00"),
		border: same("240"), dimmed: same("243"), subtle: same("241"), background: adaptive("254", "235"),
		selectedFg: "229", selectedBg: "57", titleBg: "235",
	},
	"dracula": {
		primary: same("#bd93f9"), secondary: same("#8be9fd"), accent: same("#ff79c6"),
		foreground: adaptive("#282a36", "#f8f8f2"), muted: same("#6272a4"),
		err: same("#ff5555"), success: same("#50fa7b"), warning: same("#f1fa8c"),
		border: same("61"), dimmed: same("#6272a4"), subtle: same("#44475a"), background: adaptive("#f8f8f2", "#282a36"),
		selectedFg: "#282a36", selectedBg: "#bd93f9", titleBg: "#44475a",
	},
	"catppuccin": {
		primary: adaptive("#8839ef", "#cba6f7"), secondary: adaptive("#179299", "#89dceb"),
		accent: adaptive("#ea76cb", "#f5c2e7"), foreground: adaptive("#4c4f69", "#cdd6f4"), muted: adaptive("#9ca0b0", "#7f849c"),
		err: adaptive("#d20f39", "#f38ba8"), success: adaptive("#40a02b", "#a6e3a1"), warning: adaptive("#df8e1d", "#f9e2af"),
		border: adaptive("#9ca0b0", "#45475a"), dimmed: adaptive("#9ca0b0", "#7f849c"), subtle: adaptive("#7c7f93", "#585b70"),
		background: adaptive("#eff1f5", "#1e1e2e"),
		selectedFg: "#1e1e2e", selectedBg: "#cba6f7", titleBg: "#313244",
	},
	"nord": {
		primary: adaptive("#5e81ac", "#88c0d0"), secondary: same("#81a1c1"), accent: same("#b48ead"),
		foreground: adaptive("#2e3440", "#eceff4"), muted: same("#4c566a"),
		err: same("#bf616a"), success: same("#a3be8c"), warning: same("#ebcb8b"),
		border: adaptive("#d8dee9", "#3b4252"), dimmed: same("#4c566a"), subtle: same("#434c5e"), background: adaptive("#eceff4", "#2e3440"),
		selectedFg: "#2e3440", selectedBg: "#88c0d0", titleBg: "#3b4252",
	},
	"gruvbox": {
		primary: adaptive("#af3a03", "#fe8019"), secondary: adaptive("#79740e", "#b8bb26"),
		accent: adaptive("#b16286", "#d3869b"), foreground: adaptive("#3c3836", "#ebdbb2"), muted: adaptive("#7c6f64", "#928374"),
		err: adaptive("#9d0006", "#fb4934"), success: adaptive("#79740e", "#b8bb26"), warning: adaptive("#b57614", "#fabd2f"),
		border: adaptive("#d5c4a1", "#504945"), dimmed: adaptive("#7c6f64", "#928374"), subtle: same("#665c54"),
		background: adaptive("#fbf1c7", "#282828"),
		selectedFg: "#282828", selectedBg: "#fe8019", titleBg: "#3c3836",
	},
	"tokyo-night": {
		primary: same("#7aa2f7"), secondary: same("#2ac3de"), accent: same("#bb9af7"),
		foreground: adaptive("#1a1b26", "#c0caf5"), muted: same("#565f89"),
		err: same("#f7768e"), success: same("#9ece6a"), warning: same("#e0af68"),
		border: adaptive("#a9b1d6", "#292e42"), dimmed: same("#565f89"), subtle: same("#414868"), background: adaptive("#d5d6db", "#1a1b26"),
		selectedFg: "#1a1b26", selectedBg: "#7aa2f7", titleBg: "#24283b",
	},
	"solarized": {
		primary: same("#268bd2"), secondary: same("#2aa198"), accent: same("#6c71c4"),
		foreground: adaptive("#002b36", "#839496"), muted: same("#586e75"),
		err: same("#dc322f"), success: same("#859900"), warning: same("#cb4b16"),
		border: adaptive("#93a1a1", "#073642"), dimmed: same("#586e75"), subtle: same("#657b83"), background: adaptive("#fdf6e3", "#002b36"),
		selectedFg: "#002b36", selectedBg: "#268bd2", titleBg: "#073642",
	},
	"monokai": {
		primary: same("#66d9ef"), secondary: same("#a6e22e"), accent: same("#ae81ff"),
		foreground: adaptive("#272822", "#f8f8f2"), muted: same("#75715e"),
		err: same("#f92672"), success: same("#a6e22e"), warning: same("#e6db74"),
		border: same("#464741"), dimmed: same("#75715e"), subtle: same("#49483e"), background: adaptive("#f8f8f2", "#272822"),
		selectedFg: "#272822", selectedBg: "#66d9ef", titleBg: "#3e3d32",
	},
}

func newTheme(name string, p palette) *Theme {
	t := &Theme{
		Name:       name,
		Primary:    p.primary,
		Secondary:  p.secondary,
		Accent:     p.accent,
		Foreground: p.foreground,
		Muted:      p.muted,
		Error:      p.err,
		Success:    p.success,
		Warning:    p.warning,
		Border:     p.border,
		Dimmed:     p.dimmed,
		Subtle:     p.subtle,
		Background: p.background,

		MessageInfo:    p.secondary,
		MessageSuccess: p.success,
		MessageError:   p.err,
		MessageLoading: p.muted,
	}

	t.AppTitle = lipgloss.NewStyle().
		Foreground(t.Primary).
		Background(lipgloss.Color(p.titleBg)).
		Bold(true)

	t.Header = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Tab = lipgloss.NewStyle().
		Foreground(t.Muted).
		Padding(0, 1)

	t.ActiveTab = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true).
		Underline(true).
		Padding(0, 1)

	t.SelectedRow = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.selectedFg)).
		Background(lipgloss.Color(p.selectedBg))

	t.Panel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	return t
}

// ThemeCharm returns the default Charm theme
func ThemeCharm() *Theme {
	return newTheme("charm", palettes["charm"])
}

// GetTheme returns a theme by name, defaulting to Charm
func GetTheme(name string) *Theme {
	p, ok := palettes[name]
	if !ok {
		return ThemeCharm()
	}
	return newTheme(name, p)
}

// AvailableThemes returns a list of available theme names
func AvailableThemes() []string {
	return []string{"charm", "dracula", "catppuccin", "nord", "gruvbox", "tokyo-night", "solarized", "monokai"}
}
