package keyboard

// Keys holds all keyboard shortcut configurations for kflux
type Keys struct {
	// Filter
	FilterActivate string // Start fuzzy filtering the tree

	// Views
	NextView string
	PrevView string

	// Tree
	Up         string // Move selection up
	Down       string // Move selection down
	Expand     string // Expand node or move to first child
	Collapse   string // Collapse node or move to parent
	Toggle     string // Toggle expand state
	Select     string // Run the node's command
	JumpTop    string
	JumpBottom string
	PageUp     string
	PageDown   string

	// Node actions
	YAML string // View YAML of a resource node
	Copy string // Copy locator or link

	// Global
	Quit    string // Quit application
	Refresh string // Rebuild every view
	Back    string // Back/clear filter
	Details string // Toggle the details panel
}

// Default returns the default keyboard configuration
func Default() *Keys {
	return &Keys{
		FilterActivate: "/",

		NextView: "tab",
		PrevView: "shift+tab",

		Up:         "k",
		Down:       "j",
		Expand:     "l",
		Collapse:   "h",
		Toggle:     " ",
		Select:     "enter",
		JumpTop:    "g",
		JumpBottom: "G",
		PageUp:     "ctrl+b",
		PageDown:   "ctrl+f",

		YAML: "y",
		Copy: "c",

		Quit:    "q",
		Refresh: "r",
		Back:    "esc",
		Details: "d",
	}
}

// GetKeys returns the current keyboard configuration
func GetKeys() *Keys {
	return Default()
}
