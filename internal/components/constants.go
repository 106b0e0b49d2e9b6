package components

import "time"

// UI component constants
const (
	// FullScreenReservedLines is the number of lines reserved for the title
	// and separator of full-screen views like YAML output.
	FullScreenReservedLines = 3

	// StatusBarDisplayDuration is how long status messages (success, error,
	// info) are displayed before automatically clearing.
	StatusBarDisplayDuration = 5 * time.Second

	// DetailsPanelRatio is the share of the width given to the details panel
	DetailsPanelRatio = 0.45

	// MinTreeWidth keeps the tree usable on narrow terminals; below it the
	// details panel is hidden.
	MinTreeWidth = 40
)
