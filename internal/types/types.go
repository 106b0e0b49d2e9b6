package types

import (
	"time"

	"github.com/renato0307/kflux/internal/tree"
	"github.com/renato0307/kflux/internal/ui"
)

// AppState holds shared application state
type AppState struct {
	View        tree.View
	LastRefresh time.Time
	RefreshTime time.Duration
	Width       int
	Height      int
}

// Tree messages

// TreeLoadedMsg carries a freshly built view. Generation identifies the
// refresh that produced it.
type TreeLoadedMsg struct {
	View       tree.View
	Nodes      []*tree.Node
	Duration   time.Duration
	Generation int
}

// FluxStatusMsg is the result of one flux probe. Results whose Generation
// no longer matches the clusters view are stale.
type FluxStatusMsg struct {
	Status     tree.FluxStatus
	Generation int
}

// RefreshMsg asks the app to rebuild every view
type RefreshMsg struct{}

// Status messages

type StatusMsg struct {
	Message string
	Type    ui.MessageType
}

type ClearStatusMsg struct {
	MessageID int // Only clear if this matches the current message ID
}

// InfoMsg creates an info status message
func InfoMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: ui.MessageTypeInfo}
}

// SuccessMsg creates a success status message
func SuccessMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: ui.MessageTypeSuccess}
}

// ErrorStatusMsg creates an error status message
func ErrorStatusMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: ui.MessageTypeError}
}

// LoadingMsg creates a loading status message (with spinner)
func LoadingMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: ui.MessageTypeLoading}
}

// ShowFullScreenMsg triggers display of full-screen content
type ShowFullScreenMsg struct {
	Title   string
	Content string
}

// ExitFullScreenMsg returns from full-screen view to the tree
type ExitFullScreenMsg struct{}

// Context management messages

// ContextSwitchMsg initiates a context switch
type ContextSwitchMsg struct {
	ContextName string
}

// ContextSwitchCompleteMsg signals successful context switch
type ContextSwitchCompleteMsg struct {
	OldContext string
	NewContext string
}

// ContextSwitchFailedMsg signals a failed context switch
type ContextSwitchFailedMsg struct {
	Context string
	Err     error
}
