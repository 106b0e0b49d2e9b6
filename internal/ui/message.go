package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// MessageType is the severity of a status line message
type MessageType int

const (
	MessageTypeInfo MessageType = iota
	MessageTypeSuccess
	MessageTypeError
	MessageTypeLoading // Loading state with spinner
)

// RenderMessage renders a status message styled by its type. Long messages
// are truncated to fit the terminal width.
func RenderMessage(text string, msgType MessageType, theme *Theme, spinnerView string, width int) string {
	if text == "" {
		return ""
	}

	// Max length = terminal width - prefix (2) - margin (5)
	maxMessageLength := max(width-7, 20)
	if runes := []rune(text); len(runes) > maxMessageLength {
		text = string(runes[:maxMessageLength-1]) + "…"
	}

	bullet := "⏺ "
	prefix := bullet
	var messageColor lipgloss.AdaptiveColor

	switch msgType {
	case MessageTypeSuccess:
		messageColor = theme.MessageSuccess
	case MessageTypeError:
		messageColor = theme.MessageError
	case MessageTypeLoading:
		messageColor = theme.MessageLoading
		if spinnerView != "" {
			prefix = spinnerView + " "
		}
	default:
		messageColor = theme.MessageInfo
	}

	return lipgloss.NewStyle().Foreground(messageColor).Render(prefix + text)
}
