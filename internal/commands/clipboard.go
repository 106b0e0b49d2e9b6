package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/kflux/internal/messages"
	"github.com/renato0307/kflux/internal/types"
)

// CopyToClipboard copies text and returns a user-friendly message
func CopyToClipboard(clip types.Clipboard, what, text string) (string, error) {
	if clip == nil {
		return "", fmt.Errorf("clipboard is not available")
	}
	if err := clip(text); err != nil {
		return "", messages.WrapError(err, "failed to copy %s to clipboard", what)
	}
	return fmt.Sprintf("Copied %s %s", what, text), nil
}

func copyCmd(clip types.Clipboard, what, text string) tea.Cmd {
	if text == "" {
		return messages.ErrorCmd("Nothing to copy")
	}
	msg, err := CopyToClipboard(clip, what, text)
	if err != nil {
		return messages.ErrorCmd("Copy failed: %v", err)
	}
	return messages.SuccessCmd("%s", msg)
}

// CopyLocatorCommand copies the node's resource locator
func CopyLocatorCommand() ExecuteFunc {
	return func(ctx CommandContext) tea.Cmd {
		return copyCmd(ctx.Clipboard, "locator", ctx.Node.ResourceURI)
	}
}

// CopyLinkCommand copies the URL a documentation node opens
func CopyLinkCommand() ExecuteFunc {
	return func(ctx CommandContext) tea.Cmd {
		return copyCmd(ctx.Clipboard, "link", ctx.Node.Command.Arg())
	}
}
