package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/kflux/internal/k8s"
	"github.com/renato0307/kflux/internal/tree"
	"github.com/renato0307/kflux/internal/types"
)

// CommandContext provides what a command runs against
type CommandContext struct {
	Node      *tree.Node
	Client    k8s.Client
	Clipboard types.Clipboard
	// CurrentContext is the active kubeconfig context as last rendered
	CurrentContext string
}

// ExecuteFunc runs a command and returns a Bubble Tea command
type ExecuteFunc func(ctx CommandContext) tea.Cmd

// Command is one thing a node can do
type Command struct {
	Name        string
	Description string
	Execute     ExecuteFunc
}
