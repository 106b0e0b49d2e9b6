package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/kflux/internal/k8s"
	"github.com/renato0307/kflux/internal/logging"
	"github.com/renato0307/kflux/internal/messages"
	"github.com/renato0307/kflux/internal/types"
)

// SetContextCommand asks the app to switch to the node's context
func SetContextCommand() ExecuteFunc {
	return func(ctx CommandContext) tea.Cmd {
		name := ctx.Node.Command.Arg()
		if name == "" {
			name = ctx.Node.ContextName
		}
		if name == "" {
			return messages.ErrorCmd("Node has no context")
		}
		if ctx.Node.Current || name == ctx.CurrentContext {
			return messages.InfoCmd("Already using context %s", name)
		}

		return func() tea.Msg {
			return types.ContextSwitchMsg{ContextName: name}
		}
	}
}

// SwitchContext rewrites the kubeconfig current context and reports the
// outcome as ContextSwitchCompleteMsg or ContextSwitchFailedMsg
func SwitchContext(client k8s.Client, oldContext, newContext string) tea.Cmd {
	return tea.Batch(
		messages.LoadingCmd("Switching to context %s", newContext),
		func() tea.Msg {
			if err := client.SetCurrentContext(context.Background(), newContext); err != nil {
				logging.Warn("context switch failed", "context", newContext, "error", err, "reason", k8s.Reason(err))
				return types.ContextSwitchFailedMsg{Context: newContext, Err: err}
			}
			return types.ContextSwitchCompleteMsg{OldContext: oldContext, NewContext: newContext}
		},
	)
}
