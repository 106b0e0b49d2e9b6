package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/kflux/internal/k8s"
	"github.com/renato0307/kflux/internal/logging"
	"github.com/renato0307/kflux/internal/messages"
	"github.com/renato0307/kflux/internal/types"
)

// YAMLCommand fetches the resource behind the node's locator and shows it
// full screen
func YAMLCommand() ExecuteFunc {
	return func(ctx CommandContext) tea.Cmd {
		uri := ctx.Node.ResourceURI
		if uri == "" {
			uri = ctx.Node.Command.Arg()
		}

		ref, err := k8s.ParseResourceURI(uri)
		if err != nil {
			return messages.ErrorCmd("Invalid resource locator %q: %v", uri, err)
		}

		client := ctx.Client
		return func() tea.Msg {
			tc := logging.Start("get resource yaml", "resource", ref.String())
			content, err := client.GetResourceYAML(context.Background(), ref)
			logging.End(tc)
			if err != nil {
				logging.Warn("get resource yaml failed", "uri", uri, "error", err, "reason", k8s.Reason(err))
				return types.ErrorStatusMsg(fmt.Sprintf("Failed to get %s: %v", ref, err))
			}
			return types.ShowFullScreenMsg{Title: ref.String(), Content: content}
		}
	}
}
