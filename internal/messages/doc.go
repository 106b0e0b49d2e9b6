// Package messages defines how kflux reports failures and outcomes in each
// layer.
//
// # Collaborator Layer (internal/k8s)
//
// Return standard Go errors wrapped with the failing operation:
//
//	list := &helmv2.HelmReleaseList{}
//	if err := c.List(ctx, list); err != nil {
//	    return nil, fmt.Errorf("failed to list helm releases: %w", err)
//	}
//
// internal/k8s sits below this package, so it uses fmt.Errorf directly.
//
// # Tree Layer (internal/tree)
//
// Never return errors. A listing that fails contributes no nodes, a failed
// probe means Flux is not installed. The failure is logged with a coarse
// reason (k8s.Reason) and the tree renders with what it has:
//
//	kustomizations, err := p.client.GetKustomizations(ctx, current)
//	if err != nil {
//	    swallow("get kustomizations", err, "context", current)
//	}
//
// # Action Layer (internal/commands, internal/app)
//
// User-triggered actions (switching context, viewing YAML, copying a
// locator) return a tea.Cmd that produces a types.StatusMsg:
//
//	msg, err := CopyToClipboard(ctx.Clipboard, "locator", uri)
//	if err != nil {
//	    return messages.ErrorCmd("Copy failed: %v", err)
//	}
//	return messages.SuccessCmd("%s", msg)
//
// Errors these commands build themselves are wrapped with
// messages.WrapError, which takes a format string.
//
// # UI Layer (internal/components)
//
// Display status messages through the UserMessage component. Components do
// not format errors; they receive pre-formatted StatusMsg values:
//
//	case types.StatusMsg:
//	    m.userMessage.SetMessage(msg.Message, msg.Type)
//	    return m, tea.Tick(components.StatusBarDisplayDuration, func(time.Time) tea.Msg {
//	        return types.ClearStatusMsg{MessageID: id}
//	    })
//
// # Message Guidelines
//
// Be specific about what failed and on which resource, for example
// "Failed to switch to prod-eu: context not found". Keep stack traces and
// API internals in the log file.
package messages
