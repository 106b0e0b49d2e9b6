package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/kflux/internal/tree"
)

// Registry maps node commands and context actions to their implementations
type Registry struct {
	nodeCommands map[tree.CommandID]Command
	actions      map[tree.Action]Command
}

// NewRegistry creates a registry with every command a tree node can carry
func NewRegistry() *Registry {
	return &Registry{
		nodeCommands: map[tree.CommandID]Command{
			tree.CommandSetCurrentContext: {
				Name:        "set-context",
				Description: "Make the cluster the current context",
				Execute:     SetContextCommand(),
			},
			tree.CommandOpenResource: {
				Name:        "yaml",
				Description: "View the resource YAML",
				Execute:     YAMLCommand(),
			},
			tree.CommandOpenLink: {
				Name:        "copy-link",
				Description: "Copy the link to the clipboard",
				Execute:     CopyLinkCommand(),
			},
		},
		actions: map[tree.Action]Command{
			tree.ActionSetCurrentContext: {
				Name:        "set-context",
				Description: "Make the cluster the current context",
				Execute:     SetContextCommand(),
			},
			tree.ActionViewYAML: {
				Name:        "yaml",
				Description: "View the resource YAML",
				Execute:     YAMLCommand(),
			},
			tree.ActionCopyLocator: {
				Name:        "copy-locator",
				Description: "Copy the resource locator to the clipboard",
				Execute:     CopyLocatorCommand(),
			},
			tree.ActionCopyLink: {
				Name:        "copy-link",
				Description: "Copy the link to the clipboard",
				Execute:     CopyLinkCommand(),
			},
		},
	}
}

// Run executes the selected node's own command. Nodes without one return nil.
func (r *Registry) Run(ctx CommandContext) tea.Cmd {
	if ctx.Node == nil || ctx.Node.Command == nil {
		return nil
	}
	cmd, ok := r.nodeCommands[ctx.Node.Command.ID]
	if !ok {
		return nil
	}
	return cmd.Execute(ctx)
}

// RunAction executes action when the node's context tag enables it
func (r *Registry) RunAction(action tree.Action, ctx CommandContext) tea.Cmd {
	if ctx.Node == nil || !ctx.Node.Context.Allows(action) {
		return nil
	}
	cmd, ok := r.actions[action]
	if !ok {
		return nil
	}
	return cmd.Execute(ctx)
}

// Lookup returns the command behind action, for help and hints
func (r *Registry) Lookup(action tree.Action) (Command, bool) {
	cmd, ok := r.actions[action]
	return cmd, ok
}
