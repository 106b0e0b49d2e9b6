package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renato0307/kflux/internal/k8s"
	"github.com/renato0307/kflux/internal/logging"
	"github.com/renato0307/kflux/internal/render"
	"github.com/renato0307/kflux/internal/tree"
	"github.com/renato0307/kflux/internal/ui"
)

type treeOptions struct {
	output    string
	noProbe   bool
	expandAll bool
}

func newTreeCmd(opts *options) *cobra.Command {
	to := &treeOptions{}

	validArgs := make([]string, 0, len(tree.Views))
	for _, v := range tree.Views {
		validArgs = append(validArgs, string(v))
	}

	cmd := &cobra.Command{
		Use:   "tree [view]",
		Short: "Print a view as text, JSON or YAML",
		Long: `Print one view (clusters, applications, sources or docs; default clusters).

Cluster nodes are probed for Flux before printing unless --no-probe is set.`,
		Example: `  kflux tree
  kflux tree applications -o yaml
  kflux tree clusters --expand-all --no-probe`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: validArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := tree.ViewClusters
			if len(args) == 1 {
				v, err := tree.ParseView(args[0])
				if err != nil {
					return err
				}
				view = v
			}

			format, err := render.ParseFormat(to.output)
			if err != nil {
				return err
			}

			client, err := opts.client(cmd.Context())
			if err != nil {
				return err
			}

			nodes := buildView(cmd.Context(), client, opts.prober(client), view, !to.noProbe)

			renderOpts := []render.Option{render.WithStyles(render.StylesFromTheme(ui.GetTheme(opts.cfg.Theme)))}
			if to.expandAll {
				renderOpts = append(renderOpts, render.WithExpandAll())
			}
			if err := render.Write(cmd.OutOrStdout(), format, nodes, renderOpts...); err != nil {
				return fmt.Errorf("failed to write %s: %w", view, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&to.output, "output", "o", string(render.FormatText), "Output format (text, json, yaml)")
	cmd.Flags().BoolVar(&to.noProbe, "no-probe", false, "Skip Flux detection")
	cmd.Flags().BoolVar(&to.expandAll, "expand-all", false, "Print collapsed nodes with their children")
	return cmd
}

// buildView builds view and, when probe is set, runs the Flux second pass
// before returning. The clusters view gets every cluster probed; the
// application and source views get the Flux notice when the current cluster
// has no Flux.
func buildView(ctx context.Context, client k8s.Client, prober tree.Prober, view tree.View, probe bool) []*tree.Node {
	tc := logging.Start("build view", "view", view)
	nodes := tree.Providers(client)[view].Build(ctx)
	logging.EndWithCount(tc, tree.Count(nodes))

	if !probe {
		return nodes
	}

	switch {
	case view == tree.ViewClusters:
		for _, status := range prober.ProbeAll(ctx, tree.Targets(nodes)) {
			tree.ApplyFluxStatus(nodes, status)
		}
	case view.ShowsFluxNotice():
		current, err := client.GetCurrentContext(ctx)
		if err != nil || current == "" {
			return nodes
		}
		status := prober.Probe(ctx, tree.ProbeTarget{
			NodeID:      tree.ClusterNodeID(current),
			ContextName: current,
			Current:     true,
		})
		if status.CurrentWithoutFlux() {
			nodes = append([]*tree.Node{tree.NoticeNode(tree.FluxNotInstalledMessage)}, nodes...)
		}
	}
	return nodes
}
