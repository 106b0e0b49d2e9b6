package main

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/renato0307/kflux/internal/app"
	"github.com/renato0307/kflux/internal/config"
	"github.com/renato0307/kflux/internal/k8s"
	"github.com/renato0307/kflux/internal/k8s/dummy"
	"github.com/renato0307/kflux/internal/logging"
	"github.com/renato0307/kflux/internal/tree"
	"github.com/renato0307/kflux/internal/types"
	"github.com/renato0307/kflux/internal/ui"
)

// options carries the resolved configuration to every subcommand
type options struct {
	cfg config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "kflux",
		Short: "Browse Flux GitOps state across Kubernetes clusters",
		Long: `kflux shows the clusters of your kubeconfig, the Flux Kustomizations and
HelmReleases of the current cluster and its Flux sources as expandable trees.

Run without a subcommand to start the terminal UI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = logging.Shutdown()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}

	config.AddFlags(cmd.PersistentFlags())
	cmd.AddCommand(newTreeCmd(opts), newVersionCmd())
	return cmd
}

func (o *options) load(cmd *cobra.Command) error {
	cfg, err := config.Load(config.NewViper(config.DefaultPaths()...), cmd.Flags())
	if err != nil {
		return err
	}
	if err := logging.Init(cfg.Logging()); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	o.cfg = cfg
	logging.Info("configuration loaded", "file", cfg.ConfigFile, "dummy", cfg.Dummy, "theme", cfg.Theme)
	return nil
}

// client builds the collaborator. --context only applies to this process;
// the kubeconfig current-context is left alone.
func (o *options) client(ctx context.Context) (k8s.Client, error) {
	var client k8s.Client
	if o.cfg.Dummy {
		client = dummy.NewClient()
	} else {
		client = k8s.NewKubeClient(k8s.KubeClientConfig{
			Kubeconfig:    o.cfg.Kubeconfig,
			Context:       o.cfg.Context,
			FluxNamespace: o.cfg.FluxNamespace,
			PoolSize:      o.cfg.PoolSize,
		})
	}

	// Validates the name; with an override in place nothing is written
	if o.cfg.Context != "" {
		if err := client.SetCurrentContext(ctx, o.cfg.Context); err != nil {
			return nil, fmt.Errorf("failed to switch to context %s: %w", o.cfg.Context, err)
		}
	}
	return client, nil
}

func (o *options) prober(client k8s.Client) tree.Prober {
	return tree.Prober{
		Client:      client,
		Timeout:     o.cfg.ProbeTimeout,
		Concurrency: o.cfg.ProbeConcurrency,
	}
}

func runTUI(ctx context.Context, opts *options) error {
	client, err := opts.client(ctx)
	if err != nil {
		return err
	}

	appCtx := types.NewAppContext(ui.GetTheme(opts.cfg.Theme), client, opts.prober(client), clipboard.WriteAll)
	p := tea.NewProgram(app.NewModel(appCtx), tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
