package k8s

import "context"

// Client is the cluster collaborator used to build trees. An empty
// contextName selects the current kubeconfig context.
type Client interface {
	GetClusters(ctx context.Context) ([]Cluster, error)
	GetCurrentContext(ctx context.Context) (string, error)
	SetCurrentContext(ctx context.Context, contextName string) error

	GetKustomizations(ctx context.Context, contextName string) ([]Kustomization, error)
	GetHelmReleases(ctx context.Context, contextName string) ([]HelmRelease, error)
	GetFluxDeployments(ctx context.Context, contextName string) ([]Deployment, error)
	GetSources(ctx context.Context, contextName string) ([]Source, error)

	IsFluxInstalled(ctx context.Context, contextName string) (bool, error)
	GetResourceYAML(ctx context.Context, ref ResourceRef) (string, error)
}

// Resetter is implemented by clients that cache cluster connections. Reset
// drops them so the next call picks up kubeconfig edits.
type Resetter interface {
	Reset()
}

var _ Resetter = (*KubeClient)(nil)
