// Package dummy provides an in-memory k8s.Client for development and demos.
package dummy

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	apimeta "k8s.io/apimachinery/pkg/api/meta"
	"k8s.io/apimachinery/pkg/runtime/schema"

	"github.com/renato0307/kflux/internal/k8s"
)

// Client serves fixed sample data for three clusters: kind-dev (current,
// Flux installed), prod-eu (no Flux) and staging (Flux installed)
type Client struct {
	mu         sync.Mutex
	current    string
	clusters   []*clusterData
	probeDelay time.Duration
}

var _ k8s.Client = (*Client)(nil)

// Option configures a dummy Client
type Option func(*Client)

// WithProbeDelay makes IsFluxInstalled take d, to exercise the asynchronous
// second pass
func WithProbeDelay(d time.Duration) Option {
	return func(c *Client) {
		c.probeDelay = d
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		current:  "kind-dev",
		clusters: sampleData(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// find resolves contextName ("" means current). Must be called with c.mu held.
func (c *Client) find(contextName string) (*clusterData, error) {
	if contextName == "" {
		contextName = c.current
	}
	for _, cd := range c.clusters {
		if cd.cluster.Name == contextName {
			return cd, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", k8s.ErrContextNotFound, contextName)
}

// requireFlux mimics the API server answer for a kind whose CRD is missing
func requireFlux(cd *clusterData, group, kind string) error {
	if cd.fluxInstalled {
		return nil
	}
	return &apimeta.NoKindMatchError{
		GroupKind:        schema.GroupKind{Group: group, Kind: kind},
		SearchedVersions: []string{"v1"},
	}
}

func (c *Client) GetClusters(_ context.Context) ([]k8s.Cluster, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]k8s.Cluster, 0, len(c.clusters))
	for _, cd := range c.clusters {
		out = append(out, cd.cluster)
	}
	return out, nil
}

func (c *Client) GetCurrentContext(_ context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current, nil
}

func (c *Client) SetCurrentContext(_ context.Context, contextName string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.find(contextName); err != nil {
		return err
	}
	c.current = contextName
	return nil
}

func (c *Client) GetKustomizations(_ context.Context, contextName string) ([]k8s.Kustomization, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cd, err := c.find(contextName)
	if err != nil {
		return nil, err
	}
	if err := requireFlux(cd, "kustomize.toolkit.fluxcd.io", k8s.KindKustomization); err != nil {
		return nil, fmt.Errorf("failed to list kustomizations: %w", err)
	}
	return slices.Clone(cd.kustomizations), nil
}

func (c *Client) GetHelmReleases(_ context.Context, contextName string) ([]k8s.HelmRelease, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cd, err := c.find(contextName)
	if err != nil {
		return nil, err
	}
	if err := requireFlux(cd, "helm.toolkit.fluxcd.io", k8s.KindHelmRelease); err != nil {
		return nil, fmt.Errorf("failed to list helm releases: %w", err)
	}
	return slices.Clone(cd.helmReleases), nil
}

func (c *Client) GetFluxDeployments(_ context.Context, contextName string) ([]k8s.Deployment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cd, err := c.find(contextName)
	if err != nil {
		return nil, err
	}
	return slices.Clone(cd.deployments), nil
}

func (c *Client) GetSources(_ context.Context, contextName string) ([]k8s.Source, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cd, err := c.find(contextName)
	if err != nil {
		return nil, err
	}
	if err := requireFlux(cd, "source.toolkit.fluxcd.io", k8s.KindGitRepository); err != nil {
		return nil, fmt.Errorf("failed to list git repositories: %w", err)
	}
	return slices.Clone(cd.sources), nil
}

func (c *Client) IsFluxInstalled(ctx context.Context, contextName string) (bool, error) {
	if c.probeDelay > 0 {
		select {
		case <-time.After(c.probeDelay):
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	cd, err := c.find(contextName)
	if err != nil {
		return false, err
	}
	return cd.fluxInstalled, nil
}

func (c *Client) GetResourceYAML(_ context.Context, ref k8s.ResourceRef) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cd, err := c.find(ref.Context)
	if err != nil {
		return "", err
	}

	obj, err := manifestFor(cd, ref)
	if err != nil {
		return "", err
	}
	return renderYAML(obj)
}
