package tree

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/renato0307/kflux/internal/k8s"
)

// stubClient is a scriptable k8s.Client
type stubClient struct {
	mu    sync.Mutex
	calls []string

	clusters    []k8s.Cluster
	clustersErr error
	current     string
	currentErr  error

	deployments    []k8s.Deployment
	deploymentsErr error

	kustomizations    []k8s.Kustomization
	kustomizationsErr error
	helmReleases      []k8s.HelmRelease
	helmReleasesErr   error
	sources           []k8s.Source
	sourcesErr        error

	flux       map[string]bool
	fluxErr    map[string]error
	probeDelay time.Duration
	inFlight   atomic.Int32
	maxFlight  atomic.Int32
}

var _ k8s.Client = (*stubClient)(nil)

func (s *stubClient) record(call string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, call)
}

func (s *stubClient) called(call string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.calls {
		if c == call {
			return true
		}
	}
	return false
}

func (s *stubClient) GetClusters(context.Context) ([]k8s.Cluster, error) {
	s.record("GetClusters")
	return s.clusters, s.clustersErr
}

func (s *stubClient) GetCurrentContext(context.Context) (string, error) {
	s.record("GetCurrentContext")
	return s.current, s.currentErr
}

func (s *stubClient) SetCurrentContext(_ context.Context, name string) error {
	s.record("SetCurrentContext")
	s.current = name
	return nil
}

func (s *stubClient) GetKustomizations(context.Context, string) ([]k8s.Kustomization, error) {
	s.record("GetKustomizations")
	return s.kustomizations, s.kustomizationsErr
}

func (s *stubClient) GetHelmReleases(context.Context, string) ([]k8s.HelmRelease, error) {
	s.record("GetHelmReleases")
	return s.helmReleases, s.helmReleasesErr
}

func (s *stubClient) GetFluxDeployments(context.Context, string) ([]k8s.Deployment, error) {
	s.record("GetFluxDeployments")
	return s.deployments, s.deploymentsErr
}

func (s *stubClient) GetSources(context.Context, string) ([]k8s.Source, error) {
	s.record("GetSources")
	return s.sources, s.sourcesErr
}

func (s *stubClient) IsFluxInstalled(ctx context.Context, name string) (bool, error) {
	s.record("IsFluxInstalled")

	n := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		m := s.maxFlight.Load()
		if n <= m || s.maxFlight.CompareAndSwap(m, n) {
			break
		}
	}

	if s.probeDelay > 0 {
		select {
		case <-time.After(s.probeDelay):
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
	if err := s.fluxErr[name]; err != nil {
		return false, err
	}
	return s.flux[name], nil
}

func (s *stubClient) GetResourceYAML(context.Context, k8s.ResourceRef) (string, error) {
	s.record("GetResourceYAML")
	return "", nil
}

func threeClusters() []k8s.Cluster {
	return []k8s.Cluster{
		{Name: "prod", ClusterName: "prod", Server: "https://prod.example.com", User: "admin"},
		{Name: "dev", ClusterName: "dev", Server: "https://dev.example.com", User: "admin"},
		{Name: "staging", ClusterName: "staging", Server: "https://staging.example.com"},
	}
}

func fluxControllers() []k8s.Deployment {
	return []k8s.Deployment{
		{ResourceMetadata: k8s.ResourceMetadata{Namespace: "flux-system", Name: "helm-controller"}, Ready: "1/1", UpToDate: 1, Available: 1},
		{ResourceMetadata: k8s.ResourceMetadata{Namespace: "flux-system", Name: "source-controller"}, Ready: "0/1"},
	}
}
