package k8s

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	helmv2 "github.com/fluxcd/helm-controller/api/v2"
	kustomizev1 "github.com/fluxcd/kustomize-controller/api/v1"
	sourcev1 "github.com/fluxcd/source-controller/api/v1"
	appsv1 "k8s.io/api/apps/v1"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	"k8s.io/client-go/tools/clientcmd"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/renato0307/kflux/internal/logging"
)

// KubeClientConfig configures a KubeClient
type KubeClientConfig struct {
	// Kubeconfig is an explicit kubeconfig path; empty merges $KUBECONFIG
	// or falls back to ~/.kube/config
	Kubeconfig string
	// Context overrides the kubeconfig current context for this process
	// only. Context switches then move the override and leave the kubeconfig
	// untouched.
	Context       string
	FluxNamespace string
	PoolSize      int
	Timeout       time.Duration
	// Factory overrides how per-context clients are built (tests use the
	// controller-runtime fake client)
	Factory ClientFactory
}

// KubeClient implements Client against real clusters using one cached
// controller-runtime client per kubeconfig context
type KubeClient struct {
	rules         *clientcmd.ClientConfigLoadingRules
	fluxNamespace string
	pool          *ClientPool

	mu       sync.RWMutex
	override string
}

var _ Client = (*KubeClient)(nil)

// NewKubeClient creates a KubeClient. No connection is made until the first
// call that needs a cluster.
func NewKubeClient(cfg KubeClientConfig) *KubeClient {
	if cfg.FluxNamespace == "" {
		cfg.FluxNamespace = DefaultFluxNamespace
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultRequestTimeout
	}

	rules := newLoadingRules(cfg.Kubeconfig)
	if cfg.Factory == nil {
		cfg.Factory = NewRESTClientFactory(rules, cfg.Timeout)
	}

	return &KubeClient{
		rules:         rules,
		fluxNamespace: cfg.FluxNamespace,
		pool:          NewClientPool(cfg.PoolSize, cfg.Factory),
		override:      cfg.Context,
	}
}

// NewRESTClientFactory builds clients from the kubeconfig the rules load,
// with the given per-request timeout
func NewRESTClientFactory(rules *clientcmd.ClientConfigLoadingRules, timeout time.Duration) ClientFactory {
	return func(contextName string) (client.Client, error) {
		overrides := &clientcmd.ConfigOverrides{CurrentContext: contextName}

		restConfig, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
			rules, overrides).ClientConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to build rest config: %w", err)
		}
		restConfig.Timeout = timeout

		c, err := client.New(restConfig, client.Options{Scheme: Scheme})
		if err != nil {
			return nil, fmt.Errorf("failed to create client: %w", err)
		}
		return c, nil
	}
}

// Reset drops every cached API client so the next call rebuilds it from
// the kubeconfig as it is now
func (k *KubeClient) Reset() {
	logging.Debug("reset client pool", "cached", k.pool.Len())
	k.pool.Reset()
}

func (k *KubeClient) GetClusters(_ context.Context) ([]Cluster, error) {
	return parseKubeconfig(k.rules)
}

func (k *KubeClient) GetCurrentContext(_ context.Context) (string, error) {
	current, err := k.currentContext()
	if err != nil {
		return "", err
	}
	k.pool.SetActive(current)
	return current, nil
}

func (k *KubeClient) currentContext() (string, error) {
	k.mu.RLock()
	override := k.override
	k.mu.RUnlock()

	if override != "" {
		return override, nil
	}
	return getCurrentContext(k.rules)
}

// SetCurrentContext rewrites the kubeconfig current-context, unless the
// client was started with a context override, which is moved instead
func (k *KubeClient) SetCurrentContext(_ context.Context, contextName string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	var err error
	logging.Time("set current context", func() {
		if k.override != "" {
			if err = hasContext(k.rules, contextName); err == nil {
				k.override = contextName
			}
			return
		}
		err = setCurrentContext(k.rules, contextName)
	})
	if err != nil {
		return err
	}
	k.pool.SetActive(contextName)
	return nil
}

// clientFor returns the pooled client for contextName, resolving "" to the
// current context
func (k *KubeClient) clientFor(contextName string) (client.Client, string, error) {
	if contextName == "" {
		current, err := k.currentContext()
		if err != nil {
			return nil, "", err
		}
		if current == "" {
			return nil, "", fmt.Errorf("%w: no current context", ErrContextNotFound)
		}
		contextName = current
	}

	c, err := k.pool.Get(contextName)
	if err != nil {
		return nil, contextName, err
	}
	return c, contextName, nil
}

func (k *KubeClient) GetKustomizations(ctx context.Context, contextName string) ([]Kustomization, error) {
	c, name, err := k.clientFor(contextName)
	if err != nil {
		return nil, err
	}

	tc := logging.Start("list kustomizations", "context", name)
	list := &kustomizev1.KustomizationList{}
	if err := c.List(ctx, list); err != nil {
		return nil, fmt.Errorf("failed to list kustomizations: %w", err)
	}

	result := make([]Kustomization, 0, len(list.Items))
	for i := range list.Items {
		result = append(result, transformKustomization(&list.Items[i]))
	}
	sortResources(result)
	logging.EndWithCount(tc, len(result))

	return result, nil
}

func (k *KubeClient) GetHelmReleases(ctx context.Context, contextName string) ([]HelmRelease, error) {
	c, name, err := k.clientFor(contextName)
	if err != nil {
		return nil, err
	}

	tc := logging.Start("list helm releases", "context", name)
	list := &helmv2.HelmReleaseList{}
	if err := c.List(ctx, list); err != nil {
		return nil, fmt.Errorf("failed to list helm releases: %w", err)
	}

	result := make([]HelmRelease, 0, len(list.Items))
	for i := range list.Items {
		result = append(result, transformHelmRelease(&list.Items[i]))
	}
	sortResources(result)
	logging.EndWithCount(tc, len(result))

	return result, nil
}

func (k *KubeClient) GetFluxDeployments(ctx context.Context, contextName string) ([]Deployment, error) {
	c, name, err := k.clientFor(contextName)
	if err != nil {
		return nil, err
	}

	tc := logging.Start("list flux deployments", "context", name, "namespace", k.fluxNamespace)
	list := &appsv1.DeploymentList{}
	if err := c.List(ctx, list, client.InNamespace(k.fluxNamespace)); err != nil {
		return nil, fmt.Errorf("failed to list deployments in %s: %w", k.fluxNamespace, err)
	}

	result := make([]Deployment, 0, len(list.Items))
	for i := range list.Items {
		result = append(result, transformDeployment(&list.Items[i]))
	}
	sortResources(result)
	logging.EndWithCount(tc, len(result))

	return result, nil
}

// GetSources lists git repositories, helm repositories and buckets. A kind
// that fails to list is skipped; its error is joined into the returned error
// alongside the sources that did list.
func (k *KubeClient) GetSources(ctx context.Context, contextName string) ([]Source, error) {
	c, name, err := k.clientFor(contextName)
	if err != nil {
		return nil, err
	}

	tc := logging.Start("list sources", "context", name)
	var result []Source
	var errs []error

	gitRepos := &sourcev1.GitRepositoryList{}
	if err := c.List(ctx, gitRepos); err != nil {
		errs = append(errs, fmt.Errorf("failed to list git repositories: %w", err))
	}
	for i := range gitRepos.Items {
		result = append(result, transformGitRepository(&gitRepos.Items[i]))
	}

	helmRepos := &sourcev1.HelmRepositoryList{}
	if err := c.List(ctx, helmRepos); err != nil {
		errs = append(errs, fmt.Errorf("failed to list helm repositories: %w", err))
	}
	for i := range helmRepos.Items {
		result = append(result, transformHelmRepository(&helmRepos.Items[i]))
	}

	buckets := &sourcev1.BucketList{}
	if err := c.List(ctx, buckets); err != nil {
		errs = append(errs, fmt.Errorf("failed to list buckets: %w", err))
	}
	for i := range buckets.Items {
		result = append(result, transformBucket(&buckets.Items[i]))
	}

	sortSources(result)
	logging.EndWithCount(tc, len(result))

	return result, errors.Join(errs...)
}

// IsFluxInstalled reports whether any Flux toolkit CRD exists on the cluster
func (k *KubeClient) IsFluxInstalled(ctx context.Context, contextName string) (bool, error) {
	c, _, err := k.clientFor(contextName)
	if err != nil {
		return false, err
	}

	for _, name := range fluxCRDs {
		crd := &apiextensionsv1.CustomResourceDefinition{}
		err := c.Get(ctx, client.ObjectKey{Name: name}, crd)
		if err == nil {
			return true, nil
		}
		if !IsNotFound(err) {
			return false, fmt.Errorf("failed to get crd %s: %w", name, err)
		}
	}

	return false, nil
}

func (k *KubeClient) GetResourceYAML(ctx context.Context, ref ResourceRef) (string, error) {
	c, _, err := k.clientFor(ref.Context)
	if err != nil {
		return "", err
	}

	obj, err := newObjectForKind(ref.Kind)
	if err != nil {
		return "", err
	}

	if err := c.Get(ctx, client.ObjectKey{Namespace: ref.Namespace, Name: ref.Name}, obj); err != nil {
		return "", fmt.Errorf("failed to get %s: %w", ref, err)
	}

	return FormatYAML(obj)
}
