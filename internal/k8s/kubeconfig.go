package k8s

import (
	"errors"
	"fmt"
	"sort"

	"k8s.io/client-go/tools/clientcmd"
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"
)

// ErrContextNotFound is returned when a context is not in the kubeconfig
var ErrContextNotFound = errors.New("context not found in kubeconfig")

// newLoadingRules returns kubectl's loading rules. An explicit path is used
// alone; otherwise every $KUBECONFIG entry is merged, falling back to
// ~/.kube/config.
func newLoadingRules(explicit string) *clientcmd.ClientConfigLoadingRules {
	rules := clientcmd.NewDefaultClientConfigLoadingRules()
	rules.ExplicitPath = explicit
	return rules
}

func loadKubeconfig(rules *clientcmd.ClientConfigLoadingRules) (*clientcmdapi.Config, error) {
	config, err := rules.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load kubeconfig: %w", err)
	}
	return config, nil
}

// parseKubeconfig loads the merged kubeconfig and joins every context with
// its cluster
func parseKubeconfig(rules *clientcmd.ClientConfigLoadingRules) ([]Cluster, error) {
	config, err := loadKubeconfig(rules)
	if err != nil {
		return nil, err
	}

	clusters := make([]Cluster, 0, len(config.Contexts))
	for name, ctx := range config.Contexts {
		c := Cluster{
			Name:        name,
			ClusterName: ctx.Cluster,
			User:        ctx.AuthInfo,
			Namespace:   ctx.Namespace,
		}
		if entry, ok := config.Clusters[ctx.Cluster]; ok {
			c.Server = entry.Server
			c.CertificateAuthority = entry.CertificateAuthority
			c.InsecureSkipTLSVerify = entry.InsecureSkipTLSVerify
		}
		clusters = append(clusters, c)
	}

	// Map iteration order is random
	sort.Slice(clusters, func(i, j int) bool {
		return clusters[i].Name < clusters[j].Name
	})

	return clusters, nil
}

// getCurrentContext returns the current context of the merged kubeconfig
func getCurrentContext(rules *clientcmd.ClientConfigLoadingRules) (string, error) {
	config, err := loadKubeconfig(rules)
	if err != nil {
		return "", err
	}
	return config.CurrentContext, nil
}

// hasContext reports whether contextName is in the merged kubeconfig
func hasContext(rules *clientcmd.ClientConfigLoadingRules, contextName string) error {
	config, err := loadKubeconfig(rules)
	if err != nil {
		return err
	}
	if _, ok := config.Contexts[contextName]; !ok {
		return fmt.Errorf("%w: %s", ErrContextNotFound, contextName)
	}
	return nil
}

// setCurrentContext writes current-context the way kubectl config
// use-context does: into the explicit file, or the first existing
// $KUBECONFIG entry.
func setCurrentContext(rules *clientcmd.ClientConfigLoadingRules, contextName string) error {
	config, err := loadKubeconfig(rules)
	if err != nil {
		return err
	}

	if _, ok := config.Contexts[contextName]; !ok {
		return fmt.Errorf("%w: %s", ErrContextNotFound, contextName)
	}
	if config.CurrentContext == contextName {
		return nil
	}

	config.CurrentContext = contextName
	if err := clientcmd.ModifyConfig(rules, *config, true); err != nil {
		return fmt.Errorf("failed to write kubeconfig: %w", err)
	}
	return nil
}
