package tree

import (
	"context"
	"slices"
	"strings"

	"github.com/renato0307/kflux/internal/k8s"
	"github.com/renato0307/kflux/internal/logging"
)

// clusterKind prefixes cluster node IDs
const clusterKind = "cluster"

// ClusterNodeID returns the ID of the node for a kubeconfig context
func ClusterNodeID(contextName string) string {
	return NodeID(clusterKind, "", contextName)
}

// NewClusterNode creates the node for one kubeconfig context. It starts as a
// non-Flux leaf; Build and the probe pass refine it.
func NewClusterNode(c k8s.Cluster) *Node {
	return &Node{
		ID:          ClusterNodeID(c.Name),
		Label:       c.Name,
		Description: c.Server,
		Tooltip:     clusterTooltip(c),
		Context:     ContextCluster,
		Command:     setContextCommand(c.Name),
		Icon:        IconCloud,
		ContextName: c.Name,
	}
}

// NewDeploymentNode creates the node for a Flux controller deployment
func NewDeploymentNode(contextName string, d k8s.Deployment) *Node {
	uri := k8s.ResourceRef{
		Context:   contextName,
		Namespace: d.Namespace,
		Kind:      k8s.KindDeployment,
		Name:      d.Name,
	}.URI()

	return &Node{
		ID:          NodeID(k8s.KindDeployment, d.Namespace, d.Name),
		Label:       d.Name,
		Description: d.Ready,
		Tooltip:     deploymentTooltip(d),
		Context:     ContextDeployment,
		Command:     openResourceCommand(uri),
		ResourceURI: uri,
		Icon:        IconDeployment,
		ContextName: contextName,
	}
}

// ClusterProvider builds the clusters view
type ClusterProvider struct {
	client k8s.Client
}

func NewClusterProvider(client k8s.Client) *ClusterProvider {
	return &ClusterProvider{client: client}
}

// Build returns one node per kubeconfig context. Only the current context is
// expandable; it is expanded with its Flux controller deployments when they
// can be listed. Flux detection is left to the probe pass.
func (p *ClusterProvider) Build(ctx context.Context) []*Node {
	tc := logging.Start("build clusters tree")
	nodes := []*Node{}

	clusters, err := p.client.GetClusters(ctx)
	if err != nil {
		swallow("get clusters", err)
		return nodes
	}
	if len(clusters) == 0 {
		return nodes
	}

	current, err := p.client.GetCurrentContext(ctx)
	if err != nil {
		swallow("get current context", err)
		current = ""
	}

	clusters = slices.Clone(clusters)
	slices.SortStableFunc(clusters, func(a, b k8s.Cluster) int {
		return strings.Compare(a.Name, b.Name)
	})

	for _, c := range clusters {
		node := NewClusterNode(c)
		if current != "" && c.Name == current {
			node.Current = true
			node.MakeCollapsible()

			deployments, err := p.client.GetFluxDeployments(ctx, c.Name)
			if err != nil {
				swallow("get flux deployments", err, "context", c.Name)
			} else {
				node.Expand()
				for _, d := range deployments {
					node.AddChild(NewDeploymentNode(c.Name, d))
				}
			}
		}
		nodes = append(nodes, node)
	}

	logging.EndWithCount(tc, len(nodes))
	return nodes
}
