package tree

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/kflux/internal/k8s"
)

func TestClusterProvider_NoClusters(t *testing.T) {
	tests := []struct {
		name   string
		client *stubClient
	}{
		{name: "nil list", client: &stubClient{current: "dev"}},
		{name: "empty list", client: &stubClient{clusters: []k8s.Cluster{}, current: "dev"}},
		{name: "listing fails", client: &stubClient{clustersErr: errors.New("kubeconfig missing")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes := NewClusterProvider(tt.client).Build(context.Background())
			require.NotNil(t, nodes)
			assert.Empty(t, nodes)
			assert.False(t, tt.client.called("GetFluxDeployments"))
		})
	}
}

func TestClusterProvider_OnlyCurrentIsExpandable(t *testing.T) {
	client := &stubClient{
		clusters:    threeClusters(),
		current:     "prod",
		deployments: fluxControllers(),
	}

	nodes := NewClusterProvider(client).Build(context.Background())
	require.Len(t, nodes, 3)

	for _, n := range nodes {
		if n.Label == "prod" {
			assert.True(t, n.Current)
			assert.True(t, n.IsExpandable())
			assert.True(t, n.IsExpanded())
			require.Len(t, n.Children, 2)
			assert.Equal(t, "helm-controller", n.Children[0].Label)
			assert.Equal(t, ContextDeployment, n.Children[0].Context)
			continue
		}
		assert.False(t, n.Current, n.Label)
		assert.False(t, n.IsExpandable(), n.Label)
		assert.Empty(t, n.Children, n.Label)
	}
}

func TestClusterProvider_CurrentDeploymentStates(t *testing.T) {
	tests := []struct {
		name         string
		deployments  []k8s.Deployment
		err          error
		wantState    Collapsible
		wantChildren int
	}{
		{name: "deployments listed", deployments: fluxControllers(), wantState: Expanded, wantChildren: 2},
		{name: "empty listing still expands", deployments: []k8s.Deployment{}, wantState: Expanded},
		{name: "listing fails stays collapsed", err: errors.New("forbidden"), wantState: Collapsed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &stubClient{
				clusters:       threeClusters(),
				current:        "dev",
				deployments:    tt.deployments,
				deploymentsErr: tt.err,
			}

			nodes := NewClusterProvider(client).Build(context.Background())
			dev := Find(nodes, ClusterNodeID("dev"))
			require.NotNil(t, dev)
			assert.Equal(t, tt.wantState, dev.Collapsible)
			assert.Len(t, dev.Children, tt.wantChildren)
		})
	}
}

func TestClusterProvider_CurrentContextFails(t *testing.T) {
	client := &stubClient{
		clusters:   threeClusters(),
		currentErr: errors.New("no current context"),
	}

	nodes := NewClusterProvider(client).Build(context.Background())
	require.Len(t, nodes, 3)
	for _, n := range nodes {
		assert.False(t, n.IsExpandable())
		assert.False(t, n.Current)
	}
	assert.False(t, client.called("GetFluxDeployments"))
}

func TestClusterProvider_NodeContent(t *testing.T) {
	client := &stubClient{
		clusters:    threeClusters(),
		current:     "dev",
		deployments: fluxControllers(),
	}

	nodes := NewClusterProvider(client).Build(context.Background())
	labels := []string{nodes[0].Label, nodes[1].Label, nodes[2].Label}
	assert.Equal(t, []string{"dev", "prod", "staging"}, labels, "clusters are sorted by context name")

	dev := nodes[0]
	assert.Equal(t, "cluster//dev", dev.ID)
	assert.Equal(t, "https://dev.example.com", dev.Description)
	assert.Equal(t, ContextCluster, dev.Context, "context defaults to cluster until probed")
	assert.Equal(t, IconCloud, dev.Icon)
	assert.Equal(t, "dev", dev.ContextName)
	require.NotNil(t, dev.Command)
	assert.Equal(t, CommandSetCurrentContext, dev.Command.ID)
	assert.Equal(t, []string{"dev"}, dev.Command.Arguments)

	server, ok := dev.Tooltip.Get("Server")
	assert.True(t, ok)
	assert.Equal(t, "https://dev.example.com", server)

	deployment := dev.Children[0]
	assert.Equal(t, "Deployment/flux-system/helm-controller", deployment.ID)
	assert.Equal(t, "1/1", deployment.Description)
	assert.Equal(t, deployment.ResourceURI, deployment.Command.Arg())

	ref, err := k8s.ParseResourceURI(deployment.ResourceURI)
	require.NoError(t, err)
	assert.Equal(t, k8s.ResourceRef{Context: "dev", Namespace: "flux-system", Kind: k8s.KindDeployment, Name: "helm-controller"}, ref)
}

func TestClusterProvider_DoesNotProbe(t *testing.T) {
	client := &stubClient{clusters: threeClusters(), current: "dev"}

	NewClusterProvider(client).Build(context.Background())
	assert.False(t, client.called("IsFluxInstalled"))
}

func TestClusterProvider_Deterministic(t *testing.T) {
	client := &stubClient{
		clusters:    threeClusters(),
		current:     "staging",
		deployments: fluxControllers(),
	}
	provider := NewClusterProvider(client)

	first := provider.Build(context.Background())
	second := provider.Build(context.Background())
	assert.Equal(t, first, second)
}

func TestClusterProvider_DoesNotReorderClientSlice(t *testing.T) {
	clusters := threeClusters()
	client := &stubClient{clusters: clusters, current: "dev"}

	NewClusterProvider(client).Build(context.Background())
	assert.Equal(t, "prod", clusters[0].Name)
}
