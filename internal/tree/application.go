package tree

import (
	"context"

	"github.com/renato0307/kflux/internal/k8s"
	"github.com/renato0307/kflux/internal/logging"
)

// Label prefixes of application nodes
const (
	LabelKustomization = "Kustomization"
	LabelHelmRelease   = "HelmRelease"
)

func resourceNode(contextName, kind, namespace, name string) *Node {
	uri := k8s.ResourceRef{
		Context:   contextName,
		Namespace: namespace,
		Kind:      kind,
		Name:      name,
	}.URI()

	return &Node{
		ID:          NodeID(kind, namespace, name),
		Label:       kind + ": " + name,
		Command:     openResourceCommand(uri),
		ResourceURI: uri,
		ContextName: contextName,
	}
}

func NewKustomizationNode(contextName string, k k8s.Kustomization) *Node {
	n := resourceNode(contextName, k8s.KindKustomization, k.Namespace, k.Name)
	n.Description = statusDescription(k.Ready, k.Suspended)
	n.Tooltip = kustomizationTooltip(k)
	n.Context = ContextKustomization
	n.Icon = IconKustomization
	return n
}

func NewHelmReleaseNode(contextName string, hr k8s.HelmRelease) *Node {
	n := resourceNode(contextName, k8s.KindHelmRelease, hr.Namespace, hr.Name)
	n.Description = statusDescription(hr.Ready, hr.Suspended)
	n.Tooltip = helmReleaseTooltip(hr)
	n.Context = ContextHelmRelease
	n.Icon = IconHelmRelease
	return n
}

// currentContext resolves the active context name, "" on failure. Locators
// with an empty context still resolve to the current one.
func currentContext(ctx context.Context, client k8s.Client) string {
	current, err := client.GetCurrentContext(ctx)
	if err != nil {
		swallow("get current context", err)
		return ""
	}
	return current
}

// ApplicationProvider builds the applications view of the current cluster
type ApplicationProvider struct {
	client k8s.Client
}

func NewApplicationProvider(client k8s.Client) *ApplicationProvider {
	return &ApplicationProvider{client: client}
}

// Build returns Kustomizations followed by HelmReleases. A listing that
// fails contributes no nodes.
func (p *ApplicationProvider) Build(ctx context.Context) []*Node {
	tc := logging.Start("build applications tree")
	nodes := []*Node{}
	current := currentContext(ctx, p.client)

	kustomizations, err := p.client.GetKustomizations(ctx, current)
	if err != nil {
		swallow("get kustomizations", err, "context", current)
	} else {
		for _, k := range kustomizations {
			nodes = append(nodes, NewKustomizationNode(current, k))
		}
	}

	helmReleases, err := p.client.GetHelmReleases(ctx, current)
	if err != nil {
		swallow("get helm releases", err, "context", current)
	} else {
		for _, hr := range helmReleases {
			nodes = append(nodes, NewHelmReleaseNode(current, hr))
		}
	}

	logging.EndWithCount(tc, len(nodes))
	return nodes
}
