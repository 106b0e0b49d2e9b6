package tree

import (
	"context"

	"github.com/renato0307/kflux/internal/k8s"
	"github.com/renato0307/kflux/internal/logging"
)

var sourceContexts = map[string]NodeContext{
	k8s.KindGitRepository:  ContextGitRepository,
	k8s.KindHelmRepository: ContextHelmRepository,
	k8s.KindBucket:         ContextBucket,
}

var sourceIcons = map[string]Icon{
	k8s.KindGitRepository:  IconGitRepository,
	k8s.KindHelmRepository: IconHelmRepository,
	k8s.KindBucket:         IconBucket,
}

func NewSourceNode(contextName string, s k8s.Source) *Node {
	n := resourceNode(contextName, s.Kind, s.Namespace, s.Name)
	n.Description = s.URL
	n.Tooltip = sourceTooltip(s)
	n.Context = sourceContexts[s.Kind]
	n.Icon = sourceIcons[s.Kind]
	return n
}

// SourceProvider builds the sources view of the current cluster
type SourceProvider struct {
	client k8s.Client
}

func NewSourceProvider(client k8s.Client) *SourceProvider {
	return &SourceProvider{client: client}
}

// Build returns git repositories, helm repositories and buckets. Sources
// that listed before a failure are kept.
func (p *SourceProvider) Build(ctx context.Context) []*Node {
	tc := logging.Start("build sources tree")
	nodes := []*Node{}
	current := currentContext(ctx, p.client)

	sources, err := p.client.GetSources(ctx, current)
	if err != nil {
		swallow("get sources", err, "context", current)
	}
	for _, s := range sources {
		if _, known := sourceContexts[s.Kind]; !known {
			continue
		}
		nodes = append(nodes, NewSourceNode(current, s))
	}

	logging.EndWithCount(tc, len(nodes))
	return nodes
}
