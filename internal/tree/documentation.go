package tree

import "context"

// Link is a documentation entry
type Link struct {
	Title string
	URL   string
}

// LinkGroup is a titled set of links
type LinkGroup struct {
	Title string
	Links []Link
}

// DefaultDocumentation is shown by the documentation view
var DefaultDocumentation = []LinkGroup{
	{
		Title: "Flux",
		Links: []Link{
			{Title: "Documentation", URL: "https://fluxcd.io/flux/"},
			{Title: "Get Started", URL: "https://fluxcd.io/flux/get-started/"},
			{Title: "Core Concepts", URL: "https://fluxcd.io/flux/concepts/"},
			{Title: "Flux CLI", URL: "https://fluxcd.io/flux/cmd/"},
		},
	},
	{
		Title: "Components",
		Links: []Link{
			{Title: "Sources", URL: "https://fluxcd.io/flux/components/source/"},
			{Title: "Kustomizations", URL: "https://fluxcd.io/flux/components/kustomize/kustomizations/"},
			{Title: "Helm Releases", URL: "https://fluxcd.io/flux/components/helm/helmreleases/"},
		},
	},
}

// DocumentationProvider builds the static documentation view
type DocumentationProvider struct {
	groups []LinkGroup
}

// NewDocumentationProvider uses DefaultDocumentation when groups is nil
func NewDocumentationProvider(groups []LinkGroup) *DocumentationProvider {
	if groups == nil {
		groups = DefaultDocumentation
	}
	return &DocumentationProvider{groups: groups}
}

func (p *DocumentationProvider) Build(_ context.Context) []*Node {
	nodes := make([]*Node, 0, len(p.groups))
	for _, g := range p.groups {
		group := &Node{
			ID:    NodeID("docs", "", g.Title),
			Label: g.Title,
			Icon:  IconFolder,
		}
		for _, l := range g.Links {
			group.AddChild(&Node{
				ID:          NodeID("docs", g.Title, l.Title),
				Label:       l.Title,
				Description: l.URL,
				Context:     ContextDocumentationLink,
				Command:     openLinkCommand(l.URL),
				Icon:        IconLink,
				Tooltip:     Tooltip{{Name: "URL", Value: l.URL}},
			})
		}
		group.Expand()
		nodes = append(nodes, group)
	}
	return nodes
}
