package tree

import (
	"context"
	"fmt"
	"strings"

	"github.com/renato0307/kflux/internal/k8s"
)

// Provider builds the node list of one view
type Provider interface {
	Build(ctx context.Context) []*Node
}

// View names a tree view
type View string

const (
	ViewClusters      View = "clusters"
	ViewApplications  View = "applications"
	ViewSources       View = "sources"
	ViewDocumentation View = "docs"
)

// Views lists every view in display order
var Views = []View{ViewClusters, ViewApplications, ViewSources, ViewDocumentation}

// Title is the human name of the view
func (v View) Title() string {
	switch v {
	case ViewClusters:
		return "Clusters"
	case ViewApplications:
		return "Applications"
	case ViewSources:
		return "Sources"
	case ViewDocumentation:
		return "Documentation"
	default:
		return string(v)
	}
}

// ParseView accepts view names and a few aliases
func ParseView(s string) (View, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clusters", "cluster", "":
		return ViewClusters, nil
	case "applications", "application", "apps":
		return ViewApplications, nil
	case "sources", "source":
		return ViewSources, nil
	case "docs", "documentation":
		return ViewDocumentation, nil
	default:
		return "", fmt.Errorf("unknown view %q (want one of clusters, applications, sources, docs)", s)
	}
}

// ShowsFluxNotice reports whether v displays FluxNotInstalledMessage when
// the current cluster has no Flux
func (v View) ShowsFluxNotice() bool {
	return v == ViewApplications || v == ViewSources
}

// Providers returns one provider per view, all backed by client
func Providers(client k8s.Client) map[View]Provider {
	return map[View]Provider{
		ViewClusters:      NewClusterProvider(client),
		ViewApplications:  NewApplicationProvider(client),
		ViewSources:       NewSourceProvider(client),
		ViewDocumentation: NewDocumentationProvider(nil),
	}
}
