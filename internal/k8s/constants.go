package k8s

import "time"

const (
	// DefaultFluxNamespace is where the Flux controllers run unless configured
	DefaultFluxNamespace = "flux-system"

	// DefaultPoolSize bounds how many per-context API clients are cached
	DefaultPoolSize = 10

	// DefaultRequestTimeout applies to every REST call made by a pooled client
	DefaultRequestTimeout = 10 * time.Second
)

// fluxCRDs are probed in order; any of them existing means Flux is installed
var fluxCRDs = []string{
	"kustomizations.kustomize.toolkit.fluxcd.io",
	"helmreleases.helm.toolkit.fluxcd.io",
	"gitrepositories.source.toolkit.fluxcd.io",
}
