package dummy

import (
	"fmt"

	"sigs.k8s.io/yaml"

	"github.com/renato0307/kflux/internal/k8s"
)

var apiVersions = map[string]string{
	k8s.KindKustomization:  "kustomize.toolkit.fluxcd.io/v1",
	k8s.KindHelmRelease:    "helm.toolkit.fluxcd.io/v2",
	k8s.KindGitRepository:  "source.toolkit.fluxcd.io/v1",
	k8s.KindHelmRepository: "source.toolkit.fluxcd.io/v1",
	k8s.KindBucket:         "source.toolkit.fluxcd.io/v1",
	k8s.KindDeployment:     "apps/v1",
}

type manifest struct {
	APIVersion string            `json:"apiVersion"`
	Kind       string            `json:"kind"`
	Metadata   map[string]string `json:"metadata"`
	Spec       any               `json:"spec"`
	Status     map[string]string `json:"status,omitempty"`
}

func newManifest(ref k8s.ResourceRef, r k8s.Resource) manifest {
	return manifest{
		APIVersion: apiVersions[ref.Kind],
		Kind:       ref.Kind,
		Metadata: map[string]string{
			"name":              r.GetName(),
			"namespace":         r.GetNamespace(),
			"creationTimestamp": r.GetCreatedAt().Format("2006-01-02T15:04:05Z"),
		},
	}
}

func readyStatus(ready, message string) map[string]string {
	return map[string]string{"ready": ready, "message": message}
}

// manifestFor finds the object behind ref and shapes it like the real
// resource. Must be called with the client lock held.
func manifestFor(cd *clusterData, ref k8s.ResourceRef) (manifest, error) {
	matches := func(r k8s.Resource) bool {
		return r.GetNamespace() == ref.Namespace && r.GetName() == ref.Name
	}

	switch ref.Kind {
	case k8s.KindKustomization:
		for _, k := range cd.kustomizations {
			if matches(k) {
				m := newManifest(ref, k)
				m.Spec = map[string]any{
					"path":      k.Path,
					"interval":  k.Interval,
					"prune":     k.Prune,
					"suspend":   k.Suspended,
					"sourceRef": map[string]string{"kind": k.SourceKind, "name": k.SourceName},
				}
				m.Status = readyStatus(k.Ready, k.Message)
				return m, nil
			}
		}
	case k8s.KindHelmRelease:
		for _, hr := range cd.helmReleases {
			if matches(hr) {
				m := newManifest(ref, hr)
				m.Spec = map[string]any{
					"interval": hr.Interval,
					"chart": map[string]any{
						"spec": map[string]any{
							"chart":     hr.Chart,
							"version":   hr.ChartVersion,
							"sourceRef": map[string]string{"kind": hr.SourceKind, "name": hr.SourceName},
						},
					},
				}
				m.Status = readyStatus(hr.Ready, hr.Message)
				return m, nil
			}
		}
	case k8s.KindDeployment:
		for _, d := range cd.deployments {
			if matches(d) {
				m := newManifest(ref, d)
				m.Spec = map[string]any{"replicas": 1}
				m.Status = map[string]string{"ready": d.Ready}
				return m, nil
			}
		}
	case k8s.KindGitRepository, k8s.KindHelmRepository, k8s.KindBucket:
		for _, s := range cd.sources {
			if s.Kind == ref.Kind && matches(s) {
				m := newManifest(ref, s)
				m.Spec = map[string]any{"url": s.URL, "interval": s.Interval}
				m.Status = readyStatus(s.Ready, s.Message)
				return m, nil
			}
		}
	default:
		return manifest{}, fmt.Errorf("unsupported kind %q", ref.Kind)
	}

	return manifest{}, fmt.Errorf("%s not found", ref)
}

func renderYAML(m manifest) (string, error) {
	out, err := yaml.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return string(out), nil
}
