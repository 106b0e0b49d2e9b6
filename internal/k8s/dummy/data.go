package dummy

import (
	"time"

	"github.com/renato0307/kflux/internal/k8s"
)

// created is fixed so dummy trees render identically on every run
var created = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func meta(namespace, name string) k8s.ResourceMetadata {
	return k8s.ResourceMetadata{Namespace: namespace, Name: name, CreatedAt: created}
}

type clusterData struct {
	cluster        k8s.Cluster
	fluxInstalled  bool
	kustomizations []k8s.Kustomization
	helmReleases   []k8s.HelmRelease
	deployments    []k8s.Deployment
	sources        []k8s.Source
}

func controllers(version string) []k8s.Deployment {
	names := []string{"helm-controller", "kustomize-controller", "notification-controller", "source-controller"}
	out := make([]k8s.Deployment, 0, len(names))
	for _, name := range names {
		out = append(out, k8s.Deployment{
			ResourceMetadata: meta("flux-system", name),
			Ready:            "1/1",
			UpToDate:         1,
			Available:        1,
			Version:          version,
			Images:           []string{"ghcr.io/fluxcd/" + name + ":" + version},
		})
	}
	return out
}

func sampleData() []*clusterData {
	return []*clusterData{
		{
			cluster: k8s.Cluster{
				Name:        "kind-dev",
				ClusterName: "kind-dev",
				Server:      "https://127.0.0.1:6443",
				User:        "kind-dev",
			},
			fluxInstalled: true,
			kustomizations: []k8s.Kustomization{
				{
					ResourceMetadata:    meta("flux-system", "apps"),
					Path:                "./clusters/dev/apps",
					SourceKind:          k8s.KindGitRepository,
					SourceName:          "flux-system",
					SourceNamespace:     "flux-system",
					Interval:            "10m0s",
					Prune:               true,
					Ready:               k8s.StatusTrue,
					Message:             "Applied revision: main@sha1:4f2a9c1",
					LastAppliedRevision: "main@sha1:4f2a9c1",
				},
				{
					ResourceMetadata:    meta("flux-system", "flux-system"),
					Path:                "./clusters/dev",
					SourceKind:          k8s.KindGitRepository,
					SourceName:          "flux-system",
					SourceNamespace:     "flux-system",
					Interval:            "10m0s",
					Prune:               true,
					Ready:               k8s.StatusTrue,
					Message:             "Applied revision: main@sha1:4f2a9c1",
					LastAppliedRevision: "main@sha1:4f2a9c1",
				},
				{
					ResourceMetadata: meta("flux-system", "infrastructure"),
					Path:             "./infrastructure",
					SourceKind:       k8s.KindGitRepository,
					SourceName:       "flux-system",
					SourceNamespace:  "flux-system",
					Interval:         "1h0m0s",
					Suspended:        true,
					Ready:            k8s.StatusFalse,
					Message:          "kustomization path not found: ./infrastructure",
				},
			},
			helmReleases: []k8s.HelmRelease{
				{
					ResourceMetadata:      meta("podinfo", "podinfo"),
					Chart:                 "podinfo",
					ChartVersion:          "6.5.*",
					SourceKind:            k8s.KindHelmRepository,
					SourceName:            "podinfo",
					SourceNamespace:       "flux-system",
					Interval:              "5m0s",
					Ready:                 k8s.StatusTrue,
					Message:               "Helm install succeeded for release podinfo/podinfo.v1 with chart podinfo@6.5.4",
					LastAttemptedRevision: "6.5.4",
				},
				{
					ResourceMetadata: meta("redis", "redis"),
					Chart:            "redis",
					ChartVersion:     "18.x",
					SourceKind:       k8s.KindHelmRepository,
					SourceName:       "bitnami",
					SourceNamespace:  "flux-system",
					TargetNamespace:  "cache",
					Interval:         "30m0s",
					Ready:            k8s.StatusUnknown,
					Message:          "Running 'install' action with timeout of 5m0s",
				},
			},
			deployments: controllers("v1.4.0"),
			sources: []k8s.Source{
				{
					ResourceMetadata: meta("flux-system", "flux-system"),
					Kind:             k8s.KindGitRepository,
					URL:              "ssh://git@github.com/example/fleet-infra",
					Reference:        "main",
					Interval:         "1m0s",
					Ready:            k8s.StatusTrue,
					Message:          "stored artifact for revision 'main@sha1:4f2a9c1'",
				},
				{
					ResourceMetadata: meta("flux-system", "bitnami"),
					Kind:             k8s.KindHelmRepository,
					URL:              "oci://registry-1.docker.io/bitnamicharts",
					Reference:        "oci",
					Interval:         "1h0m0s",
					Ready:            k8s.StatusTrue,
				},
				{
					ResourceMetadata: meta("flux-system", "podinfo"),
					Kind:             k8s.KindHelmRepository,
					URL:              "https://stefanprodan.github.io/podinfo",
					Reference:        "default",
					Interval:         "1h0m0s",
					Ready:            k8s.StatusTrue,
					Message:          "stored artifact: revision 'sha256:1b7e0c3'",
				},
				{
					ResourceMetadata: meta("flux-system", "backups"),
					Kind:             k8s.KindBucket,
					URL:              "minio.minio.svc:9000",
					Reference:        "flux-backups",
					Provider:         "generic",
					Interval:         "5m0s",
					Ready:            k8s.StatusFalse,
					Message:          "bucket 'flux-backups' does not exist",
				},
			},
		},
		{
			cluster: k8s.Cluster{
				Name:                 "prod-eu",
				ClusterName:          "prod-eu",
				Server:               "https://prod-eu.k8s.example.com",
				User:                 "oidc",
				Namespace:            "default",
				CertificateAuthority: "/etc/kflux/prod-eu-ca.crt",
			},
			fluxInstalled: false,
		},
		{
			cluster: k8s.Cluster{
				Name:                  "staging",
				ClusterName:           "staging",
				Server:                "https://staging.k8s.example.com",
				User:                  "staging-admin",
				InsecureSkipTLSVerify: true,
			},
			fluxInstalled: true,
			kustomizations: []k8s.Kustomization{
				{
					ResourceMetadata: meta("flux-system", "flux-system"),
					Path:             "./clusters/staging",
					SourceKind:       k8s.KindGitRepository,
					SourceName:       "flux-system",
					SourceNamespace:  "flux-system",
					Interval:         "10m0s",
					Prune:            true,
					Ready:            k8s.StatusTrue,
				},
			},
			deployments: controllers("v1.3.0"),
			sources: []k8s.Source{
				{
					ResourceMetadata: meta("flux-system", "flux-system"),
					Kind:             k8s.KindGitRepository,
					URL:              "ssh://git@github.com/example/fleet-infra",
					Reference:        "staging",
					Interval:         "1m0s",
					Ready:            k8s.StatusTrue,
				},
			},
		},
	}
}
