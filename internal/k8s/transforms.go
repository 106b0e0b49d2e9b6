package k8s

import (
	"fmt"

	helmv2 "github.com/fluxcd/helm-controller/api/v2"
	kustomizev1 "github.com/fluxcd/kustomize-controller/api/v1"
	"github.com/fluxcd/pkg/apis/meta"
	sourcev1 "github.com/fluxcd/source-controller/api/v1"
	appsv1 "k8s.io/api/apps/v1"
	apimeta "k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

const labelVersion = "app.kubernetes.io/version"

func metadataOf(obj metav1.Object) ResourceMetadata {
	return ResourceMetadata{
		Namespace: obj.GetNamespace(),
		Name:      obj.GetName(),
		CreatedAt: obj.GetCreationTimestamp().Time,
	}
}

// readyStatus extracts the Ready condition status and message
func readyStatus(conditions []metav1.Condition) (string, string) {
	c := apimeta.FindStatusCondition(conditions, meta.ReadyCondition)
	if c == nil {
		return StatusUnknown, ""
	}
	return string(c.Status), c.Message
}

func formatInterval(d metav1.Duration) string {
	if d.Duration == 0 {
		return ""
	}
	return d.Duration.String()
}

func orNamespace(ns, fallback string) string {
	if ns == "" {
		return fallback
	}
	return ns
}

func transformKustomization(k *kustomizev1.Kustomization) Kustomization {
	ready, message := readyStatus(k.Status.Conditions)
	return Kustomization{
		ResourceMetadata:    metadataOf(k),
		Path:                k.Spec.Path,
		SourceKind:          k.Spec.SourceRef.Kind,
		SourceName:          k.Spec.SourceRef.Name,
		SourceNamespace:     orNamespace(k.Spec.SourceRef.Namespace, k.Namespace),
		TargetNamespace:     k.Spec.TargetNamespace,
		Interval:            formatInterval(k.Spec.Interval),
		Prune:               k.Spec.Prune,
		Suspended:           k.Spec.Suspend,
		Ready:               ready,
		Message:             message,
		LastAppliedRevision: k.Status.LastAppliedRevision,
	}
}

func transformHelmRelease(hr *helmv2.HelmRelease) HelmRelease {
	ready, message := readyStatus(hr.Status.Conditions)
	out := HelmRelease{
		ResourceMetadata:      metadataOf(hr),
		ReleaseName:           hr.Spec.ReleaseName,
		TargetNamespace:       hr.Spec.TargetNamespace,
		Interval:              formatInterval(hr.Spec.Interval),
		Suspended:             hr.Spec.Suspend,
		Ready:                 ready,
		Message:               message,
		LastAttemptedRevision: hr.Status.LastAttemptedRevision,
	}

	switch {
	case hr.Spec.Chart != nil:
		spec := hr.Spec.Chart.Spec
		out.Chart = spec.Chart
		out.ChartVersion = spec.Version
		out.SourceKind = spec.SourceRef.Kind
		out.SourceName = spec.SourceRef.Name
		out.SourceNamespace = orNamespace(spec.SourceRef.Namespace, hr.Namespace)
	case hr.Spec.ChartRef != nil:
		out.SourceKind = hr.Spec.ChartRef.Kind
		out.SourceName = hr.Spec.ChartRef.Name
		out.SourceNamespace = orNamespace(hr.Spec.ChartRef.Namespace, hr.Namespace)
	}

	return out
}

func transformDeployment(d *appsv1.Deployment) Deployment {
	desired := int32(1)
	if d.Spec.Replicas != nil {
		desired = *d.Spec.Replicas
	}

	images := make([]string, 0, len(d.Spec.Template.Spec.Containers))
	for _, c := range d.Spec.Template.Spec.Containers {
		images = append(images, c.Image)
	}

	return Deployment{
		ResourceMetadata: metadataOf(d),
		Ready:            fmt.Sprintf("%d/%d", d.Status.ReadyReplicas, desired),
		UpToDate:         d.Status.UpdatedReplicas,
		Available:        d.Status.AvailableReplicas,
		Version:          d.Labels[labelVersion],
		Images:           images,
	}
}

func transformGitRepository(r *sourcev1.GitRepository) Source {
	ready, message := readyStatus(r.Status.Conditions)

	var ref string
	if r.Spec.Reference != nil {
		for _, candidate := range []string{
			r.Spec.Reference.Branch,
			r.Spec.Reference.Tag,
			r.Spec.Reference.SemVer,
			r.Spec.Reference.Name,
			r.Spec.Reference.Commit,
		} {
			if candidate != "" {
				ref = candidate
				break
			}
		}
	}

	return Source{
		ResourceMetadata: metadataOf(r),
		Kind:             KindGitRepository,
		URL:              r.Spec.URL,
		Reference:        ref,
		Interval:         formatInterval(r.Spec.Interval),
		Suspended:        r.Spec.Suspend,
		Ready:            ready,
		Message:          message,
	}
}

func transformHelmRepository(r *sourcev1.HelmRepository) Source {
	ready, message := readyStatus(r.Status.Conditions)

	repoType := r.Spec.Type
	if repoType == "" {
		repoType = "default"
	}

	return Source{
		ResourceMetadata: metadataOf(r),
		Kind:             KindHelmRepository,
		URL:              r.Spec.URL,
		Reference:        repoType,
		Provider:         r.Spec.Provider,
		Interval:         formatInterval(r.Spec.Interval),
		Suspended:        r.Spec.Suspend,
		Ready:            ready,
		Message:          message,
	}
}

func transformBucket(b *sourcev1.Bucket) Source {
	ready, message := readyStatus(b.Status.Conditions)
	return Source{
		ResourceMetadata: metadataOf(b),
		Kind:             KindBucket,
		URL:              b.Spec.Endpoint,
		Reference:        b.Spec.BucketName,
		Provider:         b.Spec.Provider,
		Interval:         formatInterval(b.Spec.Interval),
		Suspended:        b.Spec.Suspend,
		Ready:            ready,
		Message:          message,
	}
}
