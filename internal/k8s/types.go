package k8s

import "time"

// Resource represents any namespaced object shown in a tree
type Resource interface {
	GetNamespace() string
	GetName() string
	GetCreatedAt() time.Time
}

// ResourceMetadata contains common fields shared by all listed resources.
// Embed it to implement Resource.
type ResourceMetadata struct {
	Namespace string
	Name      string
	CreatedAt time.Time
}

func (r ResourceMetadata) GetNamespace() string    { return r.Namespace }
func (r ResourceMetadata) GetName() string         { return r.Name }
func (r ResourceMetadata) GetCreatedAt() time.Time { return r.CreatedAt }

// Cluster is a kubeconfig context joined with its cluster entry
type Cluster struct {
	// Name is the context name
	Name                  string
	ClusterName           string
	Server                string
	User                  string
	Namespace             string
	CertificateAuthority  string
	InsecureSkipTLSVerify bool
}

// Condition status values as rendered in trees
const (
	StatusTrue    = "True"
	StatusFalse   = "False"
	StatusUnknown = "Unknown"
)

// Kustomization is the display form of a Flux Kustomization
type Kustomization struct {
	ResourceMetadata
	Path                string
	SourceKind          string
	SourceName          string
	SourceNamespace     string
	TargetNamespace     string
	Interval            string
	Prune               bool
	Suspended           bool
	Ready               string
	Message             string
	LastAppliedRevision string
}

// HelmRelease is the display form of a Flux HelmRelease
type HelmRelease struct {
	ResourceMetadata
	Chart                 string
	ChartVersion          string
	SourceKind            string
	SourceName            string
	SourceNamespace       string
	ReleaseName           string
	TargetNamespace       string
	Interval              string
	Suspended             bool
	Ready                 string
	Message               string
	LastAttemptedRevision string
}

// Deployment is a Flux controller deployment
type Deployment struct {
	ResourceMetadata
	Ready     string
	UpToDate  int32
	Available int32
	Version   string
	Images    []string
}

// Source kinds listed by GetSources
const (
	KindGitRepository  = "GitRepository"
	KindHelmRepository = "HelmRepository"
	KindBucket         = "Bucket"
	KindKustomization  = "Kustomization"
	KindHelmRelease    = "HelmRelease"
	KindDeployment     = "Deployment"
)

// Source is a Flux source object (git repository, helm repository, bucket)
type Source struct {
	ResourceMetadata
	Kind string
	URL  string
	// Reference is the branch/tag for git, the repository type for helm and
	// the bucket name for buckets
	Reference string
	Provider  string
	Interval  string
	Suspended bool
	Ready     string
	Message   string
}
