package tree

import (
	"strconv"
	"strings"

	"github.com/renato0307/kflux/internal/k8s"
)

// Field is one tooltip row
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Tooltip is an ordered table of the source object's fields
type Tooltip []Field

// add appends a row, skipping empty values
func (t *Tooltip) add(name, value string) {
	if value == "" {
		return
	}
	*t = append(*t, Field{Name: name, Value: value})
}

func (t *Tooltip) addBool(name string, value bool) {
	if value {
		t.add(name, "true")
	}
}

// Get returns the value of the named row
func (t Tooltip) Get(name string) (string, bool) {
	for _, f := range t {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Markdown renders the tooltip as a two-column markdown table
func (t Tooltip) Markdown() string {
	if len(t) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("| Property | Value |\n")
	b.WriteString("| --- | --- |\n")
	for _, f := range t {
		b.WriteString("| ")
		b.WriteString(escapeCell(f.Name))
		b.WriteString(" | ")
		b.WriteString(escapeCell(f.Value))
		b.WriteString(" |\n")
	}
	return b.String()
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

func clusterTooltip(c k8s.Cluster) Tooltip {
	var t Tooltip
	t.add("Context", c.Name)
	t.add("Cluster", c.ClusterName)
	t.add("Server", c.Server)
	t.add("User", c.User)
	t.add("Namespace", c.Namespace)
	t.add("Certificate Authority", c.CertificateAuthority)
	t.addBool("Insecure Skip TLS Verify", c.InsecureSkipTLSVerify)
	return t
}

func kustomizationTooltip(k k8s.Kustomization) Tooltip {
	var t Tooltip
	t.add("Name", k.Name)
	t.add("Namespace", k.Namespace)
	t.add("Path", k.Path)
	t.add("Source", sourceRef(k.SourceKind, k.SourceNamespace, k.SourceName))
	t.add("Target Namespace", k.TargetNamespace)
	t.add("Interval", k.Interval)
	t.addBool("Prune", k.Prune)
	t.addBool("Suspended", k.Suspended)
	t.add("Ready", k.Ready)
	t.add("Message", k.Message)
	t.add("Last Applied Revision", k.LastAppliedRevision)
	return t
}

func helmReleaseTooltip(hr k8s.HelmRelease) Tooltip {
	var t Tooltip
	t.add("Name", hr.Name)
	t.add("Namespace", hr.Namespace)
	t.add("Chart", hr.Chart)
	t.add("Chart Version", hr.ChartVersion)
	t.add("Source", sourceRef(hr.SourceKind, hr.SourceNamespace, hr.SourceName))
	t.add("Release Name", hr.ReleaseName)
	t.add("Target Namespace", hr.TargetNamespace)
	t.add("Interval", hr.Interval)
	t.addBool("Suspended", hr.Suspended)
	t.add("Ready", hr.Ready)
	t.add("Message", hr.Message)
	t.add("Last Attempted Revision", hr.LastAttemptedRevision)
	return t
}

func deploymentTooltip(d k8s.Deployment) Tooltip {
	var t Tooltip
	t.add("Name", d.Name)
	t.add("Namespace", d.Namespace)
	t.add("Ready", d.Ready)
	t.add("Up To Date", strconv.Itoa(int(d.UpToDate)))
	t.add("Available", strconv.Itoa(int(d.Available)))
	t.add("Version", d.Version)
	t.add("Images", strings.Join(d.Images, ", "))
	return t
}

func sourceTooltip(s k8s.Source) Tooltip {
	var t Tooltip
	t.add("Kind", s.Kind)
	t.add("Name", s.Name)
	t.add("Namespace", s.Namespace)
	t.add("URL", s.URL)
	switch s.Kind {
	case k8s.KindGitRepository:
		t.add("Reference", s.Reference)
	case k8s.KindHelmRepository:
		t.add("Type", s.Reference)
	case k8s.KindBucket:
		t.add("Bucket", s.Reference)
	}
	t.add("Provider", s.Provider)
	t.add("Interval", s.Interval)
	t.addBool("Suspended", s.Suspended)
	t.add("Ready", s.Ready)
	t.add("Message", s.Message)
	return t
}

func sourceRef(kind, namespace, name string) string {
	if name == "" {
		return ""
	}
	if namespace == "" {
		return kind + "/" + name
	}
	return kind + "/" + namespace + "/" + name
}

// statusDescription is the short readiness text shown next to a resource
func statusDescription(ready string, suspended bool) string {
	switch {
	case suspended:
		return "Suspended"
	case ready == k8s.StatusTrue:
		return "Ready"
	case ready == k8s.StatusFalse:
		return "Not Ready"
	default:
		return "Unknown"
	}
}
