package tree

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/kflux/internal/k8s"
	"github.com/renato0307/kflux/internal/logging"
)

// FluxNotInstalledMessage is shown in the application and source views when
// the current cluster has no Flux
const FluxNotInstalledMessage = "Flux is not installed on the current cluster"

const (
	DefaultProbeTimeout     = 5 * time.Second
	DefaultProbeConcurrency = 4
)

// ProbeTarget is one cluster node awaiting Flux detection
type ProbeTarget struct {
	NodeID      string
	ContextName string
	Current     bool
}

// FluxStatus is the outcome of probing one cluster
type FluxStatus struct {
	NodeID      string `json:"nodeId"`
	ContextName string `json:"contextName"`
	Current     bool   `json:"current"`
	Installed   bool   `json:"installed"`
}

// CurrentWithoutFlux reports whether s says the active cluster lacks Flux
func (s FluxStatus) CurrentWithoutFlux() bool {
	return s.Current && !s.Installed
}

// Targets lists the cluster nodes of a clusters view
func Targets(nodes []*Node) []ProbeTarget {
	targets := make([]ProbeTarget, 0, len(nodes))
	for _, n := range nodes {
		if !n.Context.IsCluster() {
			continue
		}
		targets = append(targets, ProbeTarget{
			NodeID:      n.ID,
			ContextName: n.ContextName,
			Current:     n.Current,
		})
	}
	return targets
}

// Prober runs the Flux-installed second pass
type Prober struct {
	Client k8s.Client
	// Timeout bounds each probe; zero means DefaultProbeTimeout
	Timeout time.Duration
	// Concurrency bounds ProbeAll; zero means DefaultProbeConcurrency
	Concurrency int
}

// Probe checks one cluster. Any failure counts as not installed.
func (p Prober) Probe(ctx context.Context, target ProbeTarget) FluxStatus {
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	tc := logging.Start("probe flux", "context", target.ContextName)
	installed, err := p.Client.IsFluxInstalled(ctx, target.ContextName)
	if err != nil {
		swallow("probe flux", err, "context", target.ContextName)
		installed = false
	}
	logging.End(tc)

	return FluxStatus{
		NodeID:      target.NodeID,
		ContextName: target.ContextName,
		Current:     target.Current,
		Installed:   installed,
	}
}

// ProbeAll probes every target with bounded concurrency. Results keep the
// order of targets.
func (p Prober) ProbeAll(ctx context.Context, targets []ProbeTarget) []FluxStatus {
	limit := p.Concurrency
	if limit <= 0 {
		limit = DefaultProbeConcurrency
	}

	results := make([]FluxStatus, len(targets))

	var g errgroup.Group
	g.SetLimit(limit)
	for i, target := range targets {
		g.Go(func() error {
			results[i] = p.Probe(ctx, target)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// ApplyFluxStatus updates the cluster node named by s: its Flux flag,
// context tag and icon. It returns false when the node is gone (the tree was
// rebuilt since the probe started).
func ApplyFluxStatus(nodes []*Node, s FluxStatus) bool {
	n := Find(nodes, s.NodeID)
	if n == nil || !n.Context.IsCluster() {
		return false
	}

	n.Flux = s.Installed
	if s.Installed {
		n.Context = ContextClusterFlux
		n.Icon = IconCloudFlux
	} else {
		n.Context = ContextCluster
		n.Icon = IconCloud
	}
	return true
}

// NoticeNode is an informational leaf with no actions
func NoticeNode(message string) *Node {
	return &Node{
		ID:    NodeID("notice", "", message),
		Label: message,
		Icon:  IconWarning,
	}
}
