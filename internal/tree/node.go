// Package tree builds the display nodes for every view: clusters,
// applications, sources and documentation. Nodes are plain data rebuilt from
// scratch on each refresh; hosts render them through internal/render or the
// TUI tree widget.
package tree

import (
	"fmt"
	"strings"
)

// Collapsible is the expand state of a node
type Collapsible int

const (
	CollapsibleNone Collapsible = iota
	Collapsed
	Expanded
)

func (c Collapsible) String() string {
	switch c {
	case Collapsed:
		return "collapsed"
	case Expanded:
		return "expanded"
	default:
		return "none"
	}
}

func (c Collapsible) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Collapsible) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "none", "":
		*c = CollapsibleNone
	case "collapsed":
		*c = Collapsed
	case "expanded":
		*c = Expanded
	default:
		return fmt.Errorf("unknown collapsible state %q", text)
	}
	return nil
}

// Node is one row of a tree view
type Node struct {
	// ID is kind/namespace/name; cluster nodes use cluster//<context>
	ID          string      `json:"id"`
	Label       string      `json:"label"`
	Description string      `json:"description,omitempty"`
	Tooltip     Tooltip     `json:"tooltip,omitempty"`
	Context     NodeContext `json:"context,omitempty"`
	Command     *Command    `json:"command,omitempty"`
	ResourceURI string      `json:"resourceUri,omitempty"`
	Icon        Icon        `json:"icon,omitempty"`
	Collapsible Collapsible `json:"collapsible"`
	// ContextName is the kubeconfig context the node belongs to
	ContextName string `json:"contextName,omitempty"`
	// Current marks the active cluster
	Current bool `json:"current,omitempty"`
	// Flux is set on cluster nodes by the probe pass
	Flux     bool    `json:"flux,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// NodeID joins kind, namespace and name into a node identity
func NodeID(kind, namespace, name string) string {
	return kind + "/" + namespace + "/" + name
}

// AddChild appends child, making the node collapsible if it was a leaf
func (n *Node) AddChild(child *Node) {
	n.MakeCollapsible()
	n.Children = append(n.Children, child)
}

// MakeCollapsible turns a leaf into a collapsed node. Expanded nodes stay
// expanded.
func (n *Node) MakeCollapsible() {
	if n.Collapsible == CollapsibleNone {
		n.Collapsible = Collapsed
	}
}

func (n *Node) Expand() {
	n.Collapsible = Expanded
}

// Collapse folds an expandable node; leaves stay leaves
func (n *Node) Collapse() {
	if n.Collapsible != CollapsibleNone {
		n.Collapsible = Collapsed
	}
}

// Toggle flips between collapsed and expanded. Leaves are unchanged.
func (n *Node) Toggle() {
	switch n.Collapsible {
	case Collapsed:
		n.Collapsible = Expanded
	case Expanded:
		n.Collapsible = Collapsed
	}
}

func (n *Node) IsExpandable() bool {
	return n.Collapsible != CollapsibleNone
}

func (n *Node) IsExpanded() bool {
	return n.Collapsible == Expanded
}

// Walk visits nodes depth-first. Returning false from fn skips the node's
// children.
func Walk(nodes []*Node, fn func(n *Node, depth int) bool) {
	walk(nodes, 0, fn)
}

func walk(nodes []*Node, depth int, fn func(n *Node, depth int) bool) {
	for _, n := range nodes {
		if fn(n, depth) {
			walk(n.Children, depth+1, fn)
		}
	}
}

// Find returns the first node with the given ID
func Find(nodes []*Node, id string) *Node {
	var found *Node
	Walk(nodes, func(n *Node, _ int) bool {
		if found != nil {
			return false
		}
		if n.ID == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// Count returns the number of nodes in the forest
func Count(nodes []*Node) int {
	count := 0
	Walk(nodes, func(*Node, int) bool {
		count++
		return true
	})
	return count
}

// ExpandState records, by node ID, whether each expandable node is expanded
func ExpandState(nodes []*Node) map[string]bool {
	state := make(map[string]bool)
	Walk(nodes, func(n *Node, _ int) bool {
		if n.IsExpandable() {
			state[n.ID] = n.IsExpanded()
		}
		return true
	})
	return state
}

// RestoreExpandState re-applies a previous expand state after a rebuild.
// Nodes absent from state keep the state their provider gave them.
func RestoreExpandState(nodes []*Node, state map[string]bool) {
	Walk(nodes, func(n *Node, _ int) bool {
		expanded, ok := state[n.ID]
		switch {
		case !ok || !n.IsExpandable():
		case expanded:
			n.Expand()
		default:
			n.Collapse()
		}
		return true
	})
}
