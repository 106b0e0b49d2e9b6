package tree

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleForest() []*Node {
	root := &Node{ID: "cluster//dev", Label: "dev"}
	root.AddChild(&Node{ID: "Deployment/flux-system/a", Label: "a"})
	root.AddChild(&Node{ID: "Deployment/flux-system/b", Label: "b"})
	return []*Node{root, {ID: "cluster//prod", Label: "prod"}}
}

func TestNodeCollapseStates(t *testing.T) {
	n := &Node{}
	assert.False(t, n.IsExpandable())

	n.Toggle()
	n.Collapse()
	assert.Equal(t, CollapsibleNone, n.Collapsible, "leaves stay leaves")

	n.AddChild(&Node{})
	assert.Equal(t, Collapsed, n.Collapsible)

	n.Toggle()
	assert.True(t, n.IsExpanded())

	n.MakeCollapsible()
	assert.True(t, n.IsExpanded(), "MakeCollapsible keeps an expanded node expanded")

	n.Collapse()
	assert.Equal(t, Collapsed, n.Collapsible)
}

func TestWalkAndFind(t *testing.T) {
	nodes := sampleForest()

	var visited []string
	Walk(nodes, func(n *Node, depth int) bool {
		visited = append(visited, n.Label)
		return true
	})
	assert.Equal(t, []string{"dev", "a", "b", "prod"}, visited)

	visited = nil
	Walk(nodes, func(n *Node, depth int) bool {
		visited = append(visited, n.Label)
		return depth == 0 && n.Label != "dev"
	})
	assert.Equal(t, []string{"dev", "prod"}, visited)

	found := Find(nodes, "Deployment/flux-system/b")
	require.NotNil(t, found)
	assert.Equal(t, "b", found.Label)
	assert.Nil(t, Find(nodes, "missing"))
	assert.Equal(t, 4, Count(nodes))
}

func TestRestoreExpandState(t *testing.T) {
	before := sampleForest()
	before[0].Expand()
	state := ExpandState(before)
	assert.Equal(t, map[string]bool{"cluster//dev": true}, state)

	after := sampleForest()
	RestoreExpandState(after, state)
	assert.True(t, after[0].IsExpanded())
	assert.False(t, after[1].IsExpandable())

	before[0].Collapse()
	rebuilt := sampleForest()
	rebuilt[0].Expand()
	RestoreExpandState(rebuilt, ExpandState(before))
	assert.False(t, rebuilt[0].IsExpanded(), "a collapsed node stays collapsed")
}

func TestCollapsibleJSON(t *testing.T) {
	n := &Node{ID: "x", Label: "x", Collapsible: Expanded}
	out, err := json.Marshal(n)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"collapsible":"expanded"`)

	var back Node
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, Expanded, back.Collapsible)

	var c Collapsible
	assert.Error(t, c.UnmarshalText([]byte("sideways")))
}

func TestNodeContextActions(t *testing.T) {
	tests := []struct {
		context NodeContext
		allowed []Action
		denied  []Action
	}{
		{context: ContextCluster, allowed: []Action{ActionSetCurrentContext}, denied: []Action{ActionViewYAML}},
		{context: ContextClusterFlux, allowed: []Action{ActionSetCurrentContext}, denied: []Action{ActionCopyLink}},
		{context: ContextKustomization, allowed: []Action{ActionViewYAML, ActionCopyLocator}, denied: []Action{ActionSetCurrentContext}},
		{context: ContextBucket, allowed: []Action{ActionViewYAML}, denied: []Action{ActionCopyLink}},
		{context: ContextDocumentationLink, allowed: []Action{ActionCopyLink}, denied: []Action{ActionViewYAML}},
		{context: ContextNone, denied: []Action{ActionViewYAML, ActionSetCurrentContext}},
	}

	for _, tt := range tests {
		t.Run(string(tt.context), func(t *testing.T) {
			for _, a := range tt.allowed {
				assert.True(t, tt.context.Allows(a), a)
			}
			for _, a := range tt.denied {
				assert.False(t, tt.context.Allows(a), a)
			}
		})
	}
}
