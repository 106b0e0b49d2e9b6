package app

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/kflux/internal/k8s"
	"github.com/renato0307/kflux/internal/k8s/dummy"
	"github.com/renato0307/kflux/internal/tree"
	"github.com/renato0307/kflux/internal/types"
	"github.com/renato0307/kflux/internal/ui"
)

// cmdTimeout drops commands that wait on a timer, such as status clears
const cmdTimeout = 300 * time.Millisecond

type clipboardRecorder struct {
	copied []string
	err    error
}

func (c *clipboardRecorder) write(text string) error {
	if c.err != nil {
		return c.err
	}
	c.copied = append(c.copied, text)
	return nil
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// drain runs cmd and every command it leads to, feeding results back into m
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()

	pending := []tea.Cmd{cmd}
	for len(pending) > 0 {
		results := make([]chan tea.Msg, len(pending))
		for i, c := range pending {
			results[i] = make(chan tea.Msg, 1)
			if c == nil {
				results[i] <- nil
				continue
			}
			go func(c tea.Cmd, out chan<- tea.Msg) { out <- c() }(c, results[i])
		}

		deadline := time.After(cmdTimeout)
		pending = nil
		for _, ch := range results {
			var msg tea.Msg
			select {
			case msg = <-ch:
			case <-deadline:
				continue
			}

			switch msg := msg.(type) {
			case nil, spinner.TickMsg, tea.QuitMsg:
			case tea.BatchMsg:
				pending = append(pending, msg...)
			default:
				updated, next := m.Update(msg)
				m = updated.(Model)
				pending = append(pending, next)
			}
		}
	}
	return m
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		updated, cmd := m.Update(keyMsg(k))
		m = drain(t, updated.(Model), cmd)
	}
	return m
}

// resettingClient counts pool resets on top of the dummy client
type resettingClient struct {
	*dummy.Client
	resets atomic.Int32
}

func (c *resettingClient) Reset() {
	c.resets.Add(1)
}

func newTestModel(t *testing.T) (Model, *dummy.Client, *clipboardRecorder) {
	t.Helper()

	client := dummy.NewClient()
	m, clip := newTestModelWith(t, client)
	return m, client, clip
}

func newTestModelWith(t *testing.T, client k8s.Client) (Model, *clipboardRecorder) {
	t.Helper()

	clip := &clipboardRecorder{}
	ctx := types.NewAppContext(ui.ThemeCharm(), client, tree.Prober{}, clip.write)

	m := NewModel(ctx)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	m = drain(t, updated.(Model), updated.(Model).Init())
	return m, clip
}

func TestModel_InitialLoad(t *testing.T) {
	m, _, _ := newTestModel(t)

	assert.Equal(t, 0, m.pending)
	assert.False(t, m.state.LastRefresh.IsZero())

	clusters := m.nodes[tree.ViewClusters]
	require.Len(t, clusters, 3)

	tests := []struct {
		context string
		current bool
		flux    bool
		tag     tree.NodeContext
	}{
		{"kind-dev", true, true, tree.ContextClusterFlux},
		{"prod-eu", false, false, tree.ContextCluster},
		{"staging", false, true, tree.ContextClusterFlux},
	}
	for i, tt := range tests {
		t.Run(tt.context, func(t *testing.T) {
			n := clusters[i]
			assert.Equal(t, tt.context, n.ContextName)
			assert.Equal(t, tt.current, n.Current)
			assert.Equal(t, tt.flux, n.Flux)
			assert.Equal(t, tt.tag, n.Context)
		})
	}

	assert.Equal(t, "kind-dev", m.currentContext())
	assert.False(t, m.currentWithoutFlux)

	apps := m.trees[tree.ViewApplications].Nodes()
	require.Len(t, apps, 5)
	assert.Equal(t, "Kustomization: apps", apps[0].Label)
	assert.Equal(t, "HelmRelease: podinfo", apps[3].Label)

	assert.Contains(t, m.View(), "kind-dev")
}

func TestModel_DropsStaleResults(t *testing.T) {
	m, _, _ := newTestModel(t)
	stale := m.generation - 1

	updated, _ := m.Update(types.TreeLoadedMsg{View: tree.ViewClusters, Nodes: []*tree.Node{}, Generation: stale})
	m = updated.(Model)
	assert.Len(t, m.nodes[tree.ViewClusters], 3)

	updated, _ = m.Update(types.FluxStatusMsg{
		Status: tree.FluxStatus{
			NodeID:      tree.ClusterNodeID("kind-dev"),
			ContextName: "kind-dev",
			Current:     true,
			Installed:   false,
		},
		Generation: stale,
	})
	m = updated.(Model)
	assert.True(t, m.nodes[tree.ViewClusters][0].Flux)
	assert.False(t, m.currentWithoutFlux)
}

func TestModel_FluxStatusForUnknownNode(t *testing.T) {
	m, _, _ := newTestModel(t)

	updated, _ := m.Update(types.FluxStatusMsg{
		Status:     tree.FluxStatus{NodeID: tree.ClusterNodeID("gone"), Current: true},
		Generation: m.generation,
	})
	m = updated.(Model)
	assert.False(t, m.currentWithoutFlux)
}

func TestModel_SwitchContextShowsFluxNotice(t *testing.T) {
	m, client, _ := newTestModel(t)

	require.True(t, m.trees[tree.ViewClusters].SelectByID(tree.ClusterNodeID("prod-eu")))
	m = press(t, m, "enter")

	current, err := client.GetCurrentContext(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "prod-eu", current)
	assert.Equal(t, "prod-eu", m.currentContext())
	assert.True(t, m.currentWithoutFlux)

	for _, v := range []tree.View{tree.ViewApplications, tree.ViewSources} {
		nodes := m.trees[v].Nodes()
		require.Len(t, nodes, 1, v)
		assert.Equal(t, tree.FluxNotInstalledMessage, nodes[0].Label)
		assert.Equal(t, tree.ContextNone, nodes[0].Context)
	}
	assert.NotContains(t, labels(m.trees[tree.ViewDocumentation].Nodes()), tree.FluxNotInstalledMessage)

	// back to a cluster with Flux clears the notice
	require.True(t, m.trees[tree.ViewClusters].SelectByID(tree.ClusterNodeID("staging")))
	m = press(t, m, "enter")
	assert.False(t, m.currentWithoutFlux)
	apps := m.trees[tree.ViewApplications].Nodes()
	require.Len(t, apps, 1)
	assert.Equal(t, "Kustomization: flux-system", apps[0].Label)
}

func labels(nodes []*tree.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Label)
	}
	return out
}

func TestModel_SelectCurrentContext(t *testing.T) {
	m, _, _ := newTestModel(t)
	generation := m.generation

	m = press(t, m, "enter")
	assert.Equal(t, generation, m.generation, "no refresh")
	assert.Contains(t, m.userMessage.Message(), "Already using context kind-dev")
}

func TestModel_SwitchContextFails(t *testing.T) {
	m, _, _ := newTestModel(t)

	updated, cmd := m.Update(types.ContextSwitchMsg{ContextName: "missing"})
	m = drain(t, updated.(Model), cmd)

	assert.Contains(t, m.userMessage.Message(), "Failed to switch to missing")
	assert.Equal(t, "kind-dev", m.currentContext())
}

func TestModel_SwitchViews(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = press(t, m, "tab")
	assert.Equal(t, tree.ViewApplications, m.state.View)
	assert.Contains(t, m.View(), "Kustomization: apps")

	m = press(t, m, "shift+tab", "shift+tab")
	assert.Equal(t, tree.ViewDocumentation, m.state.View)

	m = press(t, m, "tab")
	assert.Equal(t, tree.ViewClusters, m.state.View)
}

func TestModel_ViewYAML(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = press(t, m, "tab", "y")
	require.NotNil(t, m.fullScreen)
	assert.Equal(t, "Kustomization/flux-system/apps", m.fullScreen.Title())
	assert.Contains(t, m.View(), "./clusters/dev/apps")

	m = press(t, m, "esc")
	assert.Nil(t, m.fullScreen)

	// enter runs the node's open resource command
	m = press(t, m, "enter")
	require.NotNil(t, m.fullScreen)
	m = press(t, m, "q")
	assert.Nil(t, m.fullScreen, "q leaves the viewer without quitting")
}

func TestModel_YAMLNotOfferedForClusters(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = press(t, m, "y")
	assert.Nil(t, m.fullScreen)
}

func TestModel_Copy(t *testing.T) {
	m, _, clip := newTestModel(t)

	m = press(t, m, "tab", "c")
	require.Len(t, clip.copied, 1)
	assert.Equal(t, m.trees[tree.ViewApplications].Selected().ResourceURI, clip.copied[0])
	assert.Contains(t, m.userMessage.Message(), "Copied locator")

	m = press(t, m, "shift+tab", "shift+tab", "c")
	assert.Len(t, clip.copied, 1, "groups have nothing to copy")

	m = press(t, m, "j", "c")
	require.Len(t, clip.copied, 2)
	assert.Equal(t, "https://fluxcd.io/flux/", clip.copied[1])
	assert.Contains(t, m.userMessage.Message(), "Copied link")
}

func TestModel_CopyFails(t *testing.T) {
	m, _, clip := newTestModel(t)
	clip.err = errors.New("no display")

	m = press(t, m, "tab", "c")
	assert.Contains(t, m.userMessage.Message(), "Copy failed")
	assert.Contains(t, m.userMessage.Message(), "no display")
}

func TestModel_RefreshKeepsExpandState(t *testing.T) {
	m, _, _ := newTestModel(t)
	require.True(t, m.nodes[tree.ViewClusters][0].IsExpanded())

	m = press(t, m, "h")
	require.False(t, m.nodes[tree.ViewClusters][0].IsExpanded())

	generation := m.generation
	m = press(t, m, "r")
	assert.Equal(t, generation+1, m.generation)
	assert.Equal(t, 0, m.pending)
	assert.False(t, m.nodes[tree.ViewClusters][0].IsExpanded())
	assert.True(t, m.nodes[tree.ViewClusters][0].Flux, "probe reapplied after refresh")
}

func TestModel_RefreshResetsClientPool(t *testing.T) {
	client := &resettingClient{Client: dummy.NewClient()}
	m, _ := newTestModelWith(t, client)
	assert.Equal(t, int32(0), client.resets.Load(), "initial load keeps the pool")

	m = press(t, m, "r")
	assert.Equal(t, int32(1), client.resets.Load())

	// Switching context reloads through the same path
	require.True(t, m.trees[tree.ViewClusters].SelectByID(tree.ClusterNodeID("staging")))
	m = press(t, m, "enter")
	assert.Equal(t, int32(2), client.resets.Load())
	assert.Equal(t, "staging", m.currentContext())
}

func TestModel_ToggleDetails(t *testing.T) {
	m, _, _ := newTestModel(t)
	assert.Contains(t, m.View(), "Property")

	m = press(t, m, "d")
	assert.False(t, m.showDetails)
	assert.NotContains(t, m.View(), "Property")
}

func TestModel_FilterCapturesKeys(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = press(t, m, "/", "p", "r", "o", "d")
	assert.True(t, m.activeTree().IsFiltering())
	assert.Equal(t, "prod", m.activeTree().Filter())

	_, cmd := m.Update(keyMsg("q"))
	if cmd != nil {
		_, quit := cmd().(tea.QuitMsg)
		assert.False(t, quit)
	}

	m = press(t, m, "esc")
	assert.False(t, m.activeTree().IsFiltering())
}

func TestModel_Quit(t *testing.T) {
	m, _, _ := newTestModel(t)

	for _, k := range []string{"q", "ctrl+c"} {
		_, cmd := m.Update(keyMsg(k))
		require.NotNil(t, cmd, k)
		assert.IsType(t, tea.QuitMsg{}, cmd(), k)
	}
}
