package app

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/kflux/internal/commands"
	"github.com/renato0307/kflux/internal/components"
	"github.com/renato0307/kflux/internal/k8s"
	"github.com/renato0307/kflux/internal/logging"
	"github.com/renato0307/kflux/internal/messages"
	"github.com/renato0307/kflux/internal/tree"
	"github.com/renato0307/kflux/internal/types"
	"github.com/renato0307/kflux/internal/ui"
)

const appName = "kflux"

// Model is the root Bubble Tea model: one tree per view, a details panel and
// a full-screen YAML viewer
type Model struct {
	ctx         *types.AppContext
	registry    *commands.Registry
	state       types.AppState
	header      *components.Header
	layout      *components.Layout
	hints       *components.StatusBar
	userMessage *components.UserMessage
	details     *components.Details
	fullScreen  *components.FullScreen
	trees       map[tree.View]*components.TreeView

	// nodes holds the last built forest of each view, without notices
	nodes       map[tree.View][]*tree.Node
	showDetails bool

	// generation increases on every refresh; older results are dropped
	generation int
	pending    int
	started    time.Time

	currentWithoutFlux bool
	messageID          int
}

func NewModel(ctx *types.AppContext) Model {
	trees := make(map[tree.View]*components.TreeView, len(tree.Views))
	for _, v := range tree.Views {
		tv := components.NewTreeView(ctx.Theme, ctx.Keys)
		tv.SetEmptyText("Loading " + v.Title() + "…")
		trees[v] = tv
	}

	m := Model{
		ctx:      ctx,
		registry: commands.NewRegistry(),
		state: types.AppState{
			View:   tree.ViewClusters,
			Width:  80,
			Height: 24,
		},
		header:      components.NewHeader(ctx.Theme, appName),
		layout:      components.NewLayout(80, 24),
		hints:       components.NewStatusBar(ctx.Theme, ctx.Keys),
		userMessage: components.NewUserMessage(ctx.Theme),
		details:     components.NewDetails(ctx.Theme),
		trees:       trees,
		nodes:       make(map[tree.View][]*tree.Node),
		showDetails: true,
		generation:  1,
		pending:     len(tree.Views),
		started:     time.Now(),
	}
	m.resize()
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{messages.LoadingCmd("Loading trees")}
	for _, v := range tree.Views {
		cmds = append(cmds, m.loadView(v, m.generation))
	}
	return tea.Batch(cmds...)
}

// loadView builds one view off the update loop
func (m Model) loadView(v tree.View, generation int) tea.Cmd {
	provider := m.ctx.Providers[v]
	return func() tea.Msg {
		start := time.Now()
		nodes := provider.Build(context.Background())
		return types.TreeLoadedMsg{
			View:       v,
			Nodes:      nodes,
			Duration:   time.Since(start),
			Generation: generation,
		}
	}
}

// probeClusters sends one command per cluster node. Results arrive in any
// order as FluxStatusMsg.
func (m Model) probeClusters(nodes []*tree.Node, generation int) tea.Cmd {
	prober := m.ctx.Prober
	var cmds []tea.Cmd
	for _, target := range tree.Targets(nodes) {
		cmds = append(cmds, func() tea.Msg {
			return types.FluxStatusMsg{
				Status:     prober.Probe(context.Background(), target),
				Generation: generation,
			}
		})
	}
	return tea.Batch(cmds...)
}

// refresh drops every in-flight result and rebuilds all views
func (m *Model) refresh() tea.Cmd {
	m.generation++
	m.pending = len(tree.Views)
	m.started = time.Now()
	m.currentWithoutFlux = false

	// Pick up kubeconfig edits made since the last load
	if r, ok := m.ctx.Client.(k8s.Resetter); ok {
		r.Reset()
	}

	cmds := []tea.Cmd{messages.LoadingCmd("Refreshing")}
	for _, v := range tree.Views {
		cmds = append(cmds, m.loadView(v, m.generation))
	}
	return tea.Batch(cmds...)
}

// displayNodes prepends the Flux notice to views that show it
func (m Model) displayNodes(v tree.View) []*tree.Node {
	nodes := m.nodes[v]
	if m.currentWithoutFlux && v.ShowsFluxNotice() {
		return append([]*tree.Node{tree.NoticeNode(tree.FluxNotInstalledMessage)}, nodes...)
	}
	return nodes
}

func (m Model) activeTree() *components.TreeView {
	return m.trees[m.state.View]
}

// currentContext is the name of the active cluster node, "" before the
// clusters view loads
func (m Model) currentContext() string {
	for _, n := range m.nodes[tree.ViewClusters] {
		if n.Current {
			return n.ContextName
		}
	}
	return ""
}

func (m *Model) resize() {
	m.layout.SetSize(m.state.Width, m.state.Height)
	m.header.SetWidth(m.state.Width)
	m.hints.SetWidth(m.state.Width)
	m.userMessage.SetWidth(m.state.Width)

	bodyHeight := m.layout.CalculateBodyHeight()
	treeWidth, detailsWidth := m.layout.SplitWidth(m.showDetails)
	for _, tv := range m.trees {
		tv.SetSize(treeWidth, bodyHeight)
	}
	m.details.SetSize(detailsWidth, bodyHeight)
	if m.fullScreen != nil {
		m.fullScreen.SetSize(m.state.Width, m.state.Height)
	}
}

// syncChrome updates header, hints and details from the active tree
func (m *Model) syncChrome() {
	tv := m.activeTree()
	m.header.SetActiveView(m.state.View)
	m.header.SetContext(m.currentContext())
	m.header.SetItemCount(tree.Count(tv.Nodes()))
	m.hints.SetFiltering(tv.IsFiltering())

	selected := tv.Selected()
	m.details.SetNode(selected)
	if selected != nil {
		m.hints.SetActions(selected.Context.Actions())
	} else {
		m.hints.SetActions(nil)
	}
}

func (m *Model) setStatus(msg types.StatusMsg) tea.Cmd {
	m.messageID++
	m.userMessage.SetMessage(msg.Message, msg.Type)
	if msg.Type == ui.MessageTypeLoading {
		return m.userMessage.GetSpinnerCmd()
	}
	id := m.messageID
	return tea.Tick(components.StatusBarDisplayDuration, func(time.Time) tea.Msg {
		return types.ClearStatusMsg{MessageID: id}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case types.TreeLoadedMsg:
		return m.handleTreeLoaded(msg)

	case types.FluxStatusMsg:
		return m.handleFluxStatus(msg)

	case types.RefreshMsg:
		cmd := m.refresh()
		return m, cmd

	case types.StatusMsg:
		cmd := m.setStatus(msg)
		return m, cmd

	case types.ClearStatusMsg:
		if msg.MessageID == m.messageID {
			m.userMessage.ClearMessage()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.userMessage, cmd = m.userMessage.Update(msg)
		return m, cmd

	case types.ShowFullScreenMsg:
		m.fullScreen = components.NewFullScreen(msg.Title, msg.Content, m.ctx.Theme)
		m.fullScreen.SetSize(m.state.Width, m.state.Height)
		m.userMessage.ClearMessage()
		return m, nil

	case types.ExitFullScreenMsg:
		m.fullScreen = nil
		return m, nil

	case types.ContextSwitchMsg:
		return m, commands.SwitchContext(m.ctx.Client, m.currentContext(), msg.ContextName)

	case types.ContextSwitchCompleteMsg:
		status := m.setStatus(types.SuccessMsg(fmt.Sprintf("Switched to context %s", msg.NewContext)))
		reload := m.refresh()
		return m, tea.Batch(status, reload)

	case types.ContextSwitchFailedMsg:
		cmd := m.setStatus(types.ErrorStatusMsg(fmt.Sprintf("Failed to switch to %s: %v", msg.Context, msg.Err)))
		return m, cmd
	}

	return m, nil
}

func (m Model) handleTreeLoaded(msg types.TreeLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Generation != m.generation {
		logging.Debug("dropping stale tree", "view", msg.View, "generation", msg.Generation)
		return m, nil
	}

	logging.Debug("tree loaded", "view", msg.View, "nodes", tree.Count(msg.Nodes), "duration", msg.Duration)

	if old := m.nodes[msg.View]; old != nil {
		tree.RestoreExpandState(msg.Nodes, tree.ExpandState(old))
	}
	m.nodes[msg.View] = msg.Nodes

	tv := m.trees[msg.View]
	tv.SetEmptyText("No " + msg.View.Title())
	tv.SetNodes(m.displayNodes(msg.View))

	var cmds []tea.Cmd
	if msg.View == tree.ViewClusters {
		cmds = append(cmds, m.probeClusters(msg.Nodes, msg.Generation))
	}

	m.pending--
	if m.pending == 0 {
		m.state.LastRefresh = time.Now()
		m.state.RefreshTime = time.Since(m.started)
		m.header.SetLastRefresh(m.state.LastRefresh)
		if m.userMessage.IsLoadingMessage() {
			m.userMessage.ClearMessage()
		}
	}

	m.syncChrome()
	return m, tea.Batch(cmds...)
}

func (m Model) handleFluxStatus(msg types.FluxStatusMsg) (tea.Model, tea.Cmd) {
	if msg.Generation != m.generation {
		return m, nil
	}
	if !tree.ApplyFluxStatus(m.nodes[tree.ViewClusters], msg.Status) {
		return m, nil
	}

	if msg.Status.Current {
		m.currentWithoutFlux = msg.Status.CurrentWithoutFlux()
		for _, v := range tree.Views {
			if v.ShowsFluxNotice() && m.nodes[v] != nil {
				m.trees[v].SetNodes(m.displayNodes(v))
			}
		}
	}

	m.syncChrome()
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.ctx.Keys

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.fullScreen != nil {
		switch msg.String() {
		case keys.Back, keys.Quit:
			m.fullScreen = nil
			return m, nil
		}
		var cmd tea.Cmd
		m.fullScreen, cmd = m.fullScreen.Update(msg)
		return m, cmd
	}

	tv := m.activeTree()
	if tv.IsFiltering() {
		var cmd tea.Cmd
		_, cmd = tv.Update(msg)
		m.syncChrome()
		return m, cmd
	}

	var cmd tea.Cmd
	switch msg.String() {
	case keys.Quit:
		return m, tea.Quit
	case keys.NextView:
		m.switchView(1)
	case keys.PrevView:
		m.switchView(-1)
	case keys.Refresh:
		cmd = m.refresh()
	case keys.Details:
		m.showDetails = !m.showDetails
		m.resize()
	case keys.Select:
		cmd = m.runCommand(tv.Selected())
	case keys.YAML:
		cmd = m.registry.RunAction(tree.ActionViewYAML, m.commandContext(tv.Selected()))
	case keys.Copy:
		cmd = m.copySelected(tv.Selected())
	default:
		_, cmd = tv.Update(msg)
	}

	m.syncChrome()
	return m, cmd
}

func (m *Model) switchView(step int) {
	views := tree.Views
	for i, v := range views {
		if v == m.state.View {
			m.state.View = views[(i+step+len(views))%len(views)]
			return
		}
	}
}

func (m Model) commandContext(n *tree.Node) commands.CommandContext {
	return commands.CommandContext{
		Node:           n,
		Client:         m.ctx.Client,
		Clipboard:      m.ctx.Clipboard,
		CurrentContext: m.currentContext(),
	}
}

// runCommand performs the node's command, or toggles nodes without one
func (m Model) runCommand(n *tree.Node) tea.Cmd {
	if n == nil {
		return nil
	}
	if n.Command == nil {
		m.activeTree().ToggleExpand()
		return nil
	}
	return m.registry.Run(m.commandContext(n))
}

// copySelected copies the locator of resources or the URL of links
func (m Model) copySelected(n *tree.Node) tea.Cmd {
	ctx := m.commandContext(n)
	if cmd := m.registry.RunAction(tree.ActionCopyLocator, ctx); cmd != nil {
		return cmd
	}
	return m.registry.RunAction(tree.ActionCopyLink, ctx)
}

func (m Model) View() string {
	if m.fullScreen != nil {
		return m.fullScreen.View()
	}

	body := m.activeTree().View()
	if details := m.details.View(); details != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, details)
	}

	return m.layout.Render(m.header.View(), body, m.hints.View(), m.userMessage.View())
}
