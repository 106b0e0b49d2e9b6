package tree

// NodeContext is the action-context tag of a node. It decides which actions
// a host enables for the node.
type NodeContext string

const (
	ContextNone              NodeContext = ""
	ContextCluster           NodeContext = "cluster"
	ContextClusterFlux       NodeContext = "clusterFlux"
	ContextDeployment        NodeContext = "deployment"
	ContextGitRepository     NodeContext = "gitRepository"
	ContextHelmRepository    NodeContext = "helmRepository"
	ContextBucket            NodeContext = "bucket"
	ContextKustomization     NodeContext = "kustomization"
	ContextHelmRelease       NodeContext = "helmRelease"
	ContextDocumentationLink NodeContext = "documentationLink"
)

// Action is something a host can do with a node
type Action string

const (
	ActionSetCurrentContext Action = "setCurrentContext"
	ActionViewYAML          Action = "viewYAML"
	ActionCopyLocator       Action = "copyLocator"
	ActionCopyLink          Action = "copyLink"
)

var contextActions = map[NodeContext][]Action{
	ContextCluster:           {ActionSetCurrentContext},
	ContextClusterFlux:       {ActionSetCurrentContext},
	ContextDeployment:        {ActionViewYAML, ActionCopyLocator},
	ContextGitRepository:     {ActionViewYAML, ActionCopyLocator},
	ContextHelmRepository:    {ActionViewYAML, ActionCopyLocator},
	ContextBucket:            {ActionViewYAML, ActionCopyLocator},
	ContextKustomization:     {ActionViewYAML, ActionCopyLocator},
	ContextHelmRelease:       {ActionViewYAML, ActionCopyLocator},
	ContextDocumentationLink: {ActionCopyLink},
}

// Actions lists the actions enabled for c
func (c NodeContext) Actions() []Action {
	return contextActions[c]
}

// Allows reports whether action a is enabled for c
func (c NodeContext) Allows(a Action) bool {
	for _, allowed := range contextActions[c] {
		if allowed == a {
			return true
		}
	}
	return false
}

// IsCluster reports whether c tags a cluster node
func (c NodeContext) IsCluster() bool {
	return c == ContextCluster || c == ContextClusterFlux
}

// CommandID names what runs when a node is selected
type CommandID string

const (
	CommandSetCurrentContext CommandID = "kflux.setCurrentContext"
	CommandOpenResource      CommandID = "kflux.openResource"
	CommandOpenLink          CommandID = "kflux.openLink"
)

// Command is run by the host when the node is selected
type Command struct {
	ID        CommandID `json:"id"`
	Title     string    `json:"title"`
	Arguments []string  `json:"arguments,omitempty"`
}

// Arg returns the first argument or ""
func (c *Command) Arg() string {
	if c == nil || len(c.Arguments) == 0 {
		return ""
	}
	return c.Arguments[0]
}

func setContextCommand(contextName string) *Command {
	return &Command{
		ID:        CommandSetCurrentContext,
		Title:     "Set current context",
		Arguments: []string{contextName},
	}
}

func openResourceCommand(uri string) *Command {
	return &Command{
		ID:        CommandOpenResource,
		Title:     "View Resource",
		Arguments: []string{uri},
	}
}

func openLinkCommand(url string) *Command {
	return &Command{
		ID:        CommandOpenLink,
		Title:     "Open Link",
		Arguments: []string{url},
	}
}

// Icon names a glyph; renderers map it to characters and colors
type Icon string

const (
	IconNone           Icon = ""
	IconCloud          Icon = "cloud"
	IconCloudFlux      Icon = "cloud-gitops"
	IconDeployment     Icon = "deployment"
	IconKustomization  Icon = "kustomization"
	IconHelmRelease    Icon = "helm-release"
	IconGitRepository  Icon = "git-repository"
	IconHelmRepository Icon = "helm-repository"
	IconBucket         Icon = "bucket"
	IconFolder         Icon = "folder"
	IconLink           Icon = "link"
	IconWarning        Icon = "warning"
)
