package types

import (
	"github.com/renato0307/kflux/internal/k8s"
	"github.com/renato0307/kflux/internal/keyboard"
	"github.com/renato0307/kflux/internal/tree"
	"github.com/renato0307/kflux/internal/ui"
)

// Clipboard writes text to the system clipboard
type Clipboard func(text string) error

// AppContext holds app-wide configuration and dependencies
type AppContext struct {
	Theme     *ui.Theme
	Keys      *keyboard.Keys
	Client    k8s.Client
	Providers map[tree.View]tree.Provider
	Prober    tree.Prober
	Clipboard Clipboard
}

// NewAppContext creates an application context with one provider per view
func NewAppContext(theme *ui.Theme, client k8s.Client, prober tree.Prober, clipboard Clipboard) *AppContext {
	prober.Client = client
	return &AppContext{
		Theme:     theme,
		Keys:      keyboard.GetKeys(),
		Client:    client,
		Providers: tree.Providers(client),
		Prober:    prober,
		Clipboard: clipboard,
	}
}
