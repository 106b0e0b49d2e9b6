package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/kflux/internal/ui"
)

// UserMessage holds the current status message and animates the spinner of
// loading messages. Rendering is delegated to ui.RenderMessage.
type UserMessage struct {
	message     string
	messageType ui.MessageType
	width       int
	theme       *ui.Theme
	spinner     spinner.Model
}

func NewUserMessage(theme *ui.Theme) *UserMessage {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"✽", "✻", "✶", "·", "✢"},
		FPS:    time.Second / 6,
	}
	s.Style = lipgloss.NewStyle()

	return &UserMessage{
		theme:   theme,
		spinner: s,
	}
}

func (um *UserMessage) SetMessage(msg string, msgType ui.MessageType) {
	um.message = msg
	um.messageType = msgType
}

// Message returns the text currently shown
func (um *UserMessage) Message() string {
	return um.message
}

// GetSpinnerCmd returns the spinner tick command if showing a loading message
func (um *UserMessage) GetSpinnerCmd() tea.Cmd {
	if um.messageType == ui.MessageTypeLoading {
		return um.spinner.Tick
	}
	return nil
}

func (um *UserMessage) ClearMessage() {
	um.message = ""
	um.messageType = ui.MessageTypeInfo
}

func (um *UserMessage) IsLoadingMessage() bool {
	return um.message != "" && um.messageType == ui.MessageTypeLoading
}

func (um *UserMessage) SetWidth(width int) {
	um.width = width
}

// Update advances the spinner while a loading message is shown
func (um *UserMessage) Update(msg tea.Msg) (*UserMessage, tea.Cmd) {
	if !um.IsLoadingMessage() {
		return um, nil
	}
	var cmd tea.Cmd
	um.spinner, cmd = um.spinner.Update(msg)
	return um, cmd
}

func (um *UserMessage) View() string {
	if um.message == "" {
		return lipgloss.NewStyle().Width(um.width).Render("")
	}

	var spinnerView string
	if um.messageType == ui.MessageTypeLoading {
		spinnerView = um.spinner.View()
	}
	return ui.RenderMessage(um.message, um.messageType, um.theme, spinnerView, um.width)
}
