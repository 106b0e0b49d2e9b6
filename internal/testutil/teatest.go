// Package testutil drives Bubble Tea models through a real program loop for
// end-to-end tests.
package testutil

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
)

const (
	DefaultWaitTimeout  = 3 * time.Second
	DefaultFinalTimeout = 3 * time.Second
)

// TestProgram wraps a teatest model with key helpers
type TestProgram struct {
	tm *teatest.TestModel
	t  *testing.T
}

// NewTestProgram starts model in a terminal of the given size
func NewTestProgram(t *testing.T, model tea.Model, width, height int) *TestProgram {
	t.Helper()

	return &TestProgram{
		tm: teatest.NewTestModel(t, model, teatest.WithInitialTermSize(width, height)),
		t:  t,
	}
}

// Send sends a message to the program
func (tp *TestProgram) Send(msg tea.Msg) {
	tp.tm.Send(msg)
}

// Type simulates typing a string, one rune per key press
func (tp *TestProgram) Type(s string) {
	tp.tm.Type(s)
}

// SendKey sends a special key such as tea.KeyTab or tea.KeyEnter
func (tp *TestProgram) SendKey(key tea.KeyType) {
	tp.tm.Send(tea.KeyMsg{Type: key})
}

// WaitForOutput blocks until needle is rendered. Output is consumed as it is
// read, so each call only sees frames drawn after the previous one returned.
func (tp *TestProgram) WaitForOutput(needle string) {
	tp.t.Helper()

	teatest.WaitFor(tp.t, tp.tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte(needle))
	}, teatest.WithDuration(DefaultWaitTimeout), teatest.WithCheckInterval(20*time.Millisecond))
}

// Quit presses q and returns the final model
func (tp *TestProgram) Quit() tea.Model {
	tp.t.Helper()

	tp.Type("q")
	return tp.tm.FinalModel(tp.t, teatest.WithFinalTimeout(DefaultFinalTimeout))
}
