// Package testing provides test utilities for TUI components.
package testing

import (
	"reflect"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TestRenderer drives a Bubble Tea model without a terminal. Commands are
// executed and their messages fed back until the model settles.
type TestRenderer struct {
	// Model is the current model.
	Model tea.Model

	// Messages contains every message delivered to the model.
	Messages []tea.Msg

	// CmdTimeout bounds a single command. Commands that block longer, such
	// as cursor blinks or result listeners, are abandoned.
	CmdTimeout time.Duration

	// MaxSteps bounds the messages processed by one Send or Run.
	MaxSteps int

	// Quit is set once the model returned tea.Quit.
	Quit bool
}

// NewTestRenderer creates a renderer for model.
func NewTestRenderer(model tea.Model) *TestRenderer {
	return &TestRenderer{
		Model:      model,
		CmdTimeout: 200 * time.Millisecond,
		MaxSteps:   200,
	}
}

// Send delivers msg and runs the resulting commands to completion.
func (r *TestRenderer) Send(msgs ...tea.Msg) {
	for _, msg := range msgs {
		r.Run(r.Update(msg))
	}
}

// Update delivers msg and returns its command without running it.
func (r *TestRenderer) Update(msg tea.Msg) tea.Cmd {
	r.Messages = append(r.Messages, msg)
	next, cmd := r.Model.Update(msg)
	r.Model = next
	return cmd
}

// Run executes cmd and everything it leads to.
func (r *TestRenderer) Run(cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0 && steps < r.MaxSteps; steps++ {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		msg, ok := r.execute(next)
		if !ok || msg == nil {
			continue
		}
		if batch, isBatch := msg.(tea.BatchMsg); isBatch {
			queue = append(queue, batch...)
			continue
		}
		if _, isQuit := msg.(tea.QuitMsg); isQuit {
			r.Quit = true
			continue
		}
		if isFrameworkMsg(msg) {
			continue
		}
		queue = append(queue, r.Update(msg))
	}
}

func (r *TestRenderer) execute(cmd tea.Cmd) (tea.Msg, bool) {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()

	select {
	case msg := <-ch:
		return msg, true
	case <-time.After(r.CmdTimeout):
		return nil, false
	}
}

// isFrameworkMsg reports animation ticks and other messages owned by the
// charmbracelet packages; they would otherwise loop forever.
func isFrameworkMsg(msg tea.Msg) bool {
	t := reflect.TypeOf(msg)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return strings.HasPrefix(t.PkgPath(), "github.com/charmbracelet/")
}

// View renders the model without ANSI codes.
func (r *TestRenderer) View() string {
	return StripANSI(r.Model.View())
}
