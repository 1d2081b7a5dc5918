package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/Veraticus/pix-flow/internal/common"
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the application and blocks until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Store == nil {
		return fmt.Errorf("profile store is required")
	}
	if cfg.Engines == nil {
		return fmt.Errorf("scanner engine factory is required")
	}

	var initial tea.Model = newModel(cfg)
	rec := NewRecorder(cfg.RecordDir)
	if rec.Enabled() {
		initial = recordingModel{Model: initial.(Model), rec: rec}
		defer rec.Close()
		common.LogInfo("Recording frames", common.Fields{"dir": rec.Dir()})
	}

	p := tea.NewProgram(initial, tea.WithContext(ctx), tea.WithAltScreen())
	final, err := p.Run()

	// Release the camera if the program ended with a session open.
	switch m := final.(type) {
	case Model:
		m.shutdown()
	case recordingModel:
		m.shutdown()
	}

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// shutdown stops a leftover scanner session synchronously.
func (m Model) shutdown() {
	stop := m.scanner.Stop()
	if stop == nil {
		return
	}
	if msg := stop(); msg != nil {
		m.scanner.Update(msg)
	}
	common.LogDebug("Scanner released on exit", nil)
}
