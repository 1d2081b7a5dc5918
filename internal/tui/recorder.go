package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Recorder captures navigation and scanner state with the rendered view
// after every message, for debugging.
type Recorder struct {
	logFile  *os.File
	frameDir string
	frameNum int
	enabled  bool
}

// NewRecorder creates a recorder writing under dir. An empty dir, or one
// that cannot be created, yields a disabled recorder.
func NewRecorder(dir string) *Recorder {
	if dir == "" {
		return &Recorder{enabled: false}
	}

	recordDir := filepath.Join(dir, fmt.Sprintf("pix-record-%d", time.Now().UnixNano()))
	if err := os.MkdirAll(recordDir, 0750); err != nil {
		return &Recorder{enabled: false}
	}

	logPath := filepath.Join(recordDir, "tui.log")
	logFile, err := os.Create(filepath.Clean(logPath)) // #nosec G304 -- safe constructed path
	if err != nil {
		return &Recorder{enabled: false}
	}

	r := &Recorder{
		enabled:  true,
		logFile:  logFile,
		frameDir: recordDir,
	}

	r.Log("Recorder started at %s", recordDir)
	return r
}

// Enabled reports whether frames are written.
func (r *Recorder) Enabled() bool {
	return r.enabled
}

// Dir returns the recording directory.
func (r *Recorder) Dir() string {
	return r.frameDir
}

// Frames returns how many frames were captured.
func (r *Recorder) Frames() int {
	return r.frameNum
}

// RecordState captures the model after it handled msg.
func (r *Recorder) RecordState(m Model, msg tea.Msg) {
	if !r.enabled {
		return
	}

	r.frameNum++

	r.Log("\n=== Frame %d ===", r.frameNum)
	r.Log("Time: %s", time.Now().Format("15:04:05.000"))
	r.Log("Message Type: %T", msg)
	r.Log("Screen: %s (active: %v, modal: %v)", m.router.Current(), m.router.ActiveScreens(), m.router.ModalVisible())
	if s := m.scanner.Session(); s != nil {
		r.Log("Scanner: session %s started=%v abandoned=%v", s.ID, s.Started(), s.Abandoned())
	} else {
		r.Log("Scanner: idle")
	}
	r.Log("Processing: %v", m.state.Processing)

	view := m.View()
	framePath := filepath.Join(r.frameDir, fmt.Sprintf("frame-%04d.txt", r.frameNum))
	if err := os.WriteFile(framePath, []byte(view), 0600); err != nil {
		r.Log("Error saving frame: %v", err)
	}
}

// Log writes to the log file.
func (r *Recorder) Log(format string, args ...any) {
	if !r.enabled || r.logFile == nil {
		return
	}

	if _, err := fmt.Fprintf(r.logFile, format+"\n", args...); err != nil {
		return
	}
	if err := r.logFile.Sync(); err != nil {
		return
	}
}

// Close closes the recorder.
func (r *Recorder) Close() {
	if r.logFile != nil {
		r.Log("Recording complete. %d frames captured.", r.frameNum)
		_ = r.logFile.Close() // Best effort close
		r.logFile = nil
	}
}

// recordingModel records every update of the wrapped Model.
type recordingModel struct {
	Model
	rec *Recorder
}

func (r recordingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := r.Model.Update(msg)
	m, ok := next.(Model)
	if !ok {
		return next, cmd
	}
	r.rec.RecordState(m, msg)
	return recordingModel{Model: m, rec: r.rec}, cmd
}
