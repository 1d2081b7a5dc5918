package scanner

import (
	"context"
	"fmt"
	"time"

	"github.com/Veraticus/pix-flow/internal/common"
	tea "github.com/charmbracelet/bubbletea"
)

// Policy selects what happens to the session handle when the camera fails.
type Policy struct {
	// KeepHandleOnStartFailure leaves a session registered after the camera
	// could not be acquired, blocking every later Start.
	KeepHandleOnStartFailure bool
	// KeepHandleOnStopFailure leaves a session registered after the camera
	// could not be released. A later Stop retries the teardown.
	KeepHandleOnStopFailure bool
}

// LegacyPolicy keeps stale handles on both failure paths, like the web demo.
func LegacyPolicy() Policy {
	return Policy{KeepHandleOnStartFailure: true, KeepHandleOnStopFailure: true}
}

// Manager owns at most one scanning session.
//
// All methods must be called from the bubbletea update loop. Blocking engine
// calls run inside the returned commands and report back through Update.
type Manager struct {
	newEngine EngineFactory
	onDecode  func(Result) tea.Cmd
	session   *Session
	mount     string
	mountText string
	facing    FacingMode
	cfg       Config
	policy    Policy
	timeout   time.Duration
	created   int
	stops     int
	// restart is set when Start is requested while a stop is in flight.
	restart bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithConfig sets the decode configuration.
func WithConfig(cfg Config) Option {
	return func(m *Manager) {
		m.cfg = cfg
	}
}

// WithFacing sets the preferred camera.
func WithFacing(facing FacingMode) Option {
	return func(m *Manager) {
		m.facing = facing
	}
}

// WithPolicy sets the failure policy.
func WithPolicy(p Policy) Option {
	return func(m *Manager) {
		m.policy = p
	}
}

// WithTimeout bounds every engine call.
func WithTimeout(d time.Duration) Option {
	return func(m *Manager) {
		m.timeout = d
	}
}

// NewManager creates a manager that builds engines with factory.
func NewManager(factory EngineFactory, opts ...Option) *Manager {
	m := &Manager{
		newEngine: factory,
		mount:     MountPoint,
		facing:    FacingEnvironment,
		cfg:       DefaultConfig(),
		timeout:   10 * time.Second,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// OnDecode registers the callback invoked for every decode of the live
// session. It runs inside Update.
func (m *Manager) OnDecode(fn func(Result) tea.Cmd) {
	m.onDecode = fn
}

// Active reports whether a session handle is held.
func (m *Manager) Active() bool {
	return m.session != nil
}

// Session returns the current session, or nil.
func (m *Manager) Session() *Session {
	return m.session
}

// MountText is the inline message rendered in the mount point, if any.
func (m *Manager) MountText() string {
	return m.mountText
}

// Config returns the decode configuration.
func (m *Manager) Config() Config {
	return m.cfg
}

// Sessions returns how many sessions were created.
func (m *Manager) Sessions() int {
	return m.created
}

// Stops returns how many stop sequences were issued.
func (m *Manager) Stops() int {
	return m.stops
}

// Start opens a session. It is a no-op when a session already exists; if
// that session is being stopped, a new one is started once the stop
// completes.
func (m *Manager) Start() tea.Cmd {
	if m.session != nil {
		if m.session.stopping {
			m.restart = true
		}
		return nil
	}

	s := newSession(m.newEngine(m.mount))
	m.session = s
	m.created++
	m.mountText = ""

	facing, cfg := m.facing, m.cfg
	ctx, cancel := m.context()
	return func() tea.Msg {
		defer cancel()
		// Per-frame misses are expected while no code is in view.
		err := s.engine.Start(ctx, facing, cfg, s.deliver, func(error) {})
		return startResultMsg{sessionID: s.ID, err: err}
	}
}

// Stop tears the session down: the camera is stopped, then the mount point
// is cleared, then the handle is released. It is a no-op when there is no
// session or a stop is already in flight.
func (m *Manager) Stop() tea.Cmd {
	s := m.session
	if s == nil || s.stopping {
		return nil
	}

	s.abandon()
	s.stopping = true
	m.restart = false
	m.stops++

	ctx, cancel := m.context()
	return func() tea.Msg {
		defer cancel()
		if err := s.engine.Stop(ctx); err != nil {
			return stopResultMsg{sessionID: s.ID, err: err}
		}
		if err := s.engine.Clear(); err != nil {
			return stopResultMsg{sessionID: s.ID, err: fmt.Errorf("failed to clear %s: %w", m.mount, err)}
		}
		return stopResultMsg{sessionID: s.ID}
	}
}

// Update consumes scanner messages. handled is false for foreign messages.
func (m *Manager) Update(msg tea.Msg) (cmd tea.Cmd, handled bool) {
	switch msg := msg.(type) {
	case startResultMsg:
		return m.handleStartResult(msg), true
	case resultMsg:
		return m.handleResult(msg), true
	case stopResultMsg:
		return m.handleStopResult(msg), true
	}
	return nil, false
}

func (m *Manager) handleStartResult(msg startResultMsg) tea.Cmd {
	s := m.current(msg.sessionID)
	if s == nil || s.abandoned {
		// The stop sequence owns the engine now.
		return nil
	}

	if msg.err != nil {
		common.LogError(msg.err, "Error starting scanner", common.Fields{"session": s.ID})
		m.mountText = fmt.Sprintf("Erro ao acessar câmera: %v", msg.err)
		if !m.policy.KeepHandleOnStartFailure {
			m.session = nil
		}
		return nil
	}

	s.started = true
	common.LogDebug("Scanner started", common.Fields{"session": s.ID, "fps": m.cfg.FPS})
	return waitForResult(s)
}

func (m *Manager) handleResult(msg resultMsg) tea.Cmd {
	s := m.current(msg.sessionID)
	if s == nil || s.abandoned {
		return nil
	}

	common.LogInfo("Scan result", common.Fields{"session": s.ID, "text": msg.result.Text})

	var cmds []tea.Cmd
	if m.onDecode != nil {
		cmds = append(cmds, m.onDecode(msg.result))
	}
	if !s.abandoned {
		cmds = append(cmds, waitForResult(s))
	}
	return tea.Batch(cmds...)
}

func (m *Manager) handleStopResult(msg stopResultMsg) tea.Cmd {
	s := m.current(msg.sessionID)
	if s == nil {
		return nil
	}
	s.stopping = false

	if msg.err != nil {
		common.LogError(msg.err, "Failed to stop scanner", common.Fields{"session": s.ID})
		if m.policy.KeepHandleOnStopFailure {
			return nil
		}
	}

	m.session = nil
	if m.restart {
		m.restart = false
		return m.Start()
	}
	return nil
}

func (m *Manager) current(id string) *Session {
	if m.session == nil || m.session.ID != id {
		return nil
	}
	return m.session
}

func (m *Manager) context() (context.Context, context.CancelFunc) {
	if m.timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), m.timeout)
}
