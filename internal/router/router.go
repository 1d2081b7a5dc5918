// Package router switches the single active screen and runs the side
// effects of entering a screen.
package router

import (
	"time"

	"github.com/Veraticus/pix-flow/internal/common"
	"github.com/Veraticus/pix-flow/internal/model"
	tea "github.com/charmbracelet/bubbletea"
)

// ActivationDelay separates showing a screen from activating it, so entry
// transitions start from the laid-out screen.
const ActivationDelay = 10 * time.Millisecond

// Scanner is the scanning session the router starts and stops.
type Scanner interface {
	Start() tea.Cmd
	Stop() tea.Cmd
	Active() bool
}

// Statement is rebuilt every time the statement screen is entered.
type Statement interface {
	Rebuild()
}

// ActivateMsg marks a shown screen as active.
type ActivateMsg struct {
	Screen model.ScreenID
	seq    int
}

type screenState struct {
	visible bool
	active  bool
}

// Router tracks screen visibility. It is driven from the bubbletea update
// loop and is not safe for concurrent use.
type Router struct {
	scanner   Scanner
	statement Statement
	screens   map[model.ScreenID]*screenState
	current   model.ScreenID
	order     []model.ScreenID
	delay     time.Duration
	seq       int
	modal     bool
}

// Option configures a Router.
type Option func(*Router)

// WithScreens replaces the registered screens.
func WithScreens(ids ...model.ScreenID) Option {
	return func(r *Router) {
		r.screens = make(map[model.ScreenID]*screenState, len(ids))
		r.order = nil
		for _, id := range ids {
			if id.IsModal() {
				continue
			}
			r.screens[id] = &screenState{}
			r.order = append(r.order, id)
		}
	}
}

// WithActivationDelay overrides ActivationDelay.
func WithActivationDelay(d time.Duration) Option {
	return func(r *Router) {
		r.delay = d
	}
}

// New creates a router over every application screen. No screen is visible
// until the first NavigateTo.
func New(scanner Scanner, statement Statement, opts ...Option) *Router {
	r := &Router{
		scanner:   scanner,
		statement: statement,
		delay:     ActivationDelay,
	}
	WithScreens(model.Screens()...)(r)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NavigateTo hides every screen, shows id and runs its hooks. The returned
// command activates id after the activation delay.
func (r *Router) NavigateTo(id model.ScreenID) tea.Cmd {
	for _, s := range r.screens {
		s.visible = false
		s.active = false
	}
	r.seq++

	var cmds []tea.Cmd
	if s, ok := r.screens[id]; ok {
		s.visible = true
		r.current = id
		seq := r.seq
		cmds = append(cmds, tea.Tick(r.delay, func(time.Time) tea.Msg {
			return ActivateMsg{Screen: id, seq: seq}
		}))
	} else {
		r.current = ""
		common.LogDebug("Navigation target not registered", common.Fields{"screen": string(id)})
	}

	switch id {
	case model.ScreenScanner:
		cmds = append(cmds, r.scanner.Start())
	case model.ScreenExtrato:
		r.statement.Rebuild()
		cmds = append(cmds, r.stopScanner())
	default:
		cmds = append(cmds, r.stopScanner())
	}

	// Scanner.Stop already abandoned the session; only the camera teardown
	// runs in its command.
	return tea.Batch(cmds...)
}

func (r *Router) stopScanner() tea.Cmd {
	if !r.scanner.Active() {
		return nil
	}
	return r.scanner.Stop()
}

// Update consumes activation messages. A message from a superseded
// navigation is ignored.
func (r *Router) Update(msg tea.Msg) bool {
	m, ok := msg.(ActivateMsg)
	if !ok {
		return false
	}
	if m.seq != r.seq || m.Screen != r.current {
		return true
	}
	if s, ok := r.screens[m.Screen]; ok && s.visible {
		s.active = true
	}
	return true
}

// Current is the screen most recently navigated to, or "" if that screen
// does not exist.
func (r *Router) Current() model.ScreenID {
	return r.current
}

// Visible reports whether id is shown.
func (r *Router) Visible(id model.ScreenID) bool {
	if id.IsModal() {
		return r.modal
	}
	s, ok := r.screens[id]
	return ok && s.visible
}

// Active reports whether id finished its activation.
func (r *Router) Active(id model.ScreenID) bool {
	s, ok := r.screens[id]
	return ok && s.active
}

// ActiveScreens lists the active screens in registration order.
func (r *Router) ActiveScreens() []model.ScreenID {
	var out []model.ScreenID
	for _, id := range r.order {
		if r.screens[id].active {
			out = append(out, id)
		}
	}
	return out
}

// ShowModal displays the setup overlay.
func (r *Router) ShowModal() {
	r.modal = true
}

// HideModal removes the setup overlay.
func (r *Router) HideModal() {
	r.modal = false
}

// ModalVisible reports whether the setup overlay is displayed.
func (r *Router) ModalVisible() bool {
	return r.modal
}
