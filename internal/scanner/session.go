package scanner

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Session is one open camera-decoding attempt.
type Session struct {
	engine  Engine
	results chan Result
	done    chan struct{}
	ID      string
	// abandoned is set once a stop was requested. Results that arrive
	// afterwards are dropped.
	abandoned bool
	stopping  bool
	started   bool
}

func newSession(engine Engine) *Session {
	return &Session{
		ID:      uuid.NewString(),
		engine:  engine,
		results: make(chan Result, 1),
		done:    make(chan struct{}),
	}
}

// Abandoned reports whether a stop was requested for the session.
func (s *Session) Abandoned() bool {
	return s.abandoned
}

// Started reports whether the camera was acquired.
func (s *Session) Started() bool {
	return s.started
}

// deliver runs on the engine goroutine. A result already waiting in the
// buffer is enough; extra results are dropped.
func (s *Session) deliver(r Result) {
	select {
	case <-s.done:
	case s.results <- r:
	default:
	}
}

func (s *Session) abandon() {
	if s.abandoned {
		return
	}
	s.abandoned = true
	close(s.done)
}

// waitForResult blocks until the engine delivers a result or the session is
// abandoned.
func waitForResult(s *Session) tea.Cmd {
	return func() tea.Msg {
		select {
		case r := <-s.results:
			return resultMsg{sessionID: s.ID, result: r}
		case <-s.done:
			return nil
		}
	}
}
