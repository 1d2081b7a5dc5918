package scanner

import (
	"context"
	"errors"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngine struct {
	onSuccess func(Result)
	startErr  error
	stopErr   error
	mount     string
	starts    int
	stops     int
	clears    int
	mu        sync.Mutex
}

func (f *fakeEngine) Start(_ context.Context, _ FacingMode, _ Config, onSuccess func(Result), _ func(error)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.starts++
	if f.startErr != nil {
		return f.startErr
	}
	f.onSuccess = onSuccess
	return nil
}

func (f *fakeEngine) Stop(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stops++
	return f.stopErr
}

func (f *fakeEngine) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clears++
	return nil
}

func (f *fakeEngine) emit(r Result) {
	f.mu.Lock()
	fn := f.onSuccess
	f.mu.Unlock()
	fn(r)
}

type fakeFactory struct {
	engines  []*fakeEngine
	startErr error
	stopErr  error
}

func (ff *fakeFactory) build(mount string) Engine {
	e := &fakeEngine{mount: mount, startErr: ff.startErr, stopErr: ff.stopErr}
	ff.engines = append(ff.engines, e)
	return e
}

func (ff *fakeFactory) last() *fakeEngine {
	return ff.engines[len(ff.engines)-1]
}

// feed runs cmd and passes its message to the manager.
func feed(t *testing.T, m *Manager, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	require.NotNil(t, cmd)
	next, handled := m.Update(cmd())
	require.True(t, handled)
	return next
}

func startedManager(t *testing.T, opts ...Option) (*Manager, *fakeFactory, tea.Cmd) {
	t.Helper()
	ff := &fakeFactory{}
	m := NewManager(ff.build, opts...)
	wait := feed(t, m, m.Start())
	require.NotNil(t, wait)
	require.True(t, m.Session().Started())
	return m, ff, wait
}

func TestManagerStart(t *testing.T) {
	t.Run("binds to the reader mount point", func(t *testing.T) {
		m, ff, _ := startedManager(t)

		assert.True(t, m.Active())
		assert.Equal(t, MountPoint, ff.last().mount)
		assert.Equal(t, 1, ff.last().starts)
		assert.NotEmpty(t, m.Session().ID)
	})

	t.Run("second start is a no-op", func(t *testing.T) {
		ff := &fakeFactory{}
		m := NewManager(ff.build)

		first := m.Start()
		assert.Nil(t, m.Start())
		feed(t, m, first)
		assert.Nil(t, m.Start())

		assert.Equal(t, 1, m.Sessions())
		assert.Len(t, ff.engines, 1)
	})

	t.Run("failure resets the handle", func(t *testing.T) {
		ff := &fakeFactory{startErr: errors.New("NotAllowedError")}
		m := NewManager(ff.build)

		assert.Nil(t, feed(t, m, m.Start()))

		assert.False(t, m.Active())
		assert.Equal(t, "Erro ao acessar câmera: NotAllowedError", m.MountText())

		ff.startErr = nil
		assert.NotNil(t, m.Start(), "a retry opens a new session")
		assert.Empty(t, m.MountText())
	})

	t.Run("legacy policy keeps a failed handle", func(t *testing.T) {
		ff := &fakeFactory{startErr: errors.New("NotFoundError")}
		m := NewManager(ff.build, WithPolicy(LegacyPolicy()))

		feed(t, m, m.Start())

		assert.True(t, m.Active())
		assert.Nil(t, m.Start())
	})
}

func TestManagerStop(t *testing.T) {
	t.Run("no session", func(t *testing.T) {
		m := NewManager((&fakeFactory{}).build)
		assert.Nil(t, m.Stop())
		assert.Equal(t, 0, m.Stops())
	})

	t.Run("stops then clears then releases", func(t *testing.T) {
		m, ff, _ := startedManager(t)

		assert.Nil(t, feed(t, m, m.Stop()))

		assert.False(t, m.Active())
		assert.Equal(t, 1, ff.last().stops)
		assert.Equal(t, 1, ff.last().clears)
	})

	t.Run("stop in flight makes a second stop a no-op", func(t *testing.T) {
		m, ff, _ := startedManager(t)

		first := m.Stop()
		assert.Nil(t, m.Stop())
		feed(t, m, first)

		assert.Equal(t, 1, m.Stops())
		assert.Equal(t, 1, ff.last().stops)
	})

	t.Run("failure resets the handle", func(t *testing.T) {
		m, ff, _ := startedManager(t)
		ff.last().stopErr = errors.New("device busy")

		feed(t, m, m.Stop())

		assert.False(t, m.Active())
		assert.Equal(t, 0, ff.last().clears)
		assert.NotNil(t, m.Start())
	})

	t.Run("legacy policy keeps the handle and retries", func(t *testing.T) {
		m, ff, _ := startedManager(t, WithPolicy(Policy{KeepHandleOnStopFailure: true}))
		ff.last().stopErr = errors.New("device busy")

		feed(t, m, m.Stop())
		assert.True(t, m.Active())
		assert.Nil(t, m.Start())

		ff.last().stopErr = nil
		feed(t, m, m.Stop())
		assert.False(t, m.Active())
		assert.Equal(t, 2, ff.last().stops)
	})

	t.Run("start during stop restarts afterwards", func(t *testing.T) {
		m, ff, _ := startedManager(t)

		stop := m.Stop()
		assert.Nil(t, m.Start())

		restart := feed(t, m, stop)
		require.NotNil(t, restart)
		assert.True(t, m.Active())
		assert.Equal(t, 2, m.Sessions())

		feed(t, m, restart)
		assert.Len(t, ff.engines, 2)
		assert.True(t, m.Session().Started())
	})

	t.Run("stop before the camera started", func(t *testing.T) {
		ff := &fakeFactory{}
		m := NewManager(ff.build)

		start := m.Start()
		stop := m.Stop()
		assert.Nil(t, feed(t, m, start), "abandoned session does not wait for results")
		feed(t, m, stop)

		assert.False(t, m.Active())
	})
}

func TestManagerResults(t *testing.T) {
	t.Run("forwards live results", func(t *testing.T) {
		m, ff, wait := startedManager(t)

		var got []Result
		m.OnDecode(func(r Result) tea.Cmd {
			got = append(got, r)
			return nil
		})

		ff.last().emit(Result{Text: "000201"})
		next := feed(t, m, wait)

		require.Len(t, got, 1)
		assert.Equal(t, "000201", got[0].Text)
		assert.NotNil(t, next, "manager keeps listening")
	})

	t.Run("drops results of an abandoned session", func(t *testing.T) {
		m, ff, _ := startedManager(t)

		calls := 0
		m.OnDecode(func(Result) tea.Cmd {
			calls++
			return nil
		})

		id := m.Session().ID
		stop := m.Stop()
		ff.last().emit(Result{Text: "late"})

		cmd, handled := m.Update(resultMsg{sessionID: id, result: Result{Text: "late"}})
		assert.True(t, handled)
		assert.Nil(t, cmd)

		feed(t, m, stop)
		cmd, _ = m.Update(resultMsg{sessionID: id, result: Result{Text: "later"}})
		assert.Nil(t, cmd)
		assert.Equal(t, 0, calls)
	})

	t.Run("stop from the decode callback ends listening", func(t *testing.T) {
		m, ff, wait := startedManager(t)

		var stop tea.Cmd
		m.OnDecode(func(Result) tea.Cmd {
			stop = m.Stop()
			return stop
		})

		ff.last().emit(Result{Text: "x"})
		next := feed(t, m, wait)
		require.NotNil(t, stop)
		assert.NotNil(t, next)
		assert.True(t, m.Session().Abandoned())

		feed(t, m, stop)
		assert.False(t, m.Active())
	})

	t.Run("abandoning unblocks the waiting command", func(t *testing.T) {
		m, _, wait := startedManager(t)

		m.Stop()
		assert.Nil(t, wait())
	})

	t.Run("ignores foreign messages", func(t *testing.T) {
		m := NewManager((&fakeFactory{}).build)
		cmd, handled := m.Update(tea.KeyMsg{})
		assert.False(t, handled)
		assert.Nil(t, cmd)
	})
}
