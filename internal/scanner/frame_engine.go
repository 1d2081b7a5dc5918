package scanner

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrEngineStopped is returned by Start on an engine that was already stopped.
var ErrEngineStopped = errors.New("scanner engine stopped")

// FrameEngine is the Engine that polls a FrameSource and decodes each frame.
// An engine serves a single session.
type FrameEngine struct {
	source  FrameSource
	decoder Decoder
	cancel  context.CancelFunc
	done    chan struct{}
	mount   string
	mu      sync.Mutex
	running bool
	stopped bool
	cleared bool
}

// NewFrameEngine creates an engine for mount.
func NewFrameEngine(mount string, source FrameSource, decoder Decoder) *FrameEngine {
	return &FrameEngine{
		mount:   mount,
		source:  source,
		decoder: decoder,
	}
}

// FrameEngineFactory builds FrameEngines that share source and decoder.
func FrameEngineFactory(source FrameSource, decoder Decoder) EngineFactory {
	return func(mount string) Engine {
		return NewFrameEngine(mount, source, decoder)
	}
}

// Start acquires the source and begins decoding at cfg.FPS.
func (e *FrameEngine) Start(ctx context.Context, _ FacingMode, cfg Config, onSuccess func(Result), onFailure func(error)) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stopped {
		return ErrEngineStopped
	}
	if e.running {
		return errors.New("scanner engine already running")
	}
	if err := e.source.Open(ctx); err != nil {
		return err
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel
	e.done = make(chan struct{})
	e.running = true

	go e.loop(loopCtx, cfg.Interval(), onSuccess, onFailure, e.done)
	return nil
}

// Stop ends the decode loop and releases the source. Stopping an engine
// that never started prevents a later Start.
func (e *FrameEngine) Stop(ctx context.Context) error {
	e.mu.Lock()
	e.stopped = true
	if !e.running {
		e.mu.Unlock()
		return nil
	}
	e.running = false
	cancel, done := e.cancel, e.done
	e.mu.Unlock()

	cancel()
	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return e.source.Close()
}

// Clear releases the mount point.
func (e *FrameEngine) Clear() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cleared = true
	return nil
}

// Running reports whether the decode loop is active.
func (e *FrameEngine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

func (e *FrameEngine) loop(ctx context.Context, interval time.Duration, onSuccess func(Result), onFailure func(error), done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		e.scan(ctx, onSuccess, onFailure)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (e *FrameEngine) scan(ctx context.Context, onSuccess func(Result), onFailure func(error)) {
	img, err := e.source.Frame(ctx)
	if err != nil {
		onFailure(err)
		return
	}
	res, err := e.decoder.Decode(img)
	if err != nil {
		onFailure(err)
		return
	}
	if ctx.Err() != nil {
		return
	}
	res.DecodedAt = time.Now()
	onSuccess(res)
}
