// Package scanner manages the camera QR scanning session: at most one live
// session, an asynchronous start/stop lifecycle, and delivery of decoded
// text to the application.
package scanner

import (
	"context"
	"time"
)

// MountPoint is the view slot a session renders into.
const MountPoint = "reader"

// FacingMode is the preferred camera.
type FacingMode string

const (
	FacingEnvironment FacingMode = "environment"
	FacingUser        FacingMode = "user"
)

// Box is the size of the decode region.
type Box struct {
	Width  int
	Height int
}

// Config holds the decode loop settings.
type Config struct {
	QRBox Box
	FPS   int
}

// DefaultConfig is the configuration used unless settings override it.
func DefaultConfig() Config {
	return Config{
		FPS:   10,
		QRBox: Box{Width: 250, Height: 250},
	}
}

// Interval returns the time between two decode attempts.
func (c Config) Interval() time.Duration {
	if c.FPS <= 0 {
		return time.Second / 10
	}
	return time.Second / time.Duration(c.FPS)
}

// Result is one successful decode.
type Result struct {
	DecodedAt time.Time
	Text      string
	Format    string
}

// Engine is a camera-backed decoding engine bound to a mount point.
//
// Start returns once the camera is streaming or acquisition failed. The
// callbacks are invoked from the engine's own goroutine: onSuccess for every
// decoded frame, onFailure for every frame without a readable code.
type Engine interface {
	Start(ctx context.Context, facing FacingMode, cfg Config, onSuccess func(Result), onFailure func(error)) error
	Stop(ctx context.Context) error
	Clear() error
}

// EngineFactory creates a fresh engine for a mount point.
type EngineFactory func(mount string) Engine
