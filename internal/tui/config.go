package tui

import (
	"math/rand"
	"time"

	"github.com/Veraticus/pix-flow/internal/payment"
	"github.com/Veraticus/pix-flow/internal/scanner"
	"github.com/Veraticus/pix-flow/internal/service"
	"github.com/Veraticus/pix-flow/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme           themes.Theme
	Store           service.ProfileStore
	Engines         scanner.EngineFactory
	Now             func() time.Time
	Rand            *rand.Rand
	Facing          scanner.FacingMode
	SourceHint      string
	ScannerConfig   scanner.Config
	ScannerPolicy   scanner.Policy
	ProcessingDelay time.Duration
	Width           int
	Height          int
	RecordDir       string
	ShowHelp        bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:           themes.Default,
		Now:             time.Now,
		Rand:            rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // receipt ids are not secrets
		Facing:          scanner.FacingEnvironment,
		ScannerConfig:   scanner.DefaultConfig(),
		ProcessingDelay: payment.DefaultProcessingDelay,
		Width:           80,
		Height:          24,
		ShowHelp:        true,
	}
}

// WithStore sets the profile store.
func WithStore(store service.ProfileStore) Option {
	return func(c *Config) {
		c.Store = store
	}
}

// WithEngineFactory sets how scanner engines are built.
func WithEngineFactory(f scanner.EngineFactory) Option {
	return func(c *Config) {
		c.Engines = f
	}
}

// WithScanner sets the decode configuration, camera preference and failure
// policy of the scanner.
func WithScanner(cfg scanner.Config, facing scanner.FacingMode, policy scanner.Policy) Option {
	return func(c *Config) {
		c.ScannerConfig = cfg
		c.Facing = facing
		c.ScannerPolicy = policy
	}
}

// WithSourceHint sets the text telling the user where frames come from.
func WithSourceHint(hint string) Option {
	return func(c *Config) {
		c.SourceHint = hint
	}
}

// WithProcessingDelay sets how long a payment takes.
func WithProcessingDelay(d time.Duration) Option {
	return func(c *Config) {
		c.ProcessingDelay = d
	}
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(c *Config) {
		c.Now = now
	}
}

// WithRand sets the random source for receipt ids and statement minutes.
func WithRand(r *rand.Rand) Option {
	return func(c *Config) {
		c.Rand = r
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithRecordDir records every frame under dir for debugging.
func WithRecordDir(dir string) Option {
	return func(c *Config) {
		c.RecordDir = dir
	}
}
