// Package config loads application settings from viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Veraticus/pix-flow/internal/common"
	"github.com/spf13/viper"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendBolt   = "bolt"
)

// Settings holds the resolved configuration of the application.
type Settings struct {
	Storage StorageSettings
	Scanner ScannerSettings
	Payment PaymentSettings
	Logging LoggingSettings
}

// StorageSettings configures where the user profile lives.
type StorageSettings struct {
	Backend string
	Path    string
}

// ScannerSettings configures the camera frame source and decode loop.
type ScannerSettings struct {
	Source string
	Facing string
	FPS    int
	QRBox  int
	// KeepHandleOnStopFailure keeps a session marked active when the camera
	// fails to stop. A later stop retries the teardown.
	KeepHandleOnStopFailure bool
}

// PaymentSettings configures the simulated payment.
type PaymentSettings struct {
	ProcessingDelay time.Duration
}

// LoggingSettings configures slog output.
type LoggingSettings struct {
	Level  string
	Format string
	File   string
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("storage.backend", BackendSQLite)
	v.SetDefault("storage.path", "$HOME/.local/share/pix/pix.db")
	v.SetDefault("scanner.source", "$HOME/.local/share/pix/camera")
	v.SetDefault("scanner.facing", "environment")
	v.SetDefault("scanner.fps", 10)
	v.SetDefault("scanner.qrbox", 250)
	v.SetDefault("scanner.keep_handle_on_stop_failure", false)
	v.SetDefault("payment.processing_delay", 2*time.Second)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", "$HOME/.local/share/pix/pix.log")
}

// Load reads Settings from v, applying defaults and validation.
func Load(v *viper.Viper) (Settings, error) {
	SetDefaults(v)

	s := Settings{
		Storage: StorageSettings{
			Backend: strings.ToLower(v.GetString("storage.backend")),
			Path:    ExpandPath(v.GetString("storage.path")),
		},
		Scanner: ScannerSettings{
			Source:                  ExpandPath(v.GetString("scanner.source")),
			Facing:                  v.GetString("scanner.facing"),
			FPS:                     v.GetInt("scanner.fps"),
			QRBox:                   v.GetInt("scanner.qrbox"),
			KeepHandleOnStopFailure: v.GetBool("scanner.keep_handle_on_stop_failure"),
		},
		Payment: PaymentSettings{
			ProcessingDelay: v.GetDuration("payment.processing_delay"),
		},
		Logging: LoggingSettings{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
			File:   ExpandPath(v.GetString("logging.file")),
		},
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks that the settings are usable.
func (s Settings) Validate() error {
	switch s.Storage.Backend {
	case BackendSQLite, BackendBolt:
	default:
		return fmt.Errorf("%w: storage backend %q", common.ErrInvalidConfig, s.Storage.Backend)
	}
	if s.Storage.Path == "" {
		return fmt.Errorf("%w: storage.path", common.ErrMissingConfig)
	}
	if s.Scanner.FPS <= 0 {
		return fmt.Errorf("%w: scanner.fps must be positive, got %d", common.ErrInvalidConfig, s.Scanner.FPS)
	}
	if s.Scanner.QRBox <= 0 {
		return fmt.Errorf("%w: scanner.qrbox must be positive, got %d", common.ErrInvalidConfig, s.Scanner.QRBox)
	}
	switch s.Scanner.Facing {
	case "environment", "user":
	default:
		return fmt.Errorf("%w: scanner.facing %q", common.ErrInvalidConfig, s.Scanner.Facing)
	}
	if s.Payment.ProcessingDelay < 0 {
		return fmt.Errorf("%w: payment.processing_delay is negative", common.ErrInvalidConfig)
	}
	return nil
}

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}
