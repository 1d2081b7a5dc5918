package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/pix-flow/internal/common"
	"github.com/Veraticus/pix-flow/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries what every command shares: the viper instance, the resolved
// settings and the log file opened for the TUI.
type app struct {
	v         *viper.Viper
	logFile   *os.File
	cfgFile   string
	recordDir string
	settings  config.Settings
}

func newApp() *app {
	return &app{v: viper.New()}
}

func (a *app) root() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pix",
		Short: "◆ Terminal Pix payments",
		Long: `pix: a terminal mock-up of a mobile banking app.

Scan a Pix QR code from your camera folder, confirm the payment and get a
receipt. Browse the statement ("extrato") and export it as OFX.`,
		PersistentPreRunE: a.initConfig,
		SilenceUsage:      true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runApp(cmd.Context())
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.config/pix/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")

	// Bind flags to viper
	_ = a.v.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))

	// Add commands
	rootCmd.AddCommand(a.appCmd())
	rootCmd.AddCommand(a.setupCmd())
	rootCmd.AddCommand(a.profileCmd())
	rootCmd.AddCommand(a.resetCmd())
	rootCmd.AddCommand(a.scanCmd())
	rootCmd.AddCommand(a.qrCmd())
	rootCmd.AddCommand(a.extratoCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	// Set up config file
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		// Search for config in standard locations
		a.v.AddConfigPath(filepath.Join(home, ".config", "pix"))
		a.v.AddConfigPath(".")
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
	}

	// Environment variables
	a.v.SetEnvPrefix("PIX")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	// Read config file
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	settings, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.settings = settings

	// Set up logging
	if err := a.setupLogging(cmd); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

// setupLogging sends logs to stderr, except for the full-screen app where
// they go to the configured log file.
func (a *app) setupLogging(cmd *cobra.Command) error {
	level, err := common.ParseLevel(a.settings.Logging.Level)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.ErrOrStderr()
	if usesAltScreen(cmd) && a.settings.Logging.File != "" {
		if err := os.MkdirAll(filepath.Dir(a.settings.Logging.File), 0o750); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(a.settings.Logging.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		a.logFile = f
		w = f
	}

	return common.SetupLogger(w, level, a.settings.Logging.Format)
}

// usesAltScreen reports whether cmd runs the full-screen app.
func usesAltScreen(cmd *cobra.Command) bool {
	return !cmd.HasParent() || cmd.Name() == "app"
}

// close releases the log file, if one was opened.
func (a *app) close() {
	if a.logFile == nil {
		return
	}
	if err := a.logFile.Close(); err != nil {
		slog.Error("Failed to close log file", "error", err)
	}
	a.logFile = nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pix %s\n", version)
		},
	}
}
