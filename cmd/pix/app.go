package main

import (
	"context"

	"github.com/Veraticus/pix-flow/internal/scanner"
	"github.com/Veraticus/pix-flow/internal/tui"
	"github.com/spf13/cobra"
)

func (a *app) appCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "app",
		Short: "Open the banking app (default)",
		Long: `Open the full-screen banking app.

The scanner reads frames from scanner.source: point it at a directory and drop
QR code images there, or at a single image file. Logs are written to
logging.file while the app is open.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runApp(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&a.recordDir, "record", "", "record every rendered frame under this directory")

	return cmd
}

func (a *app) runApp(ctx context.Context) error {
	store, cleanup, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	source, hint := frameSource(a.settings.Scanner.Source)
	cfg, facing, policy := a.scannerConfig()

	return tui.Run(ctx,
		tui.WithStore(store),
		tui.WithEngineFactory(scanner.FrameEngineFactory(source, scanner.NewZXingDecoder())),
		tui.WithScanner(cfg, facing, policy),
		tui.WithSourceHint(hint),
		tui.WithProcessingDelay(a.settings.Payment.ProcessingDelay),
		tui.WithRecordDir(a.recordDir),
	)
}
