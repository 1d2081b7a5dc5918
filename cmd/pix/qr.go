package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Veraticus/pix-flow/internal/cli"
	"github.com/Veraticus/pix-flow/internal/qrcode"
	"github.com/spf13/cobra"
)

func (a *app) qrCmd() *cobra.Command {
	var payload string

	cmd := &cobra.Command{
		Use:   "qr [path]",
		Short: "Write a demo Pix QR code image",
		Long: `Write a demo Pix QR code as a JPEG. Without a path the image goes into the
scanner source directory, so the open app picks it up on the next frame.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.settings.Scanner.Source
			if len(args) == 1 {
				path = args[0]
			} else if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
				if err := os.MkdirAll(path, 0o750); err != nil {
					return fmt.Errorf("failed to create scanner source: %w", err)
				}
			}

			written, err := qrcode.Generate(payload, path)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("QR code salvo em "+written))
			return nil
		},
	}

	cmd.Flags().StringVar(&payload, "payload", qrcode.DemoPayload, "text to encode")

	return cmd
}
