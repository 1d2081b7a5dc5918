package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/Veraticus/pix-flow/internal/scanner"
	"github.com/Veraticus/pix-flow/internal/service"
	"github.com/Veraticus/pix-flow/internal/storage"
)

// openStore opens the configured profile store. The returned cleanup closes
// it.
func (a *app) openStore(ctx context.Context) (service.ProfileStore, func(), error) {
	store, err := storage.Open(ctx, a.settings.Storage.Backend, a.settings.Storage.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open profile store: %w", err)
	}

	cleanup := func() {
		if err := store.Close(); err != nil {
			slog.Error("Failed to close profile store", "error", err)
		}
	}
	return store, cleanup, nil
}

// frameSource returns the camera stand-in for path along with a hint for
// the scanner screen. A regular file is replayed as the only frame; anything
// else is treated as a directory watched for the newest image.
func frameSource(path string) (scanner.FrameSource, string) {
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return &scanner.FileSource{Path: path}, "Lendo " + path
	}
	return &scanner.DirSource{Dir: path}, "Salve a imagem do QR em " + path
}

// scannerConfig converts settings into the decode configuration.
func (a *app) scannerConfig() (scanner.Config, scanner.FacingMode, scanner.Policy) {
	s := a.settings.Scanner
	cfg := scanner.Config{
		FPS:   s.FPS,
		QRBox: scanner.Box{Width: s.QRBox, Height: s.QRBox},
	}
	policy := scanner.Policy{KeepHandleOnStopFailure: s.KeepHandleOnStopFailure}
	return cfg, scanner.FacingMode(s.Facing), policy
}
