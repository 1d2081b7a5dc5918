package storage

import (
	"context"
	"fmt"

	"github.com/Veraticus/pix-flow/internal/common"
	"github.com/Veraticus/pix-flow/internal/config"
	"github.com/Veraticus/pix-flow/internal/service"
)

// Open returns the profile store for backend at path, migrated and ready.
func Open(ctx context.Context, backend, path string) (service.ProfileStore, error) {
	switch backend {
	case config.BackendSQLite, "":
		store, err := NewSQLiteStorage(path)
		if err != nil {
			return nil, err
		}
		if err := store.Migrate(ctx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return store, nil
	case config.BackendBolt:
		return NewBoltStorage(path)
	default:
		return nil, fmt.Errorf("%w: storage backend %q", common.ErrInvalidConfig, backend)
	}
}
