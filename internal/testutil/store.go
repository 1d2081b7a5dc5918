// Package testutil provides profile stores for tests.
package testutil

import (
	"context"
	"sync"
	"testing"

	"github.com/Veraticus/pix-flow/internal/common"
	"github.com/Veraticus/pix-flow/internal/model"
	"github.com/Veraticus/pix-flow/internal/storage"
)

// MemoryStore is a ProfileStore kept in memory. SaveErr, when set, fails
// every save.
type MemoryStore struct {
	profile *model.UserProfile
	SaveErr error
	saves   int
	mu      sync.Mutex
}

// NewMemoryStore returns a store holding profile, which may be nil.
func NewMemoryStore(profile *model.UserProfile) *MemoryStore {
	s := &MemoryStore{}
	if profile != nil {
		cp := *profile
		s.profile = &cp
	}
	return s
}

// LoadProfile returns a copy of the stored profile or common.ErrNotFound.
func (s *MemoryStore) LoadProfile(context.Context) (*model.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil, common.ErrNotFound
	}
	p := *s.profile
	return &p, nil
}

// SaveProfile stores a copy of p unless SaveErr is set.
func (s *MemoryStore) SaveProfile(_ context.Context, p *model.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	if s.SaveErr != nil {
		return s.SaveErr
	}
	cp := *p
	s.profile = &cp
	return nil
}

// DeleteProfile forgets the stored profile.
func (s *MemoryStore) DeleteProfile(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = nil
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }

// Stored returns the stored profile, nil if none.
func (s *MemoryStore) Stored() *model.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// Saves returns how many saves were attempted.
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// SetupSQLiteStore creates a migrated in-memory SQLite store, seeded with
// profile when it is not nil. The store is closed when the test ends.
func SetupSQLiteStore(t *testing.T, profile *model.UserProfile) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	if profile != nil {
		if err := store.SaveProfile(ctx, profile); err != nil {
			t.Fatalf("failed to seed profile: %v", err)
		}
	}

	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
	})

	return store
}
