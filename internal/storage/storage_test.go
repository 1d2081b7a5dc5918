package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Veraticus/pix-flow/internal/common"
	"github.com/Veraticus/pix-flow/internal/model"
	"github.com/Veraticus/pix-flow/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestStorage(t *testing.T) (*SQLiteStorage, func()) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store, func() { _ = store.Close() }
}

func createTestBolt(t *testing.T) (*BoltStorage, func()) {
	t.Helper()

	store, err := NewBoltStorage(filepath.Join(t.TempDir(), "nested", "pix.bolt"))
	if err != nil {
		t.Fatalf("Failed to create bolt storage: %v", err)
	}
	return store, func() { _ = store.Close() }
}

// profileStoreContract runs the same behavior checks against every backend.
func profileStoreContract(t *testing.T, store service.ProfileStore) {
	t.Helper()
	ctx := context.Background()

	_, err := store.LoadProfile(ctx)
	assert.ErrorIs(t, err, common.ErrNotFound)

	ana := &model.UserProfile{Name: "Ana Souza", TaxID: "123.456.789-00"}
	require.NoError(t, store.SaveProfile(ctx, ana))

	got, err := store.LoadProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, ana, got)

	bruno := &model.UserProfile{Name: "Bruno Lima", TaxID: "987.654.321-00"}
	require.NoError(t, store.SaveProfile(ctx, bruno))

	got, err = store.LoadProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, bruno, got)

	require.NoError(t, store.DeleteProfile(ctx))
	_, err = store.LoadProfile(ctx)
	assert.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, store.DeleteProfile(ctx), "deleting a missing profile is not an error")
}

func TestSQLiteStorage_Profile(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	profileStoreContract(t, store)
}

func TestBoltStorage_Profile(t *testing.T) {
	store, cleanup := createTestBolt(t)
	defer cleanup()

	profileStoreContract(t, store)
}

func TestSaveProfile_RejectsBlankFields(t *testing.T) {
	tests := []struct {
		profile *model.UserProfile
		name    string
	}{
		{name: "nil", profile: nil},
		{name: "blank name", profile: &model.UserProfile{Name: "  ", TaxID: "123"}},
		{name: "blank cpf", profile: &model.UserProfile{Name: "Ana", TaxID: ""}},
	}

	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, store.SaveProfile(ctx, tt.profile))

			_, err := store.LoadProfile(ctx)
			assert.ErrorIs(t, err, common.ErrNotFound, "nothing should be persisted")
		})
	}
}

func TestSQLiteStorage_PersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "pix.db")
	ctx := context.Background()

	first, err := Open(ctx, "sqlite", dbPath)
	require.NoError(t, err)
	require.IsType(t, &SQLiteStorage{}, first)
	assert.Equal(t, dbPath, first.(*SQLiteStorage).Path())
	require.NoError(t, first.SaveProfile(ctx, &model.UserProfile{Name: "Ana", TaxID: "1"}))
	require.NoError(t, first.Close())

	second, err := Open(ctx, "sqlite", dbPath)
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	got, err := second.LoadProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
}

func TestSQLiteStorage_CorruptedValue(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, store.setItem(ctx, service.ProfileKey, "{not json"))

	_, err := store.LoadProfile(ctx)
	assert.ErrorIs(t, err, common.ErrDatabaseCorrupted)
}

func TestMigrate_Idempotent(t *testing.T) {
	store, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()
	ctx := context.Background()

	require.NoError(t, store.Migrate(ctx))
	require.NoError(t, store.Migrate(ctx))

	var version int
	require.NoError(t, store.db.QueryRow("PRAGMA user_version").Scan(&version))
	assert.Equal(t, ExpectedSchemaVersion, version)
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), "redis", filepath.Join(t.TempDir(), "x"))
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestValidateString(t *testing.T) {
	assert.ErrorIs(t, validateString("", "dbPath"), ErrEmptyString)
	assert.ErrorIs(t, validateString("  \t", "dbPath"), ErrEmptyString)
	assert.NoError(t, validateString("pix.db", "dbPath"))
}
