package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Veraticus/pix-flow/internal/common"
	"github.com/Veraticus/pix-flow/internal/model"
	"github.com/Veraticus/pix-flow/internal/service"
	"go.etcd.io/bbolt"
)

const boltBucket = "localStorage"

// BoltStorage implements service.ProfileStore using BoltDB.
type BoltStorage struct {
	db *bbolt.DB
}

var _ service.ProfileStore = (*BoltStorage)(nil)

// NewBoltStorage opens (or creates) a BoltDB file at path.
func NewBoltStorage(path string) (*BoltStorage, error) {
	if err := validateString(path, "path"); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening boltdb: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating bucket: %w", err)
	}

	return &BoltStorage{db: db}, nil
}

// LoadProfile reads the stored user profile.
func (b *BoltStorage) LoadProfile(ctx context.Context) (*model.UserProfile, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var data []byte
	err := b.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket([]byte(boltBucket)).Get([]byte(service.ProfileKey)); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	if data == nil {
		return nil, fmt.Errorf("profile %w", common.ErrNotFound)
	}
	return decodeProfile(data)
}

// SaveProfile stores profile, replacing any previous one.
func (b *BoltStorage) SaveProfile(ctx context.Context, profile *model.UserProfile) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	data, err := encodeProfile(profile)
	if err != nil {
		return err
	}
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucket)).Put([]byte(service.ProfileKey), data)
	})
}

// DeleteProfile removes the stored profile.
func (b *BoltStorage) DeleteProfile(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucket)).Delete([]byte(service.ProfileKey))
	})
}

// Close closes the database.
func (b *BoltStorage) Close() error {
	return b.db.Close()
}
