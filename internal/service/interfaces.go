// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/pix-flow/internal/model"
)

// ProfileKey is the storage key holding the serialized user profile.
const ProfileKey = "interUser"

// ProfileStore defines the contract for the durable profile record.
type ProfileStore interface {
	// LoadProfile returns common.ErrNotFound when no profile was saved yet.
	LoadProfile(ctx context.Context) (*model.UserProfile, error)
	SaveProfile(ctx context.Context, profile *model.UserProfile) error
	DeleteProfile(ctx context.Context) error
	Close() error
}
