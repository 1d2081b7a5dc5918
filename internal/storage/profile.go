package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Veraticus/pix-flow/internal/common"
	"github.com/Veraticus/pix-flow/internal/model"
	"github.com/Veraticus/pix-flow/internal/service"
)

// LoadProfile reads the stored user profile.
func (s *SQLiteStorage) LoadProfile(ctx context.Context) (*model.UserProfile, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	raw, ok, err := s.getItem(ctx, service.ProfileKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("profile %w", common.ErrNotFound)
	}
	return decodeProfile([]byte(raw))
}

// SaveProfile stores profile, replacing any previous one.
func (s *SQLiteStorage) SaveProfile(ctx context.Context, profile *model.UserProfile) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	data, err := encodeProfile(profile)
	if err != nil {
		return err
	}
	return s.setItem(ctx, service.ProfileKey, string(data))
}

// DeleteProfile removes the stored profile. Deleting a missing profile is not
// an error.
func (s *SQLiteStorage) DeleteProfile(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	return s.removeItem(ctx, service.ProfileKey)
}

func encodeProfile(profile *model.UserProfile) ([]byte, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}
	data, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to encode profile: %w", err)
	}
	return data, nil
}

func decodeProfile(data []byte) (*model.UserProfile, error) {
	var profile model.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("%w: stored profile: %v", common.ErrDatabaseCorrupted, err)
	}
	return &profile, nil
}
