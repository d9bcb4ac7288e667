package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/YOHANEKUMWENDA/bookstore-application/internal/domain"
)

const prefsPrefix = "prefs:"

// GetPreferences retrieves a user's login preferences. A user with no
// saved preferences gets a fresh zeroed record rather than an error.
func (s *Store) GetPreferences(_ context.Context, userID string) (*domain.Preferences, error) {
	key := []byte(prefsPrefix + userID)

	var prefs domain.Preferences
	if err := s.get(key, &prefs); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return &domain.Preferences{UserID: userID}, nil
		}
		return nil, fmt.Errorf("get preferences: %w", err)
	}

	return &prefs, nil
}

// PutPreferences saves a user's login preferences, replacing any
// previous record.
func (s *Store) PutPreferences(_ context.Context, prefs *domain.Preferences) error {
	if prefs.UserID == "" {
		return ErrInvalidInput.WithMessage("preferences require a user id")
	}

	key := []byte(prefsPrefix + prefs.UserID)
	if err := s.set(key, prefs); err != nil {
		return fmt.Errorf("put preferences: %w", err)
	}
	return nil
}

// DeletePreferences removes a user's saved preferences. Idempotent.
func (s *Store) DeletePreferences(_ context.Context, userID string) error {
	key := []byte(prefsPrefix + userID)
	if err := s.delete(key); err != nil {
		return fmt.Errorf("delete preferences: %w", err)
	}
	return nil
}
