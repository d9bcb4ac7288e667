package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const resetPrefix = "reset:"

// ErrResetNotFound is returned when no reset record matches the token hash.
var ErrResetNotFound = errors.New("password reset not found")

// PasswordReset is a pending password-reset request. The token itself is
// only ever mailed to the user; we keep its hash.
type PasswordReset struct {
	TokenHash string    `json:"token_hash"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePasswordReset stores a pending reset, replacing any earlier one
// for the same token hash.
func (s *Store) CreatePasswordReset(_ context.Context, reset *PasswordReset) error {
	key := []byte(resetPrefix + reset.TokenHash)
	if err := s.set(key, reset); err != nil {
		return fmt.Errorf("create password reset: %w", err)
	}
	return nil
}

// ConsumePasswordReset looks up a reset by token hash and deletes it.
// Expired records are deleted and reported as not found.
func (s *Store) ConsumePasswordReset(_ context.Context, tokenHash string) (*PasswordReset, error) {
	key := []byte(resetPrefix + tokenHash)

	var reset PasswordReset
	if err := s.get(key, &reset); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrResetNotFound
		}
		return nil, fmt.Errorf("get password reset: %w", err)
	}

	// Single use either way
	if err := s.delete(key); err != nil {
		return nil, fmt.Errorf("delete password reset: %w", err)
	}

	if time.Now().After(reset.ExpiresAt) {
		return nil, ErrResetNotFound
	}

	return &reset, nil
}
