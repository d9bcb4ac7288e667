package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"strconv"

	"github.com/dgraph-io/badger/v4"

	"github.com/YOHANEKUMWENDA/bookstore-application/internal/domain"
)

// Favorites use a composite key so a user's stars are one prefix scan.
// Key format: fav:userID:bookID
const favoritePrefix = "fav:"

func favoriteKey(userID string, bookID int) []byte {
	return []byte(favoritePrefix + userID + ":" + strconv.Itoa(bookID))
}

// AddFavorite stars a book for a user. Starring twice is idempotent.
func (s *Store) AddFavorite(_ context.Context, fav *domain.Favorite) error {
	if fav.UserID == "" || fav.BookID <= 0 {
		return ErrInvalidInput.WithMessage("favorite requires a user id and book id")
	}

	if err := s.set(favoriteKey(fav.UserID, fav.BookID), fav); err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

// RemoveFavorite unstars a book for a user. Idempotent.
func (s *Store) RemoveFavorite(_ context.Context, userID string, bookID int) error {
	if err := s.delete(favoriteKey(userID, bookID)); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	return nil
}

// IsFavorite reports whether the user has starred the book.
func (s *Store) IsFavorite(_ context.Context, userID string, bookID int) (bool, error) {
	found, err := s.exists(favoriteKey(userID, bookID))
	if err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}
	return found, nil
}

// ListFavorites returns all of a user's starred books in key order.
func (s *Store) ListFavorites(_ context.Context, userID string) ([]*domain.Favorite, error) {
	prefix := []byte(favoritePrefix + userID + ":")
	var favorites []*domain.Favorite

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var fav domain.Favorite
				if unmarshalErr := json.Unmarshal(val, &fav); unmarshalErr != nil {
					// Skip malformed entries
					//nolint:nilerr // Intentionally returning nil to continue iteration
					return nil
				}
				favorites = append(favorites, &fav)
				return nil
			})
			if err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	return favorites, nil
}

// ClearFavorites removes every star a user has set.
func (s *Store) ClearFavorites(ctx context.Context, userID string) error {
	favorites, err := s.ListFavorites(ctx, userID)
	if err != nil {
		return fmt.Errorf("list favorites for clear: %w", err)
	}

	for _, fav := range favorites {
		if err := s.RemoveFavorite(ctx, userID, fav.BookID); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
	}

	return nil
}
