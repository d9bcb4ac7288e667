package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/YOHANEKUMWENDA/bookstore-application/internal/catalog"
	"github.com/YOHANEKUMWENDA/bookstore-application/internal/domain"
	domainerrors "github.com/YOHANEKUMWENDA/bookstore-application/internal/errors"
	"github.com/YOHANEKUMWENDA/bookstore-application/internal/store"
)

// ProfileService manages a user's own profile, preferences and favorites.
type ProfileService struct {
	store   *store.Store
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewProfileService creates a new profile service.
func NewProfileService(st *store.Store, cat *catalog.Catalog, logger *slog.Logger) *ProfileService {
	return &ProfileService{store: st, catalog: cat, logger: logger}
}

// UpdateProfileRequest contains the editable profile fields.
// Email is part of the account's identity and cannot be changed here.
type UpdateProfileRequest struct {
	Name            string `json:"name" validate:"required"`
	PhoneNumber     string `json:"phone_number,omitempty"`
	ProfileImageURL string `json:"profile_image_url,omitempty"`
	Address         string `json:"address,omitempty"`
	City            string `json:"city,omitempty"`
	Country         string `json:"country,omitempty"`
	Bio             string `json:"bio,omitempty"`
}

// GetProfile returns the user's profile.
func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.store.Users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFound("user not found")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// UpdateProfile applies the editable fields to the user and mirrors
// them into the back-office account record.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*domain.User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.DisplayName = req.Name
	user.PhoneNumber = req.PhoneNumber
	user.ProfileImageURL = req.ProfileImageURL
	user.Address = req.Address
	user.City = req.City
	user.Country = req.Country
	user.Bio = req.Bio
	user.Touch()

	if err := s.store.Users.Update(ctx, userID, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	if account, err := s.store.Accounts.Get(ctx, userID); err == nil {
		account.Name = req.Name
		account.PhoneNumber = req.PhoneNumber
		account.ProfileImageURL = req.ProfileImageURL
		account.Touch()
		if err := s.store.Accounts.Update(ctx, userID, account); err != nil && s.logger != nil {
			s.logger.Warn("Failed to mirror profile into account record", "user_id", userID, "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("Profile updated", "user_id", userID)
	}

	return user, nil
}

// GetPreferences returns the user's login preferences.
// The saved password is never included; it only exists for the client's
// local autofill and the client keeps its own copy.
func (s *ProfileService) GetPreferences(ctx context.Context, userID string) (*domain.Preferences, error) {
	prefs, err := s.store.GetPreferences(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get preferences: %w", err)
	}
	prefs.SavedPassword = ""
	return prefs, nil
}

// SetRememberMe turns the remember-me flag off, wiping the saved
// credentials. Turning it on happens only through sign-in, where the
// actual credentials are present.
func (s *ProfileService) SetRememberMe(ctx context.Context, userID string, remember bool) error {
	if remember {
		return domainerrors.Validation("remember me can only be enabled at sign-in")
	}

	prefs, err := s.store.GetPreferences(ctx, userID)
	if err != nil {
		return fmt.Errorf("get preferences: %w", err)
	}

	prefs.Forget()
	if err := s.store.PutPreferences(ctx, prefs); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

// AddFavorite stars a book for the user.
func (s *ProfileService) AddFavorite(ctx context.Context, userID string, bookID int) error {
	if _, err := s.catalog.ByID(bookID); err != nil {
		return err
	}

	fav := &domain.Favorite{UserID: userID, BookID: bookID}
	fav.InitTimestamps()

	if err := s.store.AddFavorite(ctx, fav); err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

// RemoveFavorite unstars a book for the user. Idempotent.
func (s *ProfileService) RemoveFavorite(ctx context.Context, userID string, bookID int) error {
	if err := s.store.RemoveFavorite(ctx, userID, bookID); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	return nil
}

// IsFavorite reports whether the user has starred the book.
func (s *ProfileService) IsFavorite(ctx context.Context, userID string, bookID int) (bool, error) {
	return s.store.IsFavorite(ctx, userID, bookID)
}

// ListFavoriteBooks returns the user's starred books resolved against
// the catalog. Stars pointing at books no longer in the catalog are
// skipped.
func (s *ProfileService) ListFavoriteBooks(ctx context.Context, userID string) ([]domain.Book, error) {
	favorites, err := s.store.ListFavorites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	books := make([]domain.Book, 0, len(favorites))
	for _, fav := range favorites {
		book, err := s.catalog.ByID(fav.BookID)
		if err != nil {
			continue
		}
		books = append(books, *book)
	}
	return books, nil
}
