package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/YOHANEKUMWENDA/bookstore-application/internal/errors"
	"github.com/YOHANEKUMWENDA/bookstore-application/internal/service"
)

func TestProfileService_UpdateProfile(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	resp := signUp(t, env, "Alice", "alice@example.com", "password123")
	userID := resp.User.ID

	user, err := env.profile.UpdateProfile(ctx, userID, service.UpdateProfileRequest{
		Name:            "Alice M.",
		PhoneNumber:     "+265991234567",
		ProfileImageURL: "/avatars/alice.jpg",
		Address:         "12 Chileka Rd",
		City:            "Blantyre",
		Country:         "Malawi",
		Bio:             "Reads everything",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice M.", user.DisplayName)
	assert.Equal(t, "+265991234567", user.PhoneNumber)
	assert.Equal(t, "Blantyre", user.City)
	assert.Equal(t, "Malawi", user.Country)
	assert.Equal(t, "Reads everything", user.Bio)

	// Signing in again leaves the edited fields alone
	signIn, err := env.auth.SignIn(ctx, service.SignInRequest{
		Email:      "alice@example.com",
		Password:   "password123",
		DeviceInfo: testDevice(),
	})
	require.NoError(t, err)
	assert.Equal(t, "12 Chileka Rd", signIn.User.Address)
	assert.Equal(t, "Alice M.", signIn.User.DisplayName)

	// The back-office record follows
	account, err := env.store.Accounts.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Alice M.", account.Name)
	assert.Equal(t, "+265991234567", account.PhoneNumber)
	assert.Equal(t, "/avatars/alice.jpg", account.ProfileImageURL)
}

func TestProfileService_UpdateProfile_Validation(t *testing.T) {
	env := setupServices(t)

	resp := signUp(t, env, "Alice", "alice@example.com", "password123")

	_, err := env.profile.UpdateProfile(context.Background(), resp.User.ID, service.UpdateProfileRequest{})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	env := setupServices(t)

	_, err := env.profile.GetProfile(context.Background(), "no-such-user")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestProfileService_GetPreferences_HidesPassword(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	resp := signUp(t, env, "Alice", "alice@example.com", "password123")
	userID := resp.User.ID

	_, err := env.auth.SignIn(ctx, service.SignInRequest{
		Email:      "alice@example.com",
		Password:   "password123",
		RememberMe: true,
		DeviceInfo: testDevice(),
	})
	require.NoError(t, err)

	prefs, err := env.profile.GetPreferences(ctx, userID)
	require.NoError(t, err)
	assert.True(t, prefs.RememberMe)
	assert.Equal(t, "alice@example.com", prefs.SavedEmail)
	assert.Empty(t, prefs.SavedPassword)
}

func TestProfileService_SetRememberMe(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	resp := signUp(t, env, "Alice", "alice@example.com", "password123")
	userID := resp.User.ID

	_, err := env.auth.SignIn(ctx, service.SignInRequest{
		Email:      "alice@example.com",
		Password:   "password123",
		RememberMe: true,
		DeviceInfo: testDevice(),
	})
	require.NoError(t, err)

	require.NoError(t, env.profile.SetRememberMe(ctx, userID, false))

	prefs, err := env.store.GetPreferences(ctx, userID)
	require.NoError(t, err)
	assert.False(t, prefs.RememberMe)
	assert.Empty(t, prefs.SavedEmail)
	assert.Empty(t, prefs.SavedPassword)

	// Enabling requires credentials, which only sign-in has
	err = env.profile.SetRememberMe(ctx, userID, true)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestProfileService_Favorites(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	require.NoError(t, env.profile.AddFavorite(ctx, "user-1", 1))
	require.NoError(t, env.profile.AddFavorite(ctx, "user-1", 3))

	starred, err := env.profile.IsFavorite(ctx, "user-1", 1)
	require.NoError(t, err)
	assert.True(t, starred)

	books, err := env.profile.ListFavoriteBooks(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, books, 2)

	require.NoError(t, env.profile.RemoveFavorite(ctx, "user-1", 1))
	starred, err = env.profile.IsFavorite(ctx, "user-1", 1)
	require.NoError(t, err)
	assert.False(t, starred)

	books, err = env.profile.ListFavoriteBooks(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, 3, books[0].ID)
}

func TestProfileService_AddFavorite_UnknownBook(t *testing.T) {
	env := setupServices(t)

	err := env.profile.AddFavorite(context.Background(), "user-1", 999)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
