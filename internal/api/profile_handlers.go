package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/YOHANEKUMWENDA/bookstore-application/internal/service"
)

func (s *Server) registerProfileRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getProfile",
		Method:      http.MethodGet,
		Path:        "/api/v1/profile",
		Summary:     "Get profile",
		Description: "Returns the caller's profile",
		Tags:        []string{"Profile"},
	}, s.handleGetProfile)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateProfile",
		Method:      http.MethodPatch,
		Path:        "/api/v1/profile",
		Summary:     "Update profile",
		Description: "Updates name, contact details and profile image",
		Tags:        []string{"Profile"},
	}, s.handleUpdateProfile)

	huma.Register(s.api, huma.Operation{
		OperationID: "getPreferences",
		Method:      http.MethodGet,
		Path:        "/api/v1/profile/preferences",
		Summary:     "Get login preferences",
		Description: "Returns the remember-me flag and saved email. The saved password is never returned.",
		Tags:        []string{"Profile"},
	}, s.handleGetPreferences)

	huma.Register(s.api, huma.Operation{
		OperationID: "disableRememberMe",
		Method:      http.MethodDelete,
		Path:        "/api/v1/profile/preferences/remember-me",
		Summary:     "Disable remember me",
		Description: "Clears saved credentials. Enabling happens through login.",
		Tags:        []string{"Profile"},
	}, s.handleDisableRememberMe)

	huma.Register(s.api, huma.Operation{
		OperationID: "listFavorites",
		Method:      http.MethodGet,
		Path:        "/api/v1/favorites",
		Summary:     "List favorites",
		Description: "Returns the caller's starred books",
		Tags:        []string{"Favorites"},
	}, s.handleListFavorites)

	huma.Register(s.api, huma.Operation{
		OperationID: "addFavorite",
		Method:      http.MethodPut,
		Path:        "/api/v1/favorites/{bookID}",
		Summary:     "Star book",
		Description: "Adds a book to the caller's favorites. Idempotent.",
		Tags:        []string{"Favorites"},
	}, s.handleAddFavorite)

	huma.Register(s.api, huma.Operation{
		OperationID: "removeFavorite",
		Method:      http.MethodDelete,
		Path:        "/api/v1/favorites/{bookID}",
		Summary:     "Unstar book",
		Description: "Removes a book from the caller's favorites. Idempotent.",
		Tags:        []string{"Favorites"},
	}, s.handleRemoveFavorite)
}

// === DTOs ===

// ProfileOutput wraps the profile for Huma.
type ProfileOutput struct {
	Body UserResponse
}

// UpdateProfileRequest is the request body for profile edits.
type UpdateProfileRequest struct {
	Name            string `json:"name" doc:"Full name"`
	PhoneNumber     string `json:"phone_number,omitempty" doc:"Phone number"`
	ProfileImageURL string `json:"profile_image_url,omitempty" doc:"Profile image URL"`
	Address         string `json:"address,omitempty" doc:"Street address"`
	City            string `json:"city,omitempty" doc:"City"`
	Country         string `json:"country,omitempty" doc:"Country"`
	Bio             string `json:"bio,omitempty" doc:"Short bio"`
}

// UpdateProfileInput wraps the profile edit for Huma.
type UpdateProfileInput struct {
	Body UpdateProfileRequest
}

// PreferencesResponse contains login preferences without credentials.
type PreferencesResponse struct {
	SavedEmail string `json:"saved_email,omitempty" doc:"Email saved for the login screen"`
	RememberMe bool   `json:"remember_me" doc:"Whether credentials are saved"`
}

// PreferencesOutput wraps the preferences for Huma.
type PreferencesOutput struct {
	Body PreferencesResponse
}

// FavoriteInput carries the book id path parameter.
type FavoriteInput struct {
	BookID int `path:"bookID" doc:"Book ID"`
}

// === Handlers ===

func (s *Server) handleGetProfile(ctx context.Context, _ *struct{}) (*ProfileOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.services.Profile.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ProfileOutput{Body: mapUserResponse(user)}, nil
}

func (s *Server) handleUpdateProfile(ctx context.Context, input *UpdateProfileInput) (*ProfileOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.services.Profile.UpdateProfile(ctx, userID, service.UpdateProfileRequest{
		Name:            input.Body.Name,
		PhoneNumber:     input.Body.PhoneNumber,
		ProfileImageURL: input.Body.ProfileImageURL,
		Address:         input.Body.Address,
		City:            input.Body.City,
		Country:         input.Body.Country,
		Bio:             input.Body.Bio,
	})
	if err != nil {
		return nil, err
	}

	return &ProfileOutput{Body: mapUserResponse(user)}, nil
}

func (s *Server) handleGetPreferences(ctx context.Context, _ *struct{}) (*PreferencesOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	prefs, err := s.services.Profile.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &PreferencesOutput{Body: PreferencesResponse{
		SavedEmail: prefs.SavedEmail,
		RememberMe: prefs.RememberMe,
	}}, nil
}

func (s *Server) handleDisableRememberMe(ctx context.Context, _ *struct{}) (*MessageOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.services.Profile.SetRememberMe(ctx, userID, false); err != nil {
		return nil, err
	}

	return &MessageOutput{Body: MessageResponse{Message: "Saved credentials cleared"}}, nil
}

func (s *Server) handleListFavorites(ctx context.Context, _ *struct{}) (*BookListOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	books, err := s.services.Profile.ListFavoriteBooks(ctx, userID)
	if err != nil {
		return nil, err
	}

	return bookList(books), nil
}

func (s *Server) handleAddFavorite(ctx context.Context, input *FavoriteInput) (*MessageOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.services.Profile.AddFavorite(ctx, userID, input.BookID); err != nil {
		return nil, err
	}

	return &MessageOutput{Body: MessageResponse{Message: "Book starred"}}, nil
}

func (s *Server) handleRemoveFavorite(ctx context.Context, input *FavoriteInput) (*MessageOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.services.Profile.RemoveFavorite(ctx, userID, input.BookID); err != nil {
		return nil, err
	}

	return &MessageOutput{Body: MessageResponse{Message: "Book unstarred"}}, nil
}
