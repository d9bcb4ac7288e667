package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/YOHANEKUMWENDA/bookstore-application/internal/auth"
	"github.com/YOHANEKUMWENDA/bookstore-application/internal/domain"
	"github.com/YOHANEKUMWENDA/bookstore-application/internal/service"
)

func (s *Server) registerAuthRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "signup",
		Method:      http.MethodPost,
		Path:        "/api/v1/auth/signup",
		Summary:     "Register new account",
		Description: "Creates a new account and signs it in. The account's role is resolved from the email address.",
		Tags:        []string{"Authentication"},
	}, s.handleSignUp)

	huma.Register(s.api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/api/v1/auth/login",
		Summary:     "User login",
		Description: "Authenticates a user and returns access and refresh tokens",
		Tags:        []string{"Authentication"},
	}, s.handleLogin)

	huma.Register(s.api, huma.Operation{
		OperationID: "refresh",
		Method:      http.MethodPost,
		Path:        "/api/v1/auth/refresh",
		Summary:     "Refresh tokens",
		Description: "Exchanges a refresh token for new tokens",
		Tags:        []string{"Authentication"},
	}, s.handleRefresh)

	huma.Register(s.api, huma.Operation{
		OperationID: "logout",
		Method:      http.MethodPost,
		Path:        "/api/v1/auth/logout",
		Summary:     "Logout",
		Description: "Revokes the session and resets the caller's navigation and cart state",
		Tags:        []string{"Authentication"},
	}, s.handleLogout)

	huma.Register(s.api, huma.Operation{
		OperationID: "forgotPassword",
		Method:      http.MethodPost,
		Path:        "/api/v1/auth/forgot-password",
		Summary:     "Request password reset",
		Description: "Mails a single-use reset token to the given address",
		Tags:        []string{"Authentication"},
	}, s.handleForgotPassword)

	huma.Register(s.api, huma.Operation{
		OperationID: "resetPassword",
		Method:      http.MethodPost,
		Path:        "/api/v1/auth/reset-password",
		Summary:     "Complete password reset",
		Description: "Sets a new password using a mailed reset token",
		Tags:        []string{"Authentication"},
	}, s.handleResetPassword)
}

// === DTOs ===

// DeviceInfo contains device metadata for session tracking.
type DeviceInfo struct {
	DeviceType    string `json:"device_type,omitempty" doc:"Device type (mobile, tablet, desktop, web)"`
	Platform      string `json:"platform,omitempty" doc:"Platform (iOS, Android, Web)"`
	ClientName    string `json:"client_name,omitempty" doc:"Client name"`
	ClientVersion string `json:"client_version,omitempty" doc:"Client version"`
	DeviceName    string `json:"device_name,omitempty" doc:"Human-readable device name"`
}

// SignUpRequest is the request body for account registration.
type SignUpRequest struct {
	Name        string     `json:"name" doc:"Full name"`
	Email       string     `json:"email" doc:"Email address"`
	Password    string     `json:"password" doc:"Password"`
	PhoneNumber string     `json:"phone_number,omitempty" doc:"Phone number"`
	DeviceInfo  DeviceInfo `json:"device_info,omitempty" doc:"Client device info"`
}

// SignUpInput wraps the signup request with headers for Huma.
type SignUpInput struct {
	Body          SignUpRequest
	XForwardedFor string `header:"X-Forwarded-For"`
	XRealIP       string `header:"X-Real-IP"`
}

// LoginRequest is the request body for user login.
type LoginRequest struct {
	Email      string     `json:"email" doc:"User email"`
	Password   string     `json:"password" doc:"User password"`
	RememberMe bool       `json:"remember_me,omitempty" doc:"Save credentials for the next launch"`
	DeviceInfo DeviceInfo `json:"device_info,omitempty" doc:"Client device info"`
}

// LoginInput wraps the login request with headers for Huma.
type LoginInput struct {
	Body          LoginRequest
	XForwardedFor string `header:"X-Forwarded-For"`
	XRealIP       string `header:"X-Real-IP"`
}

// RefreshRequest is the request body for token refresh.
type RefreshRequest struct {
	RefreshToken string     `json:"refresh_token" doc:"Refresh token"`
	DeviceInfo   DeviceInfo `json:"device_info,omitempty" doc:"Updated device info"`
}

// RefreshInput wraps the refresh request with headers for Huma.
type RefreshInput struct {
	Body          RefreshRequest
	XForwardedFor string `header:"X-Forwarded-For"`
	XRealIP       string `header:"X-Real-IP"`
}

// LogoutRequest is the request body for logout.
type LogoutRequest struct {
	SessionID string `json:"session_id" doc:"Session ID to revoke"`
}

// LogoutInput wraps the logout request for Huma.
type LogoutInput struct {
	Body LogoutRequest
}

// ForgotPasswordRequest is the request body for a reset mail.
type ForgotPasswordRequest struct {
	Email string `json:"email" doc:"Account email address"`
}

// ForgotPasswordInput wraps the request for Huma.
type ForgotPasswordInput struct {
	Body ForgotPasswordRequest
}

// ResetPasswordRequest is the request body for completing a reset.
type ResetPasswordRequest struct {
	Token       string `json:"token" doc:"Mailed reset token"`
	NewPassword string `json:"new_password" doc:"New password"`
}

// ResetPasswordInput wraps the request for Huma.
type ResetPasswordInput struct {
	Body ResetPasswordRequest
}

// UserResponse contains user information in API responses.
type UserResponse struct {
	ID              string    `json:"id" doc:"User ID"`
	Email           string    `json:"email" doc:"User email"`
	Name            string    `json:"name" doc:"Display name"`
	PhoneNumber     string    `json:"phone_number,omitempty" doc:"Phone number"`
	ProfileImageURL string    `json:"profile_image_url,omitempty" doc:"Profile image URL"`
	Address         string    `json:"address,omitempty" doc:"Street address"`
	City            string    `json:"city,omitempty" doc:"City"`
	Country         string    `json:"country,omitempty" doc:"Country"`
	Bio             string    `json:"bio,omitempty" doc:"Short bio"`
	Role            string    `json:"role" doc:"Account role (admin or customer)"`
	CreatedAt       time.Time `json:"created_at" doc:"Creation timestamp"`
	LastLoginAt     time.Time `json:"last_login_at" doc:"Last login timestamp"`
}

// AuthResponse contains authentication tokens and user info.
type AuthResponse struct {
	AccessToken   string         `json:"access_token" doc:"PASETO access token"`
	RefreshToken  string         `json:"refresh_token" doc:"Refresh token"`
	SessionID     string         `json:"session_id" doc:"Session identifier"`
	TokenType     string         `json:"token_type" doc:"Token type (Bearer)"`
	ExpiresIn     int            `json:"expires_in" doc:"Token expiry in seconds"`
	User          UserResponse   `json:"user" doc:"Authenticated user"`
	InitialScreen domain.Screen  `json:"initial_screen" doc:"Screen the client should land on"`
	Navigation    NavStateDTO    `json:"navigation" doc:"Navigation state after authentication"`
}

// AuthOutput wraps the auth response for Huma.
type AuthOutput struct {
	Body AuthResponse
}

// MessageResponse contains a simple message.
type MessageResponse struct {
	Message string `json:"message" doc:"Success message"`
}

// MessageOutput wraps the message response for Huma.
type MessageOutput struct {
	Body MessageResponse
}

// === Handlers ===

func (s *Server) handleSignUp(ctx context.Context, input *SignUpInput) (*AuthOutput, error) {
	req := service.SignUpRequest{
		Name:        input.Body.Name,
		Email:       input.Body.Email,
		Password:    input.Body.Password,
		PhoneNumber: input.Body.PhoneNumber,
		DeviceInfo:  mapDeviceInfo(input.Body.DeviceInfo),
		IPAddress:   extractIP(input.XForwardedFor, input.XRealIP),
	}

	resp, err := s.services.Auth.SignUp(ctx, req)
	if err != nil {
		return nil, err
	}

	return &AuthOutput{Body: s.mapAuthResponse(ctx, resp)}, nil
}

func (s *Server) handleLogin(ctx context.Context, input *LoginInput) (*AuthOutput, error) {
	req := service.SignInRequest{
		Email:      input.Body.Email,
		Password:   input.Body.Password,
		RememberMe: input.Body.RememberMe,
		DeviceInfo: mapDeviceInfo(input.Body.DeviceInfo),
		IPAddress:  extractIP(input.XForwardedFor, input.XRealIP),
	}

	resp, err := s.services.Auth.SignIn(ctx, req)
	if err != nil {
		return nil, err
	}

	return &AuthOutput{Body: s.mapAuthResponse(ctx, resp)}, nil
}

func (s *Server) handleRefresh(ctx context.Context, input *RefreshInput) (*AuthOutput, error) {
	req := service.RefreshRequest{
		RefreshToken: input.Body.RefreshToken,
		DeviceInfo:   mapDeviceInfo(input.Body.DeviceInfo),
		IPAddress:    extractIP(input.XForwardedFor, input.XRealIP),
	}

	resp, err := s.services.Auth.RefreshTokens(ctx, req)
	if err != nil {
		return nil, err
	}

	// A refresh is not a fresh authentication, so it leaves the
	// navigation stack alone.
	out := AuthResponse{
		AccessToken:   resp.AccessToken,
		RefreshToken:  resp.RefreshToken,
		SessionID:     resp.SessionID,
		TokenType:     resp.TokenType,
		ExpiresIn:     resp.ExpiresIn,
		User:          mapUserResponse(resp.User),
		InitialScreen: s.services.Navigator.ResolveInitialScreen(resp.User),
		Navigation:    mapNavState(s.services.Navigator.State(ctx, resp.User.ID)),
	}
	return &AuthOutput{Body: out}, nil
}

func (s *Server) handleLogout(ctx context.Context, input *LogoutInput) (*NavStateOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	state, err := s.services.Navigator.Logout(ctx, userID, input.Body.SessionID)
	if err != nil {
		// Local state was still reset; the next state fetch shows the
		// login screen. The remote failure is still the caller's to see.
		return nil, err
	}

	return &NavStateOutput{Body: mapNavState(state)}, nil
}

func (s *Server) handleForgotPassword(ctx context.Context, input *ForgotPasswordInput) (*MessageOutput, error) {
	if err := s.services.Auth.SendPasswordReset(ctx, input.Body.Email); err != nil {
		return nil, err
	}

	return &MessageOutput{Body: MessageResponse{
		Message: "If that address has an account, a reset mail is on its way",
	}}, nil
}

func (s *Server) handleResetPassword(ctx context.Context, input *ResetPasswordInput) (*MessageOutput, error) {
	if err := s.services.Auth.ResetPassword(ctx, input.Body.Token, input.Body.NewPassword); err != nil {
		return nil, err
	}

	return &MessageOutput{Body: MessageResponse{Message: "Password updated"}}, nil
}

// === Helpers ===

func mapDeviceInfo(d DeviceInfo) auth.DeviceInfo {
	return auth.DeviceInfo{
		DeviceType:    d.DeviceType,
		Platform:      d.Platform,
		ClientName:    d.ClientName,
		ClientVersion: d.ClientVersion,
		DeviceName:    d.DeviceName,
	}
}

func mapUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:              user.ID,
		Email:           user.Email,
		Name:            user.Name(),
		PhoneNumber:     user.PhoneNumber,
		ProfileImageURL: user.ProfileImageURL,
		Address:         user.Address,
		City:            user.City,
		Country:         user.Country,
		Bio:             user.Bio,
		Role:            string(user.Role),
		CreatedAt:       user.CreatedAt,
		LastLoginAt:     user.LastLoginAt,
	}
}

// mapAuthResponse builds the auth payload, landing the user's
// navigation stack on their role's initial screen.
func (s *Server) mapAuthResponse(ctx context.Context, resp *service.AuthResponse) AuthResponse {
	navState := s.services.Navigator.OnAuthSuccess(ctx, resp.User)

	return AuthResponse{
		AccessToken:   resp.AccessToken,
		RefreshToken:  resp.RefreshToken,
		SessionID:     resp.SessionID,
		TokenType:     resp.TokenType,
		ExpiresIn:     resp.ExpiresIn,
		User:          mapUserResponse(resp.User),
		InitialScreen: s.services.Navigator.ResolveInitialScreen(resp.User),
		Navigation:    mapNavState(navState),
	}
}

func extractIP(xForwardedFor, xRealIP string) string {
	if xForwardedFor != "" {
		for i := 0; i < len(xForwardedFor); i++ {
			if xForwardedFor[i] == ',' {
				return xForwardedFor[:i]
			}
		}
		return xForwardedFor
	}
	return xRealIP
}
