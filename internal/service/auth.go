// Package service implements the application's business logic on top of
// the store, catalog and auth packages.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/YOHANEKUMWENDA/bookstore-application/internal/auth"
	"github.com/YOHANEKUMWENDA/bookstore-application/internal/domain"
	domainerrors "github.com/YOHANEKUMWENDA/bookstore-application/internal/errors"
	"github.com/YOHANEKUMWENDA/bookstore-application/internal/id"
	"github.com/YOHANEKUMWENDA/bookstore-application/internal/mail"
	"github.com/YOHANEKUMWENDA/bookstore-application/internal/store"
)

// validate is a shared validator instance for request validation.
var validate = func() *validator.Validate {
	v := validator.New()
	// Use JSON tag names for field names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("json")
		if name == "" {
			return fld.Name
		}
		// Remove any options (like omitempty, -)
		for i := range len(name) {
			if name[i] == ',' {
				return name[:i]
			}
		}
		return name
	})
	return v
}()

const passwordResetTTL = 30 * time.Minute

// AuthService handles sign-up, sign-in and token verification.
// Session management is delegated to SessionService.
type AuthService struct {
	store          *store.Store
	tokenService   *auth.TokenService
	sessionService *SessionService
	mailer         mail.Mailer
	logger         *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	store *store.Store,
	tokenService *auth.TokenService,
	sessionService *SessionService,
	mailer mail.Mailer,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		store:          store,
		tokenService:   tokenService,
		sessionService: sessionService,
		mailer:         mailer,
		logger:         logger,
	}
}

// SignUpRequest contains new account registration data.
type SignUpRequest struct {
	Name        string          `json:"name" validate:"required"`
	Email       string          `json:"email" validate:"required,email"`
	Password    string          `json:"password" validate:"required,min=8,max=1024"`
	PhoneNumber string          `json:"phone_number,omitempty"`
	DeviceInfo  auth.DeviceInfo `json:"device_info"`
	IPAddress   string          `json:"-"` // Extracted from request by handler
}

// SignInRequest contains user credentials and device information.
type SignInRequest struct {
	Email      string          `json:"email" validate:"required,email"`
	Password   string          `json:"password" validate:"required"`
	RememberMe bool            `json:"remember_me"`
	DeviceInfo auth.DeviceInfo `json:"device_info"`
	IPAddress  string          `json:"-"` // Extracted from request by handler
}

// RefreshRequest contains the refresh token and updated device info.
type RefreshRequest struct {
	RefreshToken string          `json:"refresh_token" validate:"required"`
	DeviceInfo   auth.DeviceInfo `json:"device_info"` // Optional updates
	IPAddress    string          `json:"-"`           // Extracted from request by handler
}

// AuthResponse contains authentication tokens and user data.
type AuthResponse struct {
	User *domain.User `json:"user"`
	SessionResponse
}

// SignUp creates a new account and signs it in.
// The account's role is resolved from the email address at creation.
func (s *AuthService) SignUp(ctx context.Context, req SignUpRequest) (*AuthResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	if !req.DeviceInfo.IsValid() {
		return nil, domainerrors.Validation("device_info is required (device_type and platform)")
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	userID, err := id.Generate("user")
	if err != nil {
		return nil, fmt.Errorf("generate user ID: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		Record: domain.Record{
			ID: userID,
		},
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         domain.RoleForEmail(req.Email),
		DisplayName:  req.Name,
		PhoneNumber:  req.PhoneNumber,
		LastLoginAt:  now,
	}
	user.InitTimestamps()

	if err := s.store.Users.Create(ctx, userID, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, domainerrors.AlreadyExists("email already in use")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	// Mirror the user into the back-office account list
	account := &domain.CustomerAccount{
		Record: domain.Record{
			ID: userID,
		},
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		IsActive:    true,
		TotalOrders: 0,
		TotalSpent:  decimal.Zero,
		Role:        user.Role,
	}
	account.InitTimestamps()

	if err := s.store.Accounts.Create(ctx, userID, account); err != nil {
		// Roll the user back so email stays claimable
		_ = s.store.Users.Delete(ctx, userID)
		return nil, fmt.Errorf("create account record: %w", err)
	}

	sessionResp, err := s.sessionService.CreateSession(ctx, user, req.DeviceInfo, req.IPAddress)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("User signed up",
			"user_id", userID,
			"email", user.Email,
			"role", user.Role,
		)
	}

	return &AuthResponse{
		User:            user,
		SessionResponse: *sessionResp,
	}, nil
}

// SignIn authenticates a user and creates a new session.
// RememberMe controls whether credentials are saved for the next launch.
func (s *AuthService) SignIn(ctx context.Context, req SignInRequest) (*AuthResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	if !req.DeviceInfo.IsValid() {
		return nil, domainerrors.Validation("device_info is required (device_type and platform)")
	}

	user, err := s.store.Users.GetByIndex(ctx, "email", req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Don't leak whether email exists
			return nil, domainerrors.InvalidCredentials("invalid email or password")
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	valid, err := auth.VerifyPassword(user.PasswordHash, req.Password)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !valid {
		return nil, domainerrors.InvalidCredentials("invalid email or password")
	}

	// A deactivated account keeps its credentials but cannot sign in
	account, err := s.store.Accounts.Get(ctx, user.ID)
	if err == nil && !account.IsActive {
		return nil, domainerrors.Forbidden("account is deactivated")
	}

	user.LastLoginAt = time.Now()
	user.Touch()
	if err := s.store.Users.Update(ctx, user.ID, user); err != nil {
		// Log but don't fail sign-in
		if s.logger != nil {
			s.logger.Warn("Failed to update last login time",
				"user_id", user.ID,
				"error", err,
			)
		}
	}

	// Save or clear remembered credentials for the login screen
	prefs, err := s.store.GetPreferences(ctx, user.ID)
	if err == nil {
		if req.RememberMe {
			prefs.Remember(req.Email, req.Password)
		} else {
			prefs.Forget()
		}
		if err := s.store.PutPreferences(ctx, prefs); err != nil && s.logger != nil {
			s.logger.Warn("Failed to save login preferences", "user_id", user.ID, "error", err)
		}
	}

	sessionResp, err := s.sessionService.CreateSession(ctx, user, req.DeviceInfo, req.IPAddress)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("User signed in",
			"user_id", user.ID,
			"device", req.DeviceInfo.Platform,
		)
	}

	return &AuthResponse{
		User:            user,
		SessionResponse: *sessionResp,
	}, nil
}

// RefreshTokens generates new tokens using a refresh token.
// The old refresh token is invalidated (token rotation).
func (s *AuthService) RefreshTokens(ctx context.Context, req RefreshRequest) (*AuthResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	sessionResp, user, err := s.sessionService.RefreshSession(ctx, req.RefreshToken, req.DeviceInfo, req.IPAddress)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		User:            user,
		SessionResponse: *sessionResp,
	}, nil
}

// SignOut revokes a session, invalidating its refresh token.
func (s *AuthService) SignOut(ctx context.Context, sessionID string) error {
	return s.sessionService.DeleteSession(ctx, sessionID)
}

// SendPasswordReset mails a single-use reset token to the given address.
// The response never reveals whether the address has an account.
func (s *AuthService) SendPasswordReset(ctx context.Context, email string) error {
	user, err := s.store.Users.GetByIndex(ctx, "email", email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			if s.logger != nil {
				s.logger.Info("Password reset requested for unknown address", "email", email)
			}
			return nil
		}
		return fmt.Errorf("lookup user: %w", err)
	}

	token, err := s.tokenService.GenerateRefreshToken()
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}

	reset := &store.PasswordReset{
		TokenHash: auth.HashRefreshToken(token),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(passwordResetTTL),
		CreatedAt: time.Now(),
	}
	if err := s.store.CreatePasswordReset(ctx, reset); err != nil {
		return fmt.Errorf("save password reset: %w", err)
	}

	body := fmt.Sprintf(
		"Hi %s,\n\nUse the code below to reset your bookstore password. It expires in 30 minutes.\n\n%s\n\nIf you didn't ask for this, you can ignore this email.",
		user.Name(), token,
	)
	if err := s.mailer.Send(ctx, user.Email, "Reset your password", body); err != nil {
		return fmt.Errorf("send reset mail: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("Password reset mail sent", "user_id", user.ID)
	}

	return nil
}

// ResetPassword completes a password reset using a mailed token.
// All of the user's sessions are revoked.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	reset, err := s.store.ConsumePasswordReset(ctx, auth.HashRefreshToken(token))
	if err != nil {
		if errors.Is(err, store.ErrResetNotFound) {
			return domainerrors.TokenExpired("invalid or expired reset token")
		}
		return fmt.Errorf("consume password reset: %w", err)
	}

	user, err := s.store.Users.Get(ctx, reset.UserID)
	if err != nil {
		return domainerrors.NotFound("user not found").WithCause(err)
	}

	passwordHash, err := auth.HashPassword(newPassword)
	if err != nil {
		return domainerrors.Validation(err.Error())
	}

	user.PasswordHash = passwordHash
	user.Touch()
	if err := s.store.Users.Update(ctx, user.ID, user); err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	// Force re-authentication on all devices
	if err := s.store.DeleteAllUserSessions(ctx, user.ID); err != nil && s.logger != nil {
		s.logger.Warn("Failed to revoke sessions after password reset", "user_id", user.ID, "error", err)
	}

	// Any remembered password is stale now
	prefs, err := s.store.GetPreferences(ctx, user.ID)
	if err == nil && prefs.RememberMe {
		prefs.Forget()
		_ = s.store.PutPreferences(ctx, prefs)
	}

	if s.logger != nil {
		s.logger.Info("Password reset completed", "user_id", user.ID)
	}

	return nil
}

// VerifyAccessToken validates a token and returns the associated user.
// Used by authentication middleware.
func (s *AuthService) VerifyAccessToken(ctx context.Context, tokenString string) (*domain.User, *auth.AccessClaims, error) {
	claims, err := s.tokenService.VerifyAccessToken(tokenString)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid token: %w", err)
	}

	user, err := s.store.Users.Get(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, errors.New("user not found")
		}
		return nil, nil, fmt.Errorf("get user: %w", err)
	}

	return user, claims, nil
}

// formatValidationError converts validator errors to user-friendly domain errors.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		// Return first validation error as a domain error
		for _, e := range validationErrs {
			field := e.Field()
			switch e.Tag() {
			case "required":
				return domainerrors.Validationf("%s is required", field)
			case "email":
				return domainerrors.Validationf("%s must be a valid email address", field)
			case "min":
				return domainerrors.Validationf("%s must be at least %s characters", field, e.Param())
			case "max":
				return domainerrors.Validationf("%s exceeds maximum length of %s characters", field, e.Param())
			default:
				return domainerrors.Validationf("%s is invalid", field)
			}
		}
	}
	return err
}
