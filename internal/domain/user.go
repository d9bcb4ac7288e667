package domain

import (
	"strings"
	"time"
)

// Role represents the user's permission level in the system.
type Role string

const (
	// RoleAdmin grants access to the admin dashboard and account management.
	RoleAdmin Role = "admin"
	// RoleCustomer grants standard storefront access.
	RoleCustomer Role = "customer"
)

// AdminMarkerEmail is the single address that is granted the admin role
// at sign-in and sign-up. Every other address resolves to a customer.
const AdminMarkerEmail = "admin@gmail.com"

// IsAdminEmail reports whether the given address carries the admin marker.
// The comparison is an exact literal match; "Admin@gmail.com" is a customer.
func IsAdminEmail(email string) bool {
	return email == AdminMarkerEmail
}

// RoleForEmail resolves the role an address signs in with.
func RoleForEmail(email string) Role {
	if IsAdminEmail(email) {
		return RoleAdmin
	}
	return RoleCustomer
}

// User represents an authenticated account in the system.
type User struct {
	Record
	Email           string    `json:"email"`
	PasswordHash    string    `json:"password_hash,omitempty"` // Stored hashed, filter from API responses
	Role            Role      `json:"role"`
	DisplayName     string    `json:"display_name"`
	PhoneNumber     string    `json:"phone_number,omitempty"`
	ProfileImageURL string    `json:"profile_image_url,omitempty"`
	Address         string    `json:"address,omitempty"`
	City            string    `json:"city,omitempty"`
	Country         string    `json:"country,omitempty"`
	Bio             string    `json:"bio,omitempty"`
	LastLoginAt     time.Time `json:"last_login_at"`
}

// IsAdmin returns true if the user has administrative privileges.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Name returns the best available name to display for the user.
// Prefers DisplayName, falls back to the email's local part.
func (u *User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	if at := strings.IndexByte(u.Email, '@'); at > 0 {
		return u.Email[:at]
	}
	return u.Email
}

// Session represents an active user session with a refresh token.
// Each device gets its own session.
type Session struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	RefreshTokenHash string    `json:"refresh_token_hash,omitempty"` // Stored hashed, filter from API responses
	ExpiresAt        time.Time `json:"expires_at"`
	CreatedAt        time.Time `json:"created_at"`
	LastSeenAt       time.Time `json:"last_seen_at"`
	IPAddress        string    `json:"ip_address,omitempty"`

	// Device information from the client, best effort
	DeviceType    string `json:"device_type,omitempty"` // mobile, tablet, desktop, web
	Platform      string `json:"platform,omitempty"`    // iOS, Android, Web
	ClientName    string `json:"client_name,omitempty"`
	ClientVersion string `json:"client_version,omitempty"`
	DeviceName    string `json:"device_name,omitempty"`
}

// Touch updates the session's last seen timestamp.
func (s *Session) Touch() {
	s.LastSeenAt = time.Now()
}

// IsExpired checks if the session has passed its expiration time.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// DisplayName returns a human-readable description of the device.
func (s *Session) DisplayName() string {
	if s.DeviceName != "" {
		return s.DeviceName
	}
	if s.Platform != "" {
		return s.Platform
	}
	if s.ClientName != "" {
		if s.ClientVersion != "" {
			return s.ClientName + " " + s.ClientVersion
		}
		return s.ClientName
	}
	return "Unknown Device"
}
