package dto

import (
	"time"

	"github.com/google/uuid"
)

// LoginResponse represents the API response for a successful login.
// It carries the signed token plus the profile fields the client caches
// alongside it. The password hash never leaves the server.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	UserID    uuid.UUID `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
}
