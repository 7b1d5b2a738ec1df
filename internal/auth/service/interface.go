// Package service provides authentication services: access token signing and
// verification, and password hashing for stored credentials.
package service

import (
	"time"

	"github.com/google/uuid"

	authDomain "github.com/healthapp/healthtrack/internal/auth/domain"
)

// TokenService mints and verifies signed access tokens.
//
// Issuance and verification share one symmetric signing secret, loaded once at
// startup and treated as immutable configuration. Verification is a pure
// function of the token and that configuration, so a single TokenService is
// safe for concurrent use across requests.
type TokenService interface {
	// Issue mints a new signed token for the given user. Each call produces a
	// distinct token (fresh nonce and issued-at); concurrent logins for the
	// same account yield independently valid tokens.
	Issue(userID uuid.UUID, email string) (token string, expiresAt time.Time, err error)

	// Verify checks signature, issuer, audience and expiry, in that order, and
	// extracts the subject. Rejections are classified with the auth domain
	// errors (ErrInvalidSignature, ErrWrongParty, ErrExpired,
	// ErrMalformedSubject).
	Verify(token string) (*authDomain.Identity, error)
}

// PasswordService hashes and verifies user passwords. The stored form is
// always a salted one-way hash; plaintext never reaches a repository.
type PasswordService interface {
	// Hash derives a salted hash from a plaintext password.
	Hash(plainPassword string) (string, error)

	// Compare performs a constant-time comparison between a plaintext password
	// and a stored hash.
	Compare(plainPassword string, hashedPassword string) bool
}
