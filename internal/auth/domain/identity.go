// Package domain defines the authentication domain model: the identity
// extracted from a verified access token and the classified rejection errors.
//
// Authentication is stateless: the server keeps no session records. A signed
// token is minted at login, carried by the client on every protected request,
// and verified per request against immutable configuration.
package domain

import (
	"github.com/google/uuid"
)

// Identity is the request-scoped result of a successful token verification.
// It lives in the request context for the duration of one request and is
// trusted by downstream handlers without re-validation.
type Identity struct {
	UserID uuid.UUID
	Email  string
}
