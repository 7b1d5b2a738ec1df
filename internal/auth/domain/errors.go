package domain

import (
	apperrors "github.com/healthapp/healthtrack/internal/errors"
)

// Authentication rejections. Every one of them wraps ErrUnauthorized so the
// HTTP layer surfaces a uniform 401 without leaking which check failed; the
// distinct wrappers remain observable internally for logging, metrics and
// tests via errors.Is.
var (
	// ErrInvalidCredentials indicates a failed login: unknown email or wrong
	// password. Deliberately the same error for both cases to prevent account
	// enumeration.
	ErrInvalidCredentials = apperrors.Wrap(apperrors.ErrUnauthorized, "invalid email or password")

	// ErrMissingCredential indicates the Authorization header is absent or not
	// a well-formed bearer token.
	ErrMissingCredential = apperrors.Wrap(apperrors.ErrUnauthorized, "missing credential")

	// ErrInvalidSignature indicates the token's MAC does not verify against
	// the configured signing secret, or the token is not parseable at all.
	ErrInvalidSignature = apperrors.Wrap(apperrors.ErrUnauthorized, "invalid token signature")

	// ErrWrongParty indicates the token's issuer or audience does not match
	// the configured values.
	ErrWrongParty = apperrors.Wrap(apperrors.ErrUnauthorized, "token issuer or audience mismatch")

	// ErrExpired indicates the token's expiry has passed. Expiry is inclusive
	// with zero clock-skew tolerance: a token presented exactly at its expiry
	// instant is already rejected.
	ErrExpired = apperrors.Wrap(apperrors.ErrUnauthorized, "token expired")

	// ErrMalformedSubject indicates the subject claim does not parse as a
	// user identifier.
	ErrMalformedSubject = apperrors.Wrap(apperrors.ErrUnauthorized, "malformed subject claim")
)

// RejectionKind returns a short stable label for a verification rejection,
// used as a metric attribute and in structured logs. Returns "other" for
// errors outside the rejection taxonomy.
func RejectionKind(err error) string {
	switch {
	case apperrors.Is(err, ErrMissingCredential):
		return "missing_credential"
	case apperrors.Is(err, ErrInvalidSignature):
		return "invalid_signature"
	case apperrors.Is(err, ErrWrongParty):
		return "wrong_party"
	case apperrors.Is(err, ErrExpired):
		return "expired"
	case apperrors.Is(err, ErrMalformedSubject):
		return "malformed_subject"
	case apperrors.Is(err, ErrInvalidCredentials):
		return "invalid_credentials"
	default:
		return "other"
	}
}
