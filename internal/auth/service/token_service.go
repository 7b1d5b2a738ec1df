package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authDomain "github.com/healthapp/healthtrack/internal/auth/domain"
	apperrors "github.com/healthapp/healthtrack/internal/errors"
)

// tokenClaims is the wire-level claim set: registered claims plus the user's
// email. The subject carries the user UUID, the ID claim ("jti") the per-token
// nonce.
type tokenClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// tokenService implements TokenService using HMAC-SHA256 signed JWTs.
type tokenService struct {
	secret   []byte
	issuer   string
	audience string
	expiry   time.Duration

	// now is swappable in tests to pin the clock at claim boundaries.
	now func() time.Time
}

// NewTokenService creates a TokenService signing with the given symmetric
// secret. Issuer and audience are stamped into every token and required to
// match on verification.
func NewTokenService(secret string, issuer string, audience string, expiry time.Duration) TokenService {
	return &tokenService{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		expiry:   expiry,
		now:      time.Now,
	}
}

// Issue mints a signed token for the user. The result is the compact
// three-part base64url encoding (header.payload.signature), safe for transport
// in an Authorization header.
func (t *tokenService) Issue(userID uuid.UUID, email string) (string, time.Time, error) {
	now := t.now().UTC()
	expiresAt := now.Add(t.expiry)

	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    t.issuer,
			Audience:  jwt.ClaimStrings{t.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.Must(uuid.NewV7()).String(),
		},
		Email: email,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, apperrors.Wrap(err, "failed to sign token")
	}

	return token, expiresAt, nil
}

// Verify validates a token and extracts the caller's identity.
//
// Claim validation is performed here rather than by the JWT library so that
// each rejection maps to its own domain error and so that expiry is inclusive:
// now == expiresAt is already rejected, with zero clock-skew tolerance.
func (t *tokenService) Verify(tokenString string) (*authDomain.Identity, error) {
	claims := &tokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(tok *jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithoutClaimsValidation())
	if err != nil || !token.Valid {
		// Signature mismatch and unparsable tokens are indistinguishable to
		// the caller: both mean the token cannot be authenticated.
		return nil, authDomain.ErrInvalidSignature
	}

	if claims.Issuer != t.issuer {
		return nil, authDomain.ErrWrongParty
	}

	if !containsAudience(claims.Audience, t.audience) {
		return nil, authDomain.ErrWrongParty
	}

	if claims.ExpiresAt == nil || !t.now().Before(claims.ExpiresAt.Time) {
		return nil, authDomain.ErrExpired
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, authDomain.ErrMalformedSubject
	}

	return &authDomain.Identity{
		UserID: userID,
		Email:  claims.Email,
	}, nil
}

// containsAudience reports whether the expected audience appears in the
// token's audience list.
func containsAudience(audiences jwt.ClaimStrings, expected string) bool {
	for _, aud := range audiences {
		if aud == expected {
			return true
		}
	}
	return false
}
