// Package credentials provides durable local storage for the client's token
// and cached profile.
package credentials

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/healthapp/healthtrack/pkg/client/api"
)

// Store persists a token and cached profile as a single JSON file.
// One file means purging is a single atomic remove.
type Store struct {
	path string
	now  func() time.Time
}

type storedCredentials struct {
	Token   string      `json:"token"`
	Profile api.Profile `json:"profile"`
}

// NewStore creates a Store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{
		path: path,
		now:  time.Now,
	}
}

// Save writes the token and profile, replacing any previous credentials.
func (s *Store) Save(token string, profile api.Profile) error {
	data, err := json.Marshal(storedCredentials{
		Token:   token,
		Profile: profile,
	})
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("failed to create credentials directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write credentials: %w", err)
	}

	return nil
}

// Token returns the stored token or "" when no credentials are stored.
func (s *Store) Token() string {
	creds, ok := s.load()
	if !ok {
		return ""
	}
	return creds.Token
}

// Profile returns the cached profile and whether credentials are stored.
func (s *Store) Profile() (api.Profile, bool) {
	creds, ok := s.load()
	if !ok {
		return api.Profile{}, false
	}
	return creds.Profile, true
}

// Clear removes the stored credentials. Clearing an empty store is a no-op.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}

// IsValid reports whether a token is stored and not yet expired according to
// the local clock. The check decodes the token payload locally and never
// contacts the server. Any malformed token reads as invalid.
func (s *Store) IsValid() bool {
	creds, ok := s.load()
	if !ok {
		return false
	}

	exp, ok := tokenExpiry(creds.Token)
	if !ok {
		return false
	}

	return s.now().Before(exp)
}

func (s *Store) load() (storedCredentials, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return storedCredentials{}, false
	}

	var creds storedCredentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return storedCredentials{}, false
	}
	if creds.Token == "" {
		return storedCredentials{}, false
	}

	return creds, true
}

// tokenExpiry extracts the exp claim from a compact three-part token without
// verifying the signature. Signature verification is the server's job; the
// local check only avoids sending a token that is already expired.
func tokenExpiry(token string) (time.Time, bool) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return time.Time{}, false
	}

	var claims struct {
		Exp int64 `json:"exp"`
	}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.Exp == 0 {
		return time.Time{}, false
	}

	return time.Unix(claims.Exp, 0), true
}
