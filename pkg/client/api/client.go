// Package api provides an HTTP client for the HealthTrack API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	// ErrNetwork indicates the request never produced an HTTP response.
	// The caller's local state should be left untouched.
	ErrNetwork = errors.New("network error")
	// ErrInvalidCredentials indicates the server rejected a login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized indicates the server rejected the bearer token on a
	// protected call.
	ErrUnauthorized = errors.New("unauthorized")
)

// Profile holds the user fields the client caches alongside the token.
type Profile struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// LoginResult is the outcome of a successful login.
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Profile   Profile   `json:"-"`
}

// Client is an HTTP client for the HealthTrack API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a Client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	UserID    string    `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
}

// Login authenticates with the API and returns the issued token and profile.
// A 401 response yields ErrInvalidCredentials; a transport failure yields
// ErrNetwork.
func (c *Client) Login(ctx context.Context, email string, password string) (*LoginResult, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("failed to encode login request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/api/users/login",
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrInvalidCredentials
	default:
		return nil, fmt.Errorf("login failed: unexpected status %d", resp.StatusCode)
	}

	var decoded loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}

	return &LoginResult{
		Token:     decoded.Token,
		ExpiresAt: decoded.ExpiresAt,
		Profile: Profile{
			ID:        decoded.UserID,
			FirstName: decoded.FirstName,
			LastName:  decoded.LastName,
			Email:     decoded.Email,
		},
	}, nil
}

// ProfileUpdate carries the editable profile fields for an update call.
type ProfileUpdate struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Age       int     `json:"age"`
	Weight    float64 `json:"weight"`
	Lifestyle string  `json:"lifestyle"`
}

// UpdateProfile replaces the authenticated user's editable profile fields and
// returns the profile the server now holds.
// A 401 response yields ErrUnauthorized; a transport failure yields ErrNetwork.
func (c *Client) UpdateProfile(ctx context.Context, token string, update ProfileUpdate) (*Profile, error) {
	body, err := json.Marshal(update)
	if err != nil {
		return nil, fmt.Errorf("failed to encode profile update: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPut,
		c.baseURL+"/api/users/profile",
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile update request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		return nil, fmt.Errorf("profile update failed: unexpected status %d", resp.StatusCode)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile update response: %w", err)
	}

	return &profile, nil
}

// GetProfile fetches the authenticated user's profile.
// A 401 response yields ErrUnauthorized; a transport failure yields ErrNetwork.
func (c *Client) GetProfile(ctx context.Context, token string) (*Profile, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.baseURL+"/api/users/profile",
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		return nil, fmt.Errorf("profile request failed: unexpected status %d", resp.StatusCode)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile response: %w", err)
	}

	return &profile, nil
}
