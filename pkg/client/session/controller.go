// Package session provides a client-side session state machine over the API
// client and credential store.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/healthapp/healthtrack/pkg/client/api"
	"github.com/healthapp/healthtrack/pkg/client/credentials"
)

// State represents the session state.
type State string

const (
	// StateLoading is the initial state before stored credentials are examined.
	StateLoading State = "loading"
	// StateAnonymous means no usable credentials are held.
	StateAnonymous State = "anonymous"
	// StateAuthenticated means locally valid credentials are held.
	StateAuthenticated State = "authenticated"
)

// Controller manages the client session lifecycle. All state transitions are
// serialized; concurrent logins are coalesced into a single API call.
type Controller struct {
	apiClient *api.Client
	store     *credentials.Store

	mu      sync.Mutex
	state   State
	profile api.Profile

	loginGroup singleflight.Group
}

// NewController creates a Controller in the Loading state.
func NewController(apiClient *api.Client, store *credentials.Store) *Controller {
	return &Controller{
		apiClient: apiClient,
		store:     store,
		state:     StateLoading,
	}
}

// Start rehydrates the session from the credential store. Expired or corrupt
// stored credentials are purged and the session becomes Anonymous.
func (c *Controller) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.store.IsValid() {
		return c.purgeLocked()
	}

	profile, ok := c.store.Profile()
	if !ok {
		return c.purgeLocked()
	}

	c.state = StateAuthenticated
	c.profile = profile
	return nil
}

// Login authenticates with the API and stores the resulting credentials.
// A failed login, whether rejected (api.ErrInvalidCredentials) or a transport
// failure (api.ErrNetwork), leaves both the session state and the stored
// credentials untouched. Concurrent calls are coalesced: only one API request
// is in flight and its result is applied once.
func (c *Controller) Login(ctx context.Context, email string, password string) error {
	_, err, _ := c.loginGroup.Do("login", func() (interface{}, error) {
		result, err := c.apiClient.Login(ctx, email, password)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		defer c.mu.Unlock()

		if err := c.store.Save(result.Token, result.Profile); err != nil {
			return nil, fmt.Errorf("failed to save credentials: %w", err)
		}

		c.state = StateAuthenticated
		c.profile = result.Profile
		return nil, nil
	})
	return err
}

// Logout purges stored credentials and moves the session to Anonymous.
// Logging out an anonymous session is a no-op.
func (c *Controller) Logout() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.purgeLocked()
}

// FetchProfile fetches the authenticated user's profile from the API and
// writes it back to the credential store so the next Start rehydrates the
// fresh copy. A 401 response means the server rejected credentials the local
// check still accepts, so the session is purged the same way as a logout.
func (c *Controller) FetchProfile(ctx context.Context) (*api.Profile, error) {
	c.mu.Lock()
	token := c.store.Token()
	c.mu.Unlock()

	if token == "" {
		return nil, api.ErrUnauthorized
	}

	profile, err := c.apiClient.GetProfile(ctx, token)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			c.mu.Lock()
			defer c.mu.Unlock()
			if purgeErr := c.purgeLocked(); purgeErr != nil {
				return nil, purgeErr
			}
		}
		return nil, err
	}

	if err := c.applyProfile(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateProfile replaces the editable profile fields on the server and caches
// the returned profile both in memory and in the credential store. A 401
// response purges the session the same way as FetchProfile.
func (c *Controller) UpdateProfile(ctx context.Context, update api.ProfileUpdate) (*api.Profile, error) {
	c.mu.Lock()
	token := c.store.Token()
	c.mu.Unlock()

	if token == "" {
		return nil, api.ErrUnauthorized
	}

	profile, err := c.apiClient.UpdateProfile(ctx, token, update)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			c.mu.Lock()
			defer c.mu.Unlock()
			if purgeErr := c.purgeLocked(); purgeErr != nil {
				return nil, purgeErr
			}
		}
		return nil, err
	}

	if err := c.applyProfile(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (c *Controller) applyProfile(profile *api.Profile) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.Save(c.store.Token(), *profile); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}
	c.profile = *profile
	return nil
}

// State returns the current session state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Profile returns the cached profile. Only meaningful while Authenticated.
func (c *Controller) Profile() api.Profile {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.profile
}

func (c *Controller) purgeLocked() error {
	if err := c.store.Clear(); err != nil {
		return err
	}
	c.state = StateAnonymous
	c.profile = api.Profile{}
	return nil
}
