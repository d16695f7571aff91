package application

import (
	"context"
	"fmt"

	"github.com/baw-market/baw-cli/internal/domain"
	"github.com/baw-market/baw-cli/internal/ports"
)

// SessionContainer owns the authenticated-identity state for the lifetime of
// the process. It hydrates from the state store at construction and mirrors
// every authenticating transition back into it; in-memory state stays
// authoritative even when a persistence write fails.
type SessionContainer struct {
	store     ports.StateStore
	session   domain.Session
	lastError string
	inFlight  bool
}

// NewSessionContainer hydrates the container from the store. A load failure
// is not fatal: the container starts empty and the error is returned for the
// caller to log.
func NewSessionContainer(ctx context.Context, store ports.StateStore) (*SessionContainer, error) {
	container := &SessionContainer{store: store}

	session, err := store.LoadSession(ctx)
	if err != nil {
		return container, fmt.Errorf("hydrate session: %w", err)
	}

	container.session = session
	return container, nil
}

// LoginStart clears the last error and marks a login attempt in flight.
// It has no persistence side effect.
func (c *SessionContainer) LoginStart() {
	c.lastError = ""
	c.inFlight = true
}

// LoginSuccess records the authenticated identity and persists the session
// slot. Calling it twice with the same payload yields the same state.
func (c *SessionContainer) LoginSuccess(ctx context.Context, user domain.User, credential, refreshCredential string) error {
	c.inFlight = false
	c.lastError = ""
	c.session = domain.Session{
		User:              &user,
		Credential:        credential,
		RefreshCredential: refreshCredential,
	}

	if err := c.store.SaveSession(ctx, c.session); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	return nil
}

// LoginFailure records the error message. The prior user and credential are
// left untouched: a failed re-login does not forcibly log out.
func (c *SessionContainer) LoginFailure(message string) {
	c.inFlight = false
	c.lastError = message
}

// RegisterSuccess has the identical contract to LoginSuccess: registration
// and login converge to the same authenticated state shape.
func (c *SessionContainer) RegisterSuccess(ctx context.Context, user domain.User, credential, refreshCredential string) error {
	return c.LoginSuccess(ctx, user, credential, refreshCredential)
}

// Logout resets to the empty session and deletes the persisted slot.
func (c *SessionContainer) Logout(ctx context.Context) error {
	c.session = domain.Session{}
	c.lastError = ""
	c.inFlight = false

	if err := c.store.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear persisted session: %w", err)
	}

	return nil
}

// Session returns a snapshot; the user record is copied so callers cannot
// mutate container state through the pointer.
func (c *SessionContainer) Session() domain.Session {
	session := c.session
	if session.User != nil {
		user := *session.User
		session.User = &user
	}

	return session
}

func (c *SessionContainer) Authenticated() bool {
	return c.session.Authenticated()
}

// Credential exposes the bearer token for the API layer.
func (c *SessionContainer) Credential() string {
	return c.session.Credential
}

func (c *SessionContainer) LastError() string {
	return c.lastError
}

func (c *SessionContainer) InFlight() bool {
	return c.inFlight
}
