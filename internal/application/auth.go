package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/baw-market/baw-cli/internal/domain"
	"github.com/baw-market/baw-cli/internal/ports"
)

// Authenticator drives the login and registration flows: it calls the
// marketplace API and feeds the outcome into the session container.
type Authenticator struct {
	api      ports.Marketplace
	sessions *SessionContainer
}

func NewAuthenticator(api ports.Marketplace, sessions *SessionContainer) *Authenticator {
	return &Authenticator{api: api, sessions: sessions}
}

func (a *Authenticator) Login(ctx context.Context, creds domain.Credentials) error {
	a.sessions.LoginStart()

	result, err := a.api.Login(ctx, creds)
	if err != nil {
		a.sessions.LoginFailure(userMessage(err))
		return fmt.Errorf("login: %w", err)
	}

	if err := a.sessions.LoginSuccess(ctx, result.User, result.AccessCredential, result.RefreshCredential); err != nil {
		return fmt.Errorf("%w: %v", ErrStateNotSaved, err)
	}

	return nil
}

func (a *Authenticator) Register(ctx context.Context, reg domain.Registration) error {
	a.sessions.LoginStart()

	result, err := a.api.Register(ctx, reg)
	if err != nil {
		a.sessions.LoginFailure(userMessage(err))
		return fmt.Errorf("register: %w", err)
	}

	if err := a.sessions.RegisterSuccess(ctx, result.User, result.AccessCredential, result.RefreshCredential); err != nil {
		return fmt.Errorf("%w: %v", ErrStateNotSaved, err)
	}

	return nil
}

// userMessage keeps the API's own complaint verbatim, trimming the client's
// call-site prefix so lastError reads like a message, not a stack.
func userMessage(err error) string {
	message := err.Error()
	for _, prefix := range []string{"login: ", "register: "} {
		message = strings.TrimPrefix(message, prefix)
	}

	return message
}
