package ports

import (
	"context"

	"github.com/baw-market/baw-cli/internal/domain"
)

// StateStore mirrors the in-memory session and cart state into durable
// local storage so it survives process restarts. It never owns the data:
// the containers stay authoritative, the store only reflects them.
//
// Loading a slot that was never written yields the zero value, not an error.
type StateStore interface {
	LoadSession(ctx context.Context) (domain.Session, error)
	SaveSession(ctx context.Context, session domain.Session) error
	ClearSession(ctx context.Context) error

	LoadCart(ctx context.Context) (domain.Cart, error)
	SaveCart(ctx context.Context, cart domain.Cart) error
	ClearCart(ctx context.Context) error
}
