package ports

import (
	"context"

	"github.com/baw-market/baw-cli/internal/domain"
)

// Marketplace is the remote marketplace API as seen by the client. All
// business logic (pricing, inventory, payments) lives on the other side of
// this interface.
type Marketplace interface {
	Login(ctx context.Context, creds domain.Credentials) (domain.AuthResult, error)
	Register(ctx context.Context, reg domain.Registration) (domain.AuthResult, error)
	FetchProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	FetchProduct(ctx context.Context, id int64) (domain.Product, error)
	SubmitOrder(ctx context.Context, cart domain.Cart) (domain.Order, error)
}
