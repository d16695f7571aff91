package application

import (
	"context"
	"fmt"

	"github.com/baw-market/baw-cli/internal/domain"
	"github.com/baw-market/baw-cli/internal/ports"
)

// CheckoutService submits the cart as an order. A successful submission
// clears the cart; a failed one leaves it untouched.
type CheckoutService struct {
	api  ports.Marketplace
	cart *CartContainer
}

func NewCheckoutService(api ports.Marketplace, cart *CartContainer) *CheckoutService {
	return &CheckoutService{api: api, cart: cart}
}

func (s *CheckoutService) Checkout(ctx context.Context) (domain.Order, error) {
	snapshot := s.cart.Snapshot()
	if snapshot.Len() == 0 {
		return domain.Order{}, domain.ErrEmptyCart
	}

	order, err := s.api.SubmitOrder(ctx, snapshot)
	if err != nil {
		return domain.Order{}, fmt.Errorf("checkout: %w", err)
	}

	if err := s.cart.Clear(ctx); err != nil {
		return order, fmt.Errorf("%w: %v", ErrStateNotSaved, err)
	}

	return order, nil
}
