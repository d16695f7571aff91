package application

import (
	"context"
	"fmt"
	"testing"

	"github.com/baw-market/baw-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutEmptyCart(t *testing.T) {
	t.Parallel()

	cart, err := NewCartContainer(context.Background(), &fakeStore{})
	require.NoError(t, err)

	service := NewCheckoutService(&fakeMarketplace{}, cart)

	_, err = service.Checkout(context.Background())
	require.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestCheckoutSuccessClearsCart(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	cart, err := NewCartContainer(context.Background(), store)
	require.NoError(t, err)
	require.NoError(t, cart.Add(context.Background(), 1, "Walnut desk", 249.99, 2))

	market := &fakeMarketplace{order: domain.Order{ID: 41, Status: "pending", Total: 499.98}}
	service := NewCheckoutService(market, cart)

	order, err := service.Checkout(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(41), order.ID)

	assert.Zero(t, cart.Len())
	assert.Nil(t, store.cart)
	require.Len(t, market.submittedCarts, 1)
	assert.Equal(t, 1, market.submittedCarts[0].Len())
}

func TestCheckoutFailureLeavesCartUntouched(t *testing.T) {
	t.Parallel()

	cart, err := NewCartContainer(context.Background(), &fakeStore{})
	require.NoError(t, err)
	require.NoError(t, cart.Add(context.Background(), 1, "Walnut desk", 249.99, 2))

	market := &fakeMarketplace{
		orderErr: fmt.Errorf("%w: connection refused", domain.ErrNetworkFailure),
	}
	service := NewCheckoutService(market, cart)

	_, err = service.Checkout(context.Background())
	require.ErrorIs(t, err, domain.ErrNetworkFailure)

	assert.Equal(t, 1, cart.Len())
	assert.InDelta(t, 499.98, cart.Total(), 0.001)
}

func TestCheckoutClearFailureStillReturnsOrder(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	cart, err := NewCartContainer(context.Background(), store)
	require.NoError(t, err)
	require.NoError(t, cart.Add(context.Background(), 1, "Walnut desk", 249.99, 2))

	store.failWrites = true
	market := &fakeMarketplace{order: domain.Order{ID: 41, Status: "pending", Total: 499.98}}
	service := NewCheckoutService(market, cart)

	order, err := service.Checkout(context.Background())
	require.ErrorIs(t, err, ErrStateNotSaved)

	// The order was placed and must be reported; the in-memory cart is
	// empty even though the persisted slot could not be cleared.
	assert.Equal(t, int64(41), order.ID)
	assert.Zero(t, cart.Len())
}
