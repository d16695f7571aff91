package application

import (
	"context"
	"fmt"

	"github.com/baw-market/baw-cli/internal/domain"
	"github.com/baw-market/baw-cli/internal/ports"
)

// CartContainer owns the shopping cart for the lifetime of the process.
// Every mutation is followed by a full persistence write; the in-memory
// cart stays authoritative when the write fails.
type CartContainer struct {
	store ports.StateStore
	cart  domain.Cart
}

func NewCartContainer(ctx context.Context, store ports.StateStore) (*CartContainer, error) {
	container := &CartContainer{store: store}

	cart, err := store.LoadCart(ctx)
	if err != nil {
		return container, fmt.Errorf("hydrate cart: %w", err)
	}

	container.cart = cart
	return container, nil
}

func (c *CartContainer) Add(ctx context.Context, productID int64, name string, unitPrice float64, quantity int) error {
	c.cart.Add(productID, name, unitPrice, quantity)
	return c.persist(ctx)
}

func (c *CartContainer) Remove(ctx context.Context, productID int64) error {
	c.cart.Remove(productID)
	return c.persist(ctx)
}

func (c *CartContainer) UpdateQuantity(ctx context.Context, productID int64, quantity int) error {
	c.cart.SetQuantity(productID, quantity)
	return c.persist(ctx)
}

// Clear empties the cart and deletes the persisted slot.
func (c *CartContainer) Clear(ctx context.Context) error {
	c.cart.Clear()

	if err := c.store.ClearCart(ctx); err != nil {
		return fmt.Errorf("clear persisted cart: %w", err)
	}

	return nil
}

func (c *CartContainer) Items() []domain.CartItem {
	items := make([]domain.CartItem, len(c.cart.Items))
	copy(items, c.cart.Items)
	return items
}

// Total is recomputed from the full item collection on every call.
func (c *CartContainer) Total() float64 {
	return c.cart.Total()
}

func (c *CartContainer) Len() int {
	return c.cart.Len()
}

func (c *CartContainer) Snapshot() domain.Cart {
	return domain.Cart{Items: c.Items()}
}

func (c *CartContainer) persist(ctx context.Context) error {
	if err := c.store.SaveCart(ctx, c.cart); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}

	return nil
}
