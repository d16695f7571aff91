package application

import (
	"context"
	"testing"

	"github.com/baw-market/baw-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartContainerPersistsEveryMutation(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	container, err := NewCartContainer(context.Background(), store)
	require.NoError(t, err)

	require.NoError(t, container.Add(context.Background(), 1, "Walnut desk", 249.99, 1))
	require.NoError(t, container.UpdateQuantity(context.Background(), 1, 3))
	require.NoError(t, container.Remove(context.Background(), 1))

	assert.Equal(t, 3, store.cartSaves)
}

func TestCartContainerTotalAlwaysMatchesItems(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	container, err := NewCartContainer(context.Background(), store)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, container.Add(ctx, 1, "Walnut desk", 249.99, 2))
	require.NoError(t, container.Add(ctx, 2, "Ceramic mug", 12.50, 4))
	require.NoError(t, container.Add(ctx, 1, "Walnut desk", 249.99, 1))
	require.NoError(t, container.UpdateQuantity(ctx, 2, 1))
	require.NoError(t, container.Remove(ctx, 99))

	var expected float64
	for _, item := range container.Items() {
		expected += item.UnitPrice * float64(item.Quantity)
	}

	assert.InDelta(t, expected, container.Total(), 0.001)
	assert.InDelta(t, 762.47, container.Total(), 0.001)
}

func TestCartContainerUpdateToZeroRemovesItem(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	container, err := NewCartContainer(context.Background(), store)
	require.NoError(t, err)

	require.NoError(t, container.Add(context.Background(), 1, "Walnut desk", 249.99, 2))
	require.NoError(t, container.UpdateQuantity(context.Background(), 1, 0))

	assert.Zero(t, container.Len())
	require.NotNil(t, store.cart)
	assert.Zero(t, store.cart.Len())
}

func TestCartContainerClearDeletesPersistedSlot(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	container, err := NewCartContainer(context.Background(), store)
	require.NoError(t, err)

	require.NoError(t, container.Add(context.Background(), 1, "Walnut desk", 249.99, 2))
	require.NoError(t, container.Clear(context.Background()))

	assert.Zero(t, container.Len())
	assert.Zero(t, container.Total())
	assert.Nil(t, store.cart)

	reloaded, err := NewCartContainer(context.Background(), store)
	require.NoError(t, err)
	assert.Zero(t, reloaded.Len())
}

func TestCartContainerHydratesFromStore(t *testing.T) {
	t.Parallel()

	seeded := domain.Cart{}
	seeded.Add(1, "Walnut desk", 249.99, 2)
	store := &fakeStore{cart: &seeded}

	container, err := NewCartContainer(context.Background(), store)
	require.NoError(t, err)

	assert.Equal(t, 1, container.Len())
	assert.InDelta(t, 499.98, container.Total(), 0.001)
}

func TestCartContainerMemoryAuthoritativeWhenPersistFails(t *testing.T) {
	t.Parallel()

	store := &fakeStore{failWrites: true}
	container, err := NewCartContainer(context.Background(), store)
	require.NoError(t, err)

	err = container.Add(context.Background(), 1, "Walnut desk", 249.99, 1)
	require.Error(t, err)

	assert.Equal(t, 1, container.Len())
	assert.InDelta(t, 249.99, container.Total(), 0.001)
}

func TestCartContainerItemsIsACopy(t *testing.T) {
	t.Parallel()

	container, err := NewCartContainer(context.Background(), &fakeStore{})
	require.NoError(t, err)

	require.NoError(t, container.Add(context.Background(), 1, "Walnut desk", 249.99, 1))

	items := container.Items()
	items[0].Quantity = 99

	fresh, ok := container.Snapshot().Find(1)
	require.True(t, ok)
	assert.Equal(t, 1, fresh.Quantity)
}
