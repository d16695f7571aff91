package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddMergesExistingLine(t *testing.T) {
	cart := Cart{}
	cart.Add(1, "Walnut desk", 249.99, 1)
	cart.Add(1, "Walnut desk", 249.99, 2)

	require.Equal(t, 1, cart.Len())
	item, ok := cart.Find(1)
	require.True(t, ok)
	assert.Equal(t, 3, item.Quantity)
}

func TestCartAddCoercesNonPositiveQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
	}{
		{name: "zero", quantity: 0},
		{name: "negative", quantity: -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := Cart{}
			cart.Add(7, "Ceramic mug", 12.50, tt.quantity)

			item, ok := cart.Find(7)
			require.True(t, ok)
			assert.Equal(t, 1, item.Quantity)
		})
	}
}

func TestCartTotalRecomputedOverAllLines(t *testing.T) {
	cart := Cart{}
	cart.Add(1, "Walnut desk", 249.99, 2)
	cart.Add(2, "Ceramic mug", 12.50, 4)

	require.InDelta(t, 549.98, cart.Total(), 0.001)

	cart.SetQuantity(2, 1)
	assert.InDelta(t, 512.48, cart.Total(), 0.001)

	cart.Remove(1)
	assert.InDelta(t, 12.50, cart.Total(), 0.001)
}

func TestCartSetQuantityRemovesLineAtOrBelowZero(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
	}{
		{name: "zero removes", quantity: 0},
		{name: "negative removes", quantity: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := Cart{}
			cart.Add(3, "Linen tote", 35, 2)
			cart.SetQuantity(3, tt.quantity)

			_, ok := cart.Find(3)
			assert.False(t, ok)
			assert.Zero(t, cart.Len())
		})
	}
}

func TestCartRemoveAbsentProductIsNoOp(t *testing.T) {
	cart := Cart{}
	cart.Add(1, "Walnut desk", 249.99, 1)

	cart.Remove(99)

	assert.Equal(t, 1, cart.Len())
}

func TestCartClearEmptiesItemsAndTotal(t *testing.T) {
	cart := Cart{}
	cart.Add(1, "Walnut desk", 249.99, 2)
	cart.Clear()

	assert.Zero(t, cart.Len())
	assert.Zero(t, cart.Total())
}

func TestSessionAuthenticatedDerivedFromCredential(t *testing.T) {
	session := Session{}
	assert.False(t, session.Authenticated())

	session.Credential = "tok123"
	assert.True(t, session.Authenticated())

	session.Credential = ""
	assert.False(t, session.Authenticated())
}

func TestSessionRoleWithoutUser(t *testing.T) {
	session := Session{Credential: "tok123"}
	assert.Equal(t, Role(""), session.Role())
	assert.False(t, session.Role().CanSell())
}

func TestRoleCapabilities(t *testing.T) {
	tests := []struct {
		name    string
		role    Role
		valid   bool
		canSell bool
	}{
		{name: "buyer", role: RoleBuyer, valid: true, canSell: false},
		{name: "seller", role: RoleSeller, valid: true, canSell: true},
		{name: "unknown role is invalid", role: Role("admin"), valid: false, canSell: false},
		{name: "zero value", role: Role(""), valid: false, canSell: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.role.Valid())
			assert.Equal(t, tt.canSell, tt.role.CanSell())
		})
	}
}
