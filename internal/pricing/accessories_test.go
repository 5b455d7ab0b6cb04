package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestCartAddRemoveRoundTrip(t *testing.T) {
	wiper := Accessory{ID: "wiper", Name: "Wiper Blade", Price: 20}

	var cart Cart
	for i := 0; i < 3; i++ {
		cart = cart.AddOrIncrement(wiper)
	}
	assert.Equal(t, 3, cart.Quantity("wiper"))
	assert.Equal(t, 60.0, cart.Total())

	for i := 0; i < 3; i++ {
		cart = cart.DecrementOrRemove("wiper")
	}

	// Adding N times then removing N times returns the cart to pre-add state.
	assert.Zero(t, cart.Len())
	assert.Zero(t, cart.Total())
	assert.Zero(t, cart.Quantity("wiper"))
}

func TestCartTotalAggregation(t *testing.T) {
	var cart Cart
	cart = cart.AddOrIncrement(Accessory{ID: "wiper", Price: 20})
	cart = cart.AddOrIncrement(Accessory{ID: "wiper", Price: 20})
	cart = cart.AddOrIncrement(Accessory{ID: "freshener", Price: 7.5})

	assert.Equal(t, 2, cart.Quantity("wiper"))
	assert.Equal(t, 47.5, cart.Total())
	assert.Equal(t, 2, cart.Len())
}

func TestCartQuantityAvailableCap(t *testing.T) {
	capped := Accessory{ID: "mat", Price: 35, QuantityAvailable: intPtr(2)}

	var cart Cart
	for i := 0; i < 5; i++ {
		cart = cart.AddOrIncrement(capped)
	}

	// Increments past the cap are silently refused.
	assert.Equal(t, 2, cart.Quantity("mat"))
	assert.Equal(t, 70.0, cart.Total())
}

func TestCartOutOfStockNeverAdded(t *testing.T) {
	var cart Cart
	cart = cart.AddOrIncrement(Accessory{ID: "mat", Price: 35, QuantityAvailable: intPtr(0)})

	assert.Zero(t, cart.Len())
}

func TestCartDecrementUnknownIsNoop(t *testing.T) {
	var cart Cart
	cart = cart.AddOrIncrement(Accessory{ID: "wiper", Price: 20})

	cart = cart.DecrementOrRemove("missing")
	assert.Equal(t, 1, cart.Quantity("wiper"))
}

func TestCartValueSemantics(t *testing.T) {
	var before Cart
	before = before.AddOrIncrement(Accessory{ID: "wiper", Price: 20})

	after := before.AddOrIncrement(Accessory{ID: "wiper", Price: 20})

	assert.Equal(t, 1, before.Quantity("wiper"), "previous state untouched")
	assert.Equal(t, 2, after.Quantity("wiper"))
}
