package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWizardOilChangeScenario(t *testing.T) {
	// 4L oil at 60 (only 4L packages), filter 25, labor 50,
	// wiper 20 x2, 5% additive VAT.
	oil := Packaging{Price4L: 60, Has4L: true}

	w := NewWizard(FlowOilChange, 5).
		WithRequiredQuantity(4).
		WithOil(oil).
		ApplySuggestion().
		WithFilter(25).
		WithLabor(50).
		AddAccessory(Accessory{ID: "wiper", Price: 20}).
		AddAccessory(Accessory{ID: "wiper", Price: 20})

	require.True(t, w.ProductStepValid())
	assert.Equal(t, 1, w.Selection.Count4L)
	assert.Equal(t, "exact match", w.OilQuantityStatus())

	b := w.Breakdown()
	assert.Equal(t, 175.0, b.Subtotal)
	assert.Equal(t, 8.75, b.VATAmount)
	assert.Equal(t, 183.75, b.Total)
}

func TestWizardOtherServiceScenario(t *testing.T) {
	// Filter 100 (VAT-inclusive), labor 50, discount 20, 5% extraction.
	w := NewWizard(FlowOtherService, 5).
		WithParts(100).
		WithLabor(50).
		WithDiscount(20)

	b := w.Breakdown()
	assert.Equal(t, 150.0, b.Subtotal)
	assert.Equal(t, 130.0, b.Total)
	assert.Equal(t, 6.19, b.VATAmount)
	assert.Equal(t, 123.81, b.NetAmount)
}

func TestWizardBatteryScenario(t *testing.T) {
	w := NewWizard(FlowBatteryReplacement, 15).
		WithBattery(200).
		WithLabor(30)

	require.True(t, w.ProductStepValid())

	b := w.Breakdown()
	assert.Equal(t, 230.0, b.Subtotal)
	assert.Equal(t, 34.5, b.VATAmount)
	assert.Equal(t, 264.5, b.Total)
}

func TestWizardStateImmutable(t *testing.T) {
	base := NewWizard(FlowOilChange, 5).WithOil(Packaging{Price4L: 60, Has4L: true})

	bumped := base.AdjustPackage(Package4L, 1)

	assert.True(t, base.Selection.Empty(), "earlier step state must not change")
	assert.Equal(t, 1, bumped.Selection.Count4L)
}

func TestWizardProductStepValidity(t *testing.T) {
	w := NewWizard(FlowOilChange, 5)
	assert.False(t, w.ProductStepValid(), "no oil selected yet")

	w = w.WithOil(Packaging{Price4L: 60, Has4L: true})
	assert.False(t, w.ProductStepValid(), "selection still empty")

	w = w.AdjustPackage(Package4L, 1)
	assert.True(t, w.ProductStepValid())

	// Short delivery stays advisory, never blocks the step.
	w = w.WithRequiredQuantity(8)
	assert.True(t, w.ProductStepValid())
	assert.Equal(t, "4 short", w.OilQuantityStatus())
}
