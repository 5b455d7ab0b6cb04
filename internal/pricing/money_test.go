package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVATPartition(t *testing.T) {
	amounts := []float64{0.01, 1, 99.99, 130, 175, 1234.56, 100000}
	rates := []float64{5, 15, 7.5, 20}

	for _, amount := range amounts {
		for _, rate := range rates {
			vat, net := ExtractVAT(amount, rate)

			assert.InDelta(t, amount, vat+net, 0.01,
				"vat+net must reassemble amount for amount=%v rate=%v", amount, rate)
			assert.GreaterOrEqual(t, vat, 0.0)
			assert.GreaterOrEqual(t, net, 0.0)
		}
	}
}

func TestExtractVATZeroFallback(t *testing.T) {
	vat, net := ExtractVAT(0, 5)
	assert.Zero(t, vat)
	assert.Zero(t, net)

	vat, net = ExtractVAT(-10, 5)
	assert.Zero(t, vat)
	assert.Equal(t, -10.0, net)

	// Non-positive rates, including the degenerate -100, must not divide.
	vat, net = ExtractVAT(100, 0)
	assert.Zero(t, vat)
	assert.Equal(t, 100.0, net)

	vat, net = ExtractVAT(100, -100)
	assert.Zero(t, vat)
	assert.Equal(t, 100.0, net)
}

func TestAddVATTotalProperty(t *testing.T) {
	subtotals := []float64{0, 1, 175, 99.99, 5000}
	rates := []float64{0, 5, 15}

	for _, subtotal := range subtotals {
		for _, rate := range rates {
			vat, total := AddVAT(subtotal, rate)
			assert.InDelta(t, subtotal+subtotal*rate/100, total, 0.01)
			assert.InDelta(t, subtotal+vat, total, 0.001)
		}
	}
}

func TestInclusiveBreakdownOtherService(t *testing.T) {
	// Oil filter 100 (inclusive) + labor 50, discount 20, 5% inclusive VAT.
	b := InclusiveBreakdown(100+50, 20, 5)

	assert.Equal(t, 150.0, b.Subtotal)
	assert.Equal(t, 130.0, b.Total)
	assert.Equal(t, 6.19, b.VATAmount)
	assert.Equal(t, 123.81, b.NetAmount)
}

func TestInclusiveBreakdownDiscountFloor(t *testing.T) {
	b := InclusiveBreakdown(50, 80, 5)

	assert.Zero(t, b.Total)
	assert.Zero(t, b.VATAmount)
	assert.Zero(t, b.NetAmount)
}

func TestAdditiveBreakdownOilChange(t *testing.T) {
	// 4L oil 60 + filter 25 + labor 50 + accessories 40, 5% additive VAT.
	b := AdditiveBreakdown(60+25+50+40, 5)

	assert.Equal(t, 175.0, b.Subtotal)
	assert.Equal(t, 8.75, b.VATAmount)
	assert.Equal(t, 183.75, b.Total)
}

func TestMoneyConversion(t *testing.T) {
	m := Exclusive(100, 15)
	assert.False(t, m.IsInclusive())

	inc := m.ToInclusive()
	assert.True(t, inc.IsInclusive())
	assert.Equal(t, 115.0, inc.Amount())

	// Converting an inclusive amount is a no-op.
	assert.Equal(t, inc, inc.ToInclusive())
}

func TestRound2HalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 6.19, Round2(130*5/105.0))
	assert.Equal(t, 0.13, Round2(0.125))
	assert.Equal(t, -0.13, Round2(-0.125))
}
