package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fullPackaging = Packaging{
	Price4L:       60,
	Price1L:       18,
	PricePerLiter: 14.5,
	Has4L:         true,
	Has1L:         true,
	HasBulk:       true,
}

func TestSuggestCombinationCoversRequirement(t *testing.T) {
	// With both package sizes available the plan never delivers short, and
	// never overshoots by a whole 4L unit.
	for required := 0.5; required <= 12; required += 0.5 {
		sug, ok := SuggestCombination(fullPackaging, required)
		require.True(t, ok, "required=%v", required)

		got := sug.Selection.Totals(fullPackaging).Quantity
		assert.GreaterOrEqual(t, got, required, "required=%v", required)
		assert.Less(t, got-required, 4.0, "required=%v", required)
	}
}

func TestSuggestCombinationGreedySplit(t *testing.T) {
	sug, ok := SuggestCombination(fullPackaging, 5.5)
	require.True(t, ok)

	assert.Equal(t, 1, sug.Selection.Count4L)
	assert.Equal(t, 2, sug.Selection.Count1L)
	assert.Zero(t, sug.Selection.BulkLiters)

	require.NotNil(t, sug.BulkAlternative)
	assert.Equal(t, 5.5, sug.BulkAlternative.BulkLiters)
}

func TestSuggestCombinationOnly4L(t *testing.T) {
	p := Packaging{Price4L: 60, Has4L: true}

	sug, ok := SuggestCombination(p, 5)
	require.True(t, ok)
	assert.Equal(t, 2, sug.Selection.Count4L)
	assert.Zero(t, sug.Selection.Count1L)
	assert.Nil(t, sug.BulkAlternative)
}

func TestSuggestCombinationOnly1L(t *testing.T) {
	p := Packaging{Price1L: 18, Has1L: true}

	sug, ok := SuggestCombination(p, 3.2)
	require.True(t, ok)
	assert.Equal(t, 4, sug.Selection.Count1L)
}

func TestSuggestCombinationBulkOnly(t *testing.T) {
	p := Packaging{PricePerLiter: 14.5, HasBulk: true}

	sug, ok := SuggestCombination(p, 4.5)
	require.True(t, ok)
	assert.Equal(t, 4.5, sug.Selection.BulkLiters)
	assert.Nil(t, sug.BulkAlternative)
}

func TestSuggestCombinationNoRequirement(t *testing.T) {
	_, ok := SuggestCombination(fullPackaging, 0)
	assert.False(t, ok)

	_, ok = SuggestCombination(Packaging{}, 4)
	assert.False(t, ok, "no available package kind yields no plan")
}

func TestSelectionTotals(t *testing.T) {
	sel := Selection{Count4L: 1, Count1L: 2, BulkLiters: 0.5}
	totals := sel.Totals(fullPackaging)

	assert.Equal(t, 6.5, totals.Quantity)
	assert.Equal(t, 60+2*18+0.5*14.5, totals.Price)
}

func TestAdjustCountClampsAtZero(t *testing.T) {
	var sel Selection

	sel = sel.AdjustCount(Package4L, -1)
	assert.Zero(t, sel.Count4L, "decrement below 0 is a no-op")

	sel = sel.AdjustCount(Package4L, 1).AdjustCount(Package4L, -1).AdjustCount(Package4L, -1)
	assert.Zero(t, sel.Count4L)

	sel = sel.WithBulk(-3)
	assert.Zero(t, sel.BulkLiters)
}

func TestQuantityStatus(t *testing.T) {
	assert.Equal(t, "exact match", QuantityStatus(4, 4))
	assert.Equal(t, "2 extra", QuantityStatus(6, 4))
	assert.Equal(t, "1.5 short", QuantityStatus(2.5, 4))
}

func TestResolverFlow(t *testing.T) {
	r := NewResolver()
	r.RegisterProduct("oil-a", fullPackaging)
	r.SetRequiredQuantity(4)

	require.True(t, r.ApplySuggestion("oil-a"))
	assert.Equal(t, "exact match", r.QuantityStatus("oil-a"))

	// Operator overrides the plan afterward.
	r.AdjustPackageCount("oil-a", Package1L, 1)
	totals := r.ComputeTotals("oil-a")
	assert.Equal(t, 5.0, totals.Quantity)
	assert.Equal(t, "1 extra", r.QuantityStatus("oil-a"))

	r.SetBulkQuantity("oil-a", 0.5)
	assert.Equal(t, 5.5, r.ComputeTotals("oil-a").Quantity)
}
