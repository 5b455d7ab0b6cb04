package pricing

import (
	"fmt"
	"math"
	"strconv"
)

type PackageKind string

const (
	Package4L   PackageKind = "4l"
	Package1L   PackageKind = "1l"
	PackageBulk PackageKind = "bulk"
)

// Packaging holds per-package prices and availability flags for one oil type,
// as loaded from the catalog.
type Packaging struct {
	Price4L       float64
	Price1L       float64
	PricePerLiter float64
	Has4L         bool
	Has1L         bool
	HasBulk       bool
}

func (p Packaging) HasAny() bool {
	return p.Has4L || p.Has1L || p.HasBulk
}

// Selection is the transient per-booking-attempt package choice for one oil
// type. It is a value: every mutation returns a new Selection, the old one is
// untouched. Only the resolved totals ever reach the booking row.
type Selection struct {
	Count4L    int
	Count1L    int
	BulkLiters float64
}

// Totals of a selection against current catalog prices. Pure; never cached.
type Totals struct {
	Quantity float64
	Price    float64
}

func (s Selection) Totals(p Packaging) Totals {
	qty := 4*float64(s.Count4L) + float64(s.Count1L) + s.BulkLiters
	price := float64(s.Count4L)*p.Price4L + float64(s.Count1L)*p.Price1L + s.BulkLiters*p.PricePerLiter

	return Totals{Quantity: qty, Price: Round2(price)}
}

// AdjustCount bumps a package count by delta, clamped at 0. Decrementing an
// empty count is a no-op, not an error; ini komponen UI-adjacent, bukan ledger.
func (s Selection) AdjustCount(kind PackageKind, delta int) Selection {
	switch kind {
	case Package4L:
		s.Count4L += delta
		if s.Count4L < 0 {
			s.Count4L = 0
		}
	case Package1L:
		s.Count1L += delta
		if s.Count1L < 0 {
			s.Count1L = 0
		}
	}
	return s
}

// WithBulk overwrites (not increments) the fractional bulk quantity.
func (s Selection) WithBulk(liters float64) Selection {
	if liters < 0 {
		liters = 0
	}
	s.BulkLiters = liters
	return s
}

func (s Selection) Empty() bool {
	return s.Count4L == 0 && s.Count1L == 0 && s.BulkLiters == 0
}

// Suggestion is an advisory package plan. Applying it populates a Selection;
// the operator may freely override afterward.
type Suggestion struct {
	Selection Selection
	// BulkAlternative carries the exact bulk quantity when bulk is priced, as
	// an alternative to the packaged plan.
	BulkAlternative *Selection
}

// SuggestCombination is a greedy heuristic, bukan bin-packing optimizer:
// package granularity is coarse and the operator keeps final control.
//   - both 4L and 1L available: floor(required/4) jerigen 4L, sisanya ceil ke 1L
//   - only 4L: ceil(required/4) units
//   - only 1L: ceil(required) units
//   - bulk priced: exact quantity offered as an alternative
//
// required <= 0 yields no recommendation.
func SuggestCombination(p Packaging, required float64) (Suggestion, bool) {
	if required <= 0 || !p.HasAny() {
		return Suggestion{}, false
	}

	var sel Selection
	switch {
	case p.Has4L && p.Has1L:
		sel.Count4L = int(math.Floor(required / 4))
		sel.Count1L = int(math.Ceil(required - 4*float64(sel.Count4L)))
	case p.Has4L:
		sel.Count4L = int(math.Ceil(required / 4))
	case p.Has1L:
		sel.Count1L = int(math.Ceil(required))
	}

	sug := Suggestion{Selection: sel}
	if p.HasBulk && p.PricePerLiter > 0 {
		alt := Selection{BulkLiters: required}
		sug.BulkAlternative = &alt
	}

	// Bulk-only catalog: the exact-quantity plan is the primary one.
	if sel.Empty() && sug.BulkAlternative != nil {
		sug.Selection = *sug.BulkAlternative
		sug.BulkAlternative = nil
	}

	return sug, !sug.Selection.Empty()
}

// QuantityStatus compares the selected quantity against the required one.
// Purely UI feedback; an "N short" selection does not block submission.
func QuantityStatus(totalQuantity, required float64) string {
	diff := Round2(totalQuantity - required)
	switch {
	case diff == 0:
		return "exact match"
	case diff > 0:
		return fmt.Sprintf("%s extra", formatLiters(diff))
	default:
		return fmt.Sprintf("%s short", formatLiters(-diff))
	}
}

func formatLiters(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Resolver tracks the required quantity and one Selection per oil type during
// a wizard run. Single-threaded, last write wins, matching form-input
// semantics; discarded once the booking is finalized.
type Resolver struct {
	required   float64
	selections map[string]Selection
	packaging  map[string]Packaging
}

func NewResolver() *Resolver {
	return &Resolver{
		selections: make(map[string]Selection),
		packaging:  make(map[string]Packaging),
	}
}

// RegisterProduct records the catalog packaging for an oil type. Selecting a
// product creates its (empty) selection.
func (r *Resolver) RegisterProduct(productID string, p Packaging) {
	r.packaging[productID] = p
	if _, ok := r.selections[productID]; !ok {
		r.selections[productID] = Selection{}
	}
}

// SetRequiredQuantity records the target quantity the service needs.
// No side effect on existing selections.
func (r *Resolver) SetRequiredQuantity(q float64) {
	if q < 0 {
		q = 0
	}
	r.required = q
}

func (r *Resolver) RequiredQuantity() float64 {
	return r.required
}

func (r *Resolver) AdjustPackageCount(productID string, kind PackageKind, delta int) {
	r.selections[productID] = r.selections[productID].AdjustCount(kind, delta)
}

func (r *Resolver) SetBulkQuantity(productID string, liters float64) {
	r.selections[productID] = r.selections[productID].WithBulk(liters)
}

func (r *Resolver) Selection(productID string) Selection {
	return r.selections[productID]
}

func (r *Resolver) ComputeTotals(productID string) Totals {
	return r.selections[productID].Totals(r.packaging[productID])
}

// ApplySuggestion populates the product's selection from the greedy plan.
func (r *Resolver) ApplySuggestion(productID string) bool {
	sug, ok := SuggestCombination(r.packaging[productID], r.required)
	if !ok {
		return false
	}
	r.selections[productID] = sug.Selection
	return true
}

func (r *Resolver) QuantityStatus(productID string) string {
	return QuantityStatus(r.ComputeTotals(productID).Quantity, r.required)
}
