package pricing

// FlowKind selects the VAT mode of a wizard run.
type FlowKind string

const (
	FlowOilChange          FlowKind = "oil_change"
	FlowBatteryReplacement FlowKind = "battery_replacement"
	FlowOtherService       FlowKind = "other_service"
)

// WizardState is the single source of truth of a booking wizard run. It is
// immutable: every step update returns a new state, and each step's validity
// is derived from the state instead of scattered boolean flags. No cross-step
// reset bookkeeping needed.
type WizardState struct {
	Flow    FlowKind
	VATRate float64

	// oil change
	RequiredQuantity float64
	OilSelected      bool
	Packaging        Packaging
	Selection        Selection
	FilterPrice      float64
	HasFilter        bool

	// battery replacement
	BatteryPrice float64
	HasBattery   bool

	// shared
	LaborCost   float64
	Discount    float64
	PartsTotal  float64 // other-service parts, VAT-inclusive prices
	Accessories Cart
}

func NewWizard(flow FlowKind, vatRate float64) WizardState {
	return WizardState{Flow: flow, VATRate: vatRate}
}

func (w WizardState) WithRequiredQuantity(q float64) WizardState {
	if q < 0 {
		q = 0
	}
	w.RequiredQuantity = q
	return w
}

func (w WizardState) WithOil(p Packaging) WizardState {
	w.OilSelected = true
	w.Packaging = p
	w.Selection = Selection{}
	return w
}

func (w WizardState) WithSelection(s Selection) WizardState {
	w.Selection = s
	return w
}

func (w WizardState) AdjustPackage(kind PackageKind, delta int) WizardState {
	w.Selection = w.Selection.AdjustCount(kind, delta)
	return w
}

func (w WizardState) SetBulk(liters float64) WizardState {
	w.Selection = w.Selection.WithBulk(liters)
	return w
}

// ApplySuggestion populates the selection from the greedy plan; a no-op when
// there is nothing to suggest.
func (w WizardState) ApplySuggestion() WizardState {
	sug, ok := SuggestCombination(w.Packaging, w.RequiredQuantity)
	if ok {
		w.Selection = sug.Selection
	}
	return w
}

func (w WizardState) WithFilter(price float64) WizardState {
	w.HasFilter = true
	w.FilterPrice = price
	return w
}

func (w WizardState) WithBattery(price float64) WizardState {
	w.HasBattery = true
	w.BatteryPrice = price
	return w
}

func (w WizardState) WithLabor(cost float64) WizardState {
	if cost < 0 {
		cost = 0
	}
	w.LaborCost = cost
	return w
}

func (w WizardState) WithDiscount(d float64) WizardState {
	if d < 0 {
		d = 0
	}
	w.Discount = d
	return w
}

func (w WizardState) WithParts(total float64) WizardState {
	if total < 0 {
		total = 0
	}
	w.PartsTotal = total
	return w
}

func (w WizardState) AddAccessory(a Accessory) WizardState {
	w.Accessories = w.Accessories.AddOrIncrement(a)
	return w
}

func (w WizardState) RemoveAccessory(accessoryID string) WizardState {
	w.Accessories = w.Accessories.DecrementOrRemove(accessoryID)
	return w
}

// ProductStepValid derives the product-selection step's validity from state.
// Under-delivery ("N short") stays advisory and never invalidates the step.
func (w WizardState) ProductStepValid() bool {
	switch w.Flow {
	case FlowOilChange:
		return w.OilSelected && !w.Selection.Empty()
	case FlowBatteryReplacement:
		return w.HasBattery
	default:
		return true
	}
}

func (w WizardState) OilTotals() Totals {
	return w.Selection.Totals(w.Packaging)
}

func (w WizardState) OilQuantityStatus() string {
	return QuantityStatus(w.OilTotals().Quantity, w.RequiredQuantity)
}

// Breakdown derives the money summary for the current flow.
//
// Additive flows (oil change, battery replacement) sum pre-tax component
// prices and add VAT on top. The inclusive flow (other service) sums
// VAT-inclusive prices, applies the discount, and extracts VAT from the
// discounted total.
func (w WizardState) Breakdown() Breakdown {
	switch w.Flow {
	case FlowOilChange:
		items := w.OilTotals().Price + w.FilterPrice + w.LaborCost + w.Accessories.Total()
		return AdditiveBreakdown(items, w.VATRate)

	case FlowBatteryReplacement:
		items := w.BatteryPrice + w.LaborCost + w.Accessories.Total()
		return AdditiveBreakdown(items, w.VATRate)

	default:
		items := w.PartsTotal + w.LaborCost + w.Accessories.Total()
		return InclusiveBreakdown(items, w.Discount, w.VATRate)
	}
}
