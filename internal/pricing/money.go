package pricing

import "math"

// VAT mode per service type:
// - oil change / battery replacement: prices are VAT-exclusive, VAT ditambahkan di atas subtotal
// - other service: prices sudah VAT-inclusive, VAT diekstrak dari total
type Money struct {
	amount    float64
	vatRate   float64
	inclusive bool
}

// Inclusive wraps an amount that already contains VAT.
func Inclusive(amount float64) Money {
	return Money{amount: Round2(amount), inclusive: true}
}

// Exclusive wraps a pre-tax amount with the VAT rate that applies to it.
func Exclusive(amount, vatRate float64) Money {
	return Money{amount: Round2(amount), vatRate: vatRate}
}

func (m Money) Amount() float64 {
	return m.amount
}

func (m Money) IsInclusive() bool {
	return m.inclusive
}

// ToInclusive is the single conversion point between the two modes. Adding an
// exclusive amount to an inclusive one without going through here is a bug.
func (m Money) ToInclusive() Money {
	if m.inclusive {
		return m
	}
	_, total := AddVAT(m.amount, m.vatRate)
	return Inclusive(total)
}

// Breakdown holds the money summary persisted on a booking.
type Breakdown struct {
	Subtotal  float64 `json:"subtotal"`
	VATRate   float64 `json:"vat_rate"`
	VATAmount float64 `json:"vat_amount"`
	NetAmount float64 `json:"net_amount"`
	Total     float64 `json:"total_amount"`
}

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// AddVAT computes additive-mode VAT: tax on top of a pre-tax subtotal.
func AddVAT(subtotal, vatRate float64) (vatAmount, total float64) {
	if subtotal <= 0 || vatRate <= 0 {
		return 0, Round2(subtotal)
	}

	vatAmount = Round2(subtotal * vatRate / 100)
	total = Round2(subtotal + vatAmount)
	return vatAmount, total
}

// ExtractVAT pulls the VAT portion out of a VAT-inclusive amount.
// vatAmount + netAmount selalu == amount (after rounding).
func ExtractVAT(amount, vatRate float64) (vatAmount, netAmount float64) {
	// Guard zero/negative amounts and degenerate rates (vatRate = -100 would
	// divide by zero below).
	if amount <= 0 || vatRate <= 0 {
		return 0, amount
	}

	vatAmount = Round2(amount * vatRate / (100 + vatRate))
	netAmount = Round2(amount - vatAmount)
	return vatAmount, netAmount
}

// AdditiveBreakdown builds the money summary for oil-change and
// battery-replacement bookings: subtotal is pre-tax, VAT is added on top.
func AdditiveBreakdown(itemsSubtotal, vatRate float64) Breakdown {
	subtotal := Round2(itemsSubtotal)
	vat, total := AddVAT(subtotal, vatRate)

	return Breakdown{
		Subtotal:  subtotal,
		VATRate:   vatRate,
		VATAmount: vat,
		NetAmount: subtotal,
		Total:     total,
	}
}

// InclusiveBreakdown builds the money summary for other-service bookings:
// item prices already contain VAT, a discount applies before extraction, and
// the total IS the discounted amount (VAT lives inside it).
func InclusiveBreakdown(itemsSubtotal, discount, vatRate float64) Breakdown {
	subtotal := Round2(itemsSubtotal)

	discountedTotal := Round2(subtotal - discount)
	if discountedTotal < 0 {
		discountedTotal = 0
	}

	vat, net := ExtractVAT(discountedTotal, vatRate)

	return Breakdown{
		Subtotal:  subtotal,
		VATRate:   vatRate,
		VATAmount: vat,
		NetAmount: net,
		Total:     discountedTotal,
	}
}
