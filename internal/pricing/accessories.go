package pricing

// Accessory is the catalog view the cart needs: price at selection time and
// an optional stock cap.
type Accessory struct {
	ID                string
	Name              string
	Price             float64
	QuantityAvailable *int // nil = uncapped
}

// CartLine is one selected accessory with its quantity.
type CartLine struct {
	Accessory
	Quantity int
}

// Cart is the accessory selection list of a wizard run. Value semantics:
// mutations return a new Cart so wizard state stays immutable.
type Cart struct {
	lines []CartLine
}

// AddOrIncrement bumps the quantity when the accessory is already selected,
// otherwise appends it with quantity 1. Increments past quantity_available
// are silently refused, bukan error.
func (c Cart) AddOrIncrement(a Accessory) Cart {
	lines := make([]CartLine, len(c.lines))
	copy(lines, c.lines)

	for i := range lines {
		if lines[i].ID == a.ID {
			if lines[i].QuantityAvailable != nil && lines[i].Quantity >= *lines[i].QuantityAvailable {
				return Cart{lines: lines}
			}
			lines[i].Quantity++
			return Cart{lines: lines}
		}
	}

	if a.QuantityAvailable != nil && *a.QuantityAvailable < 1 {
		return Cart{lines: lines}
	}

	return Cart{lines: append(lines, CartLine{Accessory: a, Quantity: 1})}
}

// DecrementOrRemove drops the quantity by one and removes the line entirely
// when it reaches zero.
func (c Cart) DecrementOrRemove(accessoryID string) Cart {
	lines := make([]CartLine, 0, len(c.lines))

	for _, line := range c.lines {
		if line.ID == accessoryID {
			line.Quantity--
			if line.Quantity <= 0 {
				continue
			}
		}
		lines = append(lines, line)
	}

	return Cart{lines: lines}
}

// Total is the aggregated accessory amount: sum(price * quantity).
func (c Cart) Total() float64 {
	var total float64
	for _, line := range c.lines {
		total += line.Price * float64(line.Quantity)
	}
	return Round2(total)
}

func (c Cart) Lines() []CartLine {
	lines := make([]CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c Cart) Len() int {
	return len(c.lines)
}

func (c Cart) Quantity(accessoryID string) int {
	for _, line := range c.lines {
		if line.ID == accessoryID {
			return line.Quantity
		}
	}
	return 0
}
