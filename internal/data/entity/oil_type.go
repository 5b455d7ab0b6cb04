package entity

// OilType carries per-package prices for the three package kinds plus their
// availability flags. A sellable product should have at least one kind
// available; the catalog does not enforce it, the wizard just yields no
// package plan.
type OilType struct {
	Base
	Name          string  `db:"name"`
	Price4L       float64 `db:"price_4l"`
	Price1L       float64 `db:"price_1l"`
	PricePerLiter float64 `db:"price_per_liter"`
	Has4L         bool    `db:"package_4l_available"`
	Has1L         bool    `db:"package_1l_available"`
	HasBulk       bool    `db:"bulk_available"`
}
