package entity

type Accessory struct {
	Base
	Name              string  `db:"name"`
	Price             float64 `db:"price"`
	QuantityAvailable *int    `db:"quantity_available"`
}
