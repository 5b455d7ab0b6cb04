package entity

type BatteryType struct {
	Base
	Name     string  `db:"name"`
	Capacity *string `db:"capacity"`
	Price    float64 `db:"price"`
}
