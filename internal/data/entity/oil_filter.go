package entity

type OilFilter struct {
	Base
	Name  string  `db:"name"`
	Price float64 `db:"price"`
}
