package entity

type Brand struct {
	Base
	Name string `db:"name"`
}
