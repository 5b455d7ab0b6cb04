package entity

// Customer identity key is the mobile number (unique constraint on the table).
type Customer struct {
	Base
	Name   string `db:"name"`
	Mobile string `db:"mobile"`
}
