package entity

import "github.com/google/uuid"

// Vehicle identity key is the plate number (unique constraint on the table).
// Brand/model are display hints; the plate decides identity.
type Vehicle struct {
	Base
	CustomerID  uuid.UUID  `db:"customer_id"`
	BrandID     *uuid.UUID `db:"brand_id"`
	ModelID     *uuid.UUID `db:"model_id"`
	PlateNumber string     `db:"plate_number"`
}
