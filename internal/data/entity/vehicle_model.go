package entity

import "github.com/google/uuid"

type VehicleModel struct {
	Base
	BrandID uuid.UUID `db:"brand_id"`
	Name    string    `db:"name"`
}
