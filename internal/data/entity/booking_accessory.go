package entity

import "github.com/google/uuid"

// BookingAccessory is one accessory line of a booking. Price is copied at
// booking time so later catalog edits do not rewrite history.
type BookingAccessory struct {
	BaseSimple
	BookingID   uuid.UUID `db:"booking_id"`
	AccessoryID uuid.UUID `db:"accessory_id"`
	Quantity    int       `db:"quantity"`
	Price       float64   `db:"price"`
}
