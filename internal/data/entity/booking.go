package entity

import (
	"time"

	"github.com/google/uuid"
)

type ServiceType string

const (
	ServiceOilChange          ServiceType = "oil_change"
	ServiceBatteryReplacement ServiceType = "battery_replacement"
	ServiceOther              ServiceType = "other_service"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Terminal reports whether the status accepts no further transition.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

type Booking struct {
	Base
	BookingNumber string      `db:"booking_number"`
	CustomerID    uuid.UUID   `db:"customer_id"`
	VehicleID     uuid.UUID   `db:"vehicle_id"`
	ServiceType   ServiceType `db:"service_type"`
	ServiceDate   time.Time   `db:"service_date"`
	ServiceTime   string      `db:"service_time"`

	// Service-type-specific references, nullable by flow
	OilTypeID     *uuid.UUID `db:"oil_type_id"`
	OilQuantity   *float64   `db:"oil_quantity"`
	OilFilterID   *uuid.UUID `db:"oil_filter_id"`
	BatteryTypeID *uuid.UUID `db:"battery_type_id"`

	LaborCost float64 `db:"labor_cost"`
	Discount  float64 `db:"discount"`

	// Money breakdown. Untuk other_service subtotal/total sudah VAT-inclusive.
	Subtotal    float64 `db:"subtotal"`
	VATRate     float64 `db:"vat_rate"`
	VATAmount   float64 `db:"vat_amount"`
	TotalAmount float64 `db:"total_amount"`

	Memo      *string       `db:"memo"`
	Status    BookingStatus `db:"status"`
	CreatedBy uuid.UUID     `db:"created_by"`
	UpdatedBy *uuid.UUID    `db:"updated_by"`
}
