package request

// CustomerPayload identifies a customer by mobile number. If the mobile is
// already registered the stored customer is reused; the name is only applied
// on first creation.
type CustomerPayload struct {
	Name   string `json:"name" validate:"required,min=1,max=100"`
	Mobile string `json:"mobile" validate:"required,min=6,max=20"`
}

// VehiclePayload identifies a vehicle by plate number. Brand/model are
// optional display hints and never override an existing plate's record.
type VehiclePayload struct {
	BrandID     *string `json:"brand_id,omitempty" validate:"omitempty,uuid4"`
	ModelID     *string `json:"model_id,omitempty" validate:"omitempty,uuid4"`
	PlateNumber string  `json:"plate_number" validate:"required,min=2,max=20"`
}

type BookingAccessoryLine struct {
	AccessoryID string  `json:"accessory_id" validate:"required,uuid4"`
	Quantity    int     `json:"quantity" validate:"required,min=1"`
	Price       float64 `json:"price" validate:"min=0"`
}

type CreateBookingRequest struct {
	Customer CustomerPayload `json:"customer" validate:"required"`
	Vehicle  VehiclePayload  `json:"vehicle" validate:"required"`

	ServiceType string `json:"service_type" validate:"required,oneof=oil_change battery_replacement other_service"`
	ServiceDate string `json:"service_date" validate:"required,datetime=2006-01-02"`
	ServiceTime string `json:"service_time" validate:"required,datetime=15:04"`

	// Flow-dependent fields, nullable outside their flow
	OilTypeID     *string  `json:"oil_type_id,omitempty" validate:"omitempty,uuid4"`
	OilQuantity   *float64 `json:"oil_quantity,omitempty" validate:"omitempty,gt=0"`
	OilFilterID   *string  `json:"oil_filter_id,omitempty" validate:"omitempty,uuid4"`
	BatteryTypeID *string  `json:"battery_type_id,omitempty" validate:"omitempty,uuid4"`

	LaborCost float64 `json:"labor_cost" validate:"min=0"`
	Discount  float64 `json:"discount" validate:"min=0"`

	Subtotal    float64 `json:"subtotal" validate:"min=0"`
	VATRate     float64 `json:"vat_rate" validate:"min=0"`
	VATAmount   float64 `json:"vat_amount" validate:"min=0"`
	TotalAmount float64 `json:"total_amount" validate:"min=0"`

	Memo *string `json:"memo,omitempty" validate:"omitempty,max=500"`

	Accessories []BookingAccessoryLine `json:"accessories,omitempty" validate:"omitempty,dive"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=completed cancelled"`
}

// QuoteAccessoryLine references the catalog; the server reads the current
// price, the client never submits one on a quote.
type QuoteAccessoryLine struct {
	AccessoryID string `json:"accessory_id" validate:"required,uuid4"`
	Quantity    int    `json:"quantity" validate:"required,min=1"`
}

// QuoteRequest asks the server to price a wizard state without persisting
// anything. Package counts may be submitted directly, or left zero with
// use_suggestion=true to let the server pick the greedy combination.
type QuoteRequest struct {
	ServiceType string `json:"service_type" validate:"required,oneof=oil_change battery_replacement other_service"`

	OilTypeID     *string  `json:"oil_type_id,omitempty" validate:"omitempty,uuid4"`
	OilQuantity   *float64 `json:"oil_quantity,omitempty" validate:"omitempty,gt=0"`
	Count4L       int      `json:"count_4l" validate:"min=0"`
	Count1L       int      `json:"count_1l" validate:"min=0"`
	BulkLiters    float64  `json:"bulk_liters" validate:"min=0"`
	UseSuggestion bool     `json:"use_suggestion"`
	OilFilterID   *string  `json:"oil_filter_id,omitempty" validate:"omitempty,uuid4"`

	BatteryTypeID *string `json:"battery_type_id,omitempty" validate:"omitempty,uuid4"`

	LaborCost float64 `json:"labor_cost" validate:"min=0"`

	// other_service only: VAT-inclusive parts total and discount
	PartsTotal float64 `json:"parts_total" validate:"min=0"`
	Discount   float64 `json:"discount" validate:"min=0"`

	Accessories []QuoteAccessoryLine `json:"accessories,omitempty" validate:"omitempty,dive"`
}
