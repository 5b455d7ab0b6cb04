package response

import (
	"time"

	"garage-booking/internal/data/entity"
	"garage-booking/internal/pricing"
)

type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Mobile    string    `json:"mobile"`
	CreatedAt time.Time `json:"created_at"`
}

type VehicleResponse struct {
	ID          string  `json:"id"`
	CustomerID  string  `json:"customer_id"`
	BrandID     *string `json:"brand_id,omitempty"`
	ModelID     *string `json:"model_id,omitempty"`
	PlateNumber string  `json:"plate_number"`
}

type BookingAccessoryResponse struct {
	AccessoryID string  `json:"accessory_id"`
	Name        string  `json:"name,omitempty"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	LineTotal   float64 `json:"line_total"`
}

type BookingResponse struct {
	ID            string               `json:"id"`
	BookingNumber string               `json:"booking_number"`
	CustomerID    string               `json:"customer_id"`
	VehicleID     string               `json:"vehicle_id"`
	ServiceType   entity.ServiceType   `json:"service_type"`
	ServiceDate   string               `json:"service_date"`
	ServiceTime   string               `json:"service_time"`
	Subtotal      float64              `json:"subtotal"`
	VATRate       float64              `json:"vat_rate"`
	VATAmount     float64              `json:"vat_amount"`
	TotalAmount   float64              `json:"total_amount"`
	Status        entity.BookingStatus `json:"status"`
	CreatedAt     time.Time            `json:"created_at"`
}

type BookingDetailResponse struct {
	BookingResponse
	Customer      *CustomerResponse          `json:"customer,omitempty"`
	Vehicle       *VehicleResponse           `json:"vehicle,omitempty"`
	OilTypeID     *string                    `json:"oil_type_id,omitempty"`
	OilQuantity   *float64                   `json:"oil_quantity,omitempty"`
	OilFilterID   *string                    `json:"oil_filter_id,omitempty"`
	BatteryTypeID *string                    `json:"battery_type_id,omitempty"`
	LaborCost     float64                    `json:"labor_cost"`
	Discount      float64                    `json:"discount"`
	Memo          *string                    `json:"memo,omitempty"`
	Accessories   []BookingAccessoryResponse `json:"accessories,omitempty"`
}

// ---------- Quote ----------

type PackageSelectionResponse struct {
	Count4L    int     `json:"count_4l"`
	Count1L    int     `json:"count_1l"`
	BulkLiters float64 `json:"bulk_liters"`
}

type PackageSuggestionResponse struct {
	Selection       PackageSelectionResponse  `json:"selection"`
	BulkAlternative *PackageSelectionResponse `json:"bulk_alternative,omitempty"`
}

type QuoteResponse struct {
	ServiceType      entity.ServiceType         `json:"service_type"`
	Suggestion       *PackageSuggestionResponse `json:"suggestion,omitempty"`
	Selection        *PackageSelectionResponse  `json:"selection,omitempty"`
	OilQuantityTotal float64                    `json:"oil_quantity_total,omitempty"`
	QuantityStatus   string                     `json:"quantity_status,omitempty"`
	OilTotal         float64                    `json:"oil_total,omitempty"`
	AccessoriesTotal float64                    `json:"accessories_total"`
	Breakdown        pricing.Breakdown          `json:"breakdown"`
}

// Helper converters
func CustomerToResponse(customer *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        customer.ID.String(),
		Name:      customer.Name,
		Mobile:    customer.Mobile,
		CreatedAt: customer.CreatedAt,
	}
}

func VehicleToResponse(vehicle *entity.Vehicle) VehicleResponse {
	resp := VehicleResponse{
		ID:          vehicle.ID.String(),
		CustomerID:  vehicle.CustomerID.String(),
		PlateNumber: vehicle.PlateNumber,
	}

	if vehicle.BrandID != nil {
		brandID := vehicle.BrandID.String()
		resp.BrandID = &brandID
	}
	if vehicle.ModelID != nil {
		modelID := vehicle.ModelID.String()
		resp.ModelID = &modelID
	}

	return resp
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:            booking.ID.String(),
		BookingNumber: booking.BookingNumber,
		CustomerID:    booking.CustomerID.String(),
		VehicleID:     booking.VehicleID.String(),
		ServiceType:   booking.ServiceType,
		ServiceDate:   booking.ServiceDate.Format("2006-01-02"),
		ServiceTime:   booking.ServiceTime,
		Subtotal:      booking.Subtotal,
		VATRate:       booking.VATRate,
		VATAmount:     booking.VATAmount,
		TotalAmount:   booking.TotalAmount,
		Status:        booking.Status,
		CreatedAt:     booking.CreatedAt,
	}
}

func SelectionToResponse(sel pricing.Selection) PackageSelectionResponse {
	return PackageSelectionResponse{
		Count4L:    sel.Count4L,
		Count1L:    sel.Count1L,
		BulkLiters: sel.BulkLiters,
	}
}

func SuggestionToResponse(sug pricing.Suggestion) *PackageSuggestionResponse {
	resp := &PackageSuggestionResponse{
		Selection: SelectionToResponse(sug.Selection),
	}

	if sug.BulkAlternative != nil {
		alt := SelectionToResponse(*sug.BulkAlternative)
		resp.BulkAlternative = &alt
	}

	return resp
}
