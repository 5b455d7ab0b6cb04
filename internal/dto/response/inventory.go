package response

import (
	"time"

	"garage-booking/internal/data/entity"
)

type OilTypeResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Price4L       float64   `json:"price_4l"`
	Price1L       float64   `json:"price_1l"`
	PricePerLiter float64   `json:"price_per_liter"`
	Has4L         bool      `json:"package_4l_available"`
	Has1L         bool      `json:"package_1l_available"`
	HasBulk       bool      `json:"bulk_available"`
	CreatedAt     time.Time `json:"created_at"`
}

type OilFilterResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

type BatteryTypeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Capacity  *string   `json:"capacity,omitempty"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

type AccessoryResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Price             float64   `json:"price"`
	QuantityAvailable *int      `json:"quantity_available,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// Helper converters
func OilTypeToResponse(oilType *entity.OilType) OilTypeResponse {
	return OilTypeResponse{
		ID:            oilType.ID.String(),
		Name:          oilType.Name,
		Price4L:       oilType.Price4L,
		Price1L:       oilType.Price1L,
		PricePerLiter: oilType.PricePerLiter,
		Has4L:         oilType.Has4L,
		Has1L:         oilType.Has1L,
		HasBulk:       oilType.HasBulk,
		CreatedAt:     oilType.CreatedAt,
	}
}

func OilFilterToResponse(filter *entity.OilFilter) OilFilterResponse {
	return OilFilterResponse{
		ID:        filter.ID.String(),
		Name:      filter.Name,
		Price:     filter.Price,
		CreatedAt: filter.CreatedAt,
	}
}

func BatteryTypeToResponse(battery *entity.BatteryType) BatteryTypeResponse {
	return BatteryTypeResponse{
		ID:        battery.ID.String(),
		Name:      battery.Name,
		Capacity:  battery.Capacity,
		Price:     battery.Price,
		CreatedAt: battery.CreatedAt,
	}
}

func AccessoryToResponse(accessory *entity.Accessory) AccessoryResponse {
	return AccessoryResponse{
		ID:                accessory.ID.String(),
		Name:              accessory.Name,
		Price:             accessory.Price,
		QuantityAvailable: accessory.QuantityAvailable,
		CreatedAt:         accessory.CreatedAt,
	}
}
