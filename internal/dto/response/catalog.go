package response

import (
	"time"

	"garage-booking/internal/data/entity"
)

type BrandResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type VehicleModelResponse struct {
	ID        string    `json:"id"`
	BrandID   string    `json:"brand_id"`
	BrandName string    `json:"brand_name,omitempty"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Helper converters
func BrandToResponse(brand *entity.Brand) BrandResponse {
	return BrandResponse{
		ID:        brand.ID.String(),
		Name:      brand.Name,
		CreatedAt: brand.CreatedAt,
	}
}

func VehicleModelToResponse(model *entity.VehicleModel, brand *entity.Brand) VehicleModelResponse {
	resp := VehicleModelResponse{
		ID:        model.ID.String(),
		BrandID:   model.BrandID.String(),
		Name:      model.Name,
		CreatedAt: model.CreatedAt,
	}

	if brand != nil {
		resp.BrandName = brand.Name
	}

	return resp
}
