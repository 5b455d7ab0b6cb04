package request

type BrandRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type BrandUpdateRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
}

type VehicleModelRequest struct {
	BrandID string `json:"brand_id" validate:"required,uuid4"`
	Name    string `json:"name" validate:"required,min=1,max=100"`
}

type VehicleModelUpdateRequest struct {
	BrandID *string `json:"brand_id,omitempty" validate:"omitempty,uuid4"`
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
}
