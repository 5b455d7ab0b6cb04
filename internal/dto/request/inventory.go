package request

type OilTypeRequest struct {
	Name          string  `json:"name" validate:"required,min=1,max=100"`
	Price4L       float64 `json:"price_4l" validate:"min=0"`
	Price1L       float64 `json:"price_1l" validate:"min=0"`
	PricePerLiter float64 `json:"price_per_liter" validate:"min=0"`
	Has4L         bool    `json:"package_4l_available"`
	Has1L         bool    `json:"package_1l_available"`
	HasBulk       bool    `json:"bulk_available"`
}

type OilTypeUpdateRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Price4L       *float64 `json:"price_4l,omitempty" validate:"omitempty,min=0"`
	Price1L       *float64 `json:"price_1l,omitempty" validate:"omitempty,min=0"`
	PricePerLiter *float64 `json:"price_per_liter,omitempty" validate:"omitempty,min=0"`
	Has4L         *bool    `json:"package_4l_available,omitempty"`
	Has1L         *bool    `json:"package_1l_available,omitempty"`
	HasBulk       *bool    `json:"bulk_available,omitempty"`
}

type OilFilterRequest struct {
	Name  string  `json:"name" validate:"required,min=1,max=100"`
	Price float64 `json:"price" validate:"min=0"`
}

type OilFilterUpdateRequest struct {
	Name  *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Price *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
}

type BatteryTypeRequest struct {
	Name     string  `json:"name" validate:"required,min=1,max=100"`
	Capacity *string `json:"capacity,omitempty" validate:"omitempty,max=50"`
	Price    float64 `json:"price" validate:"min=0"`
}

type BatteryTypeUpdateRequest struct {
	Name     *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Capacity *string  `json:"capacity,omitempty" validate:"omitempty,max=50"`
	Price    *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
}

type AccessoryRequest struct {
	Name              string  `json:"name" validate:"required,min=1,max=100"`
	Price             float64 `json:"price" validate:"min=0"`
	QuantityAvailable *int    `json:"quantity_available,omitempty" validate:"omitempty,min=0"`
}

type AccessoryUpdateRequest struct {
	Name              *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Price             *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
	QuantityAvailable *int     `json:"quantity_available,omitempty" validate:"omitempty,min=0"`
}
