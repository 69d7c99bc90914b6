package request

type VehicleRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Type        string `json:"type" validate:"required,max=50"`
	Model       string `json:"model" validate:"required,max=100"`
	PricePerDay int64  `json:"price_per_day" validate:"required,min=1"`
	Seats       int    `json:"seats" validate:"required,min=1,max=60"`
	Available   *bool  `json:"available,omitempty"`
	ImageURL    string `json:"image_url,omitempty" validate:"omitempty,max=255"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
}

type VehicleUpdateRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Type        *string `json:"type,omitempty" validate:"omitempty,max=50"`
	Model       *string `json:"model,omitempty" validate:"omitempty,max=100"`
	PricePerDay *int64  `json:"price_per_day,omitempty" validate:"omitempty,min=1"`
	Seats       *int    `json:"seats,omitempty" validate:"omitempty,min=1,max=60"`
	Available   *bool   `json:"available,omitempty"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}
