package response

import (
	"time"

	"vehicle-rental/internal/data/entity"
)

type VehicleResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Model       string    `json:"model"`
	PricePerDay int64     `json:"price_per_day"`
	Seats       int       `json:"seats"`
	Available   bool      `json:"available"`
	ImageURL    string    `json:"image_url,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

type VehicleDetailResponse struct {
	VehicleResponse
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Helper converters
func VehicleToResponse(vehicle *entity.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:          vehicle.ID.String(),
		Name:        vehicle.Name,
		Type:        vehicle.Type,
		Model:       vehicle.Model,
		PricePerDay: vehicle.PricePerDay,
		Seats:       vehicle.Seats,
		Available:   vehicle.Available,
		ImageURL:    vehicle.ImageURL,
		Description: vehicle.Description,
		CreatedAt:   vehicle.CreatedAt,
	}
}

func VehicleToDetailResponse(vehicle *entity.Vehicle) VehicleDetailResponse {
	return VehicleDetailResponse{
		VehicleResponse: VehicleToResponse(vehicle),
		UpdatedAt:       &vehicle.UpdatedAt,
	}
}
