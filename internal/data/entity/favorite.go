package entity

import (
	"github.com/google/uuid"
)

// Favorite marks a vehicle saved by a user. One row per (user, vehicle).
type Favorite struct {
	BaseSimple
	UserID    uuid.UUID `db:"user_id"`
	VehicleID uuid.UUID `db:"vehicle_id"`
}
