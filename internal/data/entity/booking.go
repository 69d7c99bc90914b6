package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// ValidStatus reports whether s is a known booking status.
func ValidStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether a booking may move from s to next.
// Completed and cancelled are terminal.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingStatusPending:
		return next == BookingStatusConfirmed || next == BookingStatusCancelled
	case BookingStatusConfirmed:
		return next == BookingStatusCompleted || next == BookingStatusCancelled
	}
	return false
}

// Booking is a persisted rental booking. The price columns are copied from
// the engine's breakdown at creation time and hold the invariant
// total == subtotal + tax, subtotal == price_per_day * days, days >= 1.
type Booking struct {
	Base
	OrderID        string        `db:"order_id"`
	UserID         uuid.UUID     `db:"user_id"`
	VehicleID      *uuid.UUID    `db:"vehicle_id"` // nil when the class was auto-resolved
	CustomerName   string        `db:"customer_name"`
	Phone          string        `db:"phone"`
	Age            int           `db:"age"`
	LicenseNumber  string        `db:"license_number"`
	Persons        int           `db:"persons"`
	VehicleClass   string        `db:"vehicle_class"`
	PricePerDay    int64         `db:"price_per_day"`
	Days           int           `db:"days"`
	Subtotal       int64         `db:"subtotal"`
	Tax            int64         `db:"tax"`
	Total          int64         `db:"total"`
	PickupDate     time.Time     `db:"pickup_date"`
	ReturnDate     time.Time     `db:"return_date"`
	PickupLocation string        `db:"pickup_location"`
	DropLocation   string        `db:"drop_location"`
	Status         BookingStatus `db:"status"`
}
