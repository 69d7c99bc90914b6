package response

import (
	"time"

	"vehicle-rental/internal/data/entity"
	"vehicle-rental/internal/pricing"
)

// QuoteResponse previews a booking draft before anything is persisted.
// Errors is field-keyed so the form can highlight each offending input.
type QuoteResponse struct {
	IsValid      bool               `json:"is_valid"`
	Errors       map[string]string  `json:"errors,omitempty"`
	VehicleClass string             `json:"vehicle_class,omitempty"`
	Breakdown    *pricing.Breakdown `json:"breakdown,omitempty"`
}

type BookingResponse struct {
	ID             string               `json:"id"`
	OrderID        string               `json:"order_id"`
	UserID         string               `json:"user_id"`
	VehicleID      *string              `json:"vehicle_id,omitempty"`
	CustomerName   string               `json:"customer_name"`
	Phone          string               `json:"phone"`
	Age            int                  `json:"age"`
	LicenseNumber  string               `json:"license_number"`
	Persons        int                  `json:"persons"`
	VehicleClass   string               `json:"vehicle_class"`
	PricePerDay    int64                `json:"price_per_day"`
	Days           int                  `json:"days"`
	Subtotal       int64                `json:"subtotal"`
	Tax            int64                `json:"tax"`
	Total          int64                `json:"total"`
	PickupDate     string               `json:"pickup_date"`
	ReturnDate     string               `json:"return_date"`
	PickupLocation string               `json:"pickup_location"`
	DropLocation   string               `json:"drop_location"`
	Status         entity.BookingStatus `json:"status"`
	Payment        *PaymentResponse     `json:"payment,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
}

type PaymentResponse struct {
	ID            string               `json:"id"`
	BookingID     string               `json:"booking_id"`
	Method        entity.PaymentMethod `json:"method"`
	Amount        int64                `json:"amount"`
	Status        entity.PaymentStatus `json:"status"`
	TransactionID *string              `json:"transaction_id,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
}

// Helper converters
func BookingToResponse(booking *entity.Booking, payment *entity.Payment) BookingResponse {
	resp := BookingResponse{
		ID:             booking.ID.String(),
		OrderID:        booking.OrderID,
		UserID:         booking.UserID.String(),
		CustomerName:   booking.CustomerName,
		Phone:          booking.Phone,
		Age:            booking.Age,
		LicenseNumber:  booking.LicenseNumber,
		Persons:        booking.Persons,
		VehicleClass:   booking.VehicleClass,
		PricePerDay:    booking.PricePerDay,
		Days:           booking.Days,
		Subtotal:       booking.Subtotal,
		Tax:            booking.Tax,
		Total:          booking.Total,
		PickupDate:     booking.PickupDate.Format("2006-01-02"),
		ReturnDate:     booking.ReturnDate.Format("2006-01-02"),
		PickupLocation: booking.PickupLocation,
		DropLocation:   booking.DropLocation,
		Status:         booking.Status,
		CreatedAt:      booking.CreatedAt,
	}

	if booking.VehicleID != nil {
		id := booking.VehicleID.String()
		resp.VehicleID = &id
	}
	if payment != nil {
		p := PaymentToResponse(payment)
		resp.Payment = &p
	}

	return resp
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            payment.ID.String(),
		BookingID:     payment.BookingID.String(),
		Method:        payment.Method,
		Amount:        payment.Amount,
		Status:        payment.Status,
		TransactionID: payment.TransactionID,
		CreatedAt:     payment.CreatedAt,
	}
}
