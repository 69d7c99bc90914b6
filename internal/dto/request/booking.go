package request

// BookingDraftRequest carries the raw booking form. Dates travel as
// YYYY-MM-DD strings; the domain rules (age, phone, license, party size,
// date range) are enforced by the pricing engine, not struct tags, so the
// whole rule set reports together in one field-keyed map.
type BookingDraftRequest struct {
	CustomerName   string `json:"customer_name" validate:"required,max=100"`
	Phone          string `json:"phone"`
	Age            int    `json:"age"`
	LicenseNumber  string `json:"license_number"`
	Persons        int    `json:"persons"`
	VehicleClass   string `json:"vehicle_class,omitempty"` // empty: auto-resolve from persons
	VehicleID      string `json:"vehicle_id,omitempty" validate:"omitempty,uuid4"`
	PickupDate     string `json:"pickup_date"`
	ReturnDate     string `json:"return_date"`
	PickupLocation string `json:"pickup_location" validate:"required,max=100"`
	DropLocation   string `json:"drop_location" validate:"required,max=100"`
}

type PayBookingRequest struct {
	Method        string  `json:"method" validate:"required,oneof=upi card cash"`
	TransactionID *string `json:"transaction_id,omitempty"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}
