package entity

type Vehicle struct {
	Base
	Name        string `db:"name"`
	Type        string `db:"type"` // vehicle class: Sedan, SUV, Mini Bus, Maxi Cab
	Model       string `db:"model"`
	PricePerDay int64  `db:"price_per_day"`
	Seats       int    `db:"seats"`
	Available   bool   `db:"available"`
	ImageURL    string `db:"image_url"`
	Description string `db:"description"`
}
