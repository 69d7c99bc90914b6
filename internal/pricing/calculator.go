package pricing

import (
	"math"
	"time"
)

// TaxRate is applied to the rental subtotal. 10%, whole currency units.
const TaxRate = 0.10

// Breakdown is the derived price for a draft. It is never persisted on its
// own; bookings copy its fields at creation time.
type Breakdown struct {
	PricePerDay int64 `json:"price_per_day"`
	Days        int   `json:"days"`
	Subtotal    int64 `json:"subtotal"`
	Tax         int64 `json:"tax"`
	Total       int64 `json:"total"`
}

// Days returns the calendar-day difference between pickup and return,
// rounded up, with a floor of 1. Same-day rentals count as one day; the
// validator rejects genuinely inverted ranges before they reach here.
func Days(pickup, ret time.Time) int {
	diff := ret.Sub(pickup)
	days := int(math.Ceil(diff.Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// Quote computes the full breakdown for a nightly rate and date range.
// Pure: identical inputs always produce identical output. Tax rounds half
// away from zero on whole currency units.
func Quote(pricePerDay int64, pickup, ret time.Time) Breakdown {
	days := Days(pickup, ret)
	subtotal := pricePerDay * int64(days)
	tax := int64(math.Round(float64(subtotal) * TaxRate))
	return Breakdown{
		PricePerDay: pricePerDay,
		Days:        days,
		Subtotal:    subtotal,
		Tax:         tax,
		Total:       subtotal + tax,
	}
}
