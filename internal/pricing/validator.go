package pricing

import (
	"fmt"
	"regexp"
	"time"
)

// Booking form limits.
const (
	MinAge           = 18
	MaxAge           = 60
	MinPersons       = 4
	PhoneLength      = 10
	MinLicenseLength = 15
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// Draft is an in-progress, unpersisted booking form state. Dates are
// date-only; callers zero the time of day before handing the draft over.
type Draft struct {
	CustomerName   string
	Phone          string
	Age            int
	LicenseNumber  string
	Persons        int
	VehicleClass   string
	PricePerDay    int64
	PickupDate     time.Time
	ReturnDate     time.Time
	PickupLocation string
	DropLocation   string
}

// Result is the validator's verdict: either valid, or a field-keyed map of
// messages. Every applicable rule runs; failures are reported together.
type Result struct {
	IsValid bool              `json:"is_valid"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Validate checks a draft against the booking rules. Date rules compare
// date-only against the supplied now; both date failures report under the
// single "dates" key. It never panics on bad input.
func Validate(draft Draft, now time.Time) Result {
	errs := make(map[string]string)

	if draft.Age < MinAge {
		errs["age"] = fmt.Sprintf("Age must be %d or above", MinAge)
	} else if draft.Age > MaxAge {
		errs["age"] = fmt.Sprintf("Booking not allowed above age %d", MaxAge)
	}

	if !phonePattern.MatchString(draft.Phone) {
		errs["phone"] = fmt.Sprintf("Enter valid %d-digit mobile number", PhoneLength)
	}

	if len(draft.LicenseNumber) < MinLicenseLength {
		errs["licenseNumber"] = fmt.Sprintf("Invalid driving license number (minimum %d characters)", MinLicenseLength)
	}

	if draft.Persons < MinPersons {
		errs["persons"] = fmt.Sprintf("Minimum %d persons required", MinPersons)
	}

	if draft.VehicleClass == "" {
		errs["vehicle"] = "Please select a vehicle"
	}

	if msg := validateDates(draft.PickupDate, draft.ReturnDate, now); msg != "" {
		errs["dates"] = msg
	}

	if len(errs) > 0 {
		return Result{IsValid: false, Errors: errs}
	}
	return Result{IsValid: true}
}

func validateDates(pickup, ret, now time.Time) string {
	if pickup.IsZero() || ret.IsZero() {
		return "Both pickup and return dates are required"
	}
	today := truncateDay(now)
	if truncateDay(pickup).Before(today) {
		return "Pickup date cannot be in the past"
	}
	if !truncateDay(ret).After(truncateDay(pickup)) {
		return "Return date must be after pickup date"
	}
	return ""
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
