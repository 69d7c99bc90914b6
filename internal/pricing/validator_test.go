package pricing

import (
	"testing"
	"time"
)

var testNow = time.Date(2026, 2, 1, 10, 30, 0, 0, time.UTC)

func validDraft() Draft {
	return Draft{
		CustomerName:   "John Doe",
		Phone:          "9876543210",
		Age:            25,
		LicenseNumber:  "DL12345678901234",
		Persons:        4,
		VehicleClass:   "Sedan",
		PricePerDay:    2000,
		PickupDate:     date(2026, 2, 5),
		ReturnDate:     date(2026, 2, 7),
		PickupLocation: "Surat",
		DropLocation:   "Ahmedabad",
	}
}

func TestValidateAcceptsValidDraft(t *testing.T) {
	res := Validate(validDraft(), testNow)
	if !res.IsValid {
		t.Fatalf("valid draft rejected: %v", res.Errors)
	}
	if len(res.Errors) != 0 {
		t.Fatalf("valid draft carries errors: %v", res.Errors)
	}
}

func TestValidateAge(t *testing.T) {
	d := validDraft()
	d.Age = 17
	res := Validate(d, testNow)
	if res.IsValid {
		t.Fatal("age 17 should fail")
	}
	if res.Errors["age"] != "Age must be 18 or above" {
		t.Fatalf("age error = %q", res.Errors["age"])
	}

	d.Age = 18
	if res := Validate(d, testNow); !res.IsValid {
		t.Fatalf("age 18 should pass, got %v", res.Errors)
	}

	d.Age = 61
	res = Validate(d, testNow)
	if res.Errors["age"] != "Booking not allowed above age 60" {
		t.Fatalf("age error = %q", res.Errors["age"])
	}
	d.Age = 60
	if res := Validate(d, testNow); !res.IsValid {
		t.Fatalf("age 60 should pass, got %v", res.Errors)
	}
}

func TestValidatePhone(t *testing.T) {
	d := validDraft()
	for _, phone := range []string{"12345", "", "98765432101", "98765abc10"} {
		d.Phone = phone
		res := Validate(d, testNow)
		if res.IsValid {
			t.Errorf("phone %q should fail", phone)
		}
		if res.Errors["phone"] != "Enter valid 10-digit mobile number" {
			t.Errorf("phone %q error = %q", phone, res.Errors["phone"])
		}
	}
}

func TestValidateLicense(t *testing.T) {
	d := validDraft()
	d.LicenseNumber = "SHORT123"
	res := Validate(d, testNow)
	if res.IsValid || res.Errors["licenseNumber"] == "" {
		t.Fatalf("short license should fail, got %v", res.Errors)
	}
}

func TestValidatePersonsAndVehicle(t *testing.T) {
	d := validDraft()
	d.Persons = 3
	res := Validate(d, testNow)
	if res.Errors["persons"] != "Minimum 4 persons required" {
		t.Fatalf("persons error = %q", res.Errors["persons"])
	}

	d = validDraft()
	d.VehicleClass = ""
	res = Validate(d, testNow)
	if res.Errors["vehicle"] != "Please select a vehicle" {
		t.Fatalf("vehicle error = %q", res.Errors["vehicle"])
	}
}

func TestValidateDates(t *testing.T) {
	d := validDraft()
	d.PickupDate = time.Time{}
	res := Validate(d, testNow)
	if res.Errors["dates"] != "Both pickup and return dates are required" {
		t.Fatalf("dates error = %q", res.Errors["dates"])
	}

	d = validDraft()
	d.PickupDate = date(2026, 1, 20)
	res = Validate(d, testNow)
	if res.Errors["dates"] != "Pickup date cannot be in the past" {
		t.Fatalf("dates error = %q", res.Errors["dates"])
	}

	// Pickup today is allowed: the comparison is date-only.
	d = validDraft()
	d.PickupDate = date(2026, 2, 1)
	d.ReturnDate = date(2026, 2, 2)
	if res := Validate(d, testNow); !res.IsValid {
		t.Fatalf("same-day pickup should pass, got %v", res.Errors)
	}

	d = validDraft()
	d.ReturnDate = d.PickupDate
	res = Validate(d, testNow)
	if res.Errors["dates"] != "Return date must be after pickup date" {
		t.Fatalf("dates error = %q", res.Errors["dates"])
	}
}

func TestValidateReportsAllFailuresTogether(t *testing.T) {
	d := Draft{Phone: "12", Age: 15, Persons: 1}
	res := Validate(d, testNow)
	if res.IsValid {
		t.Fatal("empty draft should fail")
	}
	for _, key := range []string{"age", "phone", "licenseNumber", "persons", "vehicle", "dates"} {
		if res.Errors[key] == "" {
			t.Errorf("missing error for %q: %v", key, res.Errors)
		}
	}
}

func TestEndToEndTwelvePersonDraft(t *testing.T) {
	rate := StandardRates.Resolve(12)
	if rate.Class != "Mini Bus" {
		t.Fatalf("party of 12 resolved to %q, want Mini Bus", rate.Class)
	}

	d := validDraft()
	d.Persons = 12
	d.VehicleClass = rate.Class
	d.PricePerDay = rate.PricePerDay
	d.PickupDate = date(2026, 3, 1)
	d.ReturnDate = date(2026, 3, 4)

	if res := Validate(d, testNow); !res.IsValid {
		t.Fatalf("draft should validate, got %v", res.Errors)
	}

	b := Quote(d.PricePerDay, d.PickupDate, d.ReturnDate)
	if b.Days != 3 {
		t.Fatalf("days = %d, want 3", b.Days)
	}
	if b.Total != b.Subtotal+b.Tax {
		t.Fatalf("total invariant broken: %+v", b)
	}
}
