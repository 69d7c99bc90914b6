package pricing

import (
	"strconv"
	"strings"
)

// ClassRate is one tier of the rate table: a vehicle class, its nightly
// rate in whole currency units, and the smallest party size it serves.
type ClassRate struct {
	Class       string
	PricePerDay int64
	MinPersons  int
}

// RateTable resolves a party size to a vehicle class. Tables are immutable
// process-wide configuration; entries must be ordered largest class first.
type RateTable struct {
	tiers []ClassRate
}

func NewRateTable(tiers ...ClassRate) RateTable {
	return RateTable{tiers: tiers}
}

// StandardRates is the canonical table. LegacyRates keeps the older booking
// form alive, where the Mini Bus and Maxi Cab prices were swapped. Both are
// exposed so either policy can be selected and tested on its own.
var (
	StandardRates = NewRateTable(
		ClassRate{Class: "Maxi Cab", PricePerDay: 4500, MinPersons: 13},
		ClassRate{Class: "Mini Bus", PricePerDay: 6000, MinPersons: 8},
		ClassRate{Class: "SUV", PricePerDay: 3000, MinPersons: 6},
		ClassRate{Class: "Sedan", PricePerDay: 2000, MinPersons: 4},
	)

	LegacyRates = NewRateTable(
		ClassRate{Class: "Maxi Cab", PricePerDay: 6000, MinPersons: 13},
		ClassRate{Class: "Mini Bus", PricePerDay: 4500, MinPersons: 8},
		ClassRate{Class: "SUV", PricePerDay: 3000, MinPersons: 6},
		ClassRate{Class: "Sedan", PricePerDay: 2000, MinPersons: 4},
	)
)

// Resolve maps a party size to the first tier whose minimum it meets,
// scanning from the largest class down. Ties at a boundary therefore favor
// the larger vehicle. Below every threshold it returns the zero ClassRate:
// an empty class and zero rate, which is a valid "no selection" state.
func (t RateTable) Resolve(partySize int) ClassRate {
	if partySize <= 0 {
		return ClassRate{}
	}
	for _, tier := range t.tiers {
		if partySize >= tier.MinPersons {
			return tier
		}
	}
	return ClassRate{}
}

// ResolveString parses raw form input before resolving. Non-numeric input
// yields no selection rather than an error.
func (t RateTable) ResolveString(raw string) ClassRate {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return ClassRate{}
	}
	return t.Resolve(n)
}

// RateFor looks up the nightly rate for an explicitly chosen class, the
// dropdown variant of the booking form.
func (t RateTable) RateFor(class string) (int64, bool) {
	for _, tier := range t.tiers {
		if strings.EqualFold(tier.Class, class) {
			return tier.PricePerDay, true
		}
	}
	return 0, false
}

// Fits reports whether the given class still serves the party size. The
// quote flow clears a selected class that no longer fits and re-resolves;
// it never silently downgrades.
func (t RateTable) Fits(class string, partySize int) bool {
	for _, tier := range t.tiers {
		if strings.EqualFold(tier.Class, class) {
			return partySize >= tier.MinPersons
		}
	}
	return false
}

// Classes returns the class names in table order, largest first.
func (t RateTable) Classes() []string {
	names := make([]string, len(t.tiers))
	for i, tier := range t.tiers {
		names[i] = tier.Class
	}
	return names
}
