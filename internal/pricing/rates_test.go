package pricing

import "testing"

func TestResolveThresholds(t *testing.T) {
	cases := []struct {
		partySize int
		class     string
		price     int64
	}{
		{0, "", 0},
		{1, "", 0},
		{3, "", 0},
		{4, "Sedan", 2000},
		{5, "Sedan", 2000},
		{6, "SUV", 3000},
		{7, "SUV", 3000},
		{8, "Mini Bus", 6000},
		{12, "Mini Bus", 6000},
		{13, "Maxi Cab", 4500},
		{25, "Maxi Cab", 4500},
	}

	for _, c := range cases {
		got := StandardRates.Resolve(c.partySize)
		if got.Class != c.class || got.PricePerDay != c.price {
			t.Errorf("Resolve(%d) = %q/%d, want %q/%d",
				c.partySize, got.Class, got.PricePerDay, c.class, c.price)
		}
	}
}

func TestResolveBoundaryFavorsLargerVehicle(t *testing.T) {
	// Exactly at a tier minimum the larger class must win.
	got := StandardRates.Resolve(8)
	if got.Class != "Mini Bus" {
		t.Fatalf("Resolve(8) = %q, want Mini Bus", got.Class)
	}
}

func TestLegacyRatesSwapBusAndCabPrices(t *testing.T) {
	bus, ok := LegacyRates.RateFor("Mini Bus")
	if !ok || bus != 4500 {
		t.Fatalf("legacy Mini Bus rate = %d, want 4500", bus)
	}
	cab, ok := LegacyRates.RateFor("Maxi Cab")
	if !ok || cab != 6000 {
		t.Fatalf("legacy Maxi Cab rate = %d, want 6000", cab)
	}
}

func TestResolveString(t *testing.T) {
	if got := StandardRates.ResolveString(" 12 "); got.Class != "Mini Bus" {
		t.Errorf("ResolveString(\" 12 \") = %q, want Mini Bus", got.Class)
	}
	if got := StandardRates.ResolveString("abc"); got.Class != "" || got.PricePerDay != 0 {
		t.Errorf("ResolveString(\"abc\") should yield no selection, got %q/%d", got.Class, got.PricePerDay)
	}
	if got := StandardRates.ResolveString(""); got.Class != "" {
		t.Errorf("ResolveString(\"\") should yield no selection, got %q", got.Class)
	}
}

func TestRateFor(t *testing.T) {
	price, ok := StandardRates.RateFor("sedan")
	if !ok || price != 2000 {
		t.Fatalf("RateFor(sedan) = %d/%v, want 2000/true", price, ok)
	}
	if _, ok := StandardRates.RateFor("Rickshaw"); ok {
		t.Fatal("RateFor(Rickshaw) should miss")
	}
}

func TestFits(t *testing.T) {
	if !StandardRates.Fits("Sedan", 5) {
		t.Error("Sedan should fit a party of 5")
	}
	if StandardRates.Fits("Mini Bus", 4) {
		t.Error("Mini Bus should not fit a party of 4")
	}
	if StandardRates.Fits("Rickshaw", 4) {
		t.Error("unknown class never fits")
	}
}
