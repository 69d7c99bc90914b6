package pricing

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestQuoteTwoDayRental(t *testing.T) {
	got := Quote(2000, date(2026, 2, 5), date(2026, 2, 7))
	want := Breakdown{PricePerDay: 2000, Days: 2, Subtotal: 4000, Tax: 400, Total: 4400}
	if got != want {
		t.Fatalf("Quote = %+v, want %+v", got, want)
	}
}

func TestDaysSameDayFloorsToOne(t *testing.T) {
	d := date(2026, 3, 1)
	if got := Days(d, d); got != 1 {
		t.Fatalf("Days(same day) = %d, want 1", got)
	}
	// Inverted ranges are caught by the validator; the calculator still
	// floors instead of erroring.
	if got := Days(date(2026, 3, 2), d); got != 1 {
		t.Fatalf("Days(inverted) = %d, want 1", got)
	}
}

func TestQuoteIdempotent(t *testing.T) {
	a := Quote(3000, date(2026, 3, 1), date(2026, 3, 4))
	b := Quote(3000, date(2026, 3, 1), date(2026, 3, 4))
	if a != b {
		t.Fatalf("Quote not idempotent: %+v vs %+v", a, b)
	}
	if a.Days != 3 || a.Subtotal != 9000 || a.Tax != 900 || a.Total != 9900 {
		t.Fatalf("Quote = %+v, want days=3 subtotal=9000 tax=900 total=9900", a)
	}
}

func TestQuoteTaxRoundsHalfAwayFromZero(t *testing.T) {
	// Subtotal 25 -> tax 2.5 -> 3 under round-half-away-from-zero.
	got := Quote(25, date(2026, 2, 5), date(2026, 2, 6))
	if got.Tax != 3 {
		t.Fatalf("tax on subtotal 25 = %d, want 3", got.Tax)
	}
	if got.Total != got.Subtotal+got.Tax {
		t.Fatalf("total %d != subtotal %d + tax %d", got.Total, got.Subtotal, got.Tax)
	}
}

func TestQuoteInvariants(t *testing.T) {
	cases := []struct {
		rate   int64
		pickup time.Time
		ret    time.Time
	}{
		{2000, date(2026, 2, 5), date(2026, 2, 7)},
		{4500, date(2026, 2, 5), date(2026, 2, 6)},
		{6000, date(2026, 3, 1), date(2026, 3, 15)},
		{3000, date(2026, 3, 1), date(2026, 3, 1)},
	}

	for _, c := range cases {
		b := Quote(c.rate, c.pickup, c.ret)
		if b.Days < 1 {
			t.Errorf("days %d < 1 for %+v", b.Days, c)
		}
		if b.Subtotal != b.PricePerDay*int64(b.Days) {
			t.Errorf("subtotal %d != %d*%d", b.Subtotal, b.PricePerDay, b.Days)
		}
		if b.Total != b.Subtotal+b.Tax {
			t.Errorf("total %d != subtotal %d + tax %d", b.Total, b.Subtotal, b.Tax)
		}
	}
}
