package utils

import (
	"strings"
	"testing"
	"time"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		value    string
		fallback int
		want     int
	}{
		{"5", 1, 5},
		{"", 1, 1},
		{"abc", 10, 10},
		{"0", 7, 7},
		{"-3", 7, 7},
	}
	for _, tt := range tests {
		if got := ParseInt(tt.value, tt.fallback); got != tt.want {
			t.Errorf("ParseInt(%q, %d) = %d, want %d", tt.value, tt.fallback, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	got := ParseDate("2026-02-05")
	want := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate = %v, want %v", got, want)
	}

	if !ParseDate("").IsZero() {
		t.Error("empty input should parse to zero time")
	}
	if !ParseDate("05/02/2026").IsZero() {
		t.Error("wrong format should parse to zero time")
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(time.Date(2026, 2, 5, 13, 30, 0, 0, time.UTC)); got != "2026-02-05" {
		t.Errorf("FormatDate = %q, want 2026-02-05", got)
	}
	if got := FormatDate(time.Time{}); got != "" {
		t.Errorf("FormatDate(zero) = %q, want empty", got)
	}
}

func TestGenerateOrderID(t *testing.T) {
	id := GenerateOrderID()
	if !strings.HasPrefix(id, "RENT-") {
		t.Errorf("order ID %q missing RENT- prefix", id)
	}
	if parts := strings.Split(id, "-"); len(parts) != 4 {
		t.Errorf("order ID %q should have 4 segments", id)
	}
}

func TestGenerateTransactionID(t *testing.T) {
	id := GenerateTransactionID()
	if !strings.HasPrefix(id, "TXN-") {
		t.Errorf("transaction ID %q missing TXN- prefix", id)
	}
}
