package utils

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseDate parses a date-only value, the wire format for pickup and
// return dates. The zero time means "not provided".
func ParseDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}
	}
	return t
}

// FormatDate renders a date-only value, empty for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// GenerateOrderID creates a unique order ID with timestamp.
// Format: RENT-YYYYMMDD-HHMMSS-RANDOM
func GenerateOrderID() string {
	now := time.Now()

	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("RENT-%s-%s-%s", datePart, timePart, randomPart)
}

// GenerateTransactionID creates a reference for a simulated payment.
// Format: TXN-UNIXNANO-RANDOM
func GenerateTransactionID() string {
	return fmt.Sprintf("TXN-%d-%04d", time.Now().UnixNano(), rand.Intn(10000))
}
