package entity

import (
	"fmt"
	"math"
)

// MinorUnits converts a decimal currency amount to the payment provider's
// integer minor-unit representation (e.g. 50.00 -> 5000).
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromMinorUnits converts a minor-unit integer amount back to decimal
// currency units.
func FromMinorUnits(amount int64) float64 {
	return float64(amount) / 100
}

// FormatAmount renders a minor-unit amount as a display string like "$49.99".
func FormatAmount(amount int64) string {
	return fmt.Sprintf("$%.2f", FromMinorUnits(amount))
}
