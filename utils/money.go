package utils

import "math"

// Round2 rounds a currency amount to cents for display. Internal totals stay
// unrounded; only the presented value is rounded.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}
