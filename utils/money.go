package utils

import (
	"fmt"
	"math"
)

// FormatMoney renders an amount the way the storefront displays it.
func FormatMoney(n float64) string {
	return fmt.Sprintf("$%.2f", n)
}

// DiscountPercent returns the rounded percentage off when the original
// price exceeds the current one, and 0 otherwise.
func DiscountPercent(original, current float64) int {
	if original <= 0 || current >= original {
		return 0
	}
	return int(math.Round((original - current) / original * 100))
}
