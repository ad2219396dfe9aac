// Package pricing derives the display labels for a product's price,
// discount and final amount.
package pricing

import (
	"fmt"
	"math"
	"strings"
)

// Info is the set of labels a product tile renders. Empty strings mean
// "do not show".
type Info struct {
	BaseLabel     string
	FinalLabel    string
	DiscountLabel string
	HasDiscount   bool
}

// Compute derives labels from a stored price. amount and discountPercent
// are nil when the column is null; displayOverride replaces the
// formatted base price when set (e.g. "Desde S/ 25").
func Compute(amount *float64, displayOverride string, discountPercent *float64) Info {
	displayOverride = strings.TrimSpace(displayOverride)

	if amount == nil {
		if displayOverride != "" {
			return Info{BaseLabel: displayOverride, FinalLabel: displayOverride}
		}
		return Info{}
	}

	discount := 0.0
	if discountPercent != nil {
		discount = *discountPercent
	}
	hasDiscount := discount > 0

	final := *amount * (1 - math.Min(discount, 100)/100)

	base := displayOverride
	if base == "" {
		base = FormatPrice(*amount)
	}

	info := Info{
		BaseLabel:   base,
		FinalLabel:  FormatPrice(final),
		HasDiscount: hasDiscount,
	}
	if hasDiscount {
		info.DiscountLabel = formatDiscount(discount)
	}
	return info
}

// FormatPrice renders an amount in Peruvian soles, two decimals.
func FormatPrice(value float64) string {
	return fmt.Sprintf("S/ %.2f", value)
}

func formatDiscount(value float64) string {
	if value == math.Trunc(value) {
		return fmt.Sprintf("-%.0f%%", value)
	}
	return fmt.Sprintf("-%.1f%%", value)
}
