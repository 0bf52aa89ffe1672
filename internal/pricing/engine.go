package pricing

import (
	"math"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// PercentFromFloat converts a raw percentage into a decimal, treating
// missing, NaN and infinite inputs as zero.
func PercentFromFloat(value *float64) decimal.Decimal {
	if value == nil || math.IsNaN(*value) || math.IsInf(*value, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(*value)
}

// DiscountedPrice applies a percentage discount to the original price,
// rounding to cents and flooring negative results to zero.
func DiscountedPrice(original, discountPct decimal.Decimal) decimal.Decimal {
	if discountPct.IsNegative() {
		discountPct = decimal.Zero
	}
	result := original.Mul(hundred.Sub(discountPct)).Div(hundred).Round(2)
	if result.IsNegative() {
		return decimal.Zero
	}
	return result
}

// WasherCut computes the commission owed to the washer from the original
// (pre-discount) price.
func WasherCut(original, salaryPct decimal.Decimal) decimal.Decimal {
	if salaryPct.IsNegative() {
		salaryPct = decimal.Zero
	}
	result := original.Mul(salaryPct).Div(hundred).Round(2)
	if result.IsNegative() {
		return decimal.Zero
	}
	return result
}

// usableOverride reports whether an explicit price override should win over
// the matrix: it must be present, finite and non-negative.
func usableOverride(override *float64) bool {
	if override == nil {
		return false
	}
	if math.IsNaN(*override) || math.IsInf(*override, 0) {
		return false
	}
	return *override >= 0
}
