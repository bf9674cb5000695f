package handler

import "github.com/shopspring/decimal"

// toDecimal converts a float64 to a decimal.Decimal
func toDecimal(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// derefDecimal converts an optional float64 to a decimal.Decimal, treating
// absence as zero
func derefDecimal(f *float64) decimal.Decimal {
	if f == nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(*f)
}
