package overview

import "github.com/shopspring/decimal"

// Ratio returns actual / max(expected, actual), the fill level of a progress
// indicator whose maximum is the larger of both values.
//
// The result is always in [0, 1]. It is zero when both values are zero and
// negative values are treated as zero.
func Ratio(expected, actual decimal.Decimal) decimal.Decimal {
	expected = decimal.Max(expected, decimal.Zero)
	actual = decimal.Max(actual, decimal.Zero)

	maximum := decimal.Max(expected, actual)
	if !maximum.IsPositive() {
		return decimal.Zero
	}

	return actual.Div(maximum)
}

// Progress holds the values for the two progress indicators of an overview
// section. Both share max(expected, actual) as maximum.
type Progress struct {
	Expected decimal.Decimal `json:"expected" example:"1"`  // expected / max(expected, actual)
	Actual   decimal.Decimal `json:"actual" example:"0.75"` // actual / max(expected, actual)
}

// NewProgress computes the progress values for an expected and an actual amount.
func NewProgress(expected, actual decimal.Decimal) Progress {
	return Progress{
		Expected: Ratio(actual, expected),
		Actual:   Ratio(expected, actual),
	}
}
