package service

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// DosingMargin computes the percentage deviation of the dispensed quantity
// from its set point, rounded to two decimal places. Positive when the actual
// under-shoots the target, negative when it overshoots.
//
// A zero set point yields zero: dosing against an unset target has no
// meaningful deviation, and the frontend treats 0% as "on target".
func DosingMargin(setPoint, actual decimal.Decimal) decimal.Decimal {
	if setPoint.IsZero() {
		return decimal.Zero
	}
	return setPoint.Sub(actual).Div(setPoint).Mul(hundred).Round(2)
}

// FormatMargin renders a margin for display ("12.5%"). The persisted value
// stays numeric.
func FormatMargin(m decimal.Decimal) string {
	return m.String() + "%"
}
