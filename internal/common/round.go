package common

import "math"

// RoundingDecimalDigits is the precision applied to monetary output fields.
const RoundingDecimalDigits = 4

// Round4 rounds half away from zero to 4 decimal digits.
// Applied only when emitting output fields; running totals are
// never rounded so precision cannot compound away across trades.
func Round4(v float64) float64 {
	const scale = 1e4
	return math.Round(v*scale) / scale
}
