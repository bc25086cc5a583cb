package helper

import "math"

// RoundTo rounds v to the given number of decimal places. Halves round away
// from zero on the float64 product v*10^places, so 1.005 lands on 1 and 2.675
// on 2.68.
func RoundTo(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
