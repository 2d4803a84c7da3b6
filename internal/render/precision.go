package render

import "math"

// round rounds value to precision decimal digits (spec §4.4.6).
func round(value float64, precision int) float64 {
	k := math.Pow(10, float64(precision))
	return math.Round(value*k) / k
}
