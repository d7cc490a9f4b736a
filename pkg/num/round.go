package num

import "math"

// Round2 rounds val to two decimal places.
func Round2(val float64) float64 {
	return math.Round(val*100) / 100
}

// RoundInt rounds val to the nearest integer.
func RoundInt(val float64) int {
	return int(math.Round(val))
}
