package equation

import (
	"fmt"
	"math"
)

// FormatEquation renders "p = K^a × C^b × T^g = p" with two decimals for
// the inputs and four for the result.
func FormatEquation(w Weights, f Factors) string {
	return fmt.Sprintf("p = %.2f^%.2f × %.2f^%.2f × %.2f^%.2f = %.4f",
		f.K, w.Alpha, f.C, w.Beta, f.T, w.Gamma, Evaluate(w, f))
}

// Percent rounds p to a whole percentage.
func Percent(p float64) int {
	return int(math.Round(clamp01(p) * 100))
}

// Hue maps p to a hue between 0 (red) and 120 (green).
func Hue(p float64) float64 {
	return clamp01(p) * 120
}
