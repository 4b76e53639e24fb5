package equation

import "math"

// pow is math.Pow with 0^0 pinned to 1 so the curve stays continuous when a
// weight and its factor are both zero.
func pow(x, e float64) float64 {
	if x == 0 && e == 0 {
		return 1
	}
	return math.Pow(x, e)
}

// Evaluate returns the success probability K^a * C^b * T^g. Every input is
// clamped to [0, 1] first, so the result is always a finite value in [0, 1].
func Evaluate(w Weights, f Factors) float64 {
	a, b, g := clamp01(w.Alpha), clamp01(w.Beta), clamp01(w.Gamma)
	k, c, t := clamp01(f.K), clamp01(f.C), clamp01(f.T)
	return pow(k, a) * pow(c, b) * pow(t, g)
}
