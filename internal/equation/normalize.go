package equation

import "math"

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Min(1, math.Max(0, v))
}

// SetWeight returns w with the weight on axis set to clamp(v, 0, 1) and the
// other two rescaled so the three sum to 1. The other two keep their
// relative proportion; when both are zero the remainder is split evenly.
func SetWeight(w Weights, axis Axis, v float64) Weights {
	v = clamp01(v)
	remaining := math.Max(0, 1-v)

	var first, second *float64
	out := w
	switch axis {
	case AxisAlpha:
		out.Alpha = v
		first, second = &out.Beta, &out.Gamma
	case AxisBeta:
		out.Beta = v
		first, second = &out.Alpha, &out.Gamma
	case AxisGamma:
		out.Gamma = v
		first, second = &out.Alpha, &out.Beta
	default:
		return w
	}

	otherSum := *first + *second
	if otherSum <= 0 {
		*first = remaining / 2
		*second = remaining / 2
		return out
	}
	*first = *first / otherSum * remaining
	*second = *second / otherSum * remaining
	return out
}
