package equation

import "math"

const (
	// SweepSteps is the number of intervals between x = 0 and x = 1.
	SweepSteps = 20
	// SweepPoints is the number of points returned by Sweep.
	SweepPoints = SweepSteps + 1
	// currentBand is the distance within which a point counts as current.
	currentBand = 0.03
)

// Sweep evaluates the model with sel varied over x = 0, 0.05, ..., 1 while
// the other two factors keep their values in f. A point is flagged as
// current when x is within 0.03 of the live value of sel; a value midway
// between two grid points flags both.
func Sweep(w Weights, f Factors, sel Factor) []Point {
	current := clamp01(f.Get(sel))
	points := make([]Point, 0, SweepPoints)
	for i := 0; i <= SweepSteps; i++ {
		x := float64(i) / SweepSteps
		points = append(points, Point{
			X:         x,
			P:         Evaluate(w, f.With(sel, x)),
			IsCurrent: math.Abs(x-current) < currentBand,
		})
	}
	return points
}
