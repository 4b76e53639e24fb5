package equation

import (
	"math"
	"testing"
)

func TestSweepGrid(t *testing.T) {
	for _, sel := range AllFactors {
		points := Sweep(DefaultWeights(), DefaultFactors(), sel)
		if len(points) != SweepPoints {
			t.Fatalf("expected %d points, got %d", SweepPoints, len(points))
		}
		for i, pt := range points {
			want := float64(i) * 0.05
			if math.Abs(pt.X-want) > 1e-12 {
				t.Fatalf("%s point %d: expected x=%.2f, got %v", sel, i, want, pt.X)
			}
			if i > 0 && pt.X <= points[i-1].X {
				t.Fatalf("%s: x not ascending at %d", sel, i)
			}
		}
		if points[0].X != 0 || points[len(points)-1].X != 1 {
			t.Fatalf("%s: expected endpoints 0 and 1, got %v and %v", sel, points[0].X, points[len(points)-1].X)
		}
	}
}

func TestSweepHoldsOtherFactors(t *testing.T) {
	w := DefaultWeights()
	f := Factors{K: 0.3, C: 0.7, T: 0.55}
	points := Sweep(w, f, FactorC)
	for _, pt := range points {
		want := Evaluate(w, Factors{K: 0.3, C: pt.X, T: 0.55})
		if pt.P != want {
			t.Fatalf("x=%.2f: expected %v, got %v", pt.X, want, pt.P)
		}
	}
}

func TestSweepMarksCurrentPoint(t *testing.T) {
	points := Sweep(DefaultWeights(), Factors{K: 0.8, C: 0.9, T: 0.9}, FactorK)
	var current []float64
	for _, pt := range points {
		if pt.IsCurrent {
			current = append(current, pt.X)
		}
	}
	if len(current) != 1 || math.Abs(current[0]-0.8) > 1e-12 {
		t.Fatalf("expected only x=0.80 current, got %v", current)
	}
}

func TestSweepCurrentBandCanMatchTwoPoints(t *testing.T) {
	points := Sweep(DefaultWeights(), Factors{K: 0.825, C: 0.9, T: 0.9}, FactorK)
	var current []float64
	for _, pt := range points {
		if pt.IsCurrent {
			current = append(current, pt.X)
		}
	}
	if len(current) != 2 || math.Abs(current[0]-0.8) > 1e-12 || math.Abs(current[1]-0.85) > 1e-12 {
		t.Fatalf("expected x=0.80 and x=0.85 current, got %v", current)
	}
}

func TestSweepCurrentUsesClampedValue(t *testing.T) {
	points := Sweep(DefaultWeights(), Factors{K: 0.8, C: 1.7, T: 0.9}, FactorC)
	if !points[len(points)-1].IsCurrent {
		t.Fatalf("expected x=1 to be current for C above range")
	}
	points = Sweep(DefaultWeights(), Factors{K: 0.8, C: 0.9, T: math.NaN()}, FactorT)
	if !points[0].IsCurrent {
		t.Fatalf("expected x=0 to be current for NaN factor")
	}
}

func TestSweepEndpointIsStateProbability(t *testing.T) {
	s := DefaultState()
	s.Factors.C = 1
	curve := s.Curve()
	if got := curve[len(curve)-1].P; got != s.Probability() {
		t.Fatalf("expected last point %v to match probability %v", got, s.Probability())
	}
}
