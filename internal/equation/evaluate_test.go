package equation

import (
	"math"
	"testing"
)

func TestEvaluateDefaultExample(t *testing.T) {
	got := Evaluate(DefaultWeights(), DefaultFactors())
	want := math.Pow(0.8, 0.2) * math.Pow(0.9, 0.6) * math.Pow(0.9, 0.2)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if math.Abs(got-0.8790) > 1e-4 {
		t.Fatalf("expected about 0.8790, got %.4f", got)
	}
}

func TestEvaluateZeroToTheZeroIsOne(t *testing.T) {
	if got := Evaluate(Weights{}, Factors{}); got != 1 {
		t.Fatalf("expected 1 for all-zero exponents, got %v", got)
	}
	got := Evaluate(Weights{Alpha: 0, Beta: 0.5, Gamma: 0.5}, Factors{K: 0, C: 1, T: 1})
	if got != 1 {
		t.Fatalf("expected zero factor with zero weight to contribute 1, got %v", got)
	}
	got = Evaluate(Weights{Alpha: 0.5, Beta: 0.5, Gamma: 0}, Factors{K: 0, C: 1, T: 1})
	if got != 0 {
		t.Fatalf("expected zero factor with positive weight to give 0, got %v", got)
	}
}

func TestEvaluateStaysInRange(t *testing.T) {
	grid := []float64{-1, 0, 0.001, 0.3, 0.5, 0.999, 1, 1.5, math.NaN(), math.Inf(1), math.Inf(-1)}
	for _, a := range grid {
		for _, k := range grid {
			for _, c := range grid {
				w := Weights{Alpha: a, Beta: 0.3, Gamma: 0.2}
				f := Factors{K: k, C: c, T: 0.7}
				p := Evaluate(w, f)
				if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 || p > 1 {
					t.Fatalf("Evaluate(%+v, %+v) = %v out of [0, 1]", w, f, p)
				}
			}
		}
	}
}

func TestEvaluateMonotoneInFactors(t *testing.T) {
	w := Weights{Alpha: 0.3, Beta: 0.5, Gamma: 0.2}
	base := Factors{K: 0.4, C: 0.6, T: 0.8}
	for _, factor := range AllFactors {
		prev := -1.0
		for i := 0; i <= 100; i++ {
			x := float64(i) / 100
			p := Evaluate(w, base.With(factor, x))
			if p < prev {
				t.Fatalf("Evaluate decreased in %s at x=%.2f: %v < %v", factor, x, p, prev)
			}
			prev = p
		}
	}
}

func TestEvaluateIgnoresFactorWithZeroWeight(t *testing.T) {
	w := Weights{Alpha: 0, Beta: 0.5, Gamma: 0.5}
	low := Evaluate(w, Factors{K: 0.1, C: 0.7, T: 0.7})
	high := Evaluate(w, Factors{K: 0.9, C: 0.7, T: 0.7})
	if math.Abs(low-high) > 1e-12 {
		t.Fatalf("expected K to have no effect, got %v and %v", low, high)
	}
}
