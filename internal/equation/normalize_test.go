package equation

import (
	"math"
	"testing"
)

func TestSetWeightKeepsSumAtOne(t *testing.T) {
	starts := []Weights{
		DefaultWeights(),
		{Alpha: 1.0 / 3, Beta: 1.0 / 3, Gamma: 1.0 / 3},
		{Alpha: 1, Beta: 0, Gamma: 0},
		{Alpha: 0, Beta: 0, Gamma: 0},
		{Alpha: 0.1, Beta: 0.8, Gamma: 0.1},
	}
	values := []float64{-1, 0, 0.01, 0.25, 0.5, 0.75, 0.99, 1, 2, math.NaN(), math.Inf(1), math.Inf(-1)}
	for _, start := range starts {
		for _, axis := range []Axis{AxisAlpha, AxisBeta, AxisGamma} {
			for _, v := range values {
				got := SetWeight(start, axis, v)
				if math.Abs(got.Sum()-1) > 1e-9 {
					t.Fatalf("SetWeight(%+v, %s, %v) = %+v, sum %.12f", start, axis, v, got, got.Sum())
				}
				for _, c := range []float64{got.Alpha, got.Beta, got.Gamma} {
					if c < 0 || c > 1 {
						t.Fatalf("SetWeight(%+v, %s, %v) produced out of range component %v", start, axis, v, c)
					}
				}
			}
		}
	}
}

func TestSetWeightRepeatedUpdatesStayNormalized(t *testing.T) {
	w := DefaultWeights()
	axes := []Axis{AxisAlpha, AxisBeta, AxisGamma}
	for i := 0; i < 500; i++ {
		v := math.Mod(float64(i)*0.137, 1.0)
		w = SetWeight(w, axes[i%3], v)
		if math.Abs(w.Sum()-1) > 1e-9 {
			t.Fatalf("step %d: sum drifted to %.12f (%+v)", i, w.Sum(), w)
		}
	}
}

func TestSetWeightFullForcesOthersToZero(t *testing.T) {
	got := SetWeight(Weights{Alpha: 0.2, Beta: 0.5, Gamma: 0.3}, AxisAlpha, 1)
	if got.Alpha != 1 || got.Beta != 0 || got.Gamma != 0 {
		t.Fatalf("expected (1, 0, 0), got %+v", got)
	}
	got = SetWeight(Weights{}, AxisBeta, 1)
	if got.Beta != 1 || got.Alpha != 0 || got.Gamma != 0 {
		t.Fatalf("expected (0, 1, 0), got %+v", got)
	}
}

func TestSetWeightSplitsEvenlyWhenOthersAreZero(t *testing.T) {
	got := SetWeight(Weights{Alpha: 1, Beta: 0, Gamma: 0}, AxisAlpha, 0.5)
	if got.Alpha != 0.5 || got.Beta != 0.25 || got.Gamma != 0.25 {
		t.Fatalf("expected (0.5, 0.25, 0.25), got %+v", got)
	}
}

func TestSetWeightPreservesProportions(t *testing.T) {
	got := SetWeight(Weights{Alpha: 0.2, Beta: 0.6, Gamma: 0.2}, AxisBeta, 0.2)
	if math.Abs(got.Alpha-0.4) > 1e-12 || math.Abs(got.Gamma-0.4) > 1e-12 {
		t.Fatalf("expected alpha=gamma=0.4, got %+v", got)
	}
	got = SetWeight(Weights{Alpha: 0.1, Beta: 0.3, Gamma: 0.6}, AxisAlpha, 0.55)
	if math.Abs(got.Gamma/got.Beta-2) > 1e-9 {
		t.Fatalf("expected gamma/beta ratio 2, got %+v", got)
	}
}

func TestSetWeightClampsInput(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{name: "nan", v: math.NaN(), want: 0},
		{name: "negative", v: -0.4, want: 0},
		{name: "above one", v: 3, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SetWeight(DefaultWeights(), AxisGamma, tt.v)
			if got.Gamma != tt.want {
				t.Fatalf("expected gamma %v, got %v", tt.want, got.Gamma)
			}
		})
	}
}

func TestSetWeightUnknownAxisIsNoop(t *testing.T) {
	w := DefaultWeights()
	if got := SetWeight(w, Axis(7), 0.9); got != w {
		t.Fatalf("expected %+v unchanged, got %+v", w, got)
	}
}
