package equation

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestManualEditClearsActivePreset(t *testing.T) {
	s, err := ApplyPreset(PresetCustomerService)
	if err != nil {
		t.Fatalf("ApplyPreset: %v", err)
	}
	if s.ActivePreset != PresetCustomerService {
		t.Fatalf("expected active preset, got %q", s.ActivePreset)
	}
	if got := s.WithSweep(FactorK); got.ActivePreset != PresetCustomerService {
		t.Fatalf("expected sweep change to keep active preset")
	}
	if got := s.WithFactor(FactorK, 0.4); got.ActivePreset != "" {
		t.Fatalf("expected factor edit to clear active preset")
	}
	if got := s.WithWeight(AxisGamma, 0.4); got.ActivePreset != "" {
		t.Fatalf("expected weight edit to clear active preset")
	}
}

func TestWithFactorClamps(t *testing.T) {
	s := DefaultState().WithFactor(FactorC, 1.2).WithFactor(FactorT, math.NaN())
	if s.Factors.C != 1 || s.Factors.T != 0 {
		t.Fatalf("expected clamped factors, got %+v", s.Factors)
	}
}

func TestParseFactor(t *testing.T) {
	for in, want := range map[string]Factor{"K": FactorK, "c": FactorC, " tools ": FactorT, "Knowledge": FactorK} {
		got, err := ParseFactor(in)
		if err != nil || got != want {
			t.Fatalf("ParseFactor(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseFactor("x"); !errors.Is(err, ErrUnknownFactor) {
		t.Fatalf("expected ErrUnknownFactor, got %v", err)
	}
}

func TestFactorNextWraps(t *testing.T) {
	if FactorK.Next() != FactorC || FactorC.Next() != FactorT || FactorT.Next() != FactorK {
		t.Fatalf("unexpected cycle order")
	}
}

func TestFormatEquation(t *testing.T) {
	got := FormatEquation(DefaultWeights(), DefaultFactors())
	want := "p = 0.80^0.20 × 0.90^0.60 × 0.90^0.20 = 0.8790"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if !strings.HasPrefix(FormatEquation(Weights{}, Factors{}), "p = 0.00^0.00") {
		t.Fatalf("unexpected zero formatting")
	}
}

func TestPercentAndHue(t *testing.T) {
	if Percent(0.879) != 88 || Percent(math.NaN()) != 0 || Percent(2) != 100 {
		t.Fatalf("unexpected percent rounding")
	}
	if Hue(0.5) != 60 || Hue(-1) != 0 || Hue(3) != 120 {
		t.Fatalf("unexpected hue mapping")
	}
}
