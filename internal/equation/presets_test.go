package equation

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPresetsSumToOne(t *testing.T) {
	for _, p := range Presets() {
		if math.Abs(p.Weights.Sum()-1) > 1e-9 {
			t.Fatalf("preset %s weights sum to %v", p.Name, p.Weights.Sum())
		}
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		name string
		want State
	}{
		{
			name: PresetDataAnalysis,
			want: State{Weights: Weights{0.2, 0.2, 0.6}, Factors: Factors{0.7, 0.6, 0.9}, Sweep: FactorT, ActivePreset: PresetDataAnalysis},
		},
		{
			name: PresetCustomerService,
			want: State{Weights: Weights{0.2, 0.6, 0.2}, Factors: Factors{0.6, 0.9, 0.6}, Sweep: FactorC, ActivePreset: PresetCustomerService},
		},
		{
			name: PresetResearch,
			want: State{Weights: Weights{0.6, 0.2, 0.2}, Factors: Factors{0.9, 0.6, 0.6}, Sweep: FactorK, ActivePreset: PresetResearch},
		},
		{
			name: PresetAIPrompting,
			want: State{Weights: Weights{0.1, 0.8, 0.1}, Factors: Factors{0.6, 0.95, 0.8}, Sweep: FactorC, ActivePreset: PresetAIPrompting},
		},
		{
			name: PresetReset,
			want: State{Weights: Weights{1.0 / 3, 1.0 / 3, 1.0 / 3}, Factors: Factors{0.5, 0.5, 0.5}, Sweep: FactorC},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyPreset(tt.name)
			if err != nil {
				t.Fatalf("ApplyPreset(%q): %v", tt.name, err)
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Fatalf("ApplyPreset(%q) mismatch (-want +got):\n%s", tt.name, diff)
			}
		})
	}
}

func TestResetProbabilityIsHalf(t *testing.T) {
	s, err := ApplyPreset(PresetReset)
	if err != nil {
		t.Fatalf("ApplyPreset: %v", err)
	}
	if p := s.Probability(); math.Abs(p-0.5) > 1e-9 {
		t.Fatalf("expected p=0.5 after reset, got %v", p)
	}
}

func TestApplyPresetReplacesEverything(t *testing.T) {
	s := DefaultState().WithWeight(AxisAlpha, 0.9).WithFactor(FactorT, 0.1).WithSweep(FactorT)
	next, err := ApplyPreset("research")
	if err != nil {
		t.Fatalf("ApplyPreset: %v", err)
	}
	if next.Weights == s.Weights || next.Factors == s.Factors || next.Sweep != FactorK {
		t.Fatalf("expected preset to replace state, got %+v", next)
	}
}

func TestLookupPresetIgnoresCase(t *testing.T) {
	p, ok := LookupPreset(" AIPROMPTING ")
	if !ok || p.Name != PresetAIPrompting {
		t.Fatalf("expected aiPrompting, got %+v (ok=%v)", p, ok)
	}
}

func TestApplyPresetUnknown(t *testing.T) {
	_, err := ApplyPreset("nope")
	if !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestPresetsReturnsCopy(t *testing.T) {
	list := Presets()
	list[0].Weights.Alpha = 42
	if Presets()[0].Weights.Alpha == 42 {
		t.Fatalf("expected Presets to return a copy")
	}
}
