package equation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPreset is returned when a preset name is not defined.
var ErrUnknownPreset = errors.New("unknown preset")

// Preset names.
const (
	PresetDataAnalysis    = "dataAnalysis"
	PresetCustomerService = "customerService"
	PresetResearch        = "research"
	PresetAIPrompting     = "aiPrompting"
	PresetReset           = "reset"
)

// Preset is a named configuration of every model input. Weights of a
// preset always sum to 1.
type Preset struct {
	Name    string
	Weights Weights
	Factors Factors
	Sweep   Factor
}

var presets = []Preset{
	{
		// Tool-heavy.
		Name:    PresetDataAnalysis,
		Weights: Weights{Alpha: 0.2, Beta: 0.2, Gamma: 0.6},
		Factors: Factors{K: 0.7, C: 0.6, T: 0.9},
		Sweep:   FactorT,
	},
	{
		// Context-heavy.
		Name:    PresetCustomerService,
		Weights: Weights{Alpha: 0.2, Beta: 0.6, Gamma: 0.2},
		Factors: Factors{K: 0.6, C: 0.9, T: 0.6},
		Sweep:   FactorC,
	},
	{
		// Knowledge-heavy.
		Name:    PresetResearch,
		Weights: Weights{Alpha: 0.6, Beta: 0.2, Gamma: 0.2},
		Factors: Factors{K: 0.9, C: 0.6, T: 0.6},
		Sweep:   FactorK,
	},
	{
		Name:    PresetAIPrompting,
		Weights: Weights{Alpha: 0.1, Beta: 0.8, Gamma: 0.1},
		Factors: Factors{K: 0.6, C: 0.95, T: 0.8},
		Sweep:   FactorC,
	},
	{
		Name:    PresetReset,
		Weights: Weights{Alpha: 1.0 / 3, Beta: 1.0 / 3, Gamma: 1.0 / 3},
		Factors: Factors{K: 0.5, C: 0.5, T: 0.5},
		Sweep:   FactorC,
	},
}

// Presets returns every defined preset, reset last.
func Presets() []Preset {
	return append([]Preset(nil), presets...)
}

// LookupPreset finds a preset by name, ignoring case.
func LookupPreset(name string) (Preset, bool) {
	name = strings.TrimSpace(name)
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}

// PresetNames returns the preset names in definition order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for _, p := range presets {
		names = append(names, p.Name)
	}
	return names
}

// ApplyPreset returns the state described by the named preset.
func ApplyPreset(name string) (State, error) {
	p, ok := LookupPreset(name)
	if !ok {
		return State{}, fmt.Errorf("%w %q (available: %s)", ErrUnknownPreset, name, strings.Join(PresetNames(), ", "))
	}
	return p.State(), nil
}

// State returns the full input state of the preset. Reset leaves no
// preset marked as active.
func (p Preset) State() State {
	active := p.Name
	if p.Name == PresetReset {
		active = ""
	}
	return State{
		Weights:      p.Weights,
		Factors:      p.Factors,
		Sweep:        p.Sweep,
		ActivePreset: active,
	}
}
