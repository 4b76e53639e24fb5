package equation

// State is the complete input of the model plus the name of the preset that
// produced it. ActivePreset is display bookkeeping only: it is cleared by
// any manual edit and never affects a computed value.
type State struct {
	Weights      Weights
	Factors      Factors
	Sweep        Factor
	ActivePreset string
}

// DefaultState returns the default weights and factors, sweeping C.
func DefaultState() State {
	return State{
		Weights: DefaultWeights(),
		Factors: DefaultFactors(),
		Sweep:   FactorC,
	}
}

// WithWeight sets one weight through SetWeight.
func (s State) WithWeight(axis Axis, v float64) State {
	s.Weights = SetWeight(s.Weights, axis, v)
	s.ActivePreset = ""
	return s
}

// WithFactor sets one factor, clamped to [0, 1].
func (s State) WithFactor(factor Factor, v float64) State {
	s.Factors = s.Factors.With(factor, clamp01(v))
	s.ActivePreset = ""
	return s
}

// WithSweep changes the swept factor. The active preset is kept.
func (s State) WithSweep(sel Factor) State {
	s.Sweep = sel
	return s
}

// Probability evaluates the model for the state.
func (s State) Probability() float64 {
	return Evaluate(s.Weights, s.Factors)
}

// Curve returns the sweep over the selected factor.
func (s State) Curve() []Point {
	return Sweep(s.Weights, s.Factors, s.Sweep)
}
