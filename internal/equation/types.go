// Package equation implements the task success model p = K^a * C^b * T^g.
package equation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFactor is returned when a factor name cannot be parsed.
var ErrUnknownFactor = errors.New("unknown factor")

// Factor identifies one of the three model inputs.
type Factor int

// Factors of the model, in display order.
const (
	FactorK Factor = iota
	FactorC
	FactorT
)

// AllFactors lists the factors in display order.
var AllFactors = []Factor{FactorK, FactorC, FactorT}

// String returns the single-letter factor name.
func (f Factor) String() string {
	switch f {
	case FactorK:
		return "K"
	case FactorC:
		return "C"
	case FactorT:
		return "T"
	default:
		return fmt.Sprintf("Factor(%d)", int(f))
	}
}

// Next returns the following factor, wrapping from T to K.
func (f Factor) Next() Factor {
	return AllFactors[(int(f)+1)%len(AllFactors)]
}

// Axis returns the weight axis applied to the factor.
func (f Factor) Axis() Axis {
	switch f {
	case FactorK:
		return AxisAlpha
	case FactorC:
		return AxisBeta
	default:
		return AxisGamma
	}
}

// ParseFactor accepts K, C, T (any case) or knowledge, context, tools.
func ParseFactor(s string) (Factor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "k", "knowledge":
		return FactorK, nil
	case "c", "context":
		return FactorC, nil
	case "t", "tools":
		return FactorT, nil
	}
	return 0, fmt.Errorf("%w %q (use K, C or T)", ErrUnknownFactor, s)
}

// Axis identifies one of the three weights.
type Axis int

// Weight axes.
const (
	AxisAlpha Axis = iota
	AxisBeta
	AxisGamma
)

func (a Axis) String() string {
	switch a {
	case AxisAlpha:
		return "a"
	case AxisBeta:
		return "b"
	case AxisGamma:
		return "g"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Weights holds the exponents of the model. Updates made through SetWeight
// keep Alpha+Beta+Gamma equal to 1.
type Weights struct {
	Alpha float64
	Beta  float64
	Gamma float64
}

// DefaultWeights returns the starting weights (0.2, 0.6, 0.2).
func DefaultWeights() Weights {
	return Weights{Alpha: 0.2, Beta: 0.6, Gamma: 0.2}
}

// Sum returns Alpha+Beta+Gamma.
func (w Weights) Sum() float64 {
	return w.Alpha + w.Beta + w.Gamma
}

// Get returns the weight on the given axis.
func (w Weights) Get(axis Axis) float64 {
	switch axis {
	case AxisAlpha:
		return w.Alpha
	case AxisBeta:
		return w.Beta
	case AxisGamma:
		return w.Gamma
	default:
		return 0
	}
}

// Factors holds the three independent inputs. There is no sum constraint.
type Factors struct {
	K float64
	C float64
	T float64
}

// DefaultFactors returns the starting factors (0.8, 0.9, 0.9).
func DefaultFactors() Factors {
	return Factors{K: 0.8, C: 0.9, T: 0.9}
}

// Get returns the value of the given factor.
func (f Factors) Get(factor Factor) float64 {
	switch factor {
	case FactorK:
		return f.K
	case FactorC:
		return f.C
	case FactorT:
		return f.T
	default:
		return 0
	}
}

// With returns a copy with the given factor replaced by v.
func (f Factors) With(factor Factor, v float64) Factors {
	switch factor {
	case FactorK:
		f.K = v
	case FactorC:
		f.C = v
	case FactorT:
		f.T = v
	}
	return f
}

// Point is one sample of a sweep curve.
type Point struct {
	X         float64
	P         float64
	IsCurrent bool
}
