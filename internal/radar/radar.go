// Package radar holds the Human-vs-AI capability profiles shown on the radar chart.
package radar

import "github.com/verte-zerg/taskeq/internal/equation"

// Profile is a named set of factor levels.
type Profile struct {
	// Key is the i18n key of the display name.
	Key     string
	Factors equation.Factors
}

// Score is a profile evaluated under a set of weights.
type Score struct {
	Profile Profile
	P       float64
}

// Profiles returns the human and AI profiles in chart order.
func Profiles() []Profile {
	return []Profile{
		{Key: "radar.human", Factors: equation.Factors{K: 0.7, C: 0.9, T: 0.8}},
		{Key: "radar.ai", Factors: equation.Factors{K: 0.9, C: 0.3, T: 0.6}},
	}
}

// Values returns the profile's factors in axis order K, C, T.
func (p Profile) Values() []float64 {
	out := make([]float64, 0, len(equation.AllFactors))
	for _, f := range equation.AllFactors {
		out = append(out, p.Factors.Get(f))
	}
	return out
}

// ScoreAll evaluates every profile with the given weights.
func ScoreAll(w equation.Weights) []Score {
	profiles := Profiles()
	scores := make([]Score, 0, len(profiles))
	for _, p := range profiles {
		scores = append(scores, Score{Profile: p, P: equation.Evaluate(w, p.Factors)})
	}
	return scores
}
