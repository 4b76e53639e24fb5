package radar

import (
	"math"
	"testing"

	"github.com/verte-zerg/taskeq/internal/equation"
)

func TestProfileValuesOrder(t *testing.T) {
	human := Profiles()[0]
	got := human.Values()
	want := []float64{0.7, 0.9, 0.8}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestScoreAll(t *testing.T) {
	scores := ScoreAll(equation.DefaultWeights())
	if len(scores) != 2 {
		t.Fatalf("expected 2 scores, got %d", len(scores))
	}
	human := math.Pow(0.7, 0.2) * math.Pow(0.9, 0.6) * math.Pow(0.8, 0.2)
	if math.Abs(scores[0].P-human) > 1e-12 {
		t.Fatalf("expected human p %v, got %v", human, scores[0].P)
	}
	if scores[1].P >= scores[0].P {
		t.Fatalf("expected AI to score below human with context-heavy weights")
	}
}
