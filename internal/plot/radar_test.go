package plot

import (
	"bytes"
	"strings"
	"testing"
)

func TestPlotRadar(t *testing.T) {
	var buf bytes.Buffer
	axes := []string{"Knowledge", "Context", "Tools"}
	series := []RadarSeries{
		{Name: "Human", Values: []float64{0.7, 0.9, 0.8}, Color: "blue"},
		{Name: "AI", Values: []float64{0.9, 0.3, 0.6}, Color: "red"},
	}
	if err := PlotRadar(&buf, "Human vs AI", axes, series, RadarOptions{Height: 8}); err != nil {
		t.Fatalf("PlotRadar failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Human vs AI", "Knowledge", "Context", "Tools", "Human (solid)", "AI (dashed)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// title + label row + 8 rows + label row + legend
	if len(lines) != 12 {
		t.Fatalf("expected 12 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "Knowledge") {
		t.Fatalf("expected first axis label above the chart, got %q", lines[1])
	}
}

func TestPlotRadarNeedsThreeAxes(t *testing.T) {
	var buf bytes.Buffer
	if err := PlotRadar(&buf, "", []string{"a", "b"}, nil, RadarOptions{}); err == nil {
		t.Fatalf("expected error for two axes")
	}
}

func TestRadarGeometryFirstAxisPointsUp(t *testing.T) {
	g := newRadarGeometry(3, 16, 8)
	tip := g.point(0, 1)
	if tip[0] != g.cx || tip[1] >= g.cy {
		t.Fatalf("expected first tip straight above center, got %v (center %d,%d)", tip, g.cx, g.cy)
	}
	right := g.point(1, 1)
	left := g.point(2, 1)
	if right[0] <= g.cx || left[0] >= g.cx {
		t.Fatalf("expected clockwise layout, got right=%v left=%v", right, left)
	}
}
