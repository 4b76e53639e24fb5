package plot

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
)

// RadarSeries is one polygon on a radar chart, one value per axis in [0, 1].
type RadarSeries struct {
	Name   string
	Values []float64
	Color  string
}

// RadarOptions controls radar chart layout.
type RadarOptions struct {
	// Height is the number of terminal rows used by the chart body.
	Height     int
	ForceColor bool
}

const (
	defaultRadarHeight = 12
	minRadarHeight     = 4
	gridColor          = "gray"
)

var radarRings = []float64{0.5, 1}

// PlotRadar renders a radar chart with the first axis pointing up and the
// rest laid out clockwise. Axis labels are placed next to the axis tips.
func PlotRadar(w io.Writer, title string, axes []string, series []RadarSeries, opts RadarOptions) error {
	if len(axes) < 3 {
		return fmt.Errorf("radar chart needs at least 3 axes, got %d", len(axes))
	}
	height := opts.Height
	if height <= 0 {
		height = defaultRadarHeight
	}
	if height < minRadarHeight {
		height = minRadarHeight
	}
	width := height * 2

	g := newRadarGeometry(len(axes), width, height)
	layers := make([]*layer, 0, len(series)+1)
	for si, s := range series {
		l := newLayer(height, width, colorFor(s.Color, si))
		tips := make([][2]int, len(axes))
		for i := range axes {
			v := 0.0
			if i < len(s.Values) {
				v = clamp01(s.Values[i])
			}
			tips[i] = g.point(i, v)
		}
		polygon(l, tips, lineStyles[si%len(lineStyles)])
		layers = append(layers, l)
	}
	grid := newLayer(height, width, gridColor)
	for _, ring := range radarRings {
		tips := make([][2]int, len(axes))
		for i := range axes {
			tips[i] = g.point(i, ring)
		}
		polygon(grid, tips, lineStyles[2])
	}
	for i := range axes {
		tip := g.point(i, 1)
		grid.line(g.cx, g.cy, tip[0], tip[1], lineStyles[2])
	}
	layers = append(layers, grid)

	useColor := ShouldUseColor(w, opts.ForceColor)
	margin := 1
	for _, a := range axes {
		if aw := runewidth.StringWidth(a) + 1; aw > margin {
			margin = aw
		}
	}
	c := newCanvas(height+2, width+2*margin)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			mask, color := composeCell(layers, x, y)
			if mask == 0 {
				continue
			}
			c.set(y+1, x+margin, paint(string(brailleFromMask(mask)), color, useColor))
		}
	}
	for i, label := range axes {
		tip := g.point(i, 1)
		row := tip[1]/4 + 1
		col := tip[0]/2 + margin
		dx, dy := g.direction(i)
		lw := runewidth.StringWidth(label)
		switch {
		case dy < -0.6:
			row--
		case dy > 0.6:
			row++
		}
		switch {
		case dx > 0.3:
			col++
		case dx < -0.3:
			col -= lw
		default:
			col -= lw / 2
		}
		c.text(row, col, label)
	}

	if title != "" {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}
	for _, line := range c.lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	legend := make([]string, 0, len(series))
	for i, s := range series {
		label := fmt.Sprintf("%s %s (%s)", string(brailleFromMask(0x01)), s.Name, lineStyles[i%len(lineStyles)].name)
		legend = append(legend, paint(label, colorFor(s.Color, i), useColor))
	}
	if len(legend) > 0 {
		if _, err := fmt.Fprintln(w, "Legend: "+strings.Join(legend, "  ")); err != nil {
			return err
		}
	}
	return nil
}

type radarGeometry struct {
	axes   int
	cx, cy int
	radius float64
}

func newRadarGeometry(axes, width, height int) radarGeometry {
	dotW, dotH := width*2, height*4
	return radarGeometry{
		axes:   axes,
		cx:     dotW / 2,
		cy:     dotH / 2,
		radius: float64(minInt(dotW, dotH))/2 - 1,
	}
}

func (g radarGeometry) direction(i int) (float64, float64) {
	theta := -math.Pi/2 + 2*math.Pi*float64(i)/float64(g.axes)
	return math.Cos(theta), math.Sin(theta)
}

func (g radarGeometry) point(i int, v float64) [2]int {
	dx, dy := g.direction(i)
	return [2]int{
		g.cx + int(math.Round(dx*v*g.radius)),
		g.cy + int(math.Round(dy*v*g.radius)),
	}
}

func polygon(l *layer, pts [][2]int, style lineStyle) {
	for i := range pts {
		next := pts[(i+1)%len(pts)]
		l.line(pts[i][0], pts[i][1], next[0], next[1], style)
	}
}

// canvas is a grid of display cells, each holding a possibly styled string
// one column wide.
type canvas struct {
	cells [][]string
}

func newCanvas(rows, cols int) *canvas {
	cells := make([][]string, rows)
	for y := range cells {
		cells[y] = make([]string, cols)
		for x := range cells[y] {
			cells[y][x] = " "
		}
	}
	return &canvas{cells: cells}
}

func (c *canvas) set(row, col int, s string) {
	if row < 0 || row >= len(c.cells) || col < 0 || col >= len(c.cells[row]) {
		return
	}
	c.cells[row][col] = s
}

func (c *canvas) text(row, col int, s string) {
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		c.set(row, col, string(r))
		if rw == 2 {
			c.set(row, col+1, "")
		}
		col += maxInt(rw, 1)
	}
}

func (c *canvas) lines() []string {
	out := make([]string, 0, len(c.cells))
	for _, row := range c.cells {
		out = append(out, strings.TrimRight(strings.Join(row, ""), " "))
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
