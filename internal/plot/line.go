package plot

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Series is a curve sampled at evenly spaced x over [0, 1]. Values are
// plotted on a fixed [0, 1] y axis. Marks flags samples to highlight.
type Series struct {
	Name   string
	Values []float64
	Marks  []bool
	Color  string
}

// LineOptions controls line chart layout.
type LineOptions struct {
	Width      int
	Height     int
	XLabel     string
	ForceColor bool
	NoLegend   bool
}

const (
	defaultPlotHeight = 10
	minPlotWidth      = 10
	axisLabelTop      = "100%"
	axisLabelMid      = "50%"
	axisLabelBottom   = "0%"
	axisSeparator     = " │ "
	markColor         = "magenta"
)

// PlotLine renders series as a braille line chart with percent labels on
// the y axis and 0.0, 0.5, 1.0 ticks on the x axis.
func PlotLine(w io.Writer, title string, series []Series, opts LineOptions) error {
	series = filterSeries(series)
	if len(series) == 0 {
		return nil
	}

	height := opts.Height
	if height <= 0 {
		height = defaultPlotHeight
	}
	width := opts.Width
	if width <= 0 {
		width = autoPlotWidth()
	}
	if width < minPlotWidth {
		width = minPlotWidth
	}

	dotRows := height * 4
	dotCols := width * 2
	markLayer := newLayer(height, width, markColor)
	layers := []*layer{markLayer}
	for si, s := range series {
		l := newLayer(height, width, colorFor(s.Color, si))
		style := lineStyles[si%len(lineStyles)]
		resampled := resampleSeries(s.Values, dotCols)
		prevX, prevY := -1, -1
		for x, v := range resampled {
			y := valueToRow(clamp01(v), dotRows)
			if prevX >= 0 {
				l.line(prevX, prevY, x, y, style)
			} else {
				setBrailleDot(l.cells, x, y)
			}
			prevX, prevY = x, y
		}
		for i, marked := range s.Marks {
			if !marked || i >= len(s.Values) {
				continue
			}
			x := sampleColumn(i, len(s.Values), dotCols)
			markLayer.fill(x, valueToRow(clamp01(s.Values[i]), dotRows))
		}
		layers = append(layers, l)
	}

	useColor := ShouldUseColor(w, opts.ForceColor)
	leftAxisWidth := len(axisLabelTop)
	axisLabels := makeAxisLabels(height)

	if title != "" {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}
	for y := 0; y < height; y++ {
		var row strings.Builder
		row.WriteString(fmt.Sprintf("%*s%s", leftAxisWidth, axisLabels[y], axisSeparator))
		for x := 0; x < width; x++ {
			mask, color := composeCell(layers, x, y)
			row.WriteString(paint(string(brailleFromMask(mask)), color, useColor))
		}
		if _, err := fmt.Fprintln(w, row.String()); err != nil {
			return err
		}
	}
	indent := strings.Repeat(" ", leftAxisWidth+runewidth.StringWidth(axisSeparator))
	if _, err := fmt.Fprintln(w, indent+xTicks(width)); err != nil {
		return err
	}
	if opts.XLabel != "" {
		if _, err := fmt.Fprintln(w, indent+center(opts.XLabel, width)); err != nil {
			return err
		}
	}
	if !opts.NoLegend {
		if _, err := fmt.Fprintln(w, renderLegend(series, useColor)); err != nil {
			return err
		}
	}
	return nil
}

func filterSeries(series []Series) []Series {
	out := make([]Series, 0, len(series))
	for _, s := range series {
		if len(s.Values) == 0 {
			continue
		}
		out = append(out, s)
	}
	return out
}

func makeAxisLabels(height int) []string {
	labels := make([]string, height)
	if height <= 0 {
		return labels
	}
	labels[0] = axisLabelTop
	if height > 2 {
		labels[height/2] = axisLabelMid
	}
	if height > 1 {
		labels[height-1] = axisLabelBottom
	}
	return labels
}

func xTicks(width int) string {
	row := []rune(strings.Repeat(" ", width))
	put := func(col int, label string) {
		for i, r := range label {
			if c := col + i; c >= 0 && c < len(row) {
				row[c] = r
			}
		}
	}
	put(0, "0.0")
	put(width/2-1, "0.5")
	put(width-3, "1.0")
	return string(row)
}

func center(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return strings.Repeat(" ", (width-sw)/2) + s
}

// sampleColumn maps sample i of n onto a dot column in [0, cols).
func sampleColumn(i, n, cols int) int {
	if n <= 1 || cols <= 1 {
		return 0
	}
	return int(math.Round(float64(i) * float64(cols-1) / float64(n-1)))
}

func resampleSeries(values []float64, width int) []float64 {
	if len(values) == 0 || width <= 0 {
		return nil
	}
	if len(values) == width {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, width)
	if len(values) > width {
		for i := 0; i < width; i++ {
			start := int(float64(i) * float64(len(values)) / float64(width))
			end := int(float64(i+1) * float64(len(values)) / float64(width))
			if end <= start {
				end = start + 1
			}
			if end > len(values) {
				end = len(values)
			}
			var sum float64
			for _, v := range values[start:end] {
				sum += v
			}
			out[i] = sum / float64(end-start)
		}
		return out
	}
	if width == 1 {
		out[0] = values[0]
		return out
	}
	if len(values) == 1 {
		for i := range out {
			out[i] = values[0]
		}
		return out
	}
	for i := 0; i < width; i++ {
		pos := float64(i) * float64(len(values)-1) / float64(width-1)
		idx := int(math.Floor(pos))
		if idx >= len(values)-1 {
			out[i] = values[len(values)-1]
			continue
		}
		frac := pos - float64(idx)
		out[i] = values[idx]*(1-frac) + values[idx+1]*frac
	}
	return out
}

// valueToRow maps v in [0, 1] to a dot row, 0 at the top.
func valueToRow(v float64, rows int) int {
	if rows <= 1 {
		return 0
	}
	row := int(math.Round((1 - v) * float64(rows-1)))
	if row < 0 {
		row = 0
	}
	if row >= rows {
		row = rows - 1
	}
	return row
}

func renderLegend(series []Series, useColor bool) string {
	parts := make([]string, 0, len(series))
	marker := string(brailleFromMask(0x01))
	for i, s := range series {
		styleName := lineStyles[i%len(lineStyles)].name
		label := fmt.Sprintf("%s %s (%s)", marker, s.Name, styleName)
		parts = append(parts, paint(label, colorFor(s.Color, i), useColor))
	}
	return "Legend: " + strings.Join(parts, "  ")
}
