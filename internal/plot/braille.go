// Package plot renders braille line and radar charts and aligned text tables.
package plot

import "math"

type lineStyle struct {
	name   string
	period int
	on     int
}

var lineStyles = []lineStyle{
	{name: "solid", period: 1, on: 1},
	{name: "dashed", period: 6, on: 3},
	{name: "dotted", period: 4, on: 1},
	{name: "dashdot", period: 8, on: 3},
}

func (ls lineStyle) shouldPlot(x int) bool {
	if ls.period <= 1 {
		return true
	}
	if x < 0 {
		x = -x
	}
	return x%ls.period < ls.on
}

// layer is one color plane of dots, height x width braille cells.
type layer struct {
	cells [][]uint8
	color string
}

func newLayer(height, width int, color string) *layer {
	return &layer{cells: makeCells(height, width), color: color}
}

func makeCells(height, width int) [][]uint8 {
	cells := make([][]uint8, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]uint8, width)
	}
	return cells
}

// line draws between two dot coordinates with the given style.
func (l *layer) line(x0, y0, x1, y1 int, style lineStyle) {
	step := 0
	drawLine(x0, y0, x1, y1, func(x, y int) {
		if style.shouldPlot(step) {
			setBrailleDot(l.cells, x, y)
		}
		step++
	})
}

// fill sets every dot of the cell containing the dot coordinate.
func (l *layer) fill(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	cy, cx := y/4, x/2
	if cy >= len(l.cells) || cx >= len(l.cells[cy]) {
		return
	}
	l.cells[cy][cx] = 0xFF
}

// composeCell merges the layers at a cell. The first layer with dots there
// decides the color.
func composeCell(layers []*layer, x, y int) (uint8, string) {
	var mask uint8
	color := ""
	found := false
	for _, l := range layers {
		if y < 0 || y >= len(l.cells) {
			continue
		}
		if x < 0 || x >= len(l.cells[y]) {
			continue
		}
		cellMask := l.cells[y][x]
		if cellMask == 0 {
			continue
		}
		if !found {
			color = l.color
			found = true
		}
		mask |= cellMask
	}
	return mask, color
}

func drawLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := int(math.Abs(float64(x1 - x0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -int(math.Abs(float64(y1 - y0)))
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			if x0 == x1 {
				break
			}
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			if y0 == y1 {
				break
			}
			err += dx
			y0 += sy
		}
	}
}

func setBrailleDot(cells [][]uint8, x, y int) {
	if y < 0 || x < 0 {
		return
	}
	cellY := y / 4
	cellX := x / 2
	if cellY >= len(cells) {
		return
	}
	if cellX >= len(cells[cellY]) {
		return
	}
	cells[cellY][cellX] |= brailleDotMask(x%2, y%4)
}

func brailleDotMask(x, y int) uint8 {
	switch {
	case x == 0 && y == 0:
		return 0x01
	case x == 0 && y == 1:
		return 0x02
	case x == 0 && y == 2:
		return 0x04
	case x == 0 && y == 3:
		return 0x40
	case x == 1 && y == 0:
		return 0x08
	case x == 1 && y == 1:
		return 0x10
	case x == 1 && y == 2:
		return 0x20
	case x == 1 && y == 3:
		return 0x80
	default:
		return 0
	}
}

func brailleFromMask(mask uint8) rune {
	return rune(0x2800 + int(mask))
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Min(1, math.Max(0, v))
}
