package plot

import (
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/term"
)

const (
	colorReset          = "\x1b[0m"
	terminalWidthBackup = 80
)

// ANSI foreground colors by name.
var colorCodes = map[string]string{
	"gray":    "\x1b[90m",
	"red":     "\x1b[31m",
	"green":   "\x1b[32m",
	"yellow":  "\x1b[33m",
	"blue":    "\x1b[34m",
	"magenta": "\x1b[35m",
	"cyan":    "\x1b[36m",
}

var colorPalette = []string{"cyan", "magenta", "yellow", "green", "blue"}

func colorFor(name string, idx int) string {
	if _, ok := colorCodes[name]; ok {
		return name
	}
	return colorPalette[idx%len(colorPalette)]
}

func paint(s, color string, useColor bool) string {
	code, ok := colorCodes[color]
	if !useColor || !ok || s == "" {
		return s
	}
	return code + s + colorReset
}

// PlotWidthFor computes a plot width that fits within the total available width.
func PlotWidthFor(totalWidth int) int {
	if totalWidth <= 0 {
		return minPlotWidth
	}
	axisWidth := utf8.RuneCountInString(axisLabelTop) + utf8.RuneCountInString(axisSeparator)
	plotWidth := totalWidth - axisWidth
	if plotWidth < minPlotWidth {
		plotWidth = minPlotWidth
	}
	return plotWidth
}

func autoPlotWidth() int {
	return PlotWidthFor(terminalWidth())
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

// ShouldUseColor reports whether ANSI colors should be written to w.
// NO_COLOR always wins over force.
func ShouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
