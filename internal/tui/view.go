package tui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/verte-zerg/taskeq/internal/equation"
	"github.com/verte-zerg/taskeq/internal/plot"
	"github.com/verte-zerg/taskeq/internal/radar"
)

const (
	colorKnowledge = "#CA8A04"
	colorContext   = "#DC2626"
	colorTools     = "#16A34A"
	colorActive    = "#0891B2"

	defaultWidth  = 80
	sliderBar     = 24
	twoColumnMin  = 90
	gaugeMinWidth = 10
)

var (
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#C0C0C0")).Bold(true)
	mutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	trackStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
	focusStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	resultStyle      = lipgloss.NewStyle().Bold(true)
	activeNavStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true).Padding(0, 1).Border(lipgloss.RoundedBorder(), true).BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0")).Padding(0, 1).Border(lipgloss.RoundedBorder(), true).BorderForeground(lipgloss.Color("#4A4A4A"))
	buttonStyle      = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#B0B0B0"))
	activeButton     = buttonStyle.Copy().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color(colorActive)).Bold(true)
	sectionStyle     = lipgloss.NewStyle().Padding(0, 1)
)

// plotColors maps a swept factor to the chart color.
var plotColors = map[equation.Factor]string{
	equation.FactorK: "yellow",
	equation.FactorC: "red",
	equation.FactorT: "green",
}

var xAxisKeys = map[equation.Factor]string{
	equation.FactorK: "equation.chart.xaxis.knowledge",
	equation.FactorC: "equation.chart.xaxis.context",
	equation.FactorT: "equation.chart.xaxis.tools",
}

// View implements tea.Model.
func (m *Model) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	var body string
	switch m.view {
	case viewRadar:
		body = m.renderRadar()
	default:
		body = m.renderEquation(width)
	}
	parts := []string{m.renderTabs(), body, m.help.View(m.keys)}
	return strings.Join(parts, "\n")
}

func (m *Model) renderTabs() string {
	names := []string{m.tr("view.equation"), m.tr("view.radar")}
	tabs := make([]string, 0, len(names)+1)
	tabs = append(tabs, titleStyle.Render(m.tr("app.title"))+"  ")
	for i, name := range names {
		if i == m.view {
			tabs = append(tabs, activeNavStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveNavStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, tabs...)
}

func (m *Model) renderEquation(width int) string {
	sections := []string{
		m.renderPresets(),
		m.renderControls(width),
		m.renderResult(width),
		m.renderChart(width),
	}
	return strings.Join(sections, "\n\n")
}

func (m *Model) renderPresets() string {
	buttons := []string{headerStyle.Render(m.tr("equation.presets") + ":")}
	buttons = append(buttons, buttonStyle.Render("[r] "+m.tr("equation.reset")), mutedStyle.Render("•"))
	for _, k := range []string{"1", "2", "3", "4"} {
		name := presetKeys[k]
		label := fmt.Sprintf("[%s] %s", k, m.tr("equation.preset."+name))
		if m.state.ActivePreset == name {
			buttons = append(buttons, activeButton.Render(label))
		} else {
			buttons = append(buttons, buttonStyle.Render(label))
		}
	}
	return strings.Join(buttons, " ")
}

func (m *Model) renderControls(width int) string {
	weights := []string{
		headerStyle.Render(m.tr("equation.weights")),
		mutedStyle.Render(m.tr("equation.weights.description")),
	}
	factors := []string{
		headerStyle.Render(m.tr("equation.factors")),
		mutedStyle.Render(m.tr("equation.factors.description")),
	}
	for i, s := range sliders {
		line := m.renderSlider(i, s)
		if s.weight {
			weights = append(weights, line)
		} else {
			factors = append(factors, line)
		}
	}
	left := sectionStyle.Render(strings.Join(weights, "\n"))
	right := sectionStyle.Render(strings.Join(factors, "\n"))
	if width < twoColumnMin {
		return lipgloss.JoinVertical(lipgloss.Left, left, "", right)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "   ", right)
}

func (m *Model) sliderValue(s slider) float64 {
	if s.weight {
		return m.state.Weights.Get(s.axis)
	}
	return m.state.Factors.Get(s.factor)
}

func (m *Model) renderSlider(idx int, s slider) string {
	value := m.sliderValue(s)
	label := fmt.Sprintf("%-24s", m.tr(s.labelKey))
	prefix := "  "
	if idx == m.focus {
		prefix = focusStyle.Render("› ")
		label = focusStyle.Render(label)
	}
	return fmt.Sprintf("%s%s %s %s", prefix, label, renderBar(value, sliderBar, s.color), fmt.Sprintf("%.2f", value))
}

func renderBar(value float64, width int, color string) string {
	filled := int(value*float64(width) + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	fill := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	return fill.Render(strings.Repeat("━", filled)) + trackStyle.Render(strings.Repeat("─", width-filled))
}

func (m *Model) renderResult(width int) string {
	w, f := m.state.Weights, m.state.Factors
	term := func(v, e float64, color string) string {
		st := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
		return st.Render(fmt.Sprintf("%.2f", v)) + st.Copy().Faint(true).Render(fmt.Sprintf("^%.2f", e))
	}
	equationLine := strings.Join([]string{
		"p = ",
		term(f.K, w.Alpha, colorKnowledge), " × ",
		term(f.C, w.Beta, colorContext), " × ",
		term(f.T, w.Gamma, colorTools), " ",
		resultStyle.Render(fmt.Sprintf("= %.4f", m.p)),
	}, "")

	gaugeWidth := width - 4
	if gaugeWidth < gaugeMinWidth {
		gaugeWidth = gaugeMinWidth
	}
	bar := progress.New(
		progress.WithSolidFill(GaugeColor(m.p)),
		progress.WithoutPercentage(),
		progress.WithWidth(gaugeWidth),
	)
	label := fmt.Sprintf("%s: %d%%", m.tr("equation.currentProbability"), equation.Percent(m.p))
	return strings.Join([]string{
		headerStyle.Render(m.tr("equation.title")) + "  " + mutedStyle.Render(m.tr("equation.subtitle")),
		equationLine,
		bar.ViewAs(m.p),
		resultStyle.Render(label),
	}, "\n")
}

// GaugeColor returns the hex fill color for p: hue p*120 at 90% saturation
// and 40% lightness, red at 0 and green at 1.
func GaugeColor(p float64) string {
	return colorful.Hsl(equation.Hue(p), 0.9, 0.4).Hex()
}

func (m *Model) renderChart(width int) string {
	sel := m.state.Sweep
	header := headerStyle.Render(m.tr("equation.chart.title")) + "  " +
		mutedStyle.Render(m.tr("equation.chart.subtitle")) + "  " +
		m.renderSweepSelector()

	values := make([]float64, 0, len(m.curve))
	marks := make([]bool, 0, len(m.curve))
	for _, pt := range m.curve {
		values = append(values, pt.P)
		marks = append(marks, pt.IsCurrent)
	}
	var buf bytes.Buffer
	err := plot.PlotLine(&buf, "", []plot.Series{{
		Name:   m.tr("equation.chart.yaxis"),
		Values: values,
		Marks:  marks,
		Color:  plotColors[sel],
	}}, plot.LineOptions{
		Width:      plot.PlotWidthFor(width - 2),
		Height:     m.config.PlotHeight,
		XLabel:     m.tr(xAxisKeys[sel]),
		ForceColor: m.config.Color,
		NoLegend:   true,
	})
	if err != nil {
		return fmt.Sprintf("Failed to render sweep: %v", err)
	}
	chart := strings.TrimRight(buf.String(), "\n")
	return strings.Join([]string{header, chart, mutedStyle.Render(m.tr("equation.sweep.description"))}, "\n")
}

func (m *Model) renderSweepSelector() string {
	parts := make([]string, 0, len(equation.AllFactors))
	for _, f := range equation.AllFactors {
		label := " " + f.String() + " "
		if f == m.state.Sweep {
			parts = append(parts, activeButton.Copy().Padding(0).Background(lipgloss.Color(sliderColor(f))).Render(label))
		} else {
			parts = append(parts, buttonStyle.Copy().Padding(0).Render(label))
		}
	}
	return "[s] " + strings.Join(parts, "")
}

func sliderColor(f equation.Factor) string {
	switch f {
	case equation.FactorK:
		return colorKnowledge
	case equation.FactorC:
		return colorContext
	default:
		return colorTools
	}
}

func (m *Model) renderRadar() string {
	axes := []string{
		m.tr("equation.factor.knowledge"),
		m.tr("equation.factor.context"),
		m.tr("equation.factor.tools"),
	}
	colors := []string{"blue", "red"}
	scores := radar.ScoreAll(m.state.Weights)
	series := make([]plot.RadarSeries, 0, len(scores))
	lines := []string{headerStyle.Render(m.tr("radar.score"))}
	for i, s := range scores {
		name := m.tr(s.Profile.Key)
		series = append(series, plot.RadarSeries{Name: name, Values: s.Profile.Values(), Color: colors[i%len(colors)]})
		lines = append(lines, fmt.Sprintf("  %-8s %s  %d%%", name, equation.FormatEquation(m.state.Weights, s.Profile.Factors), equation.Percent(s.P)))
	}
	var buf bytes.Buffer
	if err := plot.PlotRadar(&buf, headerStyle.Render(m.tr("radar.title")), axes, series, plot.RadarOptions{Height: m.config.PlotHeight, ForceColor: m.config.Color}); err != nil {
		return fmt.Sprintf("Failed to render radar: %v", err)
	}
	return strings.TrimRight(buf.String(), "\n") + "\n\n" + strings.Join(lines, "\n")
}
