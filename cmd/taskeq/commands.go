package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/taskeq/internal/equation"
	"github.com/verte-zerg/taskeq/internal/i18n"
	"github.com/verte-zerg/taskeq/internal/plot"
	"github.com/verte-zerg/taskeq/internal/radar"
)

var sweepColors = map[equation.Factor]string{
	equation.FactorK: "yellow",
	equation.FactorC: "red",
	equation.FactorT: "green",
}

var sweepLabelKeys = map[equation.Factor]string{
	equation.FactorK: "equation.chart.xaxis.knowledge",
	equation.FactorC: "equation.chart.xaxis.context",
	equation.FactorT: "equation.chart.xaxis.tools",
}

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval",
		Short: "Print the success probability for the current inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeEval(cmd.OutOrStdout())
		},
	}
}

func writeEval(w io.Writer) error {
	tr := i18n.T(settings.Lang)
	s := settings.State
	if _, err := fmt.Fprintln(w, equation.FormatEquation(s.Weights, s.Factors)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s: %d%%\n", tr("equation.currentProbability"), equation.Percent(s.Probability()))
	return err
}

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Print probability as the selected factor varies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if sweepTable {
				return writeSweepTable(cmd.OutOrStdout())
			}
			return writeSweepChart(cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&sweepTable, "table", false, "print points as a table")
	return cmd
}

func writeSweepChart(w io.Writer) error {
	tr := i18n.T(settings.Lang)
	s := settings.State
	curve := s.Curve()
	values := make([]float64, 0, len(curve))
	marks := make([]bool, 0, len(curve))
	for _, pt := range curve {
		values = append(values, pt.P)
		marks = append(marks, pt.IsCurrent)
	}
	title := fmt.Sprintf("%s (%s %s)", tr("equation.chart.title"), s.Sweep, tr("equation.factor.sensitivity"))
	var buf bytes.Buffer
	err := plot.PlotLine(&buf, title, []plot.Series{{
		Name:   tr("equation.chart.yaxis"),
		Values: values,
		Marks:  marks,
		Color:  sweepColors[s.Sweep],
	}}, plot.LineOptions{
		Height:     settings.PlotHeight,
		XLabel:     tr(sweepLabelKeys[s.Sweep]),
		ForceColor: useColor(w),
	})
	if err != nil {
		return fmt.Errorf("failed to render sweep: %w", err)
	}
	_, err = io.Copy(w, &buf)
	return err
}

func writeSweepTable(w io.Writer) error {
	s := settings.State
	curve := s.Curve()
	rows := make([][]string, 0, len(curve))
	for _, pt := range curve {
		mark := ""
		if pt.IsCurrent {
			mark = "*"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%.2f", pt.X),
			fmt.Sprintf("%.4f", pt.P),
			fmt.Sprintf("%d%%", equation.Percent(pt.P)),
			mark,
		})
	}
	lines := plot.FormatTable([]string{s.Sweep.String(), "p", "%", ""}, rows, map[int]bool{0: true, 1: true, 2: true})
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writePresets(cmd.OutOrStdout())
		},
	}
}

func writePresets(w io.Writer) error {
	tr := i18n.T(settings.Lang)
	presets := equation.Presets()
	rows := make([][]string, 0, len(presets))
	for _, p := range presets {
		label := tr("equation.preset." + p.Name)
		if p.Name == equation.PresetReset {
			label = tr("equation.reset")
		}
		rows = append(rows, []string{
			p.Name,
			label,
			fmt.Sprintf("%.2f", p.Weights.Alpha),
			fmt.Sprintf("%.2f", p.Weights.Beta),
			fmt.Sprintf("%.2f", p.Weights.Gamma),
			fmt.Sprintf("%.2f", p.Factors.K),
			fmt.Sprintf("%.2f", p.Factors.C),
			fmt.Sprintf("%.2f", p.Factors.T),
			p.Sweep.String(),
			fmt.Sprintf("%.4f", equation.Evaluate(p.Weights, p.Factors)),
		})
	}
	headers := []string{"Name", "Label", "α", "β", "γ", "K", "C", "T", "Sweep", "p"}
	right := map[int]bool{2: true, 3: true, 4: true, 5: true, 6: true, 7: true, 9: true}
	_, err := fmt.Fprintln(w, strings.Join(plot.FormatTable(headers, rows, right), "\n"))
	return err
}

func newRadarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "radar",
		Short: "Print the Human vs AI radar chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeRadar(cmd.OutOrStdout())
		},
	}
}

func writeRadar(w io.Writer) error {
	tr := i18n.T(settings.Lang)
	axes := []string{
		tr("equation.factor.knowledge"),
		tr("equation.factor.context"),
		tr("equation.factor.tools"),
	}
	colors := []string{"blue", "red"}
	scores := radar.ScoreAll(settings.State.Weights)
	series := make([]plot.RadarSeries, 0, len(scores))
	rows := make([][]string, 0, len(scores))
	for i, s := range scores {
		name := tr(s.Profile.Key)
		series = append(series, plot.RadarSeries{Name: name, Values: s.Profile.Values(), Color: colors[i%len(colors)]})
		rows = append(rows, []string{
			name,
			equation.FormatEquation(settings.State.Weights, s.Profile.Factors),
			fmt.Sprintf("%d%%", equation.Percent(s.P)),
		})
	}
	var buf bytes.Buffer
	opts := plot.RadarOptions{Height: settings.PlotHeight, ForceColor: useColor(w)}
	if err := plot.PlotRadar(&buf, tr("radar.title"), axes, series, opts); err != nil {
		return fmt.Errorf("failed to render radar: %w", err)
	}
	if _, err := io.Copy(w, &buf); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\n%s\n", tr("radar.score")); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, strings.Join(plot.FormatTable(nil, rows, map[int]bool{2: true}), "\n"))
	return err
}

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List supported UI languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, lang := range i18n.Languages() {
				if _, err := fmt.Fprintf(w, "%-6s %s\n", lang, lang.Name()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// useColor reports whether charts written to w should be colored. Charts
// are rendered into a buffer first, so the terminal check runs here.
func useColor(w io.Writer) bool {
	return settings.Color && plot.ShouldUseColor(w, false)
}
