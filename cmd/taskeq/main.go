// Package main provides the CLI entrypoint for taskeq.
package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/verte-zerg/taskeq/internal/config"
	"github.com/verte-zerg/taskeq/internal/equation"
	"github.com/verte-zerg/taskeq/internal/i18n"
	"github.com/verte-zerg/taskeq/internal/logging"
	"github.com/verte-zerg/taskeq/internal/model"
	"github.com/verte-zerg/taskeq/internal/tui"
)

const (
	defaultPlotHeight = 10
	weightTolerance   = 1e-6
)

var (
	flagPreset     string
	flagAlpha      float64
	flagBeta       float64
	flagGamma      float64
	flagKnowledge  float64
	flagContext    float64
	flagTools      float64
	flagSweep      string
	flagLang       string
	flagPlotHeight int
	flagColor      bool
	flagDebug      bool

	sweepTable bool

	settings model.Config
	logger   = zap.NewNop()
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	defaults := equation.DefaultState()
	rootCmd := &cobra.Command{
		Use:               "taskeq",
		Short:             "Interactive task success equation visualizer",
		Long:              "taskeq explores p = K^a × C^b × T^g, the weighted geometric mean of\nKnowledge, Context and Tools, with sliders, presets and a sensitivity sweep.",
		SilenceUsage:      true,
		PersistentPreRunE: prepareRun,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = logger.Sync()
		},
		RunE: runVisualizerCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagPreset, "preset", "", "start from a preset ("+strings.Join(equation.PresetNames(), ", ")+")")
	flags.Float64Var(&flagAlpha, "alpha", defaults.Weights.Alpha, "knowledge weight (0-1)")
	flags.Float64Var(&flagBeta, "beta", defaults.Weights.Beta, "context weight (0-1)")
	flags.Float64Var(&flagGamma, "gamma", defaults.Weights.Gamma, "tools weight (0-1)")
	flags.Float64Var(&flagKnowledge, "knowledge", defaults.Factors.K, "knowledge factor K (0-1)")
	flags.Float64Var(&flagContext, "context", defaults.Factors.C, "context factor C (0-1)")
	flags.Float64Var(&flagTools, "tools", defaults.Factors.T, "tools factor T (0-1)")
	flags.StringVar(&flagSweep, "sweep", defaults.Sweep.String(), "factor to sweep (K, C or T)")
	flags.StringVar(&flagLang, "lang", "", "UI language (default: from $LANG)")
	flags.IntVar(&flagPlotHeight, "plot-height", defaultPlotHeight, "chart height in rows")
	flags.BoolVar(&flagColor, "color", true, "colorize charts")
	flags.BoolVar(&flagDebug, "debug", false, "log at debug level")

	rootCmd.AddCommand(newEvalCmd())
	rootCmd.AddCommand(newSweepCmd())
	rootCmd.AddCommand(newPresetsCmd())
	rootCmd.AddCommand(newRadarCmd())
	rootCmd.AddCommand(newLangsCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// prepareRun loads the config file, resolves the starting settings and
// opens the log file.
func prepareRun(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg, err := loadSettings(cmd, fileCfg.Visualizer)
	if err != nil {
		return err
	}
	settings = cfg

	logPath := config.DefaultLogPath()
	if fileCfg.Log.File != nil && *fileCfg.Log.File != "" {
		logPath = *fileCfg.Log.File
	}
	if err := setupLogger(fileCfg.Log, logPath); err != nil {
		return err
	}
	logger.Debug("settings resolved",
		zap.String("command", cmd.Name()),
		zap.String("lang", string(settings.Lang)),
		zap.String("preset", settings.State.ActivePreset),
		zap.Float64("p", settings.State.Probability()),
	)
	return nil
}

func runVisualizerCmd(cmd *cobra.Command, _ []string) error {
	logger.Info("starting visualizer",
		zap.String("lang", string(settings.Lang)),
		zap.String("preset", settings.State.ActivePreset),
		zap.Stringer("sweep", settings.State.Sweep),
	)
	program := tea.NewProgram(tui.NewModel(settings, logger), tea.WithAltScreen())

	path := config.DefaultConfigPath()
	watcher, err := config.Watch(cmd.Context(), path, config.DefaultDebounce, func() {
		program.Send(reloadDisplay(cmd, path))
	}, func(err error) {
		logger.Warn("config watcher error", zap.Error(err))
	})
	if err != nil {
		logger.Warn("config reload disabled", zap.String("path", path), zap.Error(err))
	} else {
		defer func() {
			_ = watcher.Close()
		}()
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// reloadDisplay re-reads the display settings from the config file. Values
// set on the command line keep priority, invalid values keep the current
// setting.
func reloadDisplay(cmd *cobra.Command, path string) tui.DisplayMsg {
	msg := tui.DisplayMsg{Lang: settings.Lang, PlotHeight: settings.PlotHeight, Color: settings.Color}
	fileCfg, err := config.LoadConfig(path)
	if err != nil {
		logger.Warn("failed to reload config", zap.Error(err))
		return msg
	}
	v := fileCfg.Visualizer
	if !cmd.Flags().Changed("lang") {
		code := ""
		if v.Lang != nil {
			code = *v.Lang
		}
		if lang, err := resolveLang(code); err != nil {
			logger.Warn("ignoring reloaded lang", zap.Error(err))
		} else {
			msg.Lang = lang
		}
	}
	if !cmd.Flags().Changed("plot-height") {
		height := defaultPlotHeight
		if v.PlotHeight != nil {
			height = *v.PlotHeight
		}
		if height > 0 {
			msg.PlotHeight = height
		} else {
			logger.Warn("ignoring reloaded plot-height", zap.Int("plot_height", height))
		}
	}
	if !cmd.Flags().Changed("color") {
		msg.Color = true
		if v.Color != nil {
			msg.Color = *v.Color
		}
	}
	logger.Debug("config reloaded", zap.String("path", path))
	return msg
}

// loadSettings applies config values to flags that were not set on the
// command line and resolves the starting settings.
func loadSettings(cmd *cobra.Command, v config.VisualizerConfig) (model.Config, error) {
	applyStringConfig(cmd, "preset", &flagPreset, v.Preset)
	applyFloatConfig(cmd, "alpha", &flagAlpha, v.Alpha)
	applyFloatConfig(cmd, "beta", &flagBeta, v.Beta)
	applyFloatConfig(cmd, "gamma", &flagGamma, v.Gamma)
	applyFloatConfig(cmd, "knowledge", &flagKnowledge, v.Knowledge)
	applyFloatConfig(cmd, "context", &flagContext, v.Context)
	applyFloatConfig(cmd, "tools", &flagTools, v.Tools)
	applyStringConfig(cmd, "sweep", &flagSweep, v.Sweep)
	applyStringConfig(cmd, "lang", &flagLang, v.Lang)
	applyIntConfig(cmd, "plot-height", &flagPlotHeight, v.PlotHeight)
	applyBoolConfig(cmd, "color", &flagColor, v.Color)

	configured := map[string]bool{
		"alpha":     v.Alpha != nil,
		"beta":      v.Beta != nil,
		"gamma":     v.Gamma != nil,
		"knowledge": v.Knowledge != nil,
		"context":   v.Context != nil,
		"tools":     v.Tools != nil,
		"sweep":     v.Sweep != nil,
	}
	in := stateInput{
		preset:  flagPreset,
		weights: equation.Weights{Alpha: flagAlpha, Beta: flagBeta, Gamma: flagGamma},
		factors: equation.Factors{K: flagKnowledge, C: flagContext, T: flagTools},
		sweep:   flagSweep,
		set:     map[string]bool{},
	}
	for name, ok := range configured {
		in.set[name] = ok || cmd.Flags().Changed(name)
	}
	state, err := resolveState(in)
	if err != nil {
		return model.Config{}, err
	}
	lang, err := resolveLang(flagLang)
	if err != nil {
		return model.Config{}, err
	}
	if flagPlotHeight <= 0 {
		return model.Config{}, fmt.Errorf("--plot-height must be > 0")
	}
	return model.Config{
		Lang:       lang,
		State:      state,
		PlotHeight: flagPlotHeight,
		Color:      flagColor,
	}, nil
}

// stateInput holds the raw starting values. set names the values that were
// given explicitly and must override a preset.
type stateInput struct {
	preset  string
	weights equation.Weights
	factors equation.Factors
	sweep   string
	set     map[string]bool
}

// resolveState starts from the preset, or the defaults when none is named,
// and applies the explicit values on top.
func resolveState(in stateInput) (equation.State, error) {
	state := equation.DefaultState()
	set := in.set
	if strings.TrimSpace(in.preset) != "" {
		preset, err := equation.ApplyPreset(in.preset)
		if err != nil {
			return equation.State{}, fmt.Errorf("invalid --preset: %w", err)
		}
		state = preset
	} else {
		set = map[string]bool{
			"alpha": true, "beta": true, "gamma": true,
			"knowledge": true, "context": true, "tools": true,
			"sweep": true,
		}
	}

	overrides := []struct {
		name   string
		target *float64
		value  float64
	}{
		{"alpha", &state.Weights.Alpha, in.weights.Alpha},
		{"beta", &state.Weights.Beta, in.weights.Beta},
		{"gamma", &state.Weights.Gamma, in.weights.Gamma},
		{"knowledge", &state.Factors.K, in.factors.K},
		{"context", &state.Factors.C, in.factors.C},
		{"tools", &state.Factors.T, in.factors.T},
	}
	edited := false
	for _, o := range overrides {
		if !set[o.name] {
			continue
		}
		if math.IsNaN(o.value) || o.value < 0 || o.value > 1 {
			return equation.State{}, fmt.Errorf("--%s must be between 0 and 1", o.name)
		}
		if *o.target != o.value {
			edited = true
		}
		*o.target = o.value
	}
	if set["sweep"] {
		sel, err := equation.ParseFactor(in.sweep)
		if err != nil {
			return equation.State{}, fmt.Errorf("invalid --sweep: %w", err)
		}
		state = state.WithSweep(sel)
	}
	if edited {
		state.ActivePreset = ""
	}
	if err := validateWeights(state.Weights); err != nil {
		return equation.State{}, err
	}
	return state, nil
}

func validateWeights(w equation.Weights) error {
	if math.Abs(w.Sum()-1) > weightTolerance {
		return fmt.Errorf("--alpha, --beta and --gamma must sum to 1 (got %.4f)", w.Sum())
	}
	return nil
}

// resolveLang parses an explicit code, or matches the locale environment.
func resolveLang(code string) (i18n.Lang, error) {
	if strings.TrimSpace(code) != "" {
		lang, err := i18n.Parse(code)
		if err != nil {
			return "", fmt.Errorf("invalid --lang: %w (run: taskeq langs)", err)
		}
		return lang, nil
	}
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(env); v != "" {
			return i18n.Match(v), nil
		}
	}
	return i18n.DefaultLang, nil
}

func setupLogger(cfg config.LogConfig, path string) error {
	opts := logging.Options{Debug: flagDebug, Path: path}
	if cfg.Level != nil {
		opts.Level = *cfg.Level
	}
	l, err := logging.New(opts)
	if err != nil {
		return err
	}
	logger = l
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		// A broken config file must still be editable.
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error { return nil },
		RunE:              runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	logErrf("created config at %s\n", path)
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	d := equation.DefaultState()
	return fmt.Sprintf(`# taskeq configuration
# Uncomment a value to enable it. CLI flags override config values.

[visualizer]
# lang = "en"              # UI language: %s
# preset = "research"      # Starting preset: %s
# sweep = %q                # Factor to sweep (K, C or T)
# alpha = %.2f              # Knowledge weight (alpha + beta + gamma = 1)
# beta = %.2f               # Context weight
# gamma = %.2f              # Tools weight
# knowledge = %.2f          # Knowledge factor K (0-1)
# context = %.2f            # Context factor C (0-1)
# tools = %.2f              # Tools factor T (0-1)
# plot-height = %d          # Chart height in rows
# color = true              # Colorize charts

[log]
# level = "info"            # debug, info, warn, error
# file = %q
`,
		joinLangs(),
		strings.Join(equation.PresetNames(), ", "),
		d.Sweep.String(),
		d.Weights.Alpha,
		d.Weights.Beta,
		d.Weights.Gamma,
		d.Factors.K,
		d.Factors.C,
		d.Factors.T,
		defaultPlotHeight,
		config.DefaultLogPath(),
	)
}

func joinLangs() string {
	langs := i18n.Languages()
	out := make([]string, 0, len(langs))
	for _, l := range langs {
		out = append(out, string(l))
	}
	return strings.Join(out, ", ")
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
