// Package tui provides the Bubble Tea equation visualizer.
package tui

import (
	"math"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/verte-zerg/taskeq/internal/equation"
	"github.com/verte-zerg/taskeq/internal/i18n"
	"github.com/verte-zerg/taskeq/internal/model"
)

const (
	viewEquation = iota
	viewRadar
	viewCount
)

const (
	fineStep   = 0.01
	coarseStep = 0.10
)

// presetKeys maps the number keys to presets.
var presetKeys = map[string]string{
	"1": equation.PresetDataAnalysis,
	"2": equation.PresetCustomerService,
	"3": equation.PresetResearch,
	"4": equation.PresetAIPrompting,
}

type slider struct {
	labelKey string
	color    string
	weight   bool
	axis     equation.Axis
	factor   equation.Factor
}

var sliders = []slider{
	{labelKey: "equation.alpha.label", color: colorKnowledge, weight: true, axis: equation.AxisAlpha},
	{labelKey: "equation.beta.label", color: colorContext, weight: true, axis: equation.AxisBeta},
	{labelKey: "equation.gamma.label", color: colorTools, weight: true, axis: equation.AxisGamma},
	{labelKey: "equation.knowledge.label", color: colorKnowledge, factor: equation.FactorK},
	{labelKey: "equation.context.label", color: colorContext, factor: equation.FactorC},
	{labelKey: "equation.tools.label", color: colorTools, factor: equation.FactorT},
}

// DisplayMsg replaces the display settings of a running visualizer. It is
// sent when the config file changes. The equation state is kept.
type DisplayMsg struct {
	Lang       i18n.Lang
	PlotHeight int
	Color      bool
}

// Model implements the Bubble Tea visualizer UI. Every handled key rebuilds
// the probability and the sweep curve from the current state.
type Model struct {
	config model.Config
	logger *zap.Logger

	state equation.State
	p     float64
	curve []equation.Point

	lang i18n.Lang
	tr   i18n.Translator
	keys keyMap
	help help.Model

	focus int
	view  int

	width  int
	height int
}

// NewModel constructs a visualizer model starting from cfg.State.
func NewModel(cfg model.Config, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Model{
		config: cfg,
		logger: logger,
		state:  cfg.State,
		help:   help.New(),
	}
	m.setLang(cfg.Lang)
	m.recompute()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case DisplayMsg:
		m.applyDisplay(msg)
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Decrease):
		m.adjust(-fineStep)
	case key.Matches(msg, m.keys.Increase):
		m.adjust(fineStep)
	case key.Matches(msg, m.keys.CoarseDecrease):
		m.adjust(-coarseStep)
	case key.Matches(msg, m.keys.CoarseIncrease):
		m.adjust(coarseStep)
	case key.Matches(msg, m.keys.Preset):
		m.applyPreset(presetKeys[msg.String()])
	case key.Matches(msg, m.keys.Reset):
		m.applyPreset(equation.PresetReset)
	case key.Matches(msg, m.keys.Sweep):
		m.state = m.state.WithSweep(m.state.Sweep.Next())
		m.logger.Debug("sweep changed", zap.Stringer("sweep", m.state.Sweep))
	case key.Matches(msg, m.keys.View):
		m.view = (m.view + 1) % viewCount
		return m, tea.ClearScreen
	case key.Matches(msg, m.keys.Lang):
		m.setLang(m.lang.Next())
		m.logger.Debug("language changed", zap.String("lang", string(m.lang)))
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	default:
		return m, nil
	}
	m.recompute()
	return m, nil
}

// State returns the current model input.
func (m *Model) State() equation.State {
	return m.state
}

func (m *Model) recompute() {
	m.p = m.state.Probability()
	m.curve = m.state.Curve()
}

func (m *Model) setLang(lang i18n.Lang) {
	if lang == "" {
		lang = i18n.DefaultLang
	}
	m.lang = lang
	m.tr = i18n.T(lang)
	m.keys = newKeyMap(m.tr)
}

func (m *Model) applyDisplay(msg DisplayMsg) {
	if msg.Lang != "" {
		m.setLang(msg.Lang)
	}
	if msg.PlotHeight > 0 {
		m.config.PlotHeight = msg.PlotHeight
	}
	m.config.Color = msg.Color
	m.config.Lang = m.lang
	m.logger.Info("display settings reloaded",
		zap.String("lang", string(m.lang)),
		zap.Int("plot_height", m.config.PlotHeight),
		zap.Bool("color", m.config.Color),
	)
}

func (m *Model) moveFocus(delta int) {
	count := len(sliders)
	m.focus = ((m.focus+delta)%count + count) % count
}

func (m *Model) adjust(delta float64) {
	s := sliders[m.focus]
	if s.weight {
		v := snap(m.state.Weights.Get(s.axis) + delta)
		m.state = m.state.WithWeight(s.axis, v)
		m.logger.Debug("weight changed",
			zap.Stringer("axis", s.axis),
			zap.Float64("value", v),
			zap.Float64("alpha", m.state.Weights.Alpha),
			zap.Float64("beta", m.state.Weights.Beta),
			zap.Float64("gamma", m.state.Weights.Gamma),
		)
		return
	}
	v := snap(m.state.Factors.Get(s.factor) + delta)
	m.state = m.state.WithFactor(s.factor, v)
	m.logger.Debug("factor changed", zap.Stringer("factor", s.factor), zap.Float64("value", v))
}

func (m *Model) applyPreset(name string) {
	next, err := equation.ApplyPreset(name)
	if err != nil {
		m.logger.Warn("failed to apply preset", zap.Error(err))
		return
	}
	m.state = next
	m.logger.Info("preset applied", zap.String("preset", name))
}

// snap rounds to the slider step, like a stepped range input.
func snap(v float64) float64 {
	return math.Round(v/fineStep) * fineStep
}
