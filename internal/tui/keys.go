package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/verte-zerg/taskeq/internal/i18n"
)

type keyMap struct {
	Up             key.Binding
	Down           key.Binding
	Decrease       key.Binding
	Increase       key.Binding
	CoarseDecrease key.Binding
	CoarseIncrease key.Binding
	Preset         key.Binding
	Reset          key.Binding
	Sweep          key.Binding
	View           key.Binding
	Lang           key.Binding
	Help           key.Binding
	Quit           key.Binding
}

func newKeyMap(t i18n.Translator) keyMap {
	return keyMap{
		Up:             key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", t("help.focus"))),
		Down:           key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", t("help.focus"))),
		Decrease:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", t("help.adjust"))),
		Increase:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", t("help.adjust"))),
		CoarseDecrease: key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("⇧←/⇧→", t("help.coarse"))),
		CoarseIncrease: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("⇧→", t("help.coarse"))),
		Preset:         key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", t("help.presets"))),
		Reset:          key.NewBinding(key.WithKeys("r", "0"), key.WithHelp("r", t("help.reset"))),
		Sweep:          key.NewBinding(key.WithKeys("s"), key.WithHelp("s", t("help.sweep"))),
		View:           key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", t("help.view"))),
		Lang:           key.NewBinding(key.WithKeys("L"), key.WithHelp("L", t("help.lang"))),
		Help:           key.NewBinding(key.WithKeys("?"), key.WithHelp("?", t("help.help"))),
		Quit:           key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", t("app.quit"))),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Decrease, k.Preset, k.Sweep, k.View, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Decrease, k.CoarseDecrease},
		{k.Preset, k.Reset, k.Sweep},
		{k.View, k.Lang, k.Help, k.Quit},
	}
}
