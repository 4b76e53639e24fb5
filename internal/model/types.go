// Package model defines shared data structures.
package model

import (
	"github.com/verte-zerg/taskeq/internal/equation"
	"github.com/verte-zerg/taskeq/internal/i18n"
)

// Config defines the resolved settings of a visualizer session.
type Config struct {
	Lang       i18n.Lang
	State      equation.State
	PlotHeight int
	Color      bool
}
