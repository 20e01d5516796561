// Package azchart turns an OHLCV series and a set of feature toggles
// into a declarative candlestick chart-layer specification. Fetching
// the series and rendering the specification are the caller's problem.
package azchart

import (
	"github.com/ezquant/azchart/azchart/model"
	"github.com/ezquant/azchart/azchart/plot"
	"github.com/ezquant/azchart/azchart/plot/indicator"
)

type (
	Candle    = model.Candle
	Dataframe = model.Dataframe
	Toggles   = plot.Toggles
)

// Fixed wiring for the toggle-driven indicators. RSI always goes to the
// secondary panel, Bollinger Bands always overlay the price panel.
const (
	rsiPeriod = 14
	rsiColor  = "blue"

	bbandsWindow = 20
	bbandsStdDev = 2.0
	bbandsColor  = "red"
)

// Compose validates the dataframe, computes the indicators enabled by
// the toggles and assembles the chart-layer specification. Additional
// plot options (style, figure size, custom indicators) are applied after
// the toggle-driven ones, so custom overlays follow the built-in ones.
// Any validation failure is returned to the caller unchanged.
func Compose(df *model.Dataframe, toggles plot.Toggles, options ...plot.Option) (*plot.Spec, error) {
	var builtin []plot.Option

	if toggles.RSI {
		builtin = append(builtin, plot.WithIndicators(indicator.RSI(rsiPeriod, rsiColor)))
	}

	if toggles.BBands {
		builtin = append(builtin, plot.WithIndicators(indicator.BollingerBands(bbandsWindow, bbandsStdDev, bbandsColor)))
	}

	chart := plot.NewChart(append(builtin, options...)...)

	return chart.Spec(df, toggles)
}
