// Package indicator provides plot.Indicator descriptors wrapping the
// batch computations in azchart/indicator.
package indicator

import (
	"github.com/ezquant/azchart/azchart/indicator"
	"github.com/ezquant/azchart/azchart/model"
	"github.com/ezquant/azchart/azchart/plot"
)

func RSI(period int, color string) plot.Indicator {
	return &rsi{
		Period: period,
		Color:  color,
	}
}

type rsi struct {
	Period int
	Color  string
	Values model.IndicatorSeries
}

func (r rsi) Name() string {
	return "RSI"
}

func (r rsi) Panel() plot.Panel {
	return plot.PanelSecondary
}

func (r *rsi) Load(df *model.Dataframe) {
	r.Values = indicator.RSI(df.Close, r.Period)
}

func (r rsi) Metrics() []plot.IndicatorMetric {
	return []plot.IndicatorMetric{
		{
			Label:  "RSI",
			Color:  r.Color,
			Style:  plot.StyleLine,
			Values: r.Values,
		},
	}
}
