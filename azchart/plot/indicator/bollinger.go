package indicator

import (
	"fmt"

	"github.com/ezquant/azchart/azchart/indicator"
	"github.com/ezquant/azchart/azchart/model"
	"github.com/ezquant/azchart/azchart/plot"
)

func BollingerBands(window int, numStdDev float64, color string) plot.Indicator {
	return &bollingerBands{
		Window:    window,
		NumStdDev: numStdDev,
		Color:     color,
	}
}

type bollingerBands struct {
	Window    int
	NumStdDev float64
	Color     string
	Upper     model.IndicatorSeries
	Lower     model.IndicatorSeries
}

func (b bollingerBands) Name() string {
	return fmt.Sprintf("BBands(%d)", b.Window)
}

func (b bollingerBands) Panel() plot.Panel {
	return plot.PanelPrimary
}

func (b *bollingerBands) Load(df *model.Dataframe) {
	b.Upper, b.Lower = indicator.BollingerBands(df.Close, b.Window, b.NumStdDev)
}

// Metrics returns the upper and lower band as two price-panel lines
// sharing one color.
func (b bollingerBands) Metrics() []plot.IndicatorMetric {
	return []plot.IndicatorMetric{
		{
			Label:  "BB Upper",
			Color:  b.Color,
			Style:  plot.StyleLine,
			Values: b.Upper,
		},
		{
			Label:  "BB Lower",
			Color:  b.Color,
			Style:  plot.StyleLine,
			Values: b.Lower,
		},
	}
}
