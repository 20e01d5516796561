package plot

import "github.com/ezquant/azchart/azchart/model"

// Chart builds chart-layer specifications from a dataframe and a set of
// feature toggles. A Chart holds only configuration; every call to Spec
// computes fresh indicator series.
type Chart struct {
	style      string
	figsize    FigSize
	indicators []Indicator
}

type Option func(*Chart)

// WithStyle overrides the default renderer style name.
func WithStyle(style string) Option {
	return func(chart *Chart) {
		chart.style = style
	}
}

// WithFigSize overrides the default figure-size hint.
func WithFigSize(width, height int) Option {
	return func(chart *Chart) {
		chart.figsize = FigSize{Width: width, Height: height}
	}
}

// WithIndicators appends indicator descriptors to the chart, in order.
func WithIndicators(indicators ...Indicator) Option {
	return func(chart *Chart) {
		chart.indicators = append(chart.indicators, indicators...)
	}
}

func NewChart(options ...Option) *Chart {
	chart := &Chart{
		style:   DefaultStyle,
		figsize: DefaultFigSize,
	}

	for _, option := range options {
		option(chart)
	}

	return chart
}

// Spec validates the dataframe, loads every configured indicator and
// assembles the chart-layer specification. A validation failure is
// returned unchanged and no indicator is computed.
func (c *Chart) Spec(df *model.Dataframe, toggles Toggles) (*Spec, error) {
	if err := df.Validate(); err != nil {
		return nil, err
	}

	overlays := make([]Overlay, 0, len(c.indicators))
	for _, ind := range c.indicators {
		ind.Load(df)
		for _, metric := range ind.Metrics() {
			style := metric.Style
			if style == "" {
				style = StyleLine
			}
			overlays = append(overlays, Overlay{
				Panel:  ind.Panel(),
				Label:  metric.Label,
				Color:  metric.Color,
				Style:  style,
				Values: metric.Values,
			})
		}
	}

	return &Spec{
		Symbol:         df.Symbol,
		Type:           ChartTypeCandlestick,
		Style:          c.style,
		ShowVolume:     toggles.Volume,
		MovingAverages: MovingAverages(toggles),
		Overlays:       overlays,
		FigSize:        c.figsize,
	}, nil
}
