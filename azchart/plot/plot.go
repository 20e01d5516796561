// Package plot assembles chart-layer specifications: an ordered list of
// indicator overlays plus top-level plot options, ready to be consumed
// by a candlestick renderer. It computes layers, it never draws them.
package plot

import (
	"github.com/ezquant/azchart/azchart/model"
)

// Panel identifies where a renderer should draw an overlay.
type Panel string

const (
	// PanelPrimary is the price panel.
	PanelPrimary Panel = "primary"
	// PanelSecondary is a separate sub-plot beneath the price panel.
	PanelSecondary Panel = "secondary"
)

type MetricStyle string

const (
	StyleBar       MetricStyle = "bar"
	StyleScatter   MetricStyle = "scatter"
	StyleLine      MetricStyle = "line"
	StyleHistogram MetricStyle = "histogram"
)

// IndicatorMetric is a single drawable line produced by an indicator.
type IndicatorMetric struct {
	Label  string
	Color  string
	Style  MetricStyle // default: line
	Values model.IndicatorSeries
}

// Indicator computes one or more chart metrics from a dataframe and
// declares which panel they belong to.
type Indicator interface {
	Name() string
	Panel() Panel
	Load(df *model.Dataframe)
	Metrics() []IndicatorMetric
}

// Overlay is one entry of the chart-layer specification.
type Overlay struct {
	Panel  Panel                 `json:"panel"`
	Label  string                `json:"label"`
	Color  string                `json:"color"`
	Style  MetricStyle           `json:"style"`
	Values model.IndicatorSeries `json:"values"`
}

// FigSize is the figure-size hint passed through to the renderer.
type FigSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

const (
	ChartTypeCandlestick = "candlestick"
	DefaultStyle         = "charles"
)

var DefaultFigSize = FigSize{Width: 10, Height: 6}

// Spec is the renderable chart-layer specification. MovingAverages is
// nil when no moving-average toggle is enabled; renderers recompute the
// averages from the window lengths, so no series is attached for them.
type Spec struct {
	Symbol         string    `json:"symbol,omitempty"`
	Type           string    `json:"type"`
	Style          string    `json:"style"`
	ShowVolume     bool      `json:"show_volume"`
	MovingAverages []int     `json:"moving_averages,omitempty"`
	Overlays       []Overlay `json:"overlays"`
	FigSize        FigSize   `json:"figsize"`
}
