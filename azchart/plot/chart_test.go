package plot

import (
	"testing"
	"time"

	"github.com/ezquant/azchart/azchart/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIndicator struct {
	name    string
	panel   Panel
	metrics []IndicatorMetric
	loads   int
}

func (f *fakeIndicator) Name() string               { return f.name }
func (f *fakeIndicator) Panel() Panel               { return f.panel }
func (f *fakeIndicator) Load(_ *model.Dataframe)    { f.loads++ }
func (f *fakeIndicator) Metrics() []IndicatorMetric { return f.metrics }

func testDataframe(n int) *model.Dataframe {
	candles := make([]model.Candle, n)
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	for i := range candles {
		price := float64(i + 1)
		candles[i] = model.Candle{
			Symbol: "AAPL",
			Time:   start.AddDate(0, 0, i),
			Open:   price, High: price, Low: price, Close: price,
			Volume: 100,
		}
	}
	return model.NewDataframe("AAPL", candles)
}

func TestChartDefaults(t *testing.T) {
	spec, err := NewChart().Spec(testDataframe(5), Toggles{Volume: true})

	require.NoError(t, err)
	assert.Equal(t, "AAPL", spec.Symbol)
	assert.Equal(t, ChartTypeCandlestick, spec.Type)
	assert.Equal(t, DefaultStyle, spec.Style)
	assert.True(t, spec.ShowVolume)
	assert.Nil(t, spec.MovingAverages)
	assert.Empty(t, spec.Overlays)
	assert.Equal(t, FigSize{Width: 10, Height: 6}, spec.FigSize)
}

func TestChartOptions(t *testing.T) {
	spec, err := NewChart(
		WithStyle("yahoo"),
		WithFigSize(16, 9),
	).Spec(testDataframe(5), Toggles{})

	require.NoError(t, err)
	assert.Equal(t, "yahoo", spec.Style)
	assert.Equal(t, FigSize{Width: 16, Height: 9}, spec.FigSize)
}

func TestChartFlattensMetrics(t *testing.T) {
	values := model.IndicatorSeries{model.Undefined(), model.NewValue(1)}
	ind := &fakeIndicator{
		name:  "fake",
		panel: PanelSecondary,
		metrics: []IndicatorMetric{
			{Label: "a", Color: "green", Values: values},
			{Label: "b", Color: "purple", Style: StyleHistogram, Values: values},
		},
	}

	spec, err := NewChart(WithIndicators(ind)).Spec(testDataframe(2), Toggles{})

	require.NoError(t, err)
	assert.Equal(t, 1, ind.loads)
	require.Len(t, spec.Overlays, 2)

	assert.Equal(t, PanelSecondary, spec.Overlays[0].Panel)
	assert.Equal(t, "a", spec.Overlays[0].Label)
	assert.Equal(t, StyleLine, spec.Overlays[0].Style, "style defaults to line")
	assert.Equal(t, StyleHistogram, spec.Overlays[1].Style)
	assert.Equal(t, values, spec.Overlays[0].Values)
}

func TestChartEmptySeries(t *testing.T) {
	ind := &fakeIndicator{name: "fake", panel: PanelPrimary}

	spec, err := NewChart(WithIndicators(ind)).Spec(testDataframe(0), Toggles{RSI: true})

	assert.ErrorIs(t, err, model.ErrEmptySeries)
	assert.Nil(t, spec)
	assert.Zero(t, ind.loads, "no indicator work on a failed validation")
}
