package indicator

import (
	"math"

	"github.com/ezquant/azchart/azchart/model"
)

// BollingerBands computes the upper and lower Bollinger Bands of a
// close-price series: rolling mean ± numStdDev times the rolling sample
// standard deviation over a strict trailing window. Unlike RSI there is
// no minimum-window relaxation; both bands are undefined until a full
// window of observations exists. Window must be at least 2 for the
// sample deviation to exist; smaller windows yield all-undefined bands.
func BollingerBands(values model.Series[float64], window int, numStdDev float64) (upper, lower model.IndicatorSeries) {
	n := values.Length()
	upper = make(model.IndicatorSeries, n)
	lower = make(model.IndicatorSeries, n)
	if window < 2 {
		return upper, lower
	}

	for i := window - 1; i < n; i++ {
		var sum float64
		for j := i - window + 1; j <= i; j++ {
			sum += values[j]
		}
		mean := sum / float64(window)

		var squares float64
		for j := i - window + 1; j <= i; j++ {
			d := values[j] - mean
			squares += d * d
		}
		std := math.Sqrt(squares / float64(window-1))

		upper[i] = model.NewValue(mean + numStdDev*std)
		lower[i] = model.NewValue(mean - numStdDev*std)
	}

	return upper, lower
}
