// Package indicator provides batch indicator computations over price
// columns. Functions are pure: they read the input series, allocate a
// fresh result, and keep no state between calls.
package indicator

import "github.com/ezquant/azchart/azchart/model"

// RSI computes the Relative Strength Index of a close-price series.
//
// Gains and losses are averaged with a simple rolling mean over the
// trailing period values, with a minimum window of one: early indices
// average over whatever history exists instead of staying undefined
// until a full period is available. The value at index 0 is always
// undefined (no delta), and any index whose window has zero gain and
// zero loss is undefined too, since RS degenerates to 0/0 there.
func RSI(values model.Series[float64], period int) model.IndicatorSeries {
	n := values.Length()
	result := make(model.IndicatorSeries, n)
	if n == 0 || period <= 0 {
		return result
	}

	// Index 0 has no delta; it enters the rolling window as a zero
	// gain and a zero loss.
	gains := make([]float64, n)
	losses := make([]float64, n)
	for i := 1; i < n; i++ {
		delta := values[i] - values[i-1]
		if delta > 0 {
			gains[i] = delta
		} else {
			losses[i] = -delta
		}
	}

	for i := 0; i < n; i++ {
		start := i - period + 1
		if start < 0 {
			start = 0
		}

		var sumGain, sumLoss float64
		for j := start; j <= i; j++ {
			sumGain += gains[j]
			sumLoss += losses[j]
		}

		window := float64(i - start + 1)
		avgGain := sumGain / window
		avgLoss := sumLoss / window

		switch {
		case avgGain == 0 && avgLoss == 0:
			// No movement in the window: RS is 0/0, RSI stays undefined.
		case avgLoss == 0:
			// RS grows without bound, the formula converges to 100.
			result[i] = model.NewValue(100)
		default:
			rs := avgGain / avgLoss
			result[i] = model.NewValue(100 - 100/(1+rs))
		}
	}

	return result
}
