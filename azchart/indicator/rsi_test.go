package indicator

import (
	"testing"

	"github.com/ezquant/azchart/azchart/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRSIUptrend(t *testing.T) {
	// Strictly increasing closes: zero loss everywhere, so every defined
	// index must be exactly 100.
	closes := make(model.Series[float64], 30)
	for i := range closes {
		closes[i] = float64(i + 1)
	}

	rsi := RSI(closes, 14)

	require.Equal(t, 30, rsi.Len())
	assert.False(t, rsi.Defined(0), "index 0 has no delta")
	for i := 1; i < 30; i++ {
		value, ok := rsi.At(i)
		require.True(t, ok, "index %d", i)
		assert.Equal(t, 100.0, value, "index %d", i)
	}
}

func TestRSIDowntrend(t *testing.T) {
	closes := model.Series[float64]{30, 29, 28, 27, 26}

	rsi := RSI(closes, 14)

	assert.False(t, rsi.Defined(0))
	for i := 1; i < closes.Length(); i++ {
		value, ok := rsi.At(i)
		require.True(t, ok, "index %d", i)
		assert.Equal(t, 0.0, value, "index %d", i)
	}
}

func TestRSIFlatSeriesUndefined(t *testing.T) {
	// No movement at all: RS is 0/0 at every index, so RSI must stay
	// undefined instead of defaulting to some number.
	closes := model.Series[float64]{7, 7, 7, 7, 7, 7}

	rsi := RSI(closes, 14)

	require.Equal(t, 6, rsi.Len())
	assert.Zero(t, rsi.DefinedCount())
}

func TestRSILeadingFlatThenMove(t *testing.T) {
	closes := model.Series[float64]{5, 5, 3}

	rsi := RSI(closes, 14)

	assert.False(t, rsi.Defined(0))
	assert.False(t, rsi.Defined(1), "window holds zero gain and zero loss")

	value, ok := rsi.At(2)
	require.True(t, ok)
	assert.Equal(t, 0.0, value)
}

func TestRSIMinimumWindow(t *testing.T) {
	// Values are produced long before a full period of history exists.
	closes := model.Series[float64]{1, 2, 1}

	rsi := RSI(closes, 14)

	value, ok := rsi.At(1)
	require.True(t, ok)
	assert.Equal(t, 100.0, value)

	// Window {0,1,2}: one gain of 1, one loss of 1, RS = 1.
	value, ok = rsi.At(2)
	require.True(t, ok)
	assert.Equal(t, 50.0, value)
}

func TestRSITrailingWindow(t *testing.T) {
	// Once the period is full, only the trailing window counts.
	closes := model.Series[float64]{1, 2, 3, 2}

	rsi := RSI(closes, 2)

	value, ok := rsi.At(3)
	require.True(t, ok)
	assert.Equal(t, 50.0, value, "window {+1, -1} gives RS = 1")
}

func TestRSIBounds(t *testing.T) {
	closes := model.Series[float64]{
		44.34, 44.09, 44.15, 43.61, 44.33, 44.83, 45.10, 45.42,
		45.84, 46.08, 45.89, 46.03, 45.61, 46.28, 46.28, 46.00,
		46.03, 46.41, 46.22, 45.64, 46.21, 46.25, 45.71, 46.45,
	}

	rsi := RSI(closes, 14)

	require.Equal(t, closes.Length(), rsi.Len())
	for i := 0; i < rsi.Len(); i++ {
		if value, ok := rsi.At(i); ok {
			assert.GreaterOrEqual(t, value, 0.0, "index %d", i)
			assert.LessOrEqual(t, value, 100.0, "index %d", i)
		}
	}
}

func TestRSIEdgeInputs(t *testing.T) {
	assert.Zero(t, RSI(nil, 14).Len())
	assert.Zero(t, RSI(model.Series[float64]{1, 2, 3}, 0).DefinedCount())
}
