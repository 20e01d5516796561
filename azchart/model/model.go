package model

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrEmptySeries is returned when a dataframe has no candles at all.
	ErrEmptySeries = errors.New("empty series")

	// ErrRaggedSeries is returned when the OHLCV columns of a dataframe
	// do not all have the same length as its time index.
	ErrRaggedSeries = errors.New("series columns have mismatched lengths")
)

// Candle is a single OHLCV bar.
type Candle struct {
	Symbol string
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

func (c Candle) Empty() bool {
	return c.Time.IsZero()
}

func (c Candle) String() string {
	return fmt.Sprintf("[CANDLE] %s | %s | O:%.4f H:%.4f L:%.4f C:%.4f V:%.2f",
		c.Time.Format("2006-01-02 15:04"), c.Symbol, c.Open, c.High, c.Low, c.Close, c.Volume)
}

// Dataframe holds an OHLCV time series as index-aligned columns.
// Timestamps are unique and strictly increasing; value invariants
// (volume >= 0, high/low ordering) are the data source's responsibility.
type Dataframe struct {
	Symbol string

	Open   Series[float64]
	High   Series[float64]
	Low    Series[float64]
	Close  Series[float64]
	Volume Series[float64]

	Time       []time.Time
	LastUpdate time.Time
}

// NewDataframe builds a dataframe from a chronological slice of candles.
func NewDataframe(symbol string, candles []Candle) *Dataframe {
	df := &Dataframe{
		Symbol: symbol,
		Open:   make(Series[float64], 0, len(candles)),
		High:   make(Series[float64], 0, len(candles)),
		Low:    make(Series[float64], 0, len(candles)),
		Close:  make(Series[float64], 0, len(candles)),
		Volume: make(Series[float64], 0, len(candles)),
		Time:   make([]time.Time, 0, len(candles)),
	}

	for _, candle := range candles {
		df.Open = append(df.Open, candle.Open)
		df.High = append(df.High, candle.High)
		df.Low = append(df.Low, candle.Low)
		df.Close = append(df.Close, candle.Close)
		df.Volume = append(df.Volume, candle.Volume)
		df.Time = append(df.Time, candle.Time)
	}

	if len(df.Time) > 0 {
		df.LastUpdate = df.Time[len(df.Time)-1]
	}

	return df
}

// Len returns the number of candles in the dataframe.
func (df *Dataframe) Len() int {
	if df == nil {
		return 0
	}
	return len(df.Time)
}

// Validate checks that the dataframe can be fed to the indicator engine:
// it must contain at least one candle and every column must be aligned
// with the time index.
func (df *Dataframe) Validate() error {
	if df.Len() == 0 {
		return ErrEmptySeries
	}

	n := len(df.Time)
	for name, column := range map[string]Series[float64]{
		"open":   df.Open,
		"high":   df.High,
		"low":    df.Low,
		"close":  df.Close,
		"volume": df.Volume,
	} {
		if column.Length() != n {
			return fmt.Errorf("column %s has %d values, index has %d: %w",
				name, column.Length(), n, ErrRaggedSeries)
		}
	}

	return nil
}
