// Package exchange loads OHLCV series from local sources. It plays the
// data-fetch collaborator role for the chart composer: everything the
// composer assumes about its input (required columns, unique increasing
// timestamps) is enforced here.
package exchange

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ezquant/azchart/azchart/model"
	"github.com/ezquant/azchart/azchart/tools/log"

	"github.com/StudioSol/set"
	str2duration "github.com/xhit/go-str2duration/v2"
)

var (
	// ErrInsufficientData is returned when a CSV file has no data rows.
	ErrInsufficientData = errors.New("insufficient data")

	requiredColumns = []string{"time", "open", "high", "low", "close", "volume"}
)

// PairFeed describes one CSV source of candles.
type PairFeed struct {
	Symbol    string
	File      string
	Timeframe string
}

// NewCSVFeed loads a candle file and returns it as a dataframe in the
// target timeframe, resampling when the target is coarser than the
// source. The file must carry a header with the time, open, high, low,
// close and volume columns, in any order. Duplicate timestamps are
// dropped with a warning; out-of-order rows are an error.
func NewCSVFeed(targetTimeframe string, feed PairFeed) (*model.Dataframe, error) {
	candles, err := readCandles(feed)
	if err != nil {
		return nil, err
	}

	if targetTimeframe != "" && targetTimeframe != feed.Timeframe {
		candles, err = resample(candles, targetTimeframe)
		if err != nil {
			return nil, err
		}
	}

	return model.NewDataframe(feed.Symbol, candles), nil
}

func readCandles(feed PairFeed) ([]model.Candle, error) {
	file, err := os.Open(feed.File)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", feed.File, err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", feed.File, ErrInsufficientData)
	}

	columns, err := columnIndexes(rows[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", feed.File, err)
	}

	if len(rows) == 1 {
		return nil, fmt.Errorf("%s: %w", feed.File, ErrInsufficientData)
	}

	candles := make([]model.Candle, 0, len(rows)-1)
	seen := set.NewLinkedHashSetINT64()
	for line, row := range rows[1:] {
		candle, err := parseCandle(feed.Symbol, row, columns)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", feed.File, line+2, err)
		}

		timestamp := candle.Time.Unix()
		if seen.InArray(timestamp) {
			log.Warnf("csvfeed: dropping duplicate candle at %s (%s line %d)",
				candle.Time.Format(time.RFC3339), feed.File, line+2)
			continue
		}
		seen.Add(timestamp)

		if len(candles) > 0 && !candle.Time.After(candles[len(candles)-1].Time) {
			return nil, fmt.Errorf("%s line %d: candles out of order", feed.File, line+2)
		}

		candles = append(candles, candle)
	}

	return candles, nil
}

func columnIndexes(header []string) (map[string]int, error) {
	names := set.NewLinkedHashSetString(header...)
	indexes := make(map[string]int, len(header))
	for i, name := range header {
		indexes[name] = i
	}

	for _, required := range requiredColumns {
		if !names.InArray(required) {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	return indexes, nil
}

func parseCandle(symbol string, row []string, columns map[string]int) (model.Candle, error) {
	timestamp, err := parseTime(row[columns["time"]])
	if err != nil {
		return model.Candle{}, err
	}

	candle := model.Candle{Symbol: symbol, Time: timestamp}
	for name, field := range map[string]*float64{
		"open":   &candle.Open,
		"high":   &candle.High,
		"low":    &candle.Low,
		"close":  &candle.Close,
		"volume": &candle.Volume,
	} {
		*field, err = strconv.ParseFloat(row[columns[name]], 64)
		if err != nil {
			return model.Candle{}, fmt.Errorf("column %s: %w", name, err)
		}
	}

	return candle, nil
}

func parseTime(value string) (time.Time, error) {
	if timestamp, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.Unix(timestamp, 0).UTC(), nil
	}

	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unsupported time value %q", value)
}

// resample aggregates candles into buckets of the target timeframe:
// first open, max high, min low, last close, summed volume. Months are
// calendar buckets; every other timeframe is parsed as a duration.
func resample(candles []model.Candle, timeframe string) ([]model.Candle, error) {
	bucket, err := bucketFunc(timeframe)
	if err != nil {
		return nil, err
	}

	var (
		out     []model.Candle
		current model.Candle
	)

	for _, candle := range candles {
		start := bucket(candle.Time)
		if current.Empty() || !start.Equal(current.Time) {
			if !current.Empty() {
				out = append(out, current)
			}
			current = candle
			current.Time = start
			continue
		}

		if candle.High > current.High {
			current.High = candle.High
		}
		if candle.Low < current.Low {
			current.Low = candle.Low
		}
		current.Close = candle.Close
		current.Volume += candle.Volume
	}

	if !current.Empty() {
		out = append(out, current)
	}

	return out, nil
}

func bucketFunc(timeframe string) (func(time.Time) time.Time, error) {
	if timeframe == "1mo" {
		return func(t time.Time) time.Time {
			return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
		}, nil
	}

	duration, err := str2duration.ParseDuration(timeframe)
	if err != nil {
		return nil, fmt.Errorf("invalid timeframe %q: %w", timeframe, err)
	}

	return func(t time.Time) time.Time {
		return t.Truncate(duration)
	}, nil
}
