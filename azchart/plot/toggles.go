package plot

import "github.com/samber/lo"

// Toggles is the closed set of chart features a caller can enable.
type Toggles struct {
	Volume bool
	RSI    bool
	BBands bool
	MA5    bool
	MA20   bool
	MA60   bool
	MA200  bool
}

type mavToggle struct {
	enabled bool
	window  int
}

// MovingAverages maps the enabled moving-average toggles to their window
// lengths, always in ascending window order regardless of how the
// toggles were set. It returns nil when no toggle is enabled, so callers
// can tell "no moving averages" apart from an empty selection.
func MovingAverages(t Toggles) []int {
	entries := []mavToggle{
		{t.MA5, 5},
		{t.MA20, 20},
		{t.MA60, 60},
		{t.MA200, 200},
	}

	windows := lo.FilterMap(entries, func(e mavToggle, _ int) (int, bool) {
		return e.window, e.enabled
	})
	if len(windows) == 0 {
		return nil
	}

	return windows
}
