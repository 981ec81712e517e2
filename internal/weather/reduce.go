package weather

import "errors"

// ErrEmptyWindow is returned when the upstream response contains no daily
// records, which happens for degenerate date ranges.
var ErrEmptyWindow = errors.New("weather window contains no daily records")

// TempSummary is the reduction of a day sequence to its temperature extremes
// and mean.
type TempSummary struct {
	Min float64
	Max float64
	Avg float64
}

// Reduce computes the minimum of all daily minima, the maximum of all daily
// maxima, and the arithmetic mean of the daily mean temperatures. An empty
// day list yields ErrEmptyWindow rather than a division by zero.
func Reduce(days []Day) (TempSummary, error) {
	if len(days) == 0 {
		return TempSummary{}, ErrEmptyWindow
	}

	summary := TempSummary{
		Min: days[0].TempMin,
		Max: days[0].TempMax,
	}
	var sum float64

	for _, d := range days {
		if d.TempMin < summary.Min {
			summary.Min = d.TempMin
		}
		if d.TempMax > summary.Max {
			summary.Max = d.TempMax
		}
		sum += d.Temp
	}

	summary.Avg = sum / float64(len(days))
	return summary, nil
}
