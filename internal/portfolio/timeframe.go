package portfolio

import (
	"fmt"
	"strings"
	"time"
)

// Timeframe is a dashboard lookback window token.
type Timeframe string

const (
	Timeframe1D  Timeframe = "1D"
	Timeframe5D  Timeframe = "5D"
	Timeframe1M  Timeframe = "1M"
	Timeframe6M  Timeframe = "6M"
	TimeframeYTD Timeframe = "YTD"
	Timeframe1Y  Timeframe = "1Y"
	Timeframe5Y  Timeframe = "5Y"
	TimeframeMax Timeframe = "MAX"
)

var validTimeframes = []Timeframe{
	Timeframe1D, Timeframe5D, Timeframe1M, Timeframe6M,
	TimeframeYTD, Timeframe1Y, Timeframe5Y, TimeframeMax,
}

// ParseTimeframe validates a timeframe token, case-insensitively. An unknown
// token is a caller contract violation, not a data-quality fallback.
func ParseTimeframe(s string) (Timeframe, error) {
	tf := Timeframe(strings.ToUpper(strings.TrimSpace(s)))
	for _, valid := range validTimeframes {
		if tf == valid {
			return tf, nil
		}
	}
	return "", fmt.Errorf("%w: %q (valid: %s)", ErrInvalidTimeframe, s, joinTimeframes())
}

func joinTimeframes() string {
	tokens := make([]string, len(validTimeframes))
	for i, tf := range validTimeframes {
		tokens[i] = string(tf)
	}
	return strings.Join(tokens, ", ")
}

// StartTime resolves the window start relative to a reference time. MAX
// resolves to the Unix epoch; the price history itself then bounds the curve.
func (tf Timeframe) StartTime(now time.Time) time.Time {
	switch tf {
	case Timeframe1D:
		return now.AddDate(0, 0, -1)
	case Timeframe5D:
		return now.AddDate(0, 0, -5)
	case Timeframe1M:
		return now.AddDate(0, 0, -30)
	case Timeframe6M:
		return now.AddDate(0, 0, -180)
	case TimeframeYTD:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	case Timeframe1Y:
		return now.AddDate(0, 0, -365)
	case Timeframe5Y:
		return now.AddDate(0, 0, -5*365)
	case TimeframeMax:
		return time.Unix(0, 0).UTC()
	default:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	}
}

// PeriodText is the human phrase for the window, used in metric descriptions.
func (tf Timeframe) PeriodText() string {
	switch tf {
	case Timeframe1D:
		return "1 day"
	case Timeframe5D:
		return "5 days"
	case Timeframe1M:
		return "1 month"
	case Timeframe6M:
		return "6 months"
	case TimeframeYTD:
		return "YTD"
	case Timeframe1Y:
		return "1 year"
	case Timeframe5Y:
		return "5 years"
	case TimeframeMax:
		return "all time"
	default:
		return "period"
	}
}

// ClipSeries drops price points before the timeframe's start relative to now.
// The input is not modified.
func ClipSeries(series []PricePoint, tf Timeframe, now time.Time) []PricePoint {
	start := tf.StartTime(now).Format(DateLayout)
	clipped := make([]PricePoint, 0, len(series))
	for _, p := range series {
		if p.Date >= start {
			clipped = append(clipped, p)
		}
	}
	return clipped
}
