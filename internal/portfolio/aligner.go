package portfolio

import (
	"fmt"
	"sort"
)

// AlignedSeries is the result of merging per-asset price series onto a common
// sorted date axis. The common start date is the latest first date across all
// non-empty series, so no asset is ever valued from extrapolated data at the
// start of the curve.
type AlignedSeries struct {
	startDate string
	axis      []string            // union of dates >= startDate, ascending
	prices    []map[string]float64 // per-series exact date -> close
	dates     [][]string          // per-series sorted dates, for forward-fill
}

// AlignSeries merges one price series per asset onto a common axis. Input
// series are defensively sorted; duplicate dates within a series keep the last
// occurrence. Empty series are tolerated and contribute nothing. Malformed
// dates are caller contract violations and return an error.
func AlignSeries(seriesList [][]PricePoint) (*AlignedSeries, error) {
	a := &AlignedSeries{
		prices: make([]map[string]float64, len(seriesList)),
		dates:  make([][]string, len(seriesList)),
	}

	for i, series := range seriesList {
		a.prices[i] = make(map[string]float64, len(series))
		for _, p := range series {
			if _, err := parseDate(p.Date); err != nil {
				return nil, fmt.Errorf("series %d: %w: %q", i, ErrMalformedDate, p.Date)
			}
			if _, seen := a.prices[i][p.Date]; !seen {
				a.dates[i] = append(a.dates[i], p.Date)
			}
			a.prices[i][p.Date] = p.Close
		}
		// ISO dates sort lexically.
		sort.Strings(a.dates[i])

		if len(a.dates[i]) == 0 {
			continue
		}
		if first := a.dates[i][0]; first > a.startDate {
			a.startDate = first
		}
	}

	if a.startDate == "" {
		return a, nil
	}

	axisSet := make(map[string]struct{})
	for i := range a.dates {
		for _, d := range a.dates[i] {
			if d >= a.startDate {
				axisSet[d] = struct{}{}
			}
		}
	}
	a.axis = make([]string, 0, len(axisSet))
	for d := range axisSet {
		a.axis = append(a.axis, d)
	}
	sort.Strings(a.axis)

	return a, nil
}

// StartDate returns the common start date. ok is false when every input series
// was empty and no curve can be computed.
func (a *AlignedSeries) StartDate() (date string, ok bool) {
	return a.startDate, a.startDate != ""
}

// Axis returns the common date axis, ascending. Empty when all series were empty.
func (a *AlignedSeries) Axis() []string {
	return a.axis
}

// SeriesCount returns the number of aligned input series.
func (a *AlignedSeries) SeriesCount() int {
	return len(a.prices)
}

// PriceAt returns the price of series i on the given date. Missing dates
// (non-trading days for that asset) forward-fill from the most recent prior
// known price. ok is false when the asset has no price at or before the date;
// callers skip that asset's contribution rather than treating it as an error.
func (a *AlignedSeries) PriceAt(i int, date string) (price float64, ok bool) {
	if i < 0 || i >= len(a.prices) {
		return 0, false
	}
	if p, exists := a.prices[i][date]; exists {
		return p, true
	}
	// Forward-fill: last known date strictly before the requested one.
	dates := a.dates[i]
	idx := sort.SearchStrings(dates, date)
	if idx == 0 {
		return 0, false
	}
	return a.prices[i][dates[idx-1]], true
}

// FirstPriceFrom returns the first known price of series i at or after the
// given date, used to normalize an asset's contribution to its value at the
// common start date.
func (a *AlignedSeries) FirstPriceFrom(i int, date string) (price float64, ok bool) {
	if i < 0 || i >= len(a.prices) {
		return 0, false
	}
	dates := a.dates[i]
	idx := sort.SearchStrings(dates, date)
	if idx >= len(dates) {
		return 0, false
	}
	return a.prices[i][dates[idx]], true
}
