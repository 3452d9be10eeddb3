package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/vestview/vestview/internal/portfolio"
)

// LoadPriceHistory reads one symbol's price series from a CSV file with a
// "date,close" header. Rows are returned in file order; the aligner sorts
// defensively, so exports with reversed chronology load fine.
func LoadPriceHistory(path string) ([]portfolio.PricePoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read price history %s: %w", path, err)
	}
	if len(rows) == 0 {
		return []portfolio.PricePoint{}, nil
	}

	start := 0
	if isHeaderRow(rows[0]) {
		start = 1
	}

	series := make([]portfolio.PricePoint, 0, len(rows)-start)
	for i := start; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 2 {
			return nil, fmt.Errorf("price history %s: row %d has %d columns, want 2", path, i+1, len(row))
		}
		px, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("price history %s: row %d: bad close %q", path, i+1, row[1])
		}
		series = append(series, portfolio.PricePoint{
			Date:  strings.TrimSpace(row[0]),
			Close: px,
		})
	}
	return series, nil
}

func isHeaderRow(row []string) bool {
	return len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "date")
}

// LoadHistories loads one series per holding from dir, expecting
// <SYMBOL>.csv per symbol. A missing file is a data-quality gap, not an
// error: the symbol gets an empty series, contributes zero to the curve, and
// the gap is logged. Unreadable or malformed files still fail the load.
func LoadHistories(dir string, holdings []portfolio.AssetHolding) ([][]portfolio.PricePoint, error) {
	seriesList := make([][]portfolio.PricePoint, len(holdings))
	for i, h := range holdings {
		path := filepath.Join(dir, h.Symbol+".csv")
		series, err := LoadPriceHistory(path)
		if os.IsNotExist(err) {
			log.Warn().Str("symbol", h.Symbol).Str("path", path).Msg("No price history file")
			seriesList[i] = []portfolio.PricePoint{}
			continue
		}
		if err != nil {
			return nil, err
		}
		seriesList[i] = series
	}
	return seriesList, nil
}

// PriceRanges condenses loaded series into the reference prices the
// allocation projector consumes. Symbols with empty series are omitted so the
// projector applies its flat fallback.
func PriceRanges(holdings []portfolio.AssetHolding, seriesList [][]portfolio.PricePoint) map[string]portfolio.AssetPriceRange {
	ranges := make(map[string]portfolio.AssetPriceRange, len(holdings))
	for i, h := range holdings {
		if i >= len(seriesList) || len(seriesList[i]) == 0 {
			continue
		}
		series := make([]portfolio.PricePoint, len(seriesList[i]))
		copy(series, seriesList[i])
		sort.Slice(series, func(a, b int) bool { return series[a].Date < series[b].Date })
		r := portfolio.AssetPriceRange{
			StartPrice:   series[0].Close,
			CurrentPrice: series[len(series)-1].Close,
		}
		if len(series) > 1 {
			r.PreviousPrice = series[len(series)-2].Close
		}
		ranges[h.Symbol] = r
	}
	return ranges
}
