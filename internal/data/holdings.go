// Package data provides the file-backed collaborators the engine consumes:
// a holdings provider reading YAML portfolio documents and a price-history
// provider reading per-symbol CSV files. Network-backed providers live
// outside this repository and satisfy the same shapes.
package data

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/vestview/vestview/internal/portfolio"
)

// weightSumTolerance bounds how far holding weights may drift from 100%
// before a warning is logged. Drift is expected from floating point and is
// never an error; the engine treats weights as given.
const weightSumTolerance = 0.5

// PortfolioDoc is one portfolio definition on disk. The ID is the identifier
// the holdings provider keys portfolios by; a fresh one is assigned when the
// document omits it.
type PortfolioDoc struct {
	ID         uuid.UUID                `yaml:"-"`
	RawID      string                   `yaml:"id"`
	Name       string                   `yaml:"name"`
	BaseAmount float64                  `yaml:"base_amount"`
	Holdings   []portfolio.AssetHolding `yaml:"holdings"`
}

// LoadPortfolio reads and validates a portfolio document. BaseAmount may be
// omitted; callers then fall back to the configured engine default.
func LoadPortfolio(path string) (*PortfolioDoc, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc PortfolioDoc
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse portfolio %s: %w", path, err)
	}
	if doc.RawID == "" {
		doc.ID = uuid.New()
	} else {
		doc.ID, err = uuid.Parse(doc.RawID)
		if err != nil {
			return nil, fmt.Errorf("portfolio %s: bad id %q: %w", path, doc.RawID, err)
		}
	}
	if len(doc.Holdings) == 0 {
		return nil, fmt.Errorf("portfolio %s has no holdings", path)
	}
	for i, h := range doc.Holdings {
		if h.Symbol == "" {
			return nil, fmt.Errorf("portfolio %s: holding %d has no symbol", path, i)
		}
	}

	sum := 0.0
	for _, h := range doc.Holdings {
		sum += h.WeightPercent
	}
	if sum < 100-weightSumTolerance || sum > 100+weightSumTolerance {
		log.Warn().
			Str("portfolio", doc.Name).
			Float64("weight_sum", sum).
			Msg("Holding weights do not sum to 100")
	}

	return &doc, nil
}
