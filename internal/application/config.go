// Package application wires engine configuration from YAML files, with
// defaults applied for any absent key.
package application

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vestview/vestview/internal/portfolio"
)

// EngineConfig is the top-level analytics configuration document.
type EngineConfig struct {
	// BaseAmount is the hypothetical initial investment all percentage
	// returns are measured against.
	BaseAmount float64 `yaml:"base_amount"`

	Metrics portfolio.MetricsConfig `yaml:"metrics"`

	Valuation struct {
		// Mode is "buy_and_hold" or "rebalance".
		Mode string `yaml:"mode"`
		// RebalanceDays is the trading-day interval between rebalances,
		// consulted only when Mode is "rebalance".
		RebalanceDays int `yaml:"rebalance_days"`
	} `yaml:"valuation"`
}

// DefaultEngineConfig returns sensible defaults: $10,000 base, buy-and-hold,
// standard metric constants.
func DefaultEngineConfig() EngineConfig {
	c := EngineConfig{
		BaseAmount: 10000,
		Metrics:    portfolio.DefaultMetricsConfig(),
	}
	c.Valuation.Mode = "buy_and_hold"
	c.Valuation.RebalanceDays = 21
	return c
}

// LoadEngineConfig reads an EngineConfig from path, layering the file over the
// defaults so partial documents stay valid.
func LoadEngineConfig(path string) (*EngineConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := DefaultEngineConfig()
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse engine config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("engine config %s: %w", path, err)
	}
	return &c, nil
}

// Validate rejects configurations the engine would refuse at call time.
func (c *EngineConfig) Validate() error {
	if c.BaseAmount <= 0 {
		return fmt.Errorf("%w: %.2f", portfolio.ErrInvalidBaseAmount, c.BaseAmount)
	}
	switch c.Valuation.Mode {
	case "buy_and_hold", "rebalance":
	default:
		return fmt.Errorf("unknown valuation mode %q", c.Valuation.Mode)
	}
	if c.Valuation.Mode == "rebalance" && c.Valuation.RebalanceDays < 1 {
		return fmt.Errorf("rebalance_days must be at least 1, got %d", c.Valuation.RebalanceDays)
	}
	return nil
}

// ValuationMode resolves the configured mode to the engine's tagged variant.
func (c *EngineConfig) ValuationMode() portfolio.ValuationMode {
	if c.Valuation.Mode == "rebalance" {
		return portfolio.PeriodicRebalance(c.Valuation.RebalanceDays)
	}
	return portfolio.BuyAndHold()
}
