package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vestview/vestview/internal/application"
	"github.com/vestview/vestview/internal/data"
	"github.com/vestview/vestview/internal/portfolio"
)

// runInputs gathers everything a subcommand needs: resolved config, the
// portfolio document, and per-holding price series clipped to the timeframe.
type runInputs struct {
	config     *application.EngineConfig
	doc        *data.PortfolioDoc
	timeframe  portfolio.Timeframe
	seriesList [][]portfolio.PricePoint
	baseAmount float64
}

func loadInputs(cmd *cobra.Command) (*runInputs, error) {
	configPath, _ := cmd.Flags().GetString("config")
	portfolioPath, _ := cmd.Flags().GetString("portfolio")
	pricesDir, _ := cmd.Flags().GetString("prices")
	timeframeToken, _ := cmd.Flags().GetString("timeframe")

	config := application.DefaultEngineConfig()
	if configPath != "" {
		loaded, err := application.LoadEngineConfig(configPath)
		if err != nil {
			return nil, err
		}
		config = *loaded
	}

	tf, err := portfolio.ParseTimeframe(timeframeToken)
	if err != nil {
		return nil, err
	}

	doc, err := data.LoadPortfolio(portfolioPath)
	if err != nil {
		return nil, fmt.Errorf("load portfolio: %w", err)
	}

	seriesList, err := data.LoadHistories(pricesDir, doc.Holdings)
	if err != nil {
		return nil, fmt.Errorf("load price histories: %w", err)
	}
	now := time.Now().UTC()
	for i := range seriesList {
		seriesList[i] = portfolio.ClipSeries(seriesList[i], tf, now)
	}

	baseAmount := doc.BaseAmount
	if baseAmount <= 0 {
		baseAmount = config.BaseAmount
	}

	return &runInputs{
		config:     &config,
		doc:        doc,
		timeframe:  tf,
		seriesList: seriesList,
		baseAmount: baseAmount,
	}, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
