package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	appName = "VestView"
	version = "v1.0.0"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	if term.IsTerminal(int(os.Stderr.Fd())) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	rootCmd := &cobra.Command{
		Use:     "vestview",
		Short:   "Portfolio performance and risk analytics",
		Version: version,
		Long: `VestView computes buy-and-hold portfolio value curves and risk/return
metrics (volatility, max drawdown, Sortino ratio) from weighted holdings and
historical price files. It is an automation shim over the calculation engine;
network fetching and persistence live elsewhere.`,
	}

	for _, cmd := range []*cobra.Command{newMetricsCmd(), newCurveCmd(), newAllocationsCmd()} {
		cmd.Flags().String("config", "", "Engine config YAML (defaults apply when omitted)")
		cmd.Flags().String("portfolio", "portfolio.yaml", "Portfolio holdings YAML")
		cmd.Flags().String("prices", "prices", "Directory of <SYMBOL>.csv price files")
		cmd.Flags().String("timeframe", "MAX", "Lookback window (1D|5D|1M|6M|YTD|1Y|5Y|MAX)")
		rootCmd.AddCommand(cmd)
	}

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
