// Command pricer normalizes a semicolon-delimited option quote feed into a
// priced CSV report: gaps repaired, mid prices, intrinsic/extrinsic split,
// implied and underlying volatility per observation.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"optcli/internal/config"
	"optcli/internal/dates"
	"optcli/internal/exporter"
	"optcli/internal/infrastructure"
	"optcli/internal/pipeline"
	"optcli/internal/pricing"
	"optcli/internal/quotes"
)

func main() {
	cfgPath := flag.String("config", "", "optional YAML config file")
	input := flag.String("input", "", "input feed path (overrides config)")
	output := flag.String("output", "", "output csv path (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if *input != "" {
		cfg.Files.Input = *input
	}
	if *output != "" {
		cfg.Files.Output = *output
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	logger = logger.With(slog.String("run_id", uuid.NewString()))

	if err := run(cfg, logger); err != nil {
		logger.Error("Run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	if !dates.ValidExpiration(cfg.Option.Expiration) {
		return fmt.Errorf("expiration %q is not DD/MM/YYYY", cfg.Option.Expiration)
	}

	params := pipeline.Params{
		NominalRate:    cfg.Option.NominalRate,
		Strike:         cfg.Option.Strike,
		ExpirationDate: cfg.Option.Expiration,
		Solver: pricing.SolverParams{
			Low:       cfg.Solver.BracketLow,
			High:      cfg.Solver.BracketHigh,
			Tolerance: cfg.Solver.Tolerance,
			MaxIter:   cfg.Solver.MaxIterations,
		},
	}

	logger.Info("Starting pricing run",
		slog.String("input", cfg.Files.Input),
		slog.String("output", cfg.Files.Output),
		slog.Float64("strike", params.Strike),
		slog.String("expiration", params.ExpirationDate))

	raw, err := quotes.ReadFeedFile(cfg.Files.Input)
	if err != nil {
		return err
	}
	logger.Info("Feed loaded", slog.Int("quotes", len(raw)))

	records := pipeline.Run(raw, params, logger)

	if err := exporter.WriteRecords(cfg.Files.Output, records); err != nil {
		return err
	}

	logger.Info("Report written",
		slog.String("path", cfg.Files.Output),
		slog.Int("records", len(records)))
	return nil
}
