package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/avikara/costflow/pkg/builder"
	"github.com/avikara/costflow/pkg/distribute"
	"github.com/avikara/costflow/pkg/engine"
	"github.com/avikara/costflow/pkg/logging"
	"github.com/avikara/costflow/pkg/metrics"
	"github.com/avikara/costflow/pkg/rowset"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	pgURL := flag.String("pg", "", "PostgreSQL connection URL (overrides config)")
	hospital := flag.String("hospital", "", "Hospital identifier for tenant-scoped queries")
	out := flag.String("out", "", "Output file (default stdout)")
	format := flag.String("format", "", "Output format: csv or json")
	driverMap := flag.String("driver-map", "", "Driver label mapping YAML (default built-in)")
	flag.Parse()

	if err := run(*configPath, *pgURL, *hospital, *out, *format, *driverMap); err != nil {
		fmt.Fprintf(os.Stderr, "costflow: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, pgURL, hospital, out, format, driverMapPath string) error {
	cfg := engine.DefaultConfig()
	if configPath != "" {
		loaded, err := engine.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if pgURL != "" {
		cfg.Provider = "postgres"
		cfg.DatabaseURL = pgURL
	}
	if hospital != "" {
		cfg.HospitalID = hospital
	}
	if out != "" {
		cfg.Output.Path = out
	}
	if format != "" {
		cfg.Output.Format = format
	}
	if driverMapPath != "" {
		cfg.DriverMap = driverMapPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logging.NewJSONLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var provider rowset.Provider
	switch cfg.Provider {
	case "postgres":
		pg, err := rowset.NewPGProvider(ctx, cfg.DatabaseURL, cfg.HospitalID)
		if err != nil {
			return fmt.Errorf("connecting to postgres: %w", err)
		}
		defer pg.Close()
		provider = pg
	default:
		return fmt.Errorf("provider %q has no data source wired on the command line", cfg.Provider)
	}

	dm := builder.DefaultDriverMap()
	if cfg.DriverMap != "" {
		loaded, err := builder.LoadDriverMap(cfg.DriverMap)
		if err != nil {
			return fmt.Errorf("loading driver map: %w", err)
		}
		dm = loaded
	}

	res, err := engine.New(provider, log, metrics.DefaultRegistry(), dm).Run(ctx)
	if err != nil {
		return err
	}

	w := os.Stdout
	if cfg.Output.Path != "" {
		f, err := os.Create(cfg.Output.Path)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch cfg.Output.Format {
	case "json":
		err = distribute.WriteJSON(w, res.Records)
	default:
		err = distribute.WriteCSV(w, res.Records)
	}
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	log.Info("run written",
		logging.RunID(res.RunID),
		logging.Int("records", res.Summary.Records),
		logging.Float64("total_cost", res.Summary.TotalCost))
	return nil
}
