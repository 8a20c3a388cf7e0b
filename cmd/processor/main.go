// Command processor runs one transparency batch: it loads a worklist of
// instrument identifiers, groups them by category, consolidates the source
// extracts, and persists the resulting calculations.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/RobiinJonsson/MarketDataAPI-sub002/internal/config"
	"github.com/RobiinJonsson/MarketDataAPI-sub002/internal/exporter"
	"github.com/RobiinJonsson/MarketDataAPI-sub002/internal/files"
	"github.com/RobiinJonsson/MarketDataAPI-sub002/internal/infrastructure"
	"github.com/RobiinJonsson/MarketDataAPI-sub002/internal/store"
	"github.com/RobiinJonsson/MarketDataAPI-sub002/internal/transparency"
)

func main() {
	configFile := flag.String("config", "", "path to YAML config file (optional)")
	worklistFile := flag.String("worklist", "", "path to the worklist CSV (identifier[,classification code] per line)")
	sourceDir := flag.String("source", "", "source extract directory (defaults to the configured FITRS directory)")
	outDir := flag.String("out", "", "export directory (defaults to the configured output directory)")
	flag.Parse()

	if *worklistFile == "" {
		slog.Error("missing required -worklist flag")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := infrastructure.MustInitializeLogger(cfg.Logging)
	defer infrastructure.CloseLogFile()

	if *sourceDir == "" {
		*sourceDir = cfg.Paths.FitrsDir
	}
	if *outDir == "" {
		*outDir = cfg.Paths.OutputDir
	}

	items, err := files.LoadWorklist(*worklistFile)
	if err != nil {
		logger.Error("failed to load worklist",
			slog.String("path", *worklistFile),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	if len(items) == 0 {
		logger.Warn("worklist is empty, nothing to do", slog.String("path", *worklistFile))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		st     store.TransparencyStore
		memory *store.MemoryStore
	)
	if cfg.Database.Enabled {
		db, err := sqlx.ConnectContext(ctx, "postgres", cfg.Database.DSN)
		if err != nil {
			logger.Error("failed to connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer db.Close()
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)

		pg := store.NewPostgresStore(db, cfg.Database.QueryTimeout)
		if err := pg.EnsureSchema(ctx); err != nil {
			logger.Error("failed to ensure database schema", slog.String("error", err.Error()))
			os.Exit(1)
		}
		st = pg
	} else {
		memory = store.NewMemoryStore()
		st = memory
		logger.Info("database disabled, persisting to in-memory store")
	}

	logger.Info("starting transparency batch run",
		slog.String("source_dir", *sourceDir),
		slog.Int("identifiers", len(items)),
		slog.Bool("database", cfg.Database.Enabled))

	pipeline := transparency.NewPipeline(*sourceDir, transparency.LiquidityConfig{
		MinVolume: cfg.Liquidity.MinVolume,
		MinCount:  cfg.Liquidity.MinCount,
	}, st)

	result, err := pipeline.Run(ctx, items)
	if err != nil {
		logger.Error("batch run aborted", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if memory != nil {
		csvWriter := exporter.NewCSVWriter(*outDir)
		if path, err := csvWriter.WriteCalculations("calculations.csv", memory.Calculations()); err != nil {
			logger.Error("failed to export calculations CSV", slog.String("error", err.Error()))
		} else {
			logger.Info("exported calculations", slog.String("path", path))
		}

		excelWriter := exporter.NewExcelWriter(*outDir)
		if path, err := excelWriter.WriteRunReport("run_report.xlsx", result, memory.Calculations()); err != nil {
			logger.Error("failed to export run report", slog.String("error", err.Error()))
		} else {
			logger.Info("exported run report", slog.String("path", path))
		}
	}

	logger.Info("batch run finished",
		slog.Int("identifiers", result.Identifiers),
		slog.Int("matched", result.Matched),
		slog.Int("succeeded", result.Succeeded),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", result.Failed))

	if result.Failed > 0 {
		os.Exit(1)
	}
}
