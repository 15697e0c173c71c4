package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"crimedata/internal/config"
	"crimedata/internal/dataprocessing"
	"crimedata/internal/exporter"
	"crimedata/internal/files"
	"crimedata/internal/infrastructure"
	"crimedata/internal/validation"
	"crimedata/pkg/contracts"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	paths, err := cfg.ResolvePaths()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to resolve paths: %v\n", err)
		os.Exit(1)
	}

	// The log file lives in the resolved logs directory
	loggingCfg := cfg.Logging
	loggingCfg.FilePath = paths.LogFile

	logger, err := infrastructure.InitializeLogger(loggingCfg)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	exitCode := 0
	if err := run(context.Background(), cfg, paths, logger); err != nil {
		infrastructure.WithError(logger, err).Error("Extraction failed")
		fmt.Fprintf(os.Stderr, "Extraction failed: %v\n", err)
		exitCode = 1
	}

	infrastructure.CloseLogFile()
	os.Exit(exitCode)
}

// run performs one extraction: every file in the input directory is
// classified and extracted, and the consolidated series is written to the
// results file.
func run(ctx context.Context, cfg *config.Config, paths *config.Paths, logger *slog.Logger) error {
	start := time.Now()
	ctx = infrastructure.EnsureRunID(ctx)

	logger.InfoContext(ctx, "Starting crime data extraction",
		slog.String("app", config.AppName),
		slog.String("version", contracts.GetFullVersionString()),
		slog.String("series_format", contracts.SeriesFormatVersion),
		slog.Int("workers", cfg.Processing.Workers))
	paths.LogPathResolution(logger)

	validator := validation.NewFileValidator(logger)
	if _, err := validator.ValidateInputDirectory(paths.InputDir); err != nil {
		return err
	}
	if err := paths.EnsureDirectories(); err != nil {
		return err
	}
	if err := validator.ValidateOutputDirectory(filepath.Dir(paths.ResultsCSV)); err != nil {
		return err
	}

	telemetryCfg := cfg.Telemetry
	telemetryCfg.MetricsFile = paths.Resolve(telemetryCfg.MetricsFile)

	telemetry, err := infrastructure.InitializeTelemetry(telemetryCfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Telemetry shutdown failed", slog.String("error", err.Error()))
		}
	}()

	metrics, err := infrastructure.NewRunMetrics(telemetry.Meter)
	if err != nil {
		return err
	}

	inputs, err := files.NewDiscovery(paths.BaseDir).ListFiles(paths.InputDir)
	if err != nil {
		return err
	}

	extractor := dataprocessing.NewCounterExtractor(dataprocessing.NewExcelOpener(), logger, metrics)
	pipeline := dataprocessing.NewPipeline(extractor, dataprocessing.PipelineConfig{
		Workers: cfg.Processing.Workers,
		Logger:  logger,
		Tracer:  telemetry.Tracer,
		Metrics: metrics,
	})

	table := pipeline.Run(ctx, inputs)

	writer := exporter.NewCSVWriter(paths, logger)
	if err := exporter.NewResultsExporter(writer, logger).Export(paths.ResultsCSV, table); err != nil {
		return err
	}

	// Metrics are a by-product; failing to write them does not fail the run
	if err := telemetry.WriteMetricsFile(); err != nil {
		logger.WarnContext(ctx, "Failed to write metrics file", slog.String("error", err.Error()))
	}

	logger.InfoContext(ctx, "Extraction complete",
		slog.String("results", paths.ResultsCSV),
		slog.Int("rows", table.Len()),
		slog.Duration("duration", time.Since(start)))
	fmt.Printf("Results saved to %s\n", paths.ResultsCSV)

	return nil
}
