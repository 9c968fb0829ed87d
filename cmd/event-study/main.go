package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"maecli/internal/config"
	"maecli/internal/dataprocessing"
	"maecli/internal/eventstudy"
	"maecli/internal/exporter"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	dataDir := flag.String("data", "", "directory containing input CSV files (overrides config)")
	outputDir := flag.String("out", "", "output directory for reports (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.Paths.DataDir = *dataDir
	}
	if *outputDir != "" {
		cfg.Paths.ReportsDir = *outputDir
	}

	setupLogging(cfg.Logging)

	if err := run(context.Background(), cfg); err != nil {
		slog.Error("event study failed", "error", err)
		os.Exit(1)
	}
}

// setupLogging installs the default slog handler per configuration.
func setupLogging(cfg config.LoggingConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// run executes the full event-study workflow: load inputs, construct
// deal-level information, compute abnormal returns, expand event windows,
// build both strategy return series and the event-time panel, then print
// summaries and export the report files.
func run(ctx context.Context, cfg *config.Config) error {
	runID := uuid.New().String()
	logger := slog.Default().With("run_id", runID)
	logger.InfoContext(ctx, "starting M&A event study",
		"data_dir", cfg.Paths.DataDir,
		"reports_dir", cfg.Paths.ReportsDir,
		"window_start_day", cfg.Pipeline.WindowStartDay,
		"window_end_day", cfg.Pipeline.WindowEndDay,
	)

	if err := cfg.Paths.ValidateInputs(); err != nil {
		return err
	}

	// 1: Load the input data.
	rets, err := dataprocessing.LoadReturnTable(ctx, cfg.Paths.ReturnsPath())
	if err != nil {
		return fmt.Errorf("load returns: %w", err)
	}
	records, err := dataprocessing.LoadDealRecords(ctx, cfg.Paths.DealsPath())
	if err != nil {
		return fmt.Errorf("load deals: %w", err)
	}
	factors, err := dataprocessing.LoadFactorTable(ctx, cfg.Paths.FactorsPath())
	if err != nil {
		return fmt.Errorf("load factors: %w", err)
	}

	// 2: Construct deal-level information.
	deals := eventstudy.BuildDeals(records)
	logger.InfoContext(ctx, "constructed deals",
		"raw_records", len(records),
		"deals", len(deals),
	)

	// 3: Compute abnormal returns.
	arets := eventstudy.AbnormalReturns(rets, factors)

	// 4: Expand events across event windows.
	cal := eventstudy.NewTradingCalendar(rets.Dates())
	events, err := eventstudy.ExpandEventsWindow(ctx, deals, cal,
		cfg.Pipeline.WindowStartDay, cfg.Pipeline.WindowEndDay)
	if errors.Is(err, eventstudy.ErrNoEventDates) {
		logger.WarnContext(ctx, "no deal window intersects the return data; nothing to report")
		return nil
	}
	if err != nil {
		return err
	}

	// 5: Construct trading strategy returns.
	buyTgtSellAcq := eventstudy.BuyTargetSellAcquirer(events, rets)
	buyTgtSellMkt := eventstudy.BuyTargetSellMarket(events, arets)

	// 6: Build the event-time panel for target returns.
	panel := eventstudy.TargetReturnsByEventTime(rets, events)

	// 7: Compute event-time positive-return proportions.
	propPositive := eventstudy.ProportionPositive(panel)

	acqSummary := eventstudy.SummarizeSeries(buyTgtSellAcq.Values())
	mktSummary := eventstudy.SummarizeSeries(buyTgtSellMkt.Values())

	// Test the proportions against the 0.5 coin-flip benchmark.
	shifted := make([]float64, 0, len(propPositive))
	for _, v := range propPositive.Values() {
		shifted = append(shifted, v-0.5)
	}
	propSummary := eventstudy.SummarizeSeries(shifted)

	printSummary("buy target, sell acquirer", acqSummary)
	printSummary("buy target, sell market", mktSummary)
	printSummary("proportion positive - 0.5", propSummary)

	return export(cfg, exporter.Report{
		RunID:                 runID,
		GeneratedAt:           time.Now().UTC(),
		NumDeals:              len(deals),
		NumEventRows:          len(events),
		BuyTargetSellAcquirer: buyTgtSellAcq,
		BuyTargetSellMarket:   buyTgtSellMkt,
		ProportionPositive:    propPositive,
		Panel:                 panel,
		AcquirerSummary:       acqSummary,
		MarketSummary:         mktSummary,
	})
}

// printSummary prints one series summary block to stdout.
func printSummary(name string, s eventstudy.SeriesSummary) {
	fmt.Printf("%s\n", name)
	fmt.Printf("  mean:   %12.6f\n", s.Mean)
	fmt.Printf("  nobs:   %12d\n", s.Nobs)
	fmt.Printf("  stddev: %12.6f\n", s.StdDev)
	fmt.Printf("  tstat:  %12.6f\n", s.TStat)
	fmt.Println()
}

// export writes all report files into the configured reports directory.
func export(cfg *config.Config, report exporter.Report) error {
	if err := cfg.Paths.EnsureReportsDir(); err != nil {
		return err
	}

	csvWriter := exporter.NewCSVWriter(cfg.Paths)
	if err := csvWriter.WriteReturnSeries("buy_tgt_sell_acq_rets.csv", "ret", report.BuyTargetSellAcquirer); err != nil {
		return err
	}
	if err := csvWriter.WriteReturnSeries("buy_tgt_sell_mkt_rets.csv", "aret", report.BuyTargetSellMarket); err != nil {
		return err
	}
	if err := csvWriter.WriteEventTimeSeries("prop_positive_tgt_rets.csv", "prop_positive", report.ProportionPositive); err != nil {
		return err
	}
	if err := csvWriter.WritePanel("tgt_rets_by_event_time.csv", report.Panel); err != nil {
		return err
	}

	workbookPath := filepath.Join(cfg.Paths.ReportsDir, "event_study.xlsx")
	return exporter.WriteWorkbook(workbookPath, report)
}
