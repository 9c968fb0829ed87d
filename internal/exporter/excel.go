package exporter

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"maecli/internal/eventstudy"
)

// Workbook sheet names.
const (
	sheetSummary        = "Summary"
	sheetBuyTgtSellAcq  = "BuyTgtSellAcq"
	sheetBuyTgtSellMkt  = "BuyTgtSellMkt"
	sheetPropPositive   = "PropPositive"
	sheetEventTimePanel = "EventTimePanel"
)

// Report bundles a complete pipeline run for export.
type Report struct {
	RunID       string
	GeneratedAt time.Time

	NumDeals     int
	NumEventRows int

	BuyTargetSellAcquirer eventstudy.ReturnSeries
	BuyTargetSellMarket   eventstudy.ReturnSeries
	ProportionPositive    eventstudy.EventTimeSeries
	Panel                 *eventstudy.EventTimePanel

	AcquirerSummary eventstudy.SeriesSummary
	MarketSummary   eventstudy.SeriesSummary
}

// WriteWorkbook writes the full report as a single Excel workbook with one
// sheet per result and a metadata sheet for the run.
func WriteWorkbook(path string, report Report) error {
	slog.Info("writing Excel report",
		slog.String("file", path),
		slog.String("run_id", report.RunID))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeSummarySheet(f, report); err != nil {
		return err
	}
	if err := writeSeriesSheet(f, sheetBuyTgtSellAcq, "ret", report.BuyTargetSellAcquirer); err != nil {
		return err
	}
	if err := writeSeriesSheet(f, sheetBuyTgtSellMkt, "aret", report.BuyTargetSellMarket); err != nil {
		return err
	}
	if err := writeProportionSheet(f, report.ProportionPositive); err != nil {
		return err
	}
	if report.Panel != nil {
		if err := writePanelSheet(f, report.Panel); err != nil {
			return err
		}
	}

	// The default sheet excelize creates is replaced by Summary.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, report Report) error {
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheetSummary, err)
	}

	rows := [][]interface{}{
		{"run_id", report.RunID},
		{"generated_at", report.GeneratedAt.Format(time.RFC3339)},
		{"deals", report.NumDeals},
		{"expanded_rows", report.NumEventRows},
		{},
		{"strategy", "mean", "nobs", "stddev", "tstat"},
		summaryRow("buy target / sell acquirer", report.AcquirerSummary),
		summaryRow("buy target / sell market", report.MarketSummary),
	}
	return writeRows(f, sheetSummary, rows)
}

func summaryRow(name string, s eventstudy.SeriesSummary) []interface{} {
	return []interface{}{name, cellValue(s.Mean), s.Nobs, cellValue(s.StdDev), cellValue(s.TStat)}
}

func writeSeriesSheet(f *excelize.File, sheet, valueHeader string, series eventstudy.ReturnSeries) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	rows := make([][]interface{}, 0, len(series)+1)
	rows = append(rows, []interface{}{"date", valueHeader})
	for _, p := range series {
		rows = append(rows, []interface{}{formatDate(p.Date), p.Value})
	}
	return writeRows(f, sheet, rows)
}

func writeProportionSheet(f *excelize.File, series eventstudy.EventTimeSeries) error {
	if _, err := f.NewSheet(sheetPropPositive); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheetPropPositive, err)
	}

	rows := make([][]interface{}, 0, len(series)+1)
	rows = append(rows, []interface{}{"event_time", "prop_positive"})
	for _, p := range series {
		rows = append(rows, []interface{}{p.EventTime, cellValue(p.Value)})
	}
	return writeRows(f, sheetPropPositive, rows)
}

func writePanelSheet(f *excelize.File, panel *eventstudy.EventTimePanel) error {
	if _, err := f.NewSheet(sheetEventTimePanel); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheetEventTimePanel, err)
	}

	dealNos := panel.DealNos()

	header := make([]interface{}, 0, len(dealNos)+1)
	header = append(header, "event_time")
	for _, dealNo := range dealNos {
		header = append(header, dealNo)
	}

	rows := make([][]interface{}, 0, panel.NumRows()+1)
	rows = append(rows, header)
	for _, eventTime := range panel.EventTimes() {
		row := make([]interface{}, 0, len(dealNos)+1)
		row = append(row, eventTime)
		for _, dealNo := range dealNos {
			if v, ok := panel.Value(eventTime, dealNo); ok {
				row = append(row, v)
			} else {
				row = append(row, nil)
			}
		}
		rows = append(rows, row)
	}
	return writeRows(f, sheetEventTimePanel, rows)
}

// writeRows writes rows starting at A1 of the given sheet.
func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("cell name for row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d of %s: %w", i+1, sheet, err)
		}
	}
	return nil
}

// cellValue maps NaN to an empty cell; Excel has no NaN literal.
func cellValue(v float64) interface{} {
	if math.IsNaN(v) {
		return nil
	}
	return v
}
