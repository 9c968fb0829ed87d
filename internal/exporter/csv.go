package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"maecli/internal/config"
	"maecli/internal/eventstudy"
)

// CSVWriter writes result files into the configured reports directory.
type CSVWriter struct {
	paths config.PathsConfig
}

// NewCSVWriter creates a new CSV writer for the given paths.
func NewCSVWriter(paths config.PathsConfig) *CSVWriter {
	return &CSVWriter{paths: paths}
}

// WriteReturnSeries writes a daily return series as date,value rows.
func (w *CSVWriter) WriteReturnSeries(fileName, valueHeader string, series eventstudy.ReturnSeries) error {
	records := make([][]string, 0, len(series))
	for _, p := range series {
		records = append(records, []string{formatDate(p.Date), formatFloat(p.Value)})
	}
	return w.write(fileName, []string{"date", valueHeader}, records)
}

// WriteEventTimeSeries writes an event-time series as event_time,value
// rows. NaN values become empty cells.
func (w *CSVWriter) WriteEventTimeSeries(fileName, valueHeader string, series eventstudy.EventTimeSeries) error {
	records := make([][]string, 0, len(series))
	for _, p := range series {
		records = append(records, []string{strconv.Itoa(p.EventTime), formatFloat(p.Value)})
	}
	return w.write(fileName, []string{"event_time", valueHeader}, records)
}

// WritePanel writes an event-time panel with one column per deal number;
// missing cells are left empty.
func (w *CSVWriter) WritePanel(fileName string, panel *eventstudy.EventTimePanel) error {
	dealNos := panel.DealNos()

	header := make([]string, 0, len(dealNos)+1)
	header = append(header, "event_time")
	for _, dealNo := range dealNos {
		header = append(header, formatInt(dealNo))
	}

	records := make([][]string, 0, panel.NumRows())
	for _, eventTime := range panel.EventTimes() {
		row := make([]string, 0, len(dealNos)+1)
		row = append(row, strconv.Itoa(eventTime))
		for _, dealNo := range dealNos {
			if v, ok := panel.Value(eventTime, dealNo); ok {
				row = append(row, formatFloat(v))
			} else {
				row = append(row, "")
			}
		}
		records = append(records, row)
	}
	return w.write(fileName, header, records)
}

// write writes one CSV file under the reports directory.
func (w *CSVWriter) write(fileName string, header []string, records [][]string) error {
	fullPath := filepath.Join(w.paths.ReportsDir, fileName)

	slog.Info("writing CSV report",
		slog.String("file", fullPath),
		slog.Int("record_count", len(records)))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush CSV: %w", err)
	}
	return nil
}
