package dataprocessing

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"maecli/internal/eventstudy"
)

// validate checks loaded deal records against their struct tags.
var validate = validator.New(validator.WithRequiredStructEnabled())

// FormatTicker normalizes a ticker symbol: uppercase with surrounding
// whitespace removed. Applied by every loader before data reaches the core.
func FormatTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// LoadDealRecords reads raw M&A deal records from a CSV file with columns
// dealno, firmtype, ticker, and announcement (in any order, located by
// header name). Tickers are normalized with FormatTicker. Every record is
// validated; a bad row (unknown firmtype, missing ticker, unparseable
// announcement) rejects the whole file.
func LoadDealRecords(ctx context.Context, path string) ([]eventstudy.DealRecord, error) {
	logger := slog.Default()

	records, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	cols, err := requireColumns(header, "dealno", "firmtype", "ticker", "announcement")
	if err != nil {
		return nil, fmt.Errorf("deal file %s: %w", path, err)
	}

	out := make([]eventstudy.DealRecord, 0, len(records))
	for i, record := range records {
		line := i + 2 // 1-based, after header

		dealNo, err := strconv.ParseInt(strings.TrimSpace(record[cols["dealno"]]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse dealno (line %d): %w", line, err)
		}

		announcement, err := parseDate(strings.TrimSpace(record[cols["announcement"]]))
		if err != nil {
			return nil, fmt.Errorf("parse announcement (line %d): %w", line, err)
		}

		rec := eventstudy.DealRecord{
			DealNo:       dealNo,
			FirmType:     strings.TrimSpace(record[cols["firmtype"]]),
			Ticker:       FormatTicker(record[cols["ticker"]]),
			Announcement: announcement,
		}

		if err := validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("invalid deal record (line %d): %w", line, err)
		}
		out = append(out, rec)
	}

	logger.InfoContext(ctx, "loaded deal records",
		"file", path,
		"records", len(out),
	)
	return out, nil
}

// LoadReturnTable reads a wide daily return table from a CSV file whose
// first column is the date and whose remaining columns are tickers.
// Ticker labels are normalized with FormatTicker. Blank cells mean the
// ticker did not trade that day and are left absent from the table.
func LoadReturnTable(ctx context.Context, path string) (*eventstudy.ReturnTable, error) {
	logger := slog.Default()

	records, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	if len(header) < 2 {
		return nil, fmt.Errorf("return file %s: expected a date column plus ticker columns, got %d columns", path, len(header))
	}

	tickers := make([]string, len(header))
	for i := 1; i < len(header); i++ {
		tickers[i] = FormatTicker(header[i])
	}

	table := eventstudy.NewReturnTable()
	for i, record := range records {
		line := i + 2

		date, err := parseDate(strings.TrimSpace(record[0]))
		if err != nil {
			return nil, fmt.Errorf("parse date (line %d): %w", line, err)
		}

		for j := 1; j < len(record) && j < len(header); j++ {
			cell := strings.TrimSpace(record[j])
			if cell == "" {
				continue // missing observation, not a zero return
			}
			value, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("parse return for %s (line %d): %w", tickers[j], line, err)
			}
			table.Set(date, tickers[j], value)
		}
	}

	logger.InfoContext(ctx, "loaded return table",
		"file", path,
		"dates", table.NumDates(),
		"tickers", len(table.Tickers()),
	)
	return table, nil
}

// LoadFactorTable reads daily benchmark factors from a CSV file with a
// leading date column and factor columns located by header name. Mkt-RF
// and RF are required; SMB and HML are optional and default to zero.
func LoadFactorTable(ctx context.Context, path string) (*eventstudy.FactorTable, error) {
	logger := slog.Default()

	records, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	cols, err := requireColumns(header, "mkt-rf", "rf")
	if err != nil {
		return nil, fmt.Errorf("factor file %s: %w", path, err)
	}
	optional := optionalColumns(header, "smb", "hml")

	table := eventstudy.NewFactorTable()
	for i, record := range records {
		line := i + 2

		date, err := parseDate(strings.TrimSpace(record[0]))
		if err != nil {
			return nil, fmt.Errorf("parse date (line %d): %w", line, err)
		}

		row := eventstudy.FactorRow{}
		if row.MktRF, err = parseFloat(record[cols["mkt-rf"]], "mkt-rf", line); err != nil {
			return nil, err
		}
		if row.RF, err = parseFloat(record[cols["rf"]], "rf", line); err != nil {
			return nil, err
		}
		if idx, ok := optional["smb"]; ok {
			if row.SMB, err = parseFloat(record[idx], "smb", line); err != nil {
				return nil, err
			}
		}
		if idx, ok := optional["hml"]; ok {
			if row.HML, err = parseFloat(record[idx], "hml", line); err != nil {
				return nil, err
			}
		}

		table.Set(date, row)
	}

	logger.InfoContext(ctx, "loaded factor table",
		"file", path,
		"dates", table.Len(),
	)
	return table, nil
}

// readCSV reads a CSV file and splits off its header row.
func readCSV(path string) (records [][]string, header []string, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read CSV records: %w", err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("empty CSV file: %s", path)
	}
	return all[1:], all[0], nil
}

// requireColumns locates the named columns in a header, matching
// case-insensitively. Returns an error naming the first column that is
// absent.
func requireColumns(header []string, names ...string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}

	cols := make(map[string]int, len(names))
	for _, name := range names {
		i, ok := index[name]
		if !ok {
			return cols, fmt.Errorf("required column %q not found", name)
		}
		cols[name] = i
	}
	return cols, nil
}

// optionalColumns locates the named columns that are present, matching
// case-insensitively; absent names are simply omitted.
func optionalColumns(header []string, names ...string) map[string]int {
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}

	cols := make(map[string]int, len(names))
	for _, name := range names {
		if i, ok := index[name]; ok {
			cols[name] = i
		}
	}
	return cols
}

// parseDate attempts to parse date strings in multiple formats.
func parseDate(dateStr string) (time.Time, error) {
	dateFormats := []string{
		"2006-01-02",          // ISO format
		"01/02/2006",          // US format
		"2006/01/02",          // Alternative ISO
		"2006-01-02 15:04:05", // With time
		"20060102",            // Compact (Ken French factor files)
	}

	for _, format := range dateFormats {
		if date, err := time.Parse(format, dateStr); err == nil {
			return date, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// parseFloat safely parses a float64 value from string.
func parseFloat(str, fieldName string, lineNum int) (float64, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return 0, fmt.Errorf("empty %s (line %d)", fieldName, lineNum)
	}

	value, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s (line %d): %w", fieldName, lineNum, err)
	}

	return value, nil
}
