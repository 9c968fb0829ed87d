package eventstudy

import (
	"sort"
	"time"
)

// ReturnTable is a wide daily return table: rows indexed by date, one
// column per ticker. Missing cells (a ticker not traded on a date) are
// simply absent; they are never stored as zeros.
type ReturnTable struct {
	values  map[string]map[string]float64 // date key -> ticker -> return
	tickers []string                      // column order, first seen
	seen    map[string]bool               // ticker presence
	dates   []time.Time                   // ascending cache, nil when dirty
}

// NewReturnTable creates an empty return table.
func NewReturnTable() *ReturnTable {
	return &ReturnTable{
		values: make(map[string]map[string]float64),
		seen:   make(map[string]bool),
	}
}

// Set records the return for a (date, ticker) cell, replacing any prior
// value. The date is normalized to midnight UTC.
func (t *ReturnTable) Set(date time.Time, ticker string, value float64) {
	key := dateKey(normalizeDate(date))
	row, ok := t.values[key]
	if !ok {
		row = make(map[string]float64)
		t.values[key] = row
		t.dates = nil // new date invalidates the sorted cache
	}
	row[ticker] = value

	if !t.seen[ticker] {
		t.seen[ticker] = true
		t.tickers = append(t.tickers, ticker)
	}
}

// Lookup returns the cell value for (date, ticker) and whether it is
// present. An absent date or ticker is not an error.
func (t *ReturnTable) Lookup(date time.Time, ticker string) (float64, bool) {
	row, ok := t.values[dateKey(normalizeDate(date))]
	if !ok {
		return 0, false
	}
	v, ok := row[ticker]
	return v, ok
}

// HasDate reports whether the table has any observation on the given date.
func (t *ReturnTable) HasDate(date time.Time) bool {
	_, ok := t.values[dateKey(normalizeDate(date))]
	return ok
}

// Dates returns the table's date index in ascending order.
func (t *ReturnTable) Dates() []time.Time {
	if t.dates == nil {
		dates := make([]time.Time, 0, len(t.values))
		for key := range t.values {
			d, err := time.Parse(dateKeyFormat, key)
			if err != nil {
				continue
			}
			dates = append(dates, d)
		}
		sort.Slice(dates, func(i, j int) bool {
			return dates[i].Before(dates[j])
		})
		t.dates = dates
	}

	out := make([]time.Time, len(t.dates))
	copy(out, t.dates)
	return out
}

// Tickers returns the table's column labels in first-seen order.
func (t *ReturnTable) Tickers() []string {
	out := make([]string, len(t.tickers))
	copy(out, t.tickers)
	return out
}

// NumDates returns the number of distinct dates in the table.
func (t *ReturnTable) NumDates() int {
	return len(t.values)
}

// FactorRow holds one day of daily benchmark factors.
type FactorRow struct {
	MktRF float64 `json:"mkt_rf"` // market return in excess of the risk-free rate
	SMB   float64 `json:"smb"`
	HML   float64 `json:"hml"`
	RF    float64 `json:"rf"` // risk-free rate
}

// MarketReturn returns the total market return, Mkt-RF plus RF.
func (f FactorRow) MarketReturn() float64 {
	return f.MktRF + f.RF
}

// FactorTable is a date-indexed table of daily benchmark factors.
type FactorTable struct {
	rows map[string]FactorRow
}

// NewFactorTable creates an empty factor table.
func NewFactorTable() *FactorTable {
	return &FactorTable{rows: make(map[string]FactorRow)}
}

// Set records the factor row for a date, replacing any prior row.
func (t *FactorTable) Set(date time.Time, row FactorRow) {
	t.rows[dateKey(normalizeDate(date))] = row
}

// Lookup returns the factor row for a date and whether it is present.
func (t *FactorTable) Lookup(date time.Time) (FactorRow, bool) {
	row, ok := t.rows[dateKey(normalizeDate(date))]
	return row, ok
}

// Len returns the number of dates in the table.
func (t *FactorTable) Len() int {
	return len(t.rows)
}
