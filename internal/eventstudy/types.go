package eventstudy

import (
	"time"
)

// TickerRole identifies the side of a deal a ticker belongs to.
type TickerRole int

const (
	// RoleAcquirer marks the acquiring firm's ticker
	RoleAcquirer TickerRole = iota
	// RoleTarget marks the target firm's ticker
	RoleTarget
)

// String returns the string representation of the role, matching the
// firmtype values used in raw deal records.
func (r TickerRole) String() string {
	switch r {
	case RoleAcquirer:
		return "acq"
	case RoleTarget:
		return "tgt"
	default:
		return "unknown"
	}
}

// DealRecord is one raw per-firm-role deal row as loaded from the deal file:
// each deal appears as two records, one per firmtype ("acq" and "tgt").
type DealRecord struct {
	DealNo       int64     `json:"dealno" validate:"required"`
	FirmType     string    `json:"firmtype" validate:"required,oneof=acq tgt"`
	Ticker       string    `json:"ticker" validate:"required"`
	Announcement time.Time `json:"announcement" validate:"required"`
}

// Deal is one announced M&A transaction with both sides resolved.
// Deals are immutable once constructed; DealNo is unique within a deal set.
type Deal struct {
	Announcement time.Time `json:"announcement"`
	DealNo       int64     `json:"dealno"`
	Acquirer     string    `json:"acq"`
	Target       string    `json:"tgt"`
}

// ExpandedEvent is one (deal, valid date) pair produced by windowing a deal
// across its 1-30 day post-announcement horizon. (DealNo, Date) pairs are
// unique within an expansion.
type ExpandedEvent struct {
	Date         time.Time `json:"date"`
	Announcement time.Time `json:"announcement"`
	DealNo       int64     `json:"dealno"`
	Acquirer     string    `json:"acq"`
	Target       string    `json:"tgt"`
}

// EventTime returns the number of whole calendar days between the deal's
// announcement and this event's return date. It is always recomputed from
// the two dates rather than carried as a stored field.
func (e ExpandedEvent) EventTime() int {
	return wholeDays(e.Announcement, e.Date)
}

// RoleTicker returns the ticker on the given side of the deal.
func (e ExpandedEvent) RoleTicker(role TickerRole) string {
	if role == RoleTarget {
		return e.Target
	}
	return e.Acquirer
}

// LongReturn is one long-form return observation: a single non-missing
// (date, ticker) cell of a wide return table.
type LongReturn struct {
	Date   time.Time `json:"date"`
	Ticker string    `json:"ticker"`
	Value  float64   `json:"value"`
}

// ReturnPoint is one date's value in a daily return series.
type ReturnPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// ReturnSeries is a daily return series in strictly ascending date order
// with no missing values.
type ReturnSeries []ReturnPoint

// Values returns the series values in date order.
func (s ReturnSeries) Values() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Value
	}
	return out
}

// EventTimePoint is one event time's value in an event-time series.
type EventTimePoint struct {
	EventTime int     `json:"event_time"`
	Value     float64 `json:"value"`
}

// EventTimeSeries is a series indexed by event time in ascending order.
// Values may be NaN where the underlying cross-section is empty.
type EventTimeSeries []EventTimePoint

// Values returns the series values in event-time order.
func (s EventTimeSeries) Values() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Value
	}
	return out
}

// dateKeyFormat is the canonical key format for date-keyed maps.
const dateKeyFormat = "2006-01-02"

// dateKey normalizes a date into its canonical map key.
func dateKey(t time.Time) string {
	return t.Format(dateKeyFormat)
}

// normalizeDate truncates a timestamp to midnight UTC so that date
// comparisons and day arithmetic are unaffected by time-of-day or zone.
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// wholeDays returns the number of whole days from a to b, both normalized
// to midnight UTC.
func wholeDays(a, b time.Time) int {
	return int(normalizeDate(b).Sub(normalizeDate(a)) / (24 * time.Hour))
}
