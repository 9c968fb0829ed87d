package eventstudy

import (
	"sort"
	"time"
)

// TradingCalendar is a deduplicated, sorted index of valid trading dates.
// It answers inclusive range queries without re-sorting per call, so that
// expanding many events stays linear in the window sizes rather than
// O(events x dates log dates).
type TradingCalendar struct {
	dates []time.Time
}

// NewTradingCalendar builds a calendar from an arbitrary collection of
// dates. Input may be unsorted and contain duplicates; both are resolved
// once at construction. Timestamps are normalized to midnight UTC.
func NewTradingCalendar(dates []time.Time) *TradingCalendar {
	seen := make(map[string]time.Time, len(dates))
	for _, d := range dates {
		nd := normalizeDate(d)
		seen[dateKey(nd)] = nd
	}

	unique := make([]time.Time, 0, len(seen))
	for _, d := range seen {
		unique = append(unique, d)
	}
	sort.Slice(unique, func(i, j int) bool {
		return unique[i].Before(unique[j])
	})

	return &TradingCalendar{dates: unique}
}

// Len returns the number of distinct dates in the calendar.
func (c *TradingCalendar) Len() int {
	return len(c.dates)
}

// Dates returns all calendar dates in ascending order. The returned slice
// is a copy and may be modified by the caller.
func (c *TradingCalendar) Dates() []time.Time {
	out := make([]time.Time, len(c.dates))
	copy(out, c.dates)
	return out
}

// Range returns the calendar dates d with start <= d <= end, inclusive on
// both ends, in ascending order. The bounds themselves need not be valid
// trading dates. Returns an empty slice when the window misses the
// calendar entirely.
func (c *TradingCalendar) Range(start, end time.Time) []time.Time {
	start = normalizeDate(start)
	end = normalizeDate(end)
	if end.Before(start) {
		return nil
	}

	lo := sort.Search(len(c.dates), func(i int) bool {
		return !c.dates[i].Before(start)
	})
	hi := sort.Search(len(c.dates), func(i int) bool {
		return c.dates[i].After(end)
	})
	if lo >= hi {
		return nil
	}

	out := make([]time.Time, hi-lo)
	copy(out, c.dates[lo:hi])
	return out
}

// Contains reports whether the given date is a valid trading date.
func (c *TradingCalendar) Contains(date time.Time) bool {
	d := normalizeDate(date)
	i := sort.Search(len(c.dates), func(i int) bool {
		return !c.dates[i].Before(d)
	})
	return i < len(c.dates) && c.dates[i].Equal(d)
}
