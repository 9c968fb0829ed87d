package eventstudy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

const (
	// EventWindowStartDay is the first calendar day after announcement
	// included in the event window.
	EventWindowStartDay = 1
	// EventWindowEndDay is the last calendar day after announcement
	// included in the event window (inclusive).
	EventWindowEndDay = 30

	// defaultExpandConcurrency bounds the per-deal expansion fan-out.
	defaultExpandConcurrency = 4
)

// ErrNoEventDates signals that no deal's event window intersects the
// trading calendar at all. Callers branch on it with errors.Is to tell
// "nothing matched" apart from a populated-but-small expansion.
var ErrNoEventDates = errors.New("no event dates within valid date range")

// ExpandEvents repeats each deal once for every calendar date that falls
// between 1 and 30 calendar days (inclusive) after its announcement,
// using the default event window.
//
// A deal whose window misses the calendar contributes no rows; that is
// not an error. When the union across all deals is empty, ExpandEvents
// returns ErrNoEventDates rather than an empty slice.
func ExpandEvents(ctx context.Context, deals []Deal, cal *TradingCalendar) ([]ExpandedEvent, error) {
	return ExpandEventsWindow(ctx, deals, cal, EventWindowStartDay, EventWindowEndDay)
}

// ExpandEventsWindow is ExpandEvents with an explicit event window of
// [startDay, endDay] calendar days after announcement, both inclusive.
//
// Deals are expanded concurrently; each deal's rows are independent, so
// workers write to disjoint per-deal buckets that are merged in input
// order, keeping the output deterministic: deals in input order, dates
// ascending within each deal. (DealNo, Date) pairs are unique because
// the calendar deduplicates its dates.
func ExpandEventsWindow(ctx context.Context, deals []Deal, cal *TradingCalendar, startDay, endDay int) ([]ExpandedEvent, error) {
	logger := slog.Default()

	if startDay > endDay {
		return nil, fmt.Errorf("invalid event window: start day %d after end day %d", startDay, endDay)
	}

	perDeal := make([][]ExpandedEvent, len(deals))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultExpandConcurrency)

	for i, deal := range deals {
		i, deal := i, deal
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			start := deal.Announcement.AddDate(0, 0, startDay)
			end := deal.Announcement.AddDate(0, 0, endDay)

			window := cal.Range(start, end)
			if len(window) == 0 {
				return nil // deal contributes nothing, not an error
			}

			rows := make([]ExpandedEvent, len(window))
			for j, date := range window {
				rows[j] = ExpandedEvent{
					Date:         date,
					Announcement: deal.Announcement,
					DealNo:       deal.DealNo,
					Acquirer:     deal.Acquirer,
					Target:       deal.Target,
				}
			}
			perDeal[i] = rows
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("expand events: %w", err)
	}

	var out []ExpandedEvent
	matched := 0
	for _, rows := range perDeal {
		if len(rows) > 0 {
			matched++
		}
		out = append(out, rows...)
	}

	if len(out) == 0 {
		return nil, ErrNoEventDates
	}

	logger.InfoContext(ctx, "expanded event windows",
		"deals", len(deals),
		"deals_matched", matched,
		"rows", len(out),
	)
	return out, nil
}
