// Package eventstudy implements an event-study pipeline for trading strategies
// around M&A announcements.
//
// Given daily per-security returns, a set of announced deals (acquirer/target
// ticker pairs with announcement dates), and a daily market-factor benchmark,
// the package expands each deal across its post-announcement event window,
// attaches realized returns to the resulting deal-dates, and aggregates them
// into equal-weighted daily portfolio return series for two strategies:
//
//  1. Buy the target, sell the acquirer (raw returns).
//  2. Buy the target, sell the market (abnormal returns).
//
// It also assembles a deal-by-event-time panel of target returns and reduces
// it to the cross-sectional proportion of deals with a strictly positive
// target return at each event time.
//
// # Architecture
//
// The package is organized one file per concern:
//
//   - types.go: core data structures (Deal, ExpandedEvent, series types)
//   - calendar.go: TradingCalendar, a sorted deduplicated index of valid dates
//   - table.go: ReturnTable and FactorTable, date-indexed wide tables
//   - deals.go: deal construction from raw per-firm-role records
//   - reshape.go: wide-to-long reshaping and abnormal return computation
//   - expand.go: event-window expansion across the trading calendar
//   - strategy.go: equal-weighted daily strategy return series
//   - panel.go: target returns organized by event time and deal number
//   - stats.go: positive-return proportions and series summary statistics
//
// # Usage Example
//
//	rets := dataprocessing.LoadReturnTable(...)   // wide date x ticker table
//	deals := eventstudy.BuildDeals(records)
//	cal := eventstudy.NewTradingCalendar(rets.Dates())
//
//	events, err := eventstudy.ExpandEvents(ctx, deals, cal)
//	if errors.Is(err, eventstudy.ErrNoEventDates) {
//	    // no deal window intersects the calendar
//	}
//
//	longShort := eventstudy.BuyTargetSellAcquirer(events, rets)
//	arets := eventstudy.AbnormalReturns(rets, factors)
//	marketHedged := eventstudy.BuyTargetSellMarket(events, arets)
//
//	panel := eventstudy.TargetReturnsByEventTime(rets, events)
//	props := eventstudy.ProportionPositive(panel)
//
// All operations are pure computations over in-memory tables: no I/O, no
// shared mutable state, and identical inputs always produce identical
// outputs. Missing join keys (a ticker or date absent from a reference
// table) are never errors; the affected rows are excluded from aggregates.
package eventstudy
