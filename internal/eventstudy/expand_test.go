package eventstudy

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("thirty-day window is inclusive on both ends", func(t *testing.T) {
		// Announcement 2021-01-04 with daily valid dates covering the
		// whole window: the expansion must be exactly 2021-01-05 through
		// 2021-02-03, 30 rows.
		deal := Deal{Announcement: day(2021, 1, 4), DealNo: 7, Acquirer: "ACQ", Target: "TGT"}
		cal := NewTradingCalendar(daysBetween(day(2021, 1, 1), day(2021, 2, 10)))

		events, err := ExpandEvents(ctx, []Deal{deal}, cal)
		require.NoError(t, err)
		require.Len(t, events, 30)

		assert.Equal(t, day(2021, 1, 5), events[0].Date)
		assert.Equal(t, day(2021, 2, 3), events[len(events)-1].Date)
		assert.Equal(t, 1, events[0].EventTime())
		assert.Equal(t, 30, events[len(events)-1].EventTime())

		for _, ev := range events {
			assert.Equal(t, int64(7), ev.DealNo)
			assert.Equal(t, "ACQ", ev.Acquirer)
			assert.Equal(t, "TGT", ev.Target)
			assert.Equal(t, day(2021, 1, 4), ev.Announcement)
		}
	})

	t.Run("announcement day itself is excluded", func(t *testing.T) {
		deal := Deal{Announcement: day(2021, 1, 4), DealNo: 1}
		cal := NewTradingCalendar([]time.Time{day(2021, 1, 4)})

		_, err := ExpandEvents(ctx, []Deal{deal}, cal)
		assert.ErrorIs(t, err, ErrNoEventDates)
	})

	t.Run("no overlap yields the no-data signal", func(t *testing.T) {
		deal := Deal{Announcement: day(2020, 4, 9), DealNo: 1}
		cal := NewTradingCalendar(daysBetween(day(2021, 1, 1), day(2021, 12, 31)))

		events, err := ExpandEvents(ctx, []Deal{deal}, cal)
		assert.ErrorIs(t, err, ErrNoEventDates)
		assert.Nil(t, events)
	})

	t.Run("zero deals yields the no-data signal", func(t *testing.T) {
		cal := NewTradingCalendar(daysBetween(day(2021, 1, 1), day(2021, 1, 31)))

		_, err := ExpandEvents(ctx, nil, cal)
		assert.ErrorIs(t, err, ErrNoEventDates)
	})

	t.Run("duplicate unsorted valid dates collapse", func(t *testing.T) {
		deal := Deal{Announcement: day(2021, 1, 4), DealNo: 3}
		cal := NewTradingCalendar([]time.Time{
			day(2021, 1, 5),
			day(2021, 1, 6),
			day(2021, 1, 5),
			day(2021, 1, 7),
			day(2021, 1, 6),
		})

		events, err := ExpandEvents(ctx, []Deal{deal}, cal)
		require.NoError(t, err)
		require.Len(t, events, 3)

		seen := make(map[string]bool)
		for _, ev := range events {
			key := ev.Date.Format("2006-01-02")
			assert.False(t, seen[key], "duplicate (dealno, date) pair for %s", key)
			seen[key] = true
		}
	})

	t.Run("non-matching deal contributes nothing without failing others", func(t *testing.T) {
		deals := []Deal{
			{Announcement: day(2019, 6, 1), DealNo: 1, Acquirer: "A1", Target: "T1"},
			{Announcement: day(2021, 1, 4), DealNo: 2, Acquirer: "A2", Target: "T2"},
		}
		cal := NewTradingCalendar([]time.Time{day(2021, 1, 10), day(2021, 1, 20)})

		events, err := ExpandEvents(ctx, deals, cal)
		require.NoError(t, err)
		require.Len(t, events, 2)
		for _, ev := range events {
			assert.Equal(t, int64(2), ev.DealNo)
		}
	})

	t.Run("partial overlap keeps only in-window dates", func(t *testing.T) {
		// Window is Jan 5 .. Feb 3; calendar starts mid-window.
		deal := Deal{Announcement: day(2021, 1, 4), DealNo: 4}
		cal := NewTradingCalendar(daysBetween(day(2021, 1, 25), day(2021, 3, 1)))

		events, err := ExpandEvents(ctx, []Deal{deal}, cal)
		require.NoError(t, err)
		require.Len(t, events, 10) // Jan 25 .. Feb 3
		assert.Equal(t, day(2021, 1, 25), events[0].Date)
		assert.Equal(t, day(2021, 2, 3), events[len(events)-1].Date)
	})

	t.Run("deterministic output order across runs", func(t *testing.T) {
		deals := []Deal{
			{Announcement: day(2021, 1, 4), DealNo: 10, Acquirer: "A", Target: "B"},
			{Announcement: day(2021, 1, 6), DealNo: 11, Acquirer: "C", Target: "D"},
			{Announcement: day(2021, 1, 2), DealNo: 12, Acquirer: "E", Target: "F"},
		}
		cal := NewTradingCalendar(daysBetween(day(2021, 1, 1), day(2021, 2, 28)))

		first, err := ExpandEvents(ctx, deals, cal)
		require.NoError(t, err)
		second, err := ExpandEvents(ctx, deals, cal)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("custom window bounds", func(t *testing.T) {
		deal := Deal{Announcement: day(2021, 1, 4), DealNo: 5}
		cal := NewTradingCalendar(daysBetween(day(2021, 1, 1), day(2021, 1, 31)))

		events, err := ExpandEventsWindow(ctx, []Deal{deal}, cal, 2, 5)
		require.NoError(t, err)
		require.Len(t, events, 4)
		assert.Equal(t, day(2021, 1, 6), events[0].Date)
		assert.Equal(t, day(2021, 1, 9), events[len(events)-1].Date)
	})

	t.Run("inverted window bounds are rejected", func(t *testing.T) {
		cal := NewTradingCalendar(daysBetween(day(2021, 1, 1), day(2021, 1, 31)))

		_, err := ExpandEventsWindow(ctx, []Deal{{Announcement: day(2021, 1, 4)}}, cal, 10, 5)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoEventDates)
	})
}
