package eventstudy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns every calendar day from start to end inclusive.
func daysBetween(start, end time.Time) []time.Time {
	var out []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}

func TestNewTradingCalendar(t *testing.T) {
	t.Run("deduplicates and sorts unsorted input", func(t *testing.T) {
		cal := NewTradingCalendar([]time.Time{
			day(2021, 1, 5),
			day(2021, 1, 6),
			day(2021, 1, 5),
			day(2021, 1, 7),
			day(2021, 1, 6),
		})

		require.Equal(t, 3, cal.Len())
		assert.Equal(t, []time.Time{
			day(2021, 1, 5),
			day(2021, 1, 6),
			day(2021, 1, 7),
		}, cal.Dates())
	})

	t.Run("normalizes time of day and zone", func(t *testing.T) {
		loc := time.FixedZone("UTC+3", 3*60*60)
		cal := NewTradingCalendar([]time.Time{
			time.Date(2021, 1, 5, 15, 30, 0, 0, loc),
			day(2021, 1, 5),
		})

		assert.Equal(t, 1, cal.Len())
		assert.Equal(t, []time.Time{day(2021, 1, 5)}, cal.Dates())
	})

	t.Run("empty input", func(t *testing.T) {
		cal := NewTradingCalendar(nil)
		assert.Equal(t, 0, cal.Len())
		assert.Empty(t, cal.Range(day(2021, 1, 1), day(2021, 12, 31)))
	})
}

func TestTradingCalendarRange(t *testing.T) {
	cal := NewTradingCalendar([]time.Time{
		day(2021, 1, 4),
		day(2021, 1, 5),
		day(2021, 1, 6),
		day(2021, 1, 11),
		day(2021, 1, 12),
	})

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected []time.Time
	}{
		{
			name:     "inclusive on both ends",
			start:    day(2021, 1, 5),
			end:      day(2021, 1, 11),
			expected: []time.Time{day(2021, 1, 5), day(2021, 1, 6), day(2021, 1, 11)},
		},
		{
			name:     "bounds need not be trading dates",
			start:    day(2021, 1, 7),
			end:      day(2021, 1, 13),
			expected: []time.Time{day(2021, 1, 11), day(2021, 1, 12)},
		},
		{
			name:     "whole calendar",
			start:    day(2020, 12, 1),
			end:      day(2021, 2, 1),
			expected: cal.Dates(),
		},
		{
			name:  "window entirely before",
			start: day(2020, 1, 1),
			end:   day(2020, 12, 31),
		},
		{
			name:  "window entirely after",
			start: day(2022, 1, 1),
			end:   day(2022, 12, 31),
		},
		{
			name:  "inverted bounds",
			start: day(2021, 1, 12),
			end:   day(2021, 1, 4),
		},
		{
			name:     "single-day window on a trading date",
			start:    day(2021, 1, 6),
			end:      day(2021, 1, 6),
			expected: []time.Time{day(2021, 1, 6)},
		},
		{
			name:  "single-day window between trading dates",
			start: day(2021, 1, 8),
			end:   day(2021, 1, 8),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cal.Range(tt.start, tt.end)
			if tt.expected == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTradingCalendarContains(t *testing.T) {
	cal := NewTradingCalendar([]time.Time{day(2021, 1, 5), day(2021, 1, 7)})

	assert.True(t, cal.Contains(day(2021, 1, 5)))
	assert.True(t, cal.Contains(time.Date(2021, 1, 7, 12, 0, 0, 0, time.UTC)))
	assert.False(t, cal.Contains(day(2021, 1, 6)))
	assert.False(t, cal.Contains(day(2021, 1, 8)))
}
