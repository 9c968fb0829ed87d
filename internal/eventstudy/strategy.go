package eventstudy

import (
	"math"
	"sort"
	"time"
)

// meanAccum accumulates a running sum and count for one equal-weighted mean.
type meanAccum struct {
	sum float64
	n   int
}

func (a *meanAccum) add(v float64) {
	a.sum += v
	a.n++
}

func (a *meanAccum) mean() float64 {
	return a.sum / float64(a.n)
}

// BuyTargetSellAcquirer computes the daily return series of a strategy
// that, for each expanded deal-date, buys the target and sells the
// acquirer, equal-weighting across all deals active on the date.
//
// Target and acquirer legs are joined against the return table
// independently with inner-join semantics on (date, ticker): a deal whose
// ticker has no return on a date contributes nothing to that side's mean.
// A date appears in the output only when both legs matched at least one
// return; all other dates are excluded entirely rather than reported as
// missing. The result is sorted ascending by date.
func BuyTargetSellAcquirer(events []ExpandedEvent, rets *ReturnTable) ReturnSeries {
	type dateAccum struct {
		date time.Time
		buy  meanAccum // target leg
		sell meanAccum // acquirer leg
	}

	byDate := make(map[string]*dateAccum)
	accumFor := func(date time.Time) *dateAccum {
		key := dateKey(date)
		acc, ok := byDate[key]
		if !ok {
			acc = &dateAccum{date: normalizeDate(date)}
			byDate[key] = acc
		}
		return acc
	}

	for _, ev := range events {
		if v, ok := rets.Lookup(ev.Date, ev.Target); ok {
			accumFor(ev.Date).buy.add(v)
		}
		if v, ok := rets.Lookup(ev.Date, ev.Acquirer); ok {
			accumFor(ev.Date).sell.add(v)
		}
	}

	out := make(ReturnSeries, 0, len(byDate))
	for _, acc := range byDate {
		if acc.buy.n == 0 || acc.sell.n == 0 {
			continue
		}
		out = append(out, ReturnPoint{
			Date:  acc.date,
			Value: acc.buy.mean() - acc.sell.mean(),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// BuyTargetSellMarket computes the daily return series of a strategy that
// buys the target and sells the market. Since the input already holds
// abnormal returns (return minus market return), the per-deal-date
// strategy return is the target's abnormal return; the series value is
// the equal-weighted mean across all matched deal-dates.
//
// The join is an inner join of the events' target ticker against the
// abnormal returns on (date, ticker). Duplicate (dealno, date) rows each
// contribute their own term to the mean. Dates with no matches are
// excluded. Empty events yield an empty series, not an error.
func BuyTargetSellMarket(events []ExpandedEvent, arets []LongReturn) ReturnSeries {
	index := make(map[string]map[string]float64, len(arets))
	for _, r := range arets {
		key := dateKey(r.Date)
		row, ok := index[key]
		if !ok {
			row = make(map[string]float64)
			index[key] = row
		}
		row[r.Ticker] = r.Value
	}

	var matched []LongReturn
	for _, ev := range events {
		row, ok := index[dateKey(ev.Date)]
		if !ok {
			continue
		}
		v, ok := row[ev.Target]
		if !ok {
			continue
		}
		matched = append(matched, LongReturn{Date: normalizeDate(ev.Date), Ticker: ev.Target, Value: v})
	}

	return MeanByDate(matched)
}

// MeanByDate averages long-form values per date, ignoring NaN entries,
// and returns the per-date means sorted ascending by date. Dates whose
// values are all NaN are dropped.
func MeanByDate(rows []LongReturn) ReturnSeries {
	type dateAccum struct {
		date time.Time
		acc  meanAccum
	}

	byDate := make(map[string]*dateAccum)
	for _, r := range rows {
		if math.IsNaN(r.Value) {
			continue
		}
		key := dateKey(r.Date)
		acc, ok := byDate[key]
		if !ok {
			acc = &dateAccum{date: normalizeDate(r.Date)}
			byDate[key] = acc
		}
		acc.acc.add(r.Value)
	}

	out := make(ReturnSeries, 0, len(byDate))
	for _, acc := range byDate {
		if acc.acc.n == 0 {
			continue
		}
		out = append(out, ReturnPoint{Date: acc.date, Value: acc.acc.mean()})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}
