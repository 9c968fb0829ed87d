package eventstudy

import (
	"sort"
)

// EventTimePanel is a matrix of target returns keyed by (event time, deal
// number): rows cover every event time seen in the expanded data, columns
// cover every deal, and cells with no matching return are missing. Missing
// cells are tracked explicitly rather than stored as zeros.
type EventTimePanel struct {
	eventTimes []int   // ascending
	dealNos    []int64 // first-seen order
	cells      map[int]map[int64]float64
}

// EventTimes returns the panel's row keys in ascending order.
func (p *EventTimePanel) EventTimes() []int {
	out := make([]int, len(p.eventTimes))
	copy(out, p.eventTimes)
	return out
}

// DealNos returns the panel's column keys in first-seen order.
func (p *EventTimePanel) DealNos() []int64 {
	out := make([]int64, len(p.dealNos))
	copy(out, p.dealNos)
	return out
}

// Value returns the cell for (eventTime, dealNo) and whether it is present.
func (p *EventTimePanel) Value(eventTime int, dealNo int64) (float64, bool) {
	row, ok := p.cells[eventTime]
	if !ok {
		return 0, false
	}
	v, ok := row[dealNo]
	return v, ok
}

// NumRows returns the number of distinct event times in the panel.
func (p *EventTimePanel) NumRows() int {
	return len(p.eventTimes)
}

// TargetReturnsByEventTime assembles the deal-by-event-time panel of
// target returns. For each expanded row the event time is recomputed as
// the whole-day difference between the return date and the announcement,
// and the target ticker's return on that date is looked up in the return
// table. An absent date or ticker leaves the cell missing; it never
// errors. The panel is built in a single pass over the expanded rows and
// returned with event times sorted ascending.
func TargetReturnsByEventTime(rets *ReturnTable, events []ExpandedEvent) *EventTimePanel {
	panel := &EventTimePanel{cells: make(map[int]map[int64]float64)}

	seenTimes := make(map[int]bool)
	seenDeals := make(map[int64]bool)

	for _, ev := range events {
		eventTime := ev.EventTime()

		if !seenTimes[eventTime] {
			seenTimes[eventTime] = true
			panel.eventTimes = append(panel.eventTimes, eventTime)
		}
		if !seenDeals[ev.DealNo] {
			seenDeals[ev.DealNo] = true
			panel.dealNos = append(panel.dealNos, ev.DealNo)
		}

		v, ok := rets.Lookup(ev.Date, ev.Target)
		if !ok {
			continue
		}

		row, ok := panel.cells[eventTime]
		if !ok {
			row = make(map[int64]float64)
			panel.cells[eventTime] = row
		}
		row[ev.DealNo] = v
	}

	sort.Ints(panel.eventTimes)
	return panel
}
