package eventstudy

import (
	"sort"
)

// BuildDeals constructs one Deal per deal number from raw per-firm-role
// records. Each deal must appear as two records, one with firmtype "acq"
// and one with firmtype "tgt"; deals missing either side are excluded
// (inner join on deal number). The announcement date is taken from the
// acquirer record.
//
// Output order follows the first appearance of each deal's acquirer
// record in the input, so identical inputs always produce identical
// output.
func BuildDeals(records []DealRecord) []Deal {
	type roleRow struct {
		record DealRecord
		order  int
	}

	acqRows := make(map[int64]roleRow, len(records)/2)
	tgtRows := make(map[int64]roleRow, len(records)/2)

	for i, rec := range records {
		switch rec.FirmType {
		case RoleAcquirer.String():
			if _, ok := acqRows[rec.DealNo]; !ok {
				acqRows[rec.DealNo] = roleRow{record: rec, order: i}
			}
		case RoleTarget.String():
			if _, ok := tgtRows[rec.DealNo]; !ok {
				tgtRows[rec.DealNo] = roleRow{record: rec, order: i}
			}
		}
	}

	deals := make([]Deal, 0, len(acqRows))
	order := make(map[int64]int, len(acqRows))
	for dealNo, acq := range acqRows {
		tgt, ok := tgtRows[dealNo]
		if !ok {
			continue
		}
		order[dealNo] = acq.order
		deals = append(deals, Deal{
			Announcement: normalizeDate(acq.record.Announcement),
			DealNo:       dealNo,
			Acquirer:     acq.record.Ticker,
			Target:       tgt.record.Ticker,
		})
	}

	sort.Slice(deals, func(i, j int) bool {
		return order[deals[i].DealNo] < order[deals[j].DealNo]
	})
	return deals
}
