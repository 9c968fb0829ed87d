package exporter

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"maecli/internal/eventstudy"
)

func nan() float64 {
	return math.NaN()
}

func testReport() Report {
	ann := day(2021, 1, 4)
	rets := eventstudy.NewReturnTable()
	rets.Set(day(2021, 1, 5), "T1", 0.1)

	events := []eventstudy.ExpandedEvent{
		{Date: day(2021, 1, 5), Announcement: ann, DealNo: 1, Acquirer: "A1", Target: "T1"},
	}

	return Report{
		RunID:        "run-test-1",
		GeneratedAt:  time.Date(2021, 2, 1, 12, 0, 0, 0, time.UTC),
		NumDeals:     1,
		NumEventRows: 1,
		BuyTargetSellAcquirer: eventstudy.ReturnSeries{
			{Date: day(2021, 1, 5), Value: 0.1},
		},
		BuyTargetSellMarket: eventstudy.ReturnSeries{
			{Date: day(2021, 1, 5), Value: 0.05},
		},
		ProportionPositive: eventstudy.EventTimeSeries{
			{EventTime: 1, Value: 1.0},
			{EventTime: 2, Value: nan()},
		},
		Panel:           eventstudy.TargetReturnsByEventTime(rets, events),
		AcquirerSummary: eventstudy.SeriesSummary{Mean: 0.1, Nobs: 1, StdDev: nan(), TStat: nan()},
		MarketSummary:   eventstudy.SeriesSummary{Mean: 0.05, Nobs: 1, StdDev: nan(), TStat: nan()},
	}
}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "event_study.xlsx")

	require.NoError(t, WriteWorkbook(path, testReport()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	t.Run("has all sheets and no default sheet", func(t *testing.T) {
		sheets := f.GetSheetList()
		assert.ElementsMatch(t, []string{
			sheetSummary,
			sheetBuyTgtSellAcq,
			sheetBuyTgtSellMkt,
			sheetPropPositive,
			sheetEventTimePanel,
		}, sheets)
	})

	t.Run("summary sheet carries run metadata", func(t *testing.T) {
		v, err := f.GetCellValue(sheetSummary, "B1")
		require.NoError(t, err)
		assert.Equal(t, "run-test-1", v)

		v, err = f.GetCellValue(sheetSummary, "B3")
		require.NoError(t, err)
		assert.Equal(t, "1", v)
	})

	t.Run("strategy sheet holds the series", func(t *testing.T) {
		v, err := f.GetCellValue(sheetBuyTgtSellAcq, "A2")
		require.NoError(t, err)
		assert.Equal(t, "2021-01-05", v)

		v, err = f.GetCellValue(sheetBuyTgtSellAcq, "B2")
		require.NoError(t, err)
		assert.Equal(t, "0.1", v)
	})

	t.Run("NaN proportion exports as empty cell", func(t *testing.T) {
		v, err := f.GetCellValue(sheetPropPositive, "B3")
		require.NoError(t, err)
		assert.Equal(t, "", v)
	})
}
