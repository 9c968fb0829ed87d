package eventstudy

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// ProportionPositive reduces an event-time panel to, per event time, the
// fraction of deals with a strictly positive target return. The
// denominator counts every non-missing cell, including zero and negative
// returns; only missing cells are excluded from both sides. Event times
// with no observations at all get NaN rather than causing a division
// error. The result is ordered by event time ascending.
func ProportionPositive(panel *EventTimePanel) EventTimeSeries {
	dealNos := panel.DealNos()

	out := make(EventTimeSeries, 0, panel.NumRows())
	for _, eventTime := range panel.EventTimes() {
		positive := 0
		observed := 0
		for _, dealNo := range dealNos {
			v, ok := panel.Value(eventTime, dealNo)
			if !ok {
				continue
			}
			observed++
			if v > 0 {
				positive++
			}
		}

		value := math.NaN()
		if observed > 0 {
			value = float64(positive) / float64(observed)
		}
		out = append(out, EventTimePoint{EventTime: eventTime, Value: value})
	}
	return out
}

// SeriesSummary holds summary statistics for a return series.
type SeriesSummary struct {
	Mean   float64 `json:"mean"`
	Nobs   int     `json:"nobs"`
	StdDev float64 `json:"stddev"`
	TStat  float64 `json:"tstat"`
}

// SummarizeSeries computes the sample mean, observation count, sample
// standard deviation, and the t-statistic for mean = 0 of a series,
// ignoring NaN values. With fewer than two observations the standard
// deviation and t-statistic are NaN.
func SummarizeSeries(values []float64) SeriesSummary {
	clean := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			clean = append(clean, v)
		}
	}

	summary := SeriesSummary{
		Mean:   math.NaN(),
		Nobs:   len(clean),
		StdDev: math.NaN(),
		TStat:  math.NaN(),
	}
	if len(clean) == 0 {
		return summary
	}

	summary.Mean = stat.Mean(clean, nil)
	if len(clean) < 2 {
		return summary
	}

	summary.StdDev = stat.StdDev(clean, nil)
	se := summary.StdDev / math.Sqrt(float64(len(clean)))
	if se > 0 {
		summary.TStat = summary.Mean / se
	}
	return summary
}
