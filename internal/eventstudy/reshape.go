package eventstudy

// WideToLong reshapes a wide date-by-ticker return table into long form:
// one LongReturn row per non-missing (date, ticker) cell. Missing cells
// are dropped, never zero-filled. Ticker labels pass through unchanged.
//
// Rows are emitted date-major (each date's tickers in column order), so
// the same table always reshapes to the same row order.
func WideToLong(table *ReturnTable) []LongReturn {
	tickers := table.Tickers()

	var out []LongReturn
	for _, date := range table.Dates() {
		for _, ticker := range tickers {
			v, ok := table.Lookup(date, ticker)
			if !ok {
				continue
			}
			out = append(out, LongReturn{Date: date, Ticker: ticker, Value: v})
		}
	}
	return out
}

// AbnormalReturns computes long-form abnormal returns: for every
// non-missing (date, ticker) return whose date also appears in the factor
// table, aret = return - (Mkt-RF + RF). Dates absent from the factor
// table are skipped entirely, so the output covers only dates present in
// both tables. The abnormal wide table is assembled first and then
// reshaped with WideToLong.
func AbnormalReturns(table *ReturnTable, factors *FactorTable) []LongReturn {
	tickers := table.Tickers()

	abnormal := NewReturnTable()
	for _, date := range table.Dates() {
		factor, ok := factors.Lookup(date)
		if !ok {
			continue
		}
		market := factor.MarketReturn()
		for _, ticker := range tickers {
			v, ok := table.Lookup(date, ticker)
			if !ok {
				continue
			}
			abnormal.Set(date, ticker, v-market)
		}
	}
	return WideToLong(abnormal)
}
