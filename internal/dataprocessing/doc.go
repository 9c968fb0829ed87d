// Package dataprocessing loads the event-study pipeline's input files into
// typed in-memory tables.
//
// Three loaders cover the three inputs:
//
//   - LoadDealRecords: raw M&A deal records, one row per (deal, firm role)
//   - LoadReturnTable: wide daily stock returns, one column per ticker
//   - LoadFactorTable: daily market benchmark factors (Mkt-RF, SMB, HML, RF)
//
// The loaders own everything the core computation assumes away: CSV
// parsing, multi-format date parsing, ticker normalization, and input
// validation. Structural problems (missing required columns, unparseable
// dates, invalid firm types) are rejected here with wrapped errors so the
// core never sees malformed input; blank return cells are simply absent
// from the resulting table.
package dataprocessing
