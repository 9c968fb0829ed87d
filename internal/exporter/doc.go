// Package exporter writes event-study results to disk: one CSV file per
// result series or panel, plus a combined Excel workbook with a metadata
// sheet for the run.
package exporter
