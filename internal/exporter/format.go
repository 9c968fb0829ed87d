package exporter

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// dateFormat is the date layout used in exported files.
const dateFormat = "2006-01-02"

// formatFloat formats a return value for CSV output with 6 decimal places.
// NaN formats as an empty cell.
func formatFloat(f float64) string {
	if math.IsNaN(f) {
		return ""
	}
	return fmt.Sprintf("%.6f", f)
}

// formatInt formats an integer value for CSV output.
func formatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}

// formatDate formats a date for CSV output.
func formatDate(t time.Time) string {
	return t.Format(dateFormat)
}
