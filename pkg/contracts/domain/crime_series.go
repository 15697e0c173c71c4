package domain

import (
	"fmt"
)

// Period is a calendar month used as the key of the consolidated series.
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// String formats the period as YYYY-MM with a zero padded month.
func (p Period) String() string {
	return fmt.Sprintf("%d-%02d", p.Year, p.Month)
}

// Before reports whether p sorts before other.
func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Month < other.Month
}

// SeriesRow is one month of the consolidated series.
type SeriesRow struct {
	Period   Period     `json:"period"`
	Date     string     `json:"date"`
	Counters CounterSet `json:"counters"`
}

// FinalTable is the consolidated, chronologically ordered series.
type FinalTable struct {
	Rows []SeriesRow `json:"rows"`
}

// Len returns the number of rows in the table.
func (t FinalTable) Len() int {
	return len(t.Rows)
}

// SeriesHeader is the header row of the exported series.
var SeriesHeader = []string{
	"Date",
	"Corruption",
	"Minor Corruption",
	"Moderate Corruption",
	"Grave Crime",
	"Especially Grave Crime",
	"Embezzlement",
	"Fraud",
	"Legalization of Money",
}
