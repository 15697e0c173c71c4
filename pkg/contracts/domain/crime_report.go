package domain

import (
	"fmt"
)

// ReportKind distinguishes the national summary report from per-agency reports.
type ReportKind string

const (
	ReportKindGeneral ReportKind = "general"
	ReportKindAgency  ReportKind = "agency"
)

// GeneralAgencyCode is the agency code modern filenames use for the national summary.
const GeneralAgencyCode = "00000"

// FileIdentity is everything a report filename tells us about its contents.
// It is derived once from the filename and never changed afterwards.
type FileIdentity struct {
	Year       int        `json:"year"`
	Month      int        `json:"month"`
	Kind       ReportKind `json:"kind"`
	AgencyCode string     `json:"agency_code,omitempty"`
}

// IsGeneral reports whether the identity belongs to a national summary report.
func (id FileIdentity) IsGeneral() bool {
	return id.Kind == ReportKindGeneral
}

// Period returns the (year, month) key of the identity.
func (id FileIdentity) Period() Period {
	return Period{Year: id.Year, Month: id.Month}
}

// CounterSet holds the eight corruption-related crime counters pulled from one
// worksheet. Every field defaults to zero when its cell cannot be resolved;
// the counters are independent and need not add up to the total.
type CounterSet struct {
	TotalCorruption      int64 `json:"total_corruption"`
	MinorCorruption      int64 `json:"minor_corruption"`
	ModerateCorruption   int64 `json:"moderate_corruption"`
	GraveCrime           int64 `json:"grave_crime"`
	EspeciallyGraveCrime int64 `json:"especially_grave_crime"`
	Embezzlement         int64 `json:"embezzlement"`
	Fraud                int64 `json:"fraud"`
	LegalizationOfMoney  int64 `json:"legalization_of_money"`
}

// Values returns the counters in output column order.
func (c CounterSet) Values() []int64 {
	return []int64{
		c.TotalCorruption,
		c.MinorCorruption,
		c.ModerateCorruption,
		c.GraveCrime,
		c.EspeciallyGraveCrime,
		c.Embezzlement,
		c.Fraud,
		c.LegalizationOfMoney,
	}
}

// IsZero reports whether no counter holds a value.
func (c CounterSet) IsZero() bool {
	return c == CounterSet{}
}

// Report is the extraction result for a single input file.
type Report struct {
	FileName string       `json:"file_name"`
	Identity FileIdentity `json:"identity"`
	Counters CounterSet   `json:"counters"`
}

// String renders the report as a short human readable summary.
func (r Report) String() string {
	return fmt.Sprintf("%s %s (%s) corruption=%d minor=%d moderate=%d grave=%d especially_grave=%d embezzlement=%d fraud=%d legalization=%d",
		r.FileName,
		r.Identity.Period(),
		r.Identity.Kind,
		r.Counters.TotalCorruption,
		r.Counters.MinorCorruption,
		r.Counters.ModerateCorruption,
		r.Counters.GraveCrime,
		r.Counters.EspeciallyGraveCrime,
		r.Counters.Embezzlement,
		r.Counters.Fraud,
		r.Counters.LegalizationOfMoney)
}
