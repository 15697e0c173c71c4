package dataprocessing

import (
	"sort"

	"crimedata/pkg/contracts/domain"
)

// Aggregate merges the general reports into the monthly series. Reports are
// expected in processing order: when two general reports share a period the
// later one wins. Agency reports are ignored.
func Aggregate(reports []domain.Report) domain.FinalTable {
	byPeriod := make(map[domain.Period]domain.CounterSet)
	for _, report := range reports {
		if !report.Identity.IsGeneral() {
			continue
		}
		byPeriod[report.Identity.Period()] = report.Counters
	}

	rows := make([]domain.SeriesRow, 0, len(byPeriod))
	for period, counters := range byPeriod {
		if !includePeriod(period) {
			continue
		}
		rows = append(rows, domain.SeriesRow{
			Period:   period,
			Date:     period.String(),
			Counters: counters,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Period.Before(rows[j].Period)
	})

	return domain.FinalTable{Rows: rows}
}

// includePeriod keeps 2017 onward. The month clause never holds for a real
// month, so every 2016 period is dropped.
func includePeriod(p domain.Period) bool {
	return p.Year > 2016 || (p.Year == 2016 && p.Month >= 13)
}
