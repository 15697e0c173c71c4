package exporter

import (
	"log/slog"

	"crimedata/pkg/contracts/domain"
)

// ResultsExporter writes the consolidated series as CSV.
type ResultsExporter struct {
	writer *CSVWriter
	logger *slog.Logger
}

// NewResultsExporter creates an exporter on top of writer
func NewResultsExporter(writer *CSVWriter, logger *slog.Logger) *ResultsExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ResultsExporter{writer: writer, logger: logger}
}

// Export writes table to path: one header row, then one row per month with
// the date as YYYY-MM followed by the counters as integers.
func (e *ResultsExporter) Export(path string, table domain.FinalTable) error {
	records := make([][]string, 0, table.Len())
	for _, row := range table.Rows {
		records = append(records, seriesRecord(row))
	}

	if err := e.writer.WriteCSV(path, WriteOptions{
		Headers: domain.SeriesHeader,
		Records: records,
	}); err != nil {
		return err
	}

	e.logger.Info("Results exported",
		slog.String("path", path),
		slog.Int("rows", table.Len()))
	return nil
}

func seriesRecord(row domain.SeriesRow) []string {
	values := row.Counters.Values()
	record := make([]string, 0, len(values)+1)
	record = append(record, row.Date)
	for _, v := range values {
		record = append(record, formatInt(v))
	}
	return record
}
