// Package exporter writes the extracted crime series to CSV.
//
// CSVWriter is the low level writer: it creates the target directory, writes
// a header and records, and reports failures as storage errors.
// ResultsExporter formats a domain.FinalTable into rows for it.
//
// Example usage:
//
//	writer := exporter.NewCSVWriter(paths, logger)
//	err := exporter.NewResultsExporter(writer, logger).Export(paths.ResultsCSV, table)
package exporter
