package exporter

import (
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"

	"crimedata/internal/config"
	apperrors "crimedata/internal/errors"
)

// CSVWriter provides CSV export functionality
type CSVWriter struct {
	paths  *config.Paths
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV writer instance. Relative file paths are
// resolved into the reports directory of paths.
func NewCSVWriter(paths *config.Paths, logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{paths: paths, logger: logger}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers []string
	Records [][]string
}

// WriteCSV writes headers and records to filePath, replacing any existing
// file. Output is plain UTF-8 without a byte order mark.
func (w *CSVWriter) WriteCSV(filePath string, options WriteOptions) error {
	fullPath := w.resolvePath(filePath)

	w.logger.Info("Writing CSV file",
		slog.String("file_path", filePath),
		slog.String("full_path", fullPath),
		slog.Int("record_count", len(options.Records)))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return apperrors.NewStorageError("failed to create directory", err).WithContext("path", fullPath)
	}

	file, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return apperrors.NewStorageError("failed to open file", err).WithContext("path", fullPath)
	}

	writer := csv.NewWriter(file)

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			file.Close()
			return apperrors.NewStorageError("failed to write headers", err).WithContext("path", fullPath)
		}
	}

	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			file.Close()
			return apperrors.NewStorageError("failed to write record", err).
				WithContext("path", fullPath).
				WithContext("record", i)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		file.Close()
		return apperrors.NewStorageError("failed to flush csv", err).WithContext("path", fullPath)
	}

	if err := file.Close(); err != nil {
		return apperrors.NewStorageError("failed to close file", err).WithContext("path", fullPath)
	}
	return nil
}

// resolvePath resolves a relative path into the reports directory
func (w *CSVWriter) resolvePath(filePath string) string {
	if filepath.IsAbs(filePath) || w.paths == nil {
		return filePath
	}
	return w.paths.GetReportPath(filePath)
}
