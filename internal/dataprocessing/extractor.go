package dataprocessing

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"path/filepath"

	"crimedata/internal/infrastructure"
	"crimedata/pkg/contracts/domain"
)

const (
	// MinGridRows and MinGridCols are the smallest worksheet considered at all.
	MinGridRows = 14
	MinGridCols = 5

	// lookupThreshold gates the label lookups: both dimensions must exceed it.
	lookupThreshold = 10
)

// CounterExtractor pulls the crime counters out of report worksheets. It
// never fails: anything it cannot read comes back as zero.
type CounterExtractor struct {
	opener  WorkbookOpener
	logger  *slog.Logger
	metrics *infrastructure.RunMetrics
}

// NewCounterExtractor creates an extractor. metrics may be nil.
func NewCounterExtractor(opener WorkbookOpener, logger *slog.Logger, metrics *infrastructure.RunMetrics) *CounterExtractor {
	if opener == nil {
		opener = NewExcelOpener()
	}
	if logger == nil {
		logger = infrastructure.GetLogger()
	}
	return &CounterExtractor{
		opener:  opener,
		logger:  infrastructure.WithComponent(logger, "extractor"),
		metrics: metrics,
	}
}

// Extract reads the counters from an already loaded grid. source names the
// grid in log messages.
func (e *CounterExtractor) Extract(grid Grid, source string) domain.CounterSet {
	return e.extract(context.Background(), grid, source)
}

func (e *CounterExtractor) extract(ctx context.Context, grid Grid, source string) domain.CounterSet {
	var counters domain.CounterSet

	rows, cols := grid.Rows(), grid.Cols()
	if rows < MinGridRows || cols < MinGridCols {
		e.logger.WarnContext(ctx, "worksheet too small, counters set to zero",
			slog.String("file", source),
			slog.Int("rows", rows),
			slog.Int("cols", cols))
		return counters
	}

	resolved := 0
	if rows > lookupThreshold && cols > lookupThreshold {
		for _, rule := range lookupRules {
			if !rule.matches(grid.At(rule.label.row, rule.label.col)) {
				continue
			}
			value, ok := numericValue(grid.At(rule.value.row, rule.value.col))
			if !ok {
				e.logger.DebugContext(ctx, "label matched but value is not numeric",
					slog.String("file", source),
					slog.String("counter", rule.counter))
				continue
			}
			rule.set(&counters, value)
			resolved++
		}
	}

	if resolved == 0 {
		e.metrics.RecordUnresolved(ctx)
		e.logger.WarnContext(ctx, "no counters resolved, worksheet layout not recognised",
			slog.String("file", source),
			slog.Int("rows", rows),
			slog.Int("cols", cols))
	}

	return counters
}

// ExtractFile opens the workbook at path and extracts its counters. Open,
// read and indexing failures are logged and yield an all-zero set.
func (e *CounterExtractor) ExtractFile(ctx context.Context, path string) (counters domain.CounterSet) {
	source := filepath.Base(path)

	defer func() {
		if r := recover(); r != nil {
			e.fail(ctx, source, fmt.Errorf("panic while reading workbook: %v", r))
			counters = domain.CounterSet{}
		}
	}()

	grid, err := e.readGrid(path)
	if err != nil {
		e.fail(ctx, source, err)
		return domain.CounterSet{}
	}

	return e.extract(ctx, grid, source)
}

func (e *CounterExtractor) readGrid(path string) (Grid, error) {
	wb, err := e.opener.Open(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	sheet, err := SelectSheet(wb.SheetNames())
	if err != nil {
		return nil, err
	}

	return wb.Grid(sheet)
}

func (e *CounterExtractor) fail(ctx context.Context, source string, err error) {
	e.metrics.RecordFailure(ctx)
	infrastructure.RecordError(ctx, err)
	infrastructure.WithError(e.logger, err).ErrorContext(ctx, "failed to extract counters, using zeros",
		slog.String("file", source))
}

// numericValue accepts integer and finite floating point cells, truncating
// toward zero. Missing, boolean and text cells are rejected.
func numericValue(cell any) (int64, bool) {
	switch v := cell.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return int64(v), true
	case float32:
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return int64(f), true
	case int:
		return int64(v), true
	case int64:
		return v, true
	case int32:
		return int64(v), true
	default:
		return 0, false
	}
}
