package infrastructure

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// RunMetrics are the counters recorded during one extraction run.
// A nil *RunMetrics is valid and records nothing.
type RunMetrics struct {
	FilesDiscovered    metric.Int64Counter
	FilesSkipped       metric.Int64Counter
	ReportsExtracted   metric.Int64Counter
	ExtractionFailures metric.Int64Counter
	CountersUnresolved metric.Int64Counter
	ExtractionDuration metric.Float64Histogram
}

// NewRunMetrics creates the run instruments on meter
func NewRunMetrics(meter metric.Meter) (*RunMetrics, error) {
	filesDiscovered, err := meter.Int64Counter(
		"files_discovered",
		metric.WithDescription("Directory entries considered for extraction"),
	)
	if err != nil {
		return nil, err
	}

	filesSkipped, err := meter.Int64Counter(
		"files_skipped",
		metric.WithDescription("Files whose name matched no report pattern"),
	)
	if err != nil {
		return nil, err
	}

	reportsExtracted, err := meter.Int64Counter(
		"reports_extracted",
		metric.WithDescription("Reports extracted, by kind"),
	)
	if err != nil {
		return nil, err
	}

	extractionFailures, err := meter.Int64Counter(
		"extraction_failures",
		metric.WithDescription("Workbooks that could not be opened or read"),
	)
	if err != nil {
		return nil, err
	}

	countersUnresolved, err := meter.Int64Counter(
		"counters_unresolved",
		metric.WithDescription("Workbooks where no counter label matched"),
	)
	if err != nil {
		return nil, err
	}

	extractionDuration, err := meter.Float64Histogram(
		"extraction_duration",
		metric.WithDescription("Time spent extracting one workbook"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &RunMetrics{
		FilesDiscovered:    filesDiscovered,
		FilesSkipped:       filesSkipped,
		ReportsExtracted:   reportsExtracted,
		ExtractionFailures: extractionFailures,
		CountersUnresolved: countersUnresolved,
		ExtractionDuration: extractionDuration,
	}, nil
}

// RecordDiscovered adds n discovered files
func (m *RunMetrics) RecordDiscovered(ctx context.Context, n int) {
	if m == nil {
		return
	}
	m.FilesDiscovered.Add(ctx, int64(n))
}

func (m *RunMetrics) RecordSkipped(ctx context.Context) {
	if m == nil {
		return
	}
	m.FilesSkipped.Add(ctx, 1)
}

// RecordExtracted counts one report and its extraction time
func (m *RunMetrics) RecordExtracted(ctx context.Context, kind string, duration time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("kind", kind))
	m.ReportsExtracted.Add(ctx, 1, attrs)
	m.ExtractionDuration.Record(ctx, duration.Seconds(), attrs)
}

func (m *RunMetrics) RecordFailure(ctx context.Context) {
	if m == nil {
		return
	}
	m.ExtractionFailures.Add(ctx, 1)
}

func (m *RunMetrics) RecordUnresolved(ctx context.Context) {
	if m == nil {
		return
	}
	m.CountersUnresolved.Add(ctx, 1)
}
