package dataprocessing

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"crimedata/internal/files"
	"crimedata/internal/infrastructure"
	"crimedata/pkg/contracts/domain"
)

// Collector accumulates reports from concurrent workers in insertion order.
type Collector struct {
	mu      sync.Mutex
	reports []domain.Report
}

// NewCollector creates an empty collector
func NewCollector() *Collector {
	return &Collector{}
}

// Add appends a report
func (c *Collector) Add(report domain.Report) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reports = append(c.reports, report)
}

// Reports returns a copy of the collected reports in insertion order
func (c *Collector) Reports() []domain.Report {
	c.mu.Lock()
	defer c.mu.Unlock()

	reports := make([]domain.Report, len(c.reports))
	copy(reports, c.reports)
	return reports
}

// Len returns the number of collected reports
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.reports)
}

// PipelineConfig holds the optional collaborators of a Pipeline.
type PipelineConfig struct {
	// Workers caps concurrently scheduled files; 0 schedules every file at once.
	Workers int
	Logger  *slog.Logger
	Tracer  trace.Tracer
	Metrics *infrastructure.RunMetrics
}

// Pipeline classifies and extracts every input file and merges the results.
type Pipeline struct {
	extractor *CounterExtractor
	workers   int
	logger    *slog.Logger
	tracer    trace.Tracer
	metrics   *infrastructure.RunMetrics

	// extractMu serialises extraction and the insertion of its report
	extractMu sync.Mutex
}

// NewPipeline creates a pipeline around extractor
func NewPipeline(extractor *CounterExtractor, cfg PipelineConfig) *Pipeline {
	logger := cfg.Logger
	if logger == nil {
		logger = infrastructure.GetLogger()
	}
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer(infrastructure.MeterName)
	}
	return &Pipeline{
		extractor: extractor,
		workers:   cfg.Workers,
		logger:    infrastructure.WithComponent(logger, "pipeline"),
		tracer:    tracer,
		metrics:   cfg.Metrics,
	}
}

// Run processes inputs and returns the consolidated series. Files that
// cannot be classified or read never abort the run.
func (p *Pipeline) Run(ctx context.Context, inputs []files.FileInfo) domain.FinalTable {
	reports := p.Collect(ctx, inputs)
	table := Aggregate(reports)

	p.logger.InfoContext(ctx, "series consolidated",
		slog.Int("reports", len(reports)),
		slog.Int("rows", table.Len()))

	return table
}

// Collect extracts one report per recognised input, in processing order.
func (p *Pipeline) Collect(ctx context.Context, inputs []files.FileInfo) []domain.Report {
	p.metrics.RecordDiscovered(ctx, len(inputs))
	p.logger.InfoContext(ctx, "processing input files", slog.Int("files", len(inputs)))

	collector := NewCollector()

	var g errgroup.Group
	if p.workers > 0 {
		g.SetLimit(p.workers)
	}

	for _, input := range inputs {
		g.Go(func() error {
			p.processFile(ctx, input, collector)
			return nil
		})
	}
	// Workers never return errors
	_ = g.Wait()

	return collector.Reports()
}

func (p *Pipeline) processFile(ctx context.Context, input files.FileInfo, collector *Collector) {
	identity, ok := ClassifyFilename(input.Name)
	if !ok {
		p.metrics.RecordSkipped(ctx)
		p.logger.InfoContext(ctx, "skipping file with unrecognised name", slog.String("file", input.Name))
		return
	}

	ctx, span := p.tracer.Start(ctx, "extract_report", trace.WithAttributes(
		attribute.String("file", input.Name),
		attribute.Int("year", identity.Year),
		attribute.Int("month", identity.Month),
		attribute.String("kind", string(identity.Kind)),
	))
	defer span.End()

	report, elapsed := p.extract(ctx, input, identity, collector)

	p.metrics.RecordExtracted(ctx, string(identity.Kind), elapsed)
	infrastructure.AddSpanEvent(ctx, "report.extracted", map[string]interface{}{
		"corruption": report.Counters.TotalCorruption,
		"zero":       report.Counters.IsZero(),
	})
	p.logger.DebugContext(ctx, "report extracted",
		slog.String("file", input.Name),
		slog.String("agency_code", identity.AgencyCode),
		slog.String("report", report.String()))
}

func (p *Pipeline) extract(ctx context.Context, input files.FileInfo, identity domain.FileIdentity, collector *Collector) (domain.Report, time.Duration) {
	p.extractMu.Lock()
	defer p.extractMu.Unlock()

	start := time.Now()
	report := domain.Report{
		FileName: input.Name,
		Identity: identity,
		Counters: p.extractor.ExtractFile(ctx, input.Path),
	}
	collector.Add(report)

	return report, time.Since(start)
}
