// Package dataprocessing turns a directory of crime statistics workbooks into
// a monthly series.
//
// # Architecture
//
// The package is organized into four components:
//
// 1. Classifier: derives year, month and report kind from a filename
// 2. Reader: opens workbooks through the WorkbookOpener interface and reads a
// worksheet into a Grid
// 3. Extractor: reads the eight counters from fixed cells after checking the
// label next to them
// 4. Aggregator: keeps the general reports, one per month, and orders them
//
// Pipeline ties them together, scheduling one worker per file.
//
// # Usage
//
//	extractor := dataprocessing.NewCounterExtractor(dataprocessing.NewExcelOpener(), logger, metrics)
//	pipeline := dataprocessing.NewPipeline(extractor, dataprocessing.PipelineConfig{Logger: logger})
//	table := pipeline.Run(ctx, inputs)
//
// # Error Handling
//
// Extraction never fails. Unrecognised filenames are skipped, unreadable
// workbooks and unknown layouts produce zero counters, and every such case
// is logged with the file name.
//
// # Testing
//
// Workbook access is mocked with the generated mocks in the mocks
// subpackage. Regenerate them with go generate after changing workbook.go.
package dataprocessing
