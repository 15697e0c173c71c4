// Package shared holds helpers used across the extractor packages.
//
// The testutil subpackage provides BufferedSlogHandler, a slog.Handler that
// captures records so tests can assert on what a component logged:
//
//	logger, handler := testutil.NewTestLogger(t)
//	extractor := dataprocessing.NewCounterExtractor(opener, logger, nil)
//	extractor.ExtractFile(ctx, path)
//	testutil.AssertLogContains(t, handler, slog.LevelWarn, "no counters resolved")
package shared
