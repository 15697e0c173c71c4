package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"crimedata/internal/config"
	apperrors "crimedata/internal/errors"
	"crimedata/internal/shared/testutil"
	"crimedata/pkg/contracts/domain"
)

// reportCells is an R1-layout worksheet whose counters all derive from base.
// The note cells stretch the used range to 14 rows by 12 columns, the
// smallest worksheet the extractor reads.
func reportCells(base int) map[string]any {
	return map[string]any{
		"B7":  "Всего коррупционных преступлений",
		"E7":  base,
		"C8":  "небольшой тяжести",
		"E8":  base + 1,
		"C9":  "средней тяжести",
		"E9":  base + 2,
		"C10": "тяжкие",
		"E10": base + 3,
		"C11": "особо тяжкие",
		"E11": base + 4,
		"L1":  "note",
		"L14": "note",
	}
}

func saveReport(t *testing.T, dir, name string, cells map[string]any) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	for cell, value := range cells {
		require.NoError(t, f.SetCellValue("Sheet1", cell, value))
	}
	require.NoError(t, f.SaveAs(filepath.Join(dir, name)))
}

func testConfig(t *testing.T) (*config.Config, *config.Paths) {
	t.Helper()

	cfg := config.Default()
	cfg.Paths.BaseDir = t.TempDir()
	cfg.Processing.Workers = 1
	cfg.Telemetry.MetricsFile = "reports/extractor.prom"

	paths, err := cfg.ResolvePaths()
	require.NoError(t, err)
	return cfg, paths
}

func TestRunWritesSeries(t *testing.T) {
	cfg, paths := testConfig(t)
	require.NoError(t, os.MkdirAll(paths.InputDir, 0755))

	saveReport(t, paths.InputDir, "0120173K_ru.xlsx", reportCells(100))
	saveReport(t, paths.InputDir, "201802_3k_00000___ru.xlsx", reportCells(200))
	saveReport(t, paths.InputDir, "201802_3k_12345___ru.xlsx", reportCells(900))
	saveReport(t, paths.InputDir, "1220163K_ru.xlsx", reportCells(500))
	require.NoError(t, os.WriteFile(filepath.Join(paths.InputDir, "notes.txt"), []byte("x"), 0644))

	logger, handler := testutil.NewTestLogger(t)
	require.NoError(t, run(context.Background(), cfg, paths, logger))

	content, err := os.ReadFile(paths.ResultsCSV)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Join(domain.SeriesHeader, ","), lines[0])
	assert.Equal(t, "2017-01,100,101,102,103,104,0,0,0", lines[1])
	assert.Equal(t, "2018-02,200,201,202,203,204,0,0,0", lines[2])

	assert.False(t, handler.ContainsMessage("worksheet too small, counters set to zero"))
	assert.True(t, handler.ContainsMessage("skipping file with unrecognised name"))
	assert.True(t, handler.ContainsMessage("Extraction complete"))
	assert.True(t, handler.ContainsAttr("results", paths.ResultsCSV))

	metrics, err := os.ReadFile(filepath.Join(paths.ReportsDir, "extractor.prom"))
	require.NoError(t, err)
	assert.Contains(t, string(metrics), "files_discovered")
}

func TestRunEmptyInputWritesHeaderOnly(t *testing.T) {
	cfg, paths := testConfig(t)
	require.NoError(t, os.MkdirAll(paths.InputDir, 0755))

	logger, _ := testutil.NewTestLogger(t)
	require.NoError(t, run(context.Background(), cfg, paths, logger))

	content, err := os.ReadFile(paths.ResultsCSV)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(domain.SeriesHeader, ",")+"\n", string(content))
}

func TestRunMissingInputDirectory(t *testing.T) {
	cfg, paths := testConfig(t)

	logger, _ := testutil.NewTestLogger(t)
	err := run(context.Background(), cfg, paths, logger)

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeNotFound))
	assert.NoFileExists(t, paths.ResultsCSV)
}

func TestRunUnwritableResults(t *testing.T) {
	cfg, paths := testConfig(t)
	require.NoError(t, os.MkdirAll(paths.InputDir, 0755))
	saveReport(t, paths.InputDir, "0120173K_ru.xlsx", reportCells(100))

	// A directory in place of the results file makes the write fail
	require.NoError(t, os.MkdirAll(paths.ResultsCSV, 0755))

	logger, _ := testutil.NewTestLogger(t)
	err := run(context.Background(), cfg, paths, logger)

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeStorage))
}
