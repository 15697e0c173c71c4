package exporter

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crimedata/internal/config"
	apperrors "crimedata/internal/errors"
)

// setupTestEnv creates a writer rooted in a temporary directory
func setupTestEnv(t *testing.T) (*CSVWriter, string) {
	t.Helper()

	tempDir := t.TempDir()
	writer := NewCSVWriter(&config.Paths{
		BaseDir:    tempDir,
		ReportsDir: filepath.Join(tempDir, "reports"),
	}, nil)

	return writer, tempDir
}

func TestNewCSVWriter(t *testing.T) {
	paths := &config.Paths{}
	writer := NewCSVWriter(paths, nil)

	assert.NotNil(t, writer)
	assert.Equal(t, paths, writer.paths)
	assert.NotNil(t, writer.logger)
}

func TestCSVWriter_WriteCSV(t *testing.T) {
	tests := []struct {
		name        string
		filePath    string
		options     WriteOptions
		wantContent string
	}{
		{
			name:     "headers and records",
			filePath: "results.csv",
			options: WriteOptions{
				Headers: []string{"Date", "Corruption"},
				Records: [][]string{{"2018-01", "12"}, {"2018-02", "0"}},
			},
			wantContent: "Date,Corruption\n2018-01,12\n2018-02,0\n",
		},
		{
			name:     "headers only",
			filePath: "empty.csv",
			options: WriteOptions{
				Headers: []string{"Date", "Corruption"},
			},
			wantContent: "Date,Corruption\n",
		},
		{
			name:     "fields needing quotes",
			filePath: "quoted.csv",
			options: WriteOptions{
				Headers: []string{"Name"},
				Records: [][]string{{"a,b"}, {`say "hi"`}},
			},
			wantContent: "Name\n\"a,b\"\n\"say \"\"hi\"\"\"\n",
		},
		{
			name:     "nested relative path",
			filePath: "monthly/results.csv",
			options: WriteOptions{
				Records: [][]string{{"x"}},
			},
			wantContent: "x\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer, tempDir := setupTestEnv(t)

			require.NoError(t, writer.WriteCSV(tt.filePath, tt.options))

			content, err := os.ReadFile(filepath.Join(tempDir, "reports", tt.filePath))
			require.NoError(t, err)
			assert.Equal(t, tt.wantContent, string(content))
		})
	}
}

func TestCSVWriter_NoBOM(t *testing.T) {
	writer, tempDir := setupTestEnv(t)

	require.NoError(t, writer.WriteCSV("utf8.csv", WriteOptions{
		Headers: []string{"Дата"},
		Records: [][]string{{"значение"}},
	}))

	content, err := os.ReadFile(filepath.Join(tempDir, "reports", "utf8.csv"))
	require.NoError(t, err)
	assert.False(t, bytes.HasPrefix(content, []byte{0xEF, 0xBB, 0xBF}))

	records, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Дата"}, {"значение"}}, records)
}

func TestCSVWriter_Overwrites(t *testing.T) {
	writer, tempDir := setupTestEnv(t)

	require.NoError(t, writer.WriteCSV("out.csv", WriteOptions{Records: [][]string{{"first"}, {"run"}}}))
	require.NoError(t, writer.WriteCSV("out.csv", WriteOptions{Records: [][]string{{"second"}}}))

	content, err := os.ReadFile(filepath.Join(tempDir, "reports", "out.csv"))
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(content))
}

func TestCSVWriter_ResolvePath(t *testing.T) {
	writer, tempDir := setupTestEnv(t)

	abs := filepath.Join(tempDir, "elsewhere", "out.csv")
	assert.Equal(t, abs, writer.resolvePath(abs))
	assert.Equal(t, filepath.Join(tempDir, "reports", "out.csv"), writer.resolvePath("out.csv"))

	bare := NewCSVWriter(nil, nil)
	assert.Equal(t, "out.csv", bare.resolvePath("out.csv"))
}

func TestCSVWriter_ErrorScenarios(t *testing.T) {
	writer, tempDir := setupTestEnv(t)

	// A regular file where the directory should be
	blocker := filepath.Join(tempDir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := writer.WriteCSV(filepath.Join(blocker, "out.csv"), WriteOptions{Records: [][]string{{"x"}}})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeStorage))

	// Target path is a directory
	dir := filepath.Join(tempDir, "adir")
	require.NoError(t, os.Mkdir(dir, 0755))
	err = writer.WriteCSV(dir, WriteOptions{Records: [][]string{{"x"}}})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeStorage))
}
