package exporter

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "crimedata/internal/errors"
	"crimedata/internal/shared/testutil"
	"crimedata/pkg/contracts/domain"
)

const seriesHeader = "Date,Corruption,Minor Corruption,Moderate Corruption,Grave Crime,Especially Grave Crime,Embezzlement,Fraud,Legalization of Money"

func TestResultsExporter_Export(t *testing.T) {
	tests := []struct {
		name  string
		table domain.FinalTable
		want  []string
	}{
		{
			name:  "empty table writes header only",
			table: domain.FinalTable{},
			want:  []string{seriesHeader},
		},
		{
			name: "rows in table order",
			table: domain.FinalTable{Rows: []domain.SeriesRow{
				{
					Period: domain.Period{Year: 2017, Month: 1},
					Date:   "2017-01",
					Counters: domain.CounterSet{
						TotalCorruption:      120,
						MinorCorruption:      10,
						ModerateCorruption:   20,
						GraveCrime:           30,
						EspeciallyGraveCrime: 40,
						Embezzlement:         5,
						Fraud:                6,
						LegalizationOfMoney:  7,
					},
				},
				{
					Period: domain.Period{Year: 2018, Month: 11},
					Date:   "2018-11",
				},
			}},
			want: []string{
				seriesHeader,
				"2017-01,120,10,20,30,40,5,6,7",
				"2018-11,0,0,0,0,0,0,0,0",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer, tempDir := setupTestEnv(t)
			logger, handler := testutil.NewTestLogger(t)
			path := filepath.Join(tempDir, "reports", "results.csv")

			require.NoError(t, NewResultsExporter(writer, logger).Export(path, tt.table))

			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, strings.Join(tt.want, "\n")+"\n", string(content))
			testutil.AssertLogContains(t, handler, slog.LevelInfo, "Results exported")
		})
	}
}

func TestResultsExporter_UnwritableSink(t *testing.T) {
	writer, tempDir := setupTestEnv(t)

	blocker := filepath.Join(tempDir, "reports")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0644))

	err := NewResultsExporter(writer, nil).Export("results.csv", domain.FinalTable{})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeStorage))
}
