package dataprocessing

import (
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crimedata/internal/shared/testutil"
	"crimedata/pkg/contracts/domain"
)

func blankGrid(rows, cols int) Grid {
	grid := make(Grid, rows)
	for i := range grid {
		grid[i] = make([]any, cols)
	}
	return grid
}

// r1Grid lays out a worksheet the way the R1 template does.
func r1Grid() Grid {
	g := blankGrid(16, 12)
	g[6][1], g[6][4] = labelTotalR1, 120.0
	g[7][2], g[7][4] = labelMinor, 10.0
	g[8][2], g[8][4] = labelModerate, 20.0
	g[9][2], g[9][4] = labelGrave, 30.0
	g[10][2], g[10][4] = labelEspGrave, 40.0
	g[11][2], g[11][4] = labelEmbezzlement, 5.0
	g[12][2], g[12][4] = labelFraud, 6.0
	g[13][2], g[13][4] = labelLegalization+" ", 7.0
	return g
}

func newTestExtractor(t *testing.T) (*CounterExtractor, *testutil.BufferedSlogHandler) {
	logger, handler := testutil.NewTestLogger(t)
	return NewCounterExtractor(nil, logger, nil), handler
}

func TestExtractR1Layout(t *testing.T) {
	extractor, handler := newTestExtractor(t)

	got := extractor.Extract(r1Grid(), "r1.xlsx")

	assert.Equal(t, domain.CounterSet{
		TotalCorruption:      120,
		MinorCorruption:      10,
		ModerateCorruption:   20,
		GraveCrime:           30,
		EspeciallyGraveCrime: 40,
		Embezzlement:         5,
		Fraud:                6,
		LegalizationOfMoney:  7,
	}, got)
	testutil.AssertNoErrors(t, handler)
	assert.Empty(t, handler.GetRecordsByLevel(slog.LevelWarn))

	// Extraction is pure: the same grid always yields the same counters
	assert.Equal(t, got, extractor.Extract(r1Grid(), "r1.xlsx"))
}

func TestExtractAlternateLayoutOverrides(t *testing.T) {
	extractor, _ := newTestExtractor(t)

	g := r1Grid()
	g[7][0], g[7][3] = labelTotalConvicts, 99.0
	g[8][1], g[8][3] = labelEmbezzlementShort, 11.0
	g[9][1], g[9][3] = labelFraudShort, 12.0

	got := extractor.Extract(g, "mixed.xlsx")

	assert.Equal(t, int64(99), got.TotalCorruption)
	assert.Equal(t, int64(11), got.Embezzlement)
	assert.Equal(t, int64(12), got.Fraud)
	assert.Equal(t, int64(10), got.MinorCorruption)
	assert.Equal(t, int64(7), got.LegalizationOfMoney)
}

func TestExtractConvictsLayoutOnly(t *testing.T) {
	extractor, _ := newTestExtractor(t)

	g := blankGrid(14, 11)
	g[7][0], g[7][3] = labelTotalConvicts, 42.0
	g[8][1], g[8][3] = labelEmbezzlementShort, 3.0
	g[9][1], g[9][3] = labelFraudShort, 4.0

	got := extractor.Extract(g, "convicts.xlsx")

	assert.Equal(t, domain.CounterSet{TotalCorruption: 42, Embezzlement: 3, Fraud: 4}, got)
}

func TestExtractLabelMatching(t *testing.T) {
	tests := []struct {
		name  string
		row   int
		col   int
		label any
		want  func(domain.CounterSet) int64
		value int64
	}{
		{
			name: "trimmed label with padding", row: 9, col: 2, label: "  тяжкие ",
			want: func(c domain.CounterSet) int64 { return c.GraveCrime }, value: 30,
		},
		{
			name: "total R1 label with padding", row: 6, col: 1, label: " " + labelTotalR1 + "\t",
			want: func(c domain.CounterSet) int64 { return c.TotalCorruption }, value: 120,
		},
		{
			name: "embezzlement trailing space", row: 11, col: 2, label: labelEmbezzlement + " ",
			want: func(c domain.CounterSet) int64 { return c.Embezzlement }, value: 5,
		},
		{
			name: "embezzlement part four exact", row: 11, col: 2, label: labelEmbezzlementPart4,
			want: func(c domain.CounterSet) int64 { return c.Embezzlement }, value: 5,
		},
		{
			name: "embezzlement part four padded is rejected", row: 11, col: 2, label: labelEmbezzlementPart4 + " ",
			want: func(c domain.CounterSet) int64 { return c.Embezzlement }, value: 0,
		},
		{
			name: "fraud part four", row: 12, col: 2, label: " " + labelFraudPart4,
			want: func(c domain.CounterSet) int64 { return c.Fraud }, value: 6,
		},
		{
			name: "legalization two trailing spaces", row: 13, col: 2, label: labelLegalization + "  ",
			want: func(c domain.CounterSet) int64 { return c.LegalizationOfMoney }, value: 7,
		},
		{
			name: "legalization without trailing space is rejected", row: 13, col: 2, label: labelLegalization,
			want: func(c domain.CounterSet) int64 { return c.LegalizationOfMoney }, value: 0,
		},
		{
			name: "numeric label cell never matches", row: 7, col: 2, label: 1.0,
			want: func(c domain.CounterSet) int64 { return c.MinorCorruption }, value: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extractor, _ := newTestExtractor(t)

			g := r1Grid()
			g[tt.row][tt.col] = tt.label

			got := extractor.Extract(g, "labels.xlsx")
			assert.Equal(t, tt.value, tt.want(got))
		})
	}
}

func TestExtractConvictsLabelIsExact(t *testing.T) {
	extractor, _ := newTestExtractor(t)

	g := blankGrid(14, 11)
	g[7][0], g[7][3] = strings.TrimSpace(labelTotalConvicts), 42.0

	got := extractor.Extract(g, "convicts.xlsx")

	assert.Equal(t, int64(0), got.TotalCorruption)
}

func TestExtractValueCells(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int64
	}{
		{name: "float", value: 12.0, want: 12},
		{name: "fraction truncated", value: 12.9, want: 12},
		{name: "negative truncated toward zero", value: -3.7, want: -3},
		{name: "int", value: 8, want: 8},
		{name: "int64", value: int64(9), want: 9},
		{name: "missing", value: nil, want: 0},
		{name: "numeric text", value: "12", want: 0},
		{name: "bool", value: true, want: 0},
		{name: "NaN", value: math.NaN(), want: 0},
		{name: "infinity", value: math.Inf(1), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extractor, _ := newTestExtractor(t)

			g := r1Grid()
			g[9][4] = tt.value

			got := extractor.Extract(g, "values.xlsx")
			assert.Equal(t, tt.want, got.GraveCrime)
			// Other counters are unaffected
			assert.Equal(t, int64(10), got.MinorCorruption)
		})
	}
}

func TestExtractUndersizedGrid(t *testing.T) {
	tests := []struct {
		name string
		rows int
		cols int
	}{
		{name: "too few rows", rows: 13, cols: 12},
		{name: "too few columns", rows: 20, cols: 4},
		{name: "empty", rows: 0, cols: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extractor, handler := newTestExtractor(t)

			got := extractor.Extract(blankGrid(tt.rows, tt.cols), "small.xlsx")

			assert.True(t, got.IsZero())
			testutil.AssertLogContains(t, handler, slog.LevelWarn, "worksheet too small")
			testutil.AssertLogAttr(t, handler, "rows", int64(tt.rows))
			assert.False(t, handler.ContainsMessage("no counters resolved"))
		})
	}
}

func TestExtractNarrowGridSkipsLookups(t *testing.T) {
	extractor, handler := newTestExtractor(t)

	// Big enough to pass the size check but not for the lookups
	g := r1Grid()
	for i := range g {
		g[i] = g[i][:10]
	}

	got := extractor.Extract(g, "narrow.xlsx")

	assert.True(t, got.IsZero())
	testutil.AssertLogContains(t, handler, slog.LevelWarn, "no counters resolved")
	testutil.AssertLogAttr(t, handler, "file", "narrow.xlsx")
}

func TestExtractUnrecognisedLayout(t *testing.T) {
	extractor, handler := newTestExtractor(t)

	got := extractor.Extract(blankGrid(20, 15), "unknown.xlsx")

	assert.True(t, got.IsZero())
	testutil.AssertLogContains(t, handler, slog.LevelWarn, "no counters resolved")
}

func TestNumericValue(t *testing.T) {
	v, ok := numericValue(float32(2.5))
	require.True(t, ok)
	assert.Equal(t, int64(2), v)

	_, ok = numericValue(float32(math.NaN()))
	assert.False(t, ok)

	_, ok = numericValue(math.Inf(-1))
	assert.False(t, ok)
}
