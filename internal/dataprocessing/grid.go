package dataprocessing

// Grid is a rectangular snapshot of one worksheet, indexed [row][col] from
// zero. A cell holds nil when empty, float64 for numbers, bool for booleans
// and string for everything else.
type Grid [][]any

// NewGrid copies rows into a Grid, padding short rows with nil so every row
// has the width of the widest one.
func NewGrid(rows [][]any) Grid {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	grid := make(Grid, len(rows))
	for i, row := range rows {
		padded := make([]any, width)
		copy(padded, row)
		grid[i] = padded
	}
	return grid
}

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of columns.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// At returns the cell at (row, col). Out of range positions read as empty.
func (g Grid) At(row, col int) any {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return nil
	}
	return g[row][col]
}
