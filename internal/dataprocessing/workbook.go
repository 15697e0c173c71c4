package dataprocessing

//go:generate mockgen -source=workbook.go -destination=mocks/mock_workbook.go -package=mocks

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"crimedata/internal/config"
	apperrors "crimedata/internal/errors"
)

// Workbook is an opened spreadsheet file.
type Workbook interface {
	// SheetNames returns the worksheet names in workbook order.
	SheetNames() []string
	// Grid reads a whole worksheet.
	Grid(sheet string) (Grid, error)
	Close() error
}

// WorkbookOpener opens spreadsheet files.
type WorkbookOpener interface {
	Open(path string) (Workbook, error)
}

// ExcelOpener reads .xlsx workbooks with excelize.
type ExcelOpener struct{}

// NewExcelOpener creates an opener backed by excelize
func NewExcelOpener() *ExcelOpener {
	return &ExcelOpener{}
}

// Open opens the workbook at path
func (o *ExcelOpener) Open(path string) (Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewParsingError("failed to open workbook", err).WithContext("path", path)
	}
	return &excelWorkbook{file: f}, nil
}

type excelWorkbook struct {
	file *excelize.File
}

func (w *excelWorkbook) SheetNames() []string {
	return w.file.GetSheetList()
}

// Grid reads raw cell values, so numbers keep their stored precision
// regardless of the cell's number format. Numbers shown as dates or times
// become time.Time and never count as counter values.
func (w *excelWorkbook) Grid(sheet string) (Grid, error) {
	rows, err := w.file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read worksheet", err).WithContext("sheet", sheet)
	}

	cells := make([][]any, len(rows))
	for r, row := range rows {
		cells[r] = make([]any, len(row))
		for c, raw := range row {
			if raw == "" {
				continue
			}
			name, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, apperrors.NewParsingError("invalid cell coordinates", err)
			}
			cellType, err := w.file.GetCellType(sheet, name)
			if err != nil {
				return nil, apperrors.NewParsingError(fmt.Sprintf("failed to read cell type of %s", name), err)
			}
			value := typedCell(raw, cellType)
			if serial, ok := value.(float64); ok && w.dateFormatted(sheet, name) {
				if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
					value = t
				}
			}
			cells[r][c] = value
		}
	}

	return NewGrid(cells), nil
}

// dateFormatted reports whether the cell's number format renders a date or
// time. A style that cannot be read leaves the cell numeric.
func (w *excelWorkbook) dateFormatted(sheet, cell string) bool {
	styleID, err := w.file.GetCellStyle(sheet, cell)
	if err != nil || styleID == 0 {
		return false
	}
	style, err := w.file.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}
	if style.CustomNumFmt != nil {
		return isDateFormatCode(*style.CustomNumFmt)
	}
	return isBuiltInDateFormat(style.NumFmt)
}

func (w *excelWorkbook) Close() error {
	return w.file.Close()
}

// typedCell converts a raw cell string into the Grid cell representation.
func typedCell(raw string, cellType excelize.CellType) any {
	if raw == "" {
		return nil
	}

	switch cellType {
	case excelize.CellTypeBool:
		return raw == "1" || raw == "TRUE" || raw == "true"
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v
		}
	}
	return raw
}

// isBuiltInDateFormat reports whether id is one of the built-in date and
// time number formats, including the East Asian ones.
func isBuiltInDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22,
		id >= 27 && id <= 36,
		id >= 45 && id <= 47,
		id >= 50 && id <= 58:
		return true
	}
	return false
}

// isDateFormatCode reports whether a custom number format code contains a
// date or time token outside quoted literals, escapes and [..] sections.
func isDateFormatCode(code string) bool {
	// Only the positive section decides how a counter would be shown
	if i := strings.IndexByte(code, ';'); i >= 0 {
		code = code[:i]
	}

	inQuote, inBracket := false, false
	for i := 0; i < len(code); i++ {
		ch := code[i]
		switch {
		case inQuote:
			inQuote = ch != '"'
		case inBracket:
			if ch == ']' {
				inBracket = false
			}
		case ch == '"':
			inQuote = true
		case ch == '[':
			inBracket = true
		case ch == '\\' || ch == '_' || ch == '*':
			i++
		default:
			switch ch | 0x20 {
			case 'y', 'm', 'd', 'h', 's':
				return true
			}
		}
	}
	return false
}

// SelectSheet picks the worksheet holding the counters: the second sheet
// when it is named R1, the first sheet otherwise. A workbook with a single
// sheet is read from that sheet rather than treated as a failure.
func SelectSheet(names []string) (string, error) {
	if len(names) == 0 {
		return "", apperrors.NewParsingError("workbook has no worksheets", nil)
	}
	if len(names) > 1 && names[1] == config.R1SheetName {
		return names[1], nil
	}
	return names[0], nil
}
