// Package survey reads the PPM survey workbook and derives the headline
// figures reported alongside the survey deck.
package survey

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the worksheet read when none is configured.
const DefaultSheet = "Sheet1"

var (
	// ErrSheetNotFound is returned when the requested worksheet is absent.
	ErrSheetNotFound = errors.New("sheet not found")
	// ErrNoData is returned when the worksheet has no non-empty cells.
	ErrNoData = errors.New("sheet has no data")
)

// Table is the non-empty region of a worksheet with its first row taken as
// the header.
type Table struct {
	Sheet string
	// Range is the bounding range in A1 notation, e.g. "A1:D8".
	Range  string
	Header []string
	Rows   []Row
}

// Row is one data row. Cells are keyed by Table.Header name; empty cells are
// omitted. Values are int64, float64, or string.
type Row struct {
	// R is the 1-based worksheet row number.
	R     int
	Cells map[string]interface{}
}

// Open reads the named sheet from the workbook at path.
func Open(path, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f, sheet)
}

// Read extracts the table on sheet from an open workbook. An empty sheet
// name selects DefaultSheet.
func Read(f *excelize.File, sheet string) (*Table, error) {
	if sheet == "" {
		sheet = DefaultSheet
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoData, sheet)
	}

	startCell, _ := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	endCell, _ := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	t := &Table{
		Sheet:  sheet,
		Range:  fmt.Sprintf("%s:%s", startCell, endCell),
		Header: headerRow(rows[minRow], minCol, maxCol),
	}

	for rowIdx := minRow + 1; rowIdx <= maxRow; rowIdx++ {
		row := rows[rowIdx]
		cells := make(map[string]interface{})
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			v := strings.TrimSpace(row[colIdx])
			if v == "" {
				continue
			}
			cells[t.Header[colIdx-minCol]] = parseValue(v)
		}
		if len(cells) > 0 {
			t.Rows = append(t.Rows, Row{R: rowIdx + 1, Cells: cells})
		}
	}
	return t, nil
}

// headerRow returns the header names for columns minCol..maxCol. Blank
// headers are named after their column letter, and a repeated name gets its
// column letter appended, e.g. "Q (C)", so every column keeps its own key.
func headerRow(row []string, minCol, maxCol int) []string {
	header := make([]string, 0, maxCol-minCol+1)
	seen := make(map[string]bool, maxCol-minCol+1)
	for colIdx := minCol; colIdx <= maxCol; colIdx++ {
		col, _ := excelize.ColumnNumberToName(colIdx + 1)
		var name string
		if colIdx < len(row) {
			name = strings.TrimSpace(row[colIdx])
		}
		if name == "" {
			name = col
		}
		for seen[name] {
			name = fmt.Sprintf("%s (%s)", name, col)
		}
		seen[name] = true
		header = append(header, name)
	}
	return header
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// findDataBounds finds the bounding box of non-empty cells as 0-based
// indexes. minRow is -1 when every cell is empty.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if strings.TrimSpace(cell) == "" {
				continue
			}
			if minRow < 0 {
				minRow = rowIdx
			}
			maxRow = rowIdx
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}
	return
}

// Column returns the values of the named column in row order, skipping rows
// where it is empty.
func (t *Table) Column(name string) []interface{} {
	var out []interface{}
	for _, r := range t.Rows {
		if v, ok := r.Cells[name]; ok {
			out = append(out, v)
		}
	}
	return out
}
