// Package appendix writes the chart series of a deck to a workbook so the
// numbers behind each bar can be checked in a spreadsheet.
package appendix

import (
	"bytes"
	"errors"
	"fmt"

	gospreadsheet "github.com/VantageDataChat/GoExcel"

	"github.com/mem-portfolio/docgen/pkg/docgen/models"
	"github.com/mem-portfolio/docgen/pkg/docgen/theme"
)

// SheetName is the title of the single worksheet.
const SheetName = "Chart Data"

// Columns are the header cells, in order.
var Columns = []string{"Slide", "Label", "Value", "Band"}

// ErrNoSeries is returned when the deck has no bar series to write.
var ErrNoSeries = errors.New("deck has no chart series")

var columnWidths = []float64{36, 48, 10, 10}

func border(color string) gospreadsheet.Border {
	return gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: color}
}

func borders(color string) *gospreadsheet.Borders {
	return &gospreadsheet.Borders{
		Left:   border(color),
		Top:    border(color),
		Bottom: border(color),
		Right:  border(color),
	}
}

// Workbook builds the appendix for a deck. It returns the number of data
// rows alongside the workbook.
func Workbook(deck models.Deck) (*gospreadsheet.Workbook, int, error) {
	series := deck.Series()
	if len(series) == 0 {
		return nil, 0, ErrNoSeries
	}

	wb := gospreadsheet.New()
	ws := wb.GetActiveSheet()
	ws.SetTitle(SheetName)

	headerStyle := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{Bold: true, Size: 11, Color: "FFFFFF"}).
		SetFill(&gospreadsheet.Fill{Type: "solid", Color: theme.Slate.Hex()}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignCenter,
			Vertical:   gospreadsheet.AlignMiddle,
		}).
		SetBorders(borders("FFFFFF"))

	dataStyle := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{Size: 10}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignLeft,
			Vertical:   gospreadsheet.AlignMiddle,
		}).
		SetBorders(borders("D9D9D9"))

	for i, title := range Columns {
		cell, _ := gospreadsheet.CellName(0, i)
		ws.SetCellValue(cell, title)
		ws.SetCellStyle(cell, headerStyle)
		ws.SetColumnWidth(i, columnWidths[i])
	}
	ws.SetRowHeight(0, 22)

	row := 1
	for _, s := range series {
		for _, b := range s.Bars {
			values := []interface{}{s.Slide, b.Label, b.Value, theme.Band(b.Value)}
			for i, v := range values {
				cell, _ := gospreadsheet.CellName(row, i)
				ws.SetCellValue(cell, v)
				ws.SetCellStyle(cell, dataStyle)
			}
			row++
		}
	}

	ws.FreezePane("A2")

	wb.Properties.Title = deck.Title + " - " + SheetName
	wb.Properties.Subject = deck.Name

	return wb, row - 1, nil
}

// Bytes renders the appendix workbook for a deck.
func Bytes(deck models.Deck) ([]byte, int, error) {
	wb, rows, err := Workbook(deck)
	if err != nil {
		return nil, 0, err
	}

	var buf bytes.Buffer
	if err := gospreadsheet.NewXLSXWriter().Write(wb, &buf); err != nil {
		return nil, 0, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), rows, nil
}
