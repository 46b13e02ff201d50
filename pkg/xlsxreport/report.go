// Package xlsxreport builds small single-table Excel workbooks: an optional
// bold title row, a header row, then the data rows.
package xlsxreport

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

type Column struct {
	Header string
	Width  float64
}

type Table struct {
	Sheet   string
	Title   string
	Columns []Column
	Rows    [][]interface{}
}

// Bytes renders the table into a one-sheet workbook.
func (t Table) Bytes() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := t.Sheet
	if sheet == "" {
		sheet = "Sheet1"
	}
	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return nil, fmt.Errorf("failed to name sheet: %w", err)
		}
	}

	for i, col := range t.Columns {
		if col.Width <= 0 {
			continue
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, name, name, col.Width); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	row := 1
	if t.Title != "" {
		if err := t.writeTitle(f, sheet, row); err != nil {
			return nil, err
		}
		row++
	}

	headers := make([]interface{}, len(t.Columns))
	for i, col := range t.Columns {
		headers[i] = col.Header
	}
	if err := t.writeRow(f, sheet, row, headers); err != nil {
		return nil, err
	}
	row++

	for _, cells := range t.Rows {
		if err := t.writeRow(f, sheet, row, cells); err != nil {
			return nil, err
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to generate workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (t Table) writeTitle(f *excelize.File, sheet string, row int) error {
	start, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, start, t.Title); err != nil {
		return fmt.Errorf("failed to write title: %w", err)
	}

	styleID, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create title style: %w", err)
	}

	end := start
	if len(t.Columns) > 1 {
		end, err = excelize.CoordinatesToCellName(len(t.Columns), row)
		if err != nil {
			return err
		}
		if err := f.MergeCell(sheet, start, end); err != nil {
			return fmt.Errorf("failed to merge title cells: %w", err)
		}
	}
	return f.SetCellStyle(sheet, start, end, styleID)
}

func (t Table) writeRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	start, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, start, &cells); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}
