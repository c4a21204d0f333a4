package spreadsheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Sheet is a named table written as one worksheet
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// WriteXLSX writes the sheet as a workbook with a bold, frozen header row
func WriteXLSX(w io.Writer, sheet Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	name := sheet.Name
	if name == "" {
		name = "Sheet1"
	}
	if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeRow(f, name, 1, sheet.Headers); err != nil {
		return err
	}
	if len(sheet.Headers) > 0 {
		last, err := excelize.CoordinatesToCellName(len(sheet.Headers), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(name, "A1", last, headerStyle); err != nil {
			return fmt.Errorf("failed to style header: %w", err)
		}
		if err := f.SetPanes(name, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
			return fmt.Errorf("failed to freeze header: %w", err)
		}
	}

	for i, row := range sheet.Rows {
		if err := writeRow(f, name, i+2, row); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	if len(values) == 0 {
		return nil
	}
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &row); err != nil {
		return fmt.Errorf("failed to write row %d: %w", rowNum, err)
	}
	return nil
}
