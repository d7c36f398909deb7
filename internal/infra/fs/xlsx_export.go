package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"supply-chain-insights/internal/datasets"

	"github.com/xuri/excelize/v2"
)

// SheetName derives a worksheet name from a table file name.
func SheetName(t datasets.Table) string {
	name := strings.TrimSuffix(t.Name, filepath.Ext(t.Name))
	if name == "" {
		name = "Sheet"
	}
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}

// ExportWorkbook writes every table to its own sheet of one workbook.
// Cells that parse as numbers are stored as numbers.
func ExportWorkbook(path string, tables []datasets.Table) error {
	if len(tables) == 0 {
		return fmt.Errorf("no tables to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	for i, t := range tables {
		sheet := SheetName(t)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, sheet); err != nil {
				return fmt.Errorf("failed to name sheet %s: %w", sheet, err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
		}

		header := make([]interface{}, len(t.Columns))
		for j, c := range t.Columns {
			header[j] = c
		}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return fmt.Errorf("failed to write header of %s: %w", sheet, err)
		}

		for r, row := range t.Rows {
			cells := make([]interface{}, len(row))
			for j, cell := range row {
				if v, err := strconv.ParseFloat(cell, 64); err == nil {
					cells[j] = v
				} else {
					cells[j] = cell
				}
			}
			addr, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(sheet, addr, &cells); err != nil {
				return fmt.Errorf("failed to write row %d of %s: %w", r+1, sheet, err)
			}
		}
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}
