// internals/features/academy/reports/presenter/xlsx.go
package presenter

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	defaultSheet  = "Sheet1"
	maxSheetChars = 31
)

// WriteXLSX saves one sheet per section. Row 1 holds the title; the table,
// the scalar or the not-found message starts on row 3.
func WriteXLSX(path string, sections []Section) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sections {
		name := SheetName(i, s)
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("new sheet %q: %w", name, err)
		}
		if err := writeSection(f, name, s); err != nil {
			return fmt.Errorf("sheet %q: %w", name, err)
		}
	}

	if len(sections) > 0 {
		if err := f.DeleteSheet(defaultSheet); err != nil {
			return fmt.Errorf("delete default sheet: %w", err)
		}
		idx, err := f.GetSheetIndex(SheetName(0, sections[0]))
		if err != nil {
			return err
		}
		f.SetActiveSheet(idx)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// SheetName numbers the sheet and trims it to the Excel limit.
func SheetName(i int, s Section) string {
	name := fmt.Sprintf("%d %s", i+1, s.Sheet)
	if r := []rune(name); len(r) > maxSheetChars {
		name = string(r[:maxSheetChars])
	}
	return name
}

func writeSection(f *excelize.File, sheet string, s Section) error {
	if err := f.SetCellValue(sheet, "A1", s.Title); err != nil {
		return err
	}

	switch {
	case !s.Found():
		return f.SetCellValue(sheet, "A3", s.Missing)
	case s.Scalar != nil:
		return f.SetCellValue(sheet, "A3", *s.Scalar)
	}

	for col, h := range s.Headers {
		if err := setCell(f, sheet, col+1, 3, h); err != nil {
			return err
		}
	}
	for r, row := range s.Rows {
		for col, v := range row {
			if err := setCell(f, sheet, col+1, r+4, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, v)
}
