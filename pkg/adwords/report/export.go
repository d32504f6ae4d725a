package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/diwise/adwords/pkg/adwords/errors"
	"github.com/xuri/excelize/v2"
)

const maxSheetNameLength int = 31

var sheetNameReplacer = strings.NewReplacer(":", " ", "\\", " ", "/", " ", "?", " ", "*", " ", "[", "(", "]", ")")

// WriteXLSX writes every table of a parsed report to its own sheet, with the column
// display names as header row.
func WriteXLSX(w io.Writer, r *Report) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if r == nil || len(r.Table) == 0 {
		return write(f, w)
	}

	first := f.GetSheetName(0)

	for i, t := range r.Table {
		sheet := sheetName(r.Name(), i)

		if i == 0 {
			if err := f.SetSheetName(first, sheet); err != nil {
				return fmt.Errorf("failed to rename sheet: %s (%w)", err.Error(), errors.ErrInternal)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to create sheet: %s (%w)", err.Error(), errors.ErrInternal)
		}

		if err := writeTable(f, sheet, t); err != nil {
			return err
		}
	}

	return write(f, w)
}

func writeTable(f *excelize.File, sheet string, t Table) error {
	names := t.ColumnNames()

	header := make([]any, 0, len(names))
	for i, name := range names {
		display := name
		if i < len(t.Columns) && t.Columns[i].Display != "" {
			display = t.Columns[i].Display
		}
		header = append(header, display)
	}

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %s (%w)", err.Error(), errors.ErrInternal)
	}

	for i, row := range t.Rows {
		values := make([]any, 0, len(names))
		for _, name := range names {
			values = append(values, row[name])
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %s (%w)", i, err.Error(), errors.ErrInternal)
		}

		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %s (%w)", i, err.Error(), errors.ErrInternal)
		}
	}

	return nil
}

func write(f *excelize.File, w io.Writer) error {
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write xlsx: %s (%w)", err.Error(), errors.ErrInternal)
	}
	return nil
}

func sheetName(reportName string, index int) string {
	name := sheetNameReplacer.Replace(reportName)
	if name == "" {
		name = "Report"
	}

	if index > 0 {
		name = fmt.Sprintf("%s %d", name, index+1)
	}

	if len(name) > maxSheetNameLength {
		name = name[:maxSheetNameLength]
	}

	return name
}
