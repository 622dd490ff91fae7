package fileloader

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX returns the rows of the first sheet of a workbook. Trailing empty
// cells are not returned, so rows may have different lengths.
func ReadXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// WriteXLSX writes records to the first sheet of a new workbook. Every cell
// is stored as text.
func WriteXLSX(w io.Writer, records [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		row := make([]interface{}, len(record))
		for j, v := range record {
			row[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	_, err := f.WriteTo(w)
	return err
}
