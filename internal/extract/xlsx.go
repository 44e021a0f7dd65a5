package extract

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/desco97/financedashboard/internal/model"
)

// XLSXSource reads a spreadsheet statement. Each non-empty sheet becomes one
// table, first row as headers.
type XLSXSource struct{}

func (s *XLSXSource) Extensions() []string { return []string{"xlsx", "xlsm"} }

func (s *XLSXSource) Extract(r io.Reader) ([]model.RawTable, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	var tables []model.RawTable
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
		}

		var table model.RawTable
		for _, row := range rows {
			if blankRecord(row) {
				continue
			}
			if table.Headers == nil {
				table.Headers = trimRecord(row)
				continue
			}
			table.Rows = append(table.Rows, trimRecord(row))
		}
		if table.Headers != nil {
			tables = append(tables, table)
		}
	}
	return tables, nil
}
