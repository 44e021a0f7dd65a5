package model

// RawTable is one extracted table of raw cell values: ordered column headers
// plus rows of cells as strings. Rows shorter than the header are allowed;
// missing cells read as blank.
type RawTable struct {
	Headers []string
	Rows    [][]string
}

// Cell returns the cell at row/col, or "" when the row is short or the
// column index is unset (negative).
func (t RawTable) Cell(row, col int) string {
	if col >= 0 && col < len(t.Rows[row]) {
		return t.Rows[row][col]
	}
	return ""
}

// Column returns all cells of one column, blank-padded to the row count.
func (t RawTable) Column(col int) []string {
	out := make([]string, len(t.Rows))
	for i := range t.Rows {
		out[i] = t.Cell(i, col)
	}
	return out
}

// Concat combines the rows of all tables under the first table's headers.
// Tables extracted from multi-page documents repeat their header; repeated
// header rows are skipped.
func Concat(tables []RawTable) RawTable {
	if len(tables) == 0 {
		return RawTable{}
	}
	out := RawTable{Headers: tables[0].Headers}
	for _, tbl := range tables {
		for _, row := range tbl.Rows {
			if isHeaderRow(row, out.Headers) {
				continue
			}
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

func isHeaderRow(row, headers []string) bool {
	if len(row) != len(headers) {
		return false
	}
	for i := range row {
		if row[i] != headers[i] {
			return false
		}
	}
	return len(headers) > 0
}
