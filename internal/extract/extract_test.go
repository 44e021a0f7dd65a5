package extract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestCSVSource(t *testing.T) {
	in := "\uFEFFDate,Description,Amount\n" +
		"2024-01-15,TESCO STORES,-54.20\n" +
		",,\n" +
		"2024-01-16,SALARY,3100.00\n"

	tables, err := (&CSVSource{}).Extract(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, tables, 1)

	assert.Equal(t, []string{"Date", "Description", "Amount"}, tables[0].Headers)
	require.Len(t, tables[0].Rows, 2)
	assert.Equal(t, []string{"2024-01-16", "SALARY", "3100.00"}, tables[0].Rows[1])
}

func TestCSVSourceRaggedRows(t *testing.T) {
	in := "Date,Description,Amount\n2024-01-15,COFFEE\n"

	tables, err := (&CSVSource{}).Extract(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, tables[0].Rows, 1)
	assert.Equal(t, []string{"2024-01-15", "COFFEE"}, tables[0].Rows[0])
}

func TestXLSXSource(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"Date", "Description", "Amount"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"2024-02-01", "NETFLIX.COM", "-9.99"}))

	path := filepath.Join(t.TempDir(), "statement.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	r, err := os.Open(path)
	require.NoError(t, err)
	defer r.Close()

	tables, err := (&XLSXSource{}).Extract(r)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, []string{"Date", "Description", "Amount"}, tables[0].Headers)
	assert.Equal(t, []string{"2024-02-01", "NETFLIX.COM", "-9.99"}, tables[0].Rows[0])
}

func TestParseStatementLines(t *testing.T) {
	lines := []string{
		"Barclays Bank PLC",
		"Statement period 01/01/2024 to 31/01/2024",
		"15/01/2024 TESCO STORES 2941 £54.20 DR",
		"16/01/2024 ACME LTD SALARY 3,100.00 CR",
		"Closing balance 4,102.33",
	}

	table, ok := parseStatementLines(lines)
	require.True(t, ok)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"15/01/2024", "TESCO STORES 2941", "£54.20 DR"}, table.Rows[0])
	assert.Equal(t, []string{"16/01/2024", "ACME LTD SALARY", "3,100.00 CR"}, table.Rows[1])
}

func TestRegistryUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.docx")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := DefaultRegistry().FromFile(path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestRegistryEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := DefaultRegistry().FromFile(path)
	assert.ErrorIs(t, err, ErrNoTables)
}
