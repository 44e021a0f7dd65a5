package extract

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/desco97/financedashboard/internal/model"
)

// PDFSource reads a text-based PDF statement. Lines that carry a leading
// date and a trailing amount are treated as transaction rows; everything
// else (headers, footers, balances) is discarded. Scanned PDFs yield no
// rows and surface as ErrNoTables.
type PDFSource struct{}

func (s *PDFSource) Extensions() []string { return []string{"pdf"} }

// statementLineRe splits a statement line into date, description and amount.
// Amounts may carry currency symbols, thousands separators, parentheses or a
// trailing CR/DR marker; the normalizer sorts those out later.
var statementLineRe = regexp.MustCompile(
	`^(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4}|\d{4}-\d{2}-\d{2}|\d{1,2}\s+[A-Za-z]{3}(?:\s+\d{2,4})?)\s+` +
		`(.+?)\s+` +
		`(\(?-?[£$€]?[\d,]+(?:\.\d{1,2})?\)?(?:\s?(?:CR|DR))?)$`)

func (s *PDFSource) Extract(r io.Reader) (tables []model.RawTable, err error) {
	// The pdf library panics on some malformed files.
	defer func() {
		if rec := recover(); rec != nil {
			tables, err = nil, fmt.Errorf("reading pdf: %v", rec)
		}
	}()

	ra, size, err := readAllSeekable(r)
	if err != nil {
		return nil, fmt.Errorf("buffering pdf: %w", err)
	}

	reader, err := pdf.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return nil, fmt.Errorf("extracting pdf text: %w", err)
	}
	text, err := io.ReadAll(plain)
	if err != nil {
		return nil, fmt.Errorf("reading pdf text: %w", err)
	}

	table, ok := parseStatementLines(strings.Split(string(text), "\n"))
	if !ok {
		return nil, nil
	}
	return []model.RawTable{table}, nil
}

// parseStatementLines keeps only lines shaped like date/description/amount.
func parseStatementLines(lines []string) (model.RawTable, bool) {
	table := model.RawTable{Headers: []string{"Date", "Description", "Amount"}}
	for _, line := range lines {
		m := statementLineRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		table.Rows = append(table.Rows, []string{m[1], m[2], m[3]})
	}
	if len(table.Rows) == 0 {
		return model.RawTable{}, false
	}
	return table, true
}
