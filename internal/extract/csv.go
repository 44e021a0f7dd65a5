package extract

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/desco97/financedashboard/internal/model"
)

// CSVSource reads a comma-separated statement. The first non-blank record is
// the header row; fully blank records are skipped.
type CSVSource struct{}

func (s *CSVSource) Extensions() []string { return []string{"csv"} }

func (s *CSVSource) Extract(r io.Reader) ([]model.RawTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // bank exports pad rows inconsistently
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	var table model.RawTable
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv: %w", err)
		}
		if blankRecord(rec) {
			continue
		}
		if table.Headers == nil {
			table.Headers = trimRecord(rec)
			continue
		}
		table.Rows = append(table.Rows, trimRecord(rec))
	}
	if table.Headers == nil {
		return nil, nil
	}
	return []model.RawTable{table}, nil
}

func blankRecord(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func trimRecord(rec []string) []string {
	out := make([]string, len(rec))
	for i, f := range rec {
		out[i] = strings.TrimSpace(stripBOM(f))
	}
	return out
}

func stripBOM(s string) string {
	return strings.TrimPrefix(s, "\uFEFF")
}
