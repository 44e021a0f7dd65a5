package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/desco97/financedashboard/internal/model"
)

// Header is the CSV header for ledger.csv.
const Header = "date,description,raw_description,amount,category,subcategory,source_subcategory,statement_id"

const (
	numFields  = 8
	dateFormat = "2006-01-02"
	colDate    = 0
	colDesc    = 1
	colRawDesc = 2
	colAmount  = 3
	colCat     = 4
	colSubcat  = 5
	colSrcSub  = 6
	colStmtID  = 7
)

// StatementHeader is the CSV header for statements.csv.
const StatementHeader = "statement_id,source_file,imported_at,transaction_count,date_from,date_to"

const (
	stmtNumFields = 6
	stmtColID     = 0
	stmtColFile   = 1
	stmtColAt     = 2
	stmtColCount  = 3
	stmtColFrom   = 4
	stmtColTo     = 5
)

// ReadTransactions reads all transactions from a ledger.csv reader.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledger CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var txs []model.Transaction
	for i, rec := range records[1:] {
		tx, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// WriteTransactions writes transactions to a ledger.csv writer (including header).
func WriteTransactions(w io.Writer, txs []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, tx := range txs {
		if err := cw.Write(MarshalTransaction(tx)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row ([]string).
func MarshalTransaction(tx model.Transaction) []string {
	row := make([]string, numFields)
	row[colDate] = tx.Date.Format(dateFormat)
	row[colDesc] = tx.Description
	row[colRawDesc] = tx.RawDescription
	row[colAmount] = tx.Amount.String()
	row[colCat] = tx.Category
	row[colSubcat] = tx.Subcategory
	if tx.SourceSubcat.Valid {
		row[colSrcSub] = tx.SourceSubcat.Label
	}
	row[colStmtID] = tx.StatementID
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	var hint model.SourceHint
	if record[colSrcSub] != "" {
		hint = model.Hint(record[colSrcSub])
	}

	return model.Transaction{
		Date:           date,
		Description:    record[colDesc],
		RawDescription: record[colRawDesc],
		Amount:         amount,
		Category:       record[colCat],
		Subcategory:    record[colSubcat],
		SourceSubcat:   hint,
		StatementID:    record[colStmtID],
	}, nil
}

// ReadStatements reads all batch records from a statements.csv reader.
func ReadStatements(r io.Reader) ([]model.StatementBatch, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = stmtNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statements CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var batches []model.StatementBatch
	for i, rec := range records[1:] {
		b, err := unmarshalStatement(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		batches = append(batches, b)
	}
	return batches, nil
}

// WriteStatements writes batch records to a statements.csv writer (including header).
func WriteStatements(w io.Writer, batches []model.StatementBatch) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(StatementHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, b := range batches {
		if err := cw.Write(marshalStatement(b)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

func marshalStatement(b model.StatementBatch) []string {
	row := make([]string, stmtNumFields)
	row[stmtColID] = b.ID
	row[stmtColFile] = b.SourceFile
	row[stmtColAt] = b.ImportedAt.UTC().Format(time.RFC3339)
	row[stmtColCount] = strconv.Itoa(b.TransactionCount)
	row[stmtColFrom] = b.DateFrom.Format(dateFormat)
	row[stmtColTo] = b.DateTo.Format(dateFormat)
	return row
}

func unmarshalStatement(record []string) (model.StatementBatch, error) {
	if len(record) != stmtNumFields {
		return model.StatementBatch{}, fmt.Errorf("expected %d fields, got %d", stmtNumFields, len(record))
	}

	at, err := time.Parse(time.RFC3339, record[stmtColAt])
	if err != nil {
		return model.StatementBatch{}, fmt.Errorf("parsing imported_at %q: %w", record[stmtColAt], err)
	}
	count, err := strconv.Atoi(record[stmtColCount])
	if err != nil {
		return model.StatementBatch{}, fmt.Errorf("parsing transaction_count %q: %w", record[stmtColCount], err)
	}
	from, err := time.Parse(dateFormat, record[stmtColFrom])
	if err != nil {
		return model.StatementBatch{}, fmt.Errorf("parsing date_from %q: %w", record[stmtColFrom], err)
	}
	to, err := time.Parse(dateFormat, record[stmtColTo])
	if err != nil {
		return model.StatementBatch{}, fmt.Errorf("parsing date_to %q: %w", record[stmtColTo], err)
	}

	return model.StatementBatch{
		ID:               record[stmtColID],
		SourceFile:       record[stmtColFile],
		ImportedAt:       at,
		TransactionCount: count,
		DateFrom:         from,
		DateTo:           to,
	}, nil
}
