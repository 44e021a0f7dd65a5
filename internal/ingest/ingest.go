// Package ingest orchestrates a statement import: schema sniffing, row
// normalization and classification. A batch either imports as a whole or
// fails; individual unparsable rows are dropped and counted, never fatal.
package ingest

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/desco97/financedashboard/internal/classify"
	"github.com/desco97/financedashboard/internal/model"
	"github.com/desco97/financedashboard/internal/normalize"
	"github.com/desco97/financedashboard/internal/sniff"
)

// ErrNoRows marks a statement where every row failed to parse.
var ErrNoRows = errors.New("no parsable transaction rows")

// Result is a processed statement batch, not yet merged into a ledger.
type Result struct {
	Transactions []model.Transaction
	Batch        model.StatementBatch
	Dropped      int
}

// Processor turns raw statement tables into classified transactions.
type Processor struct {
	classifier *classify.Classifier
	logger     *slog.Logger
	now        func() time.Time
}

// NewProcessor wires a processor. A nil logger discards diagnostics.
func NewProcessor(c *classify.Classifier, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Processor{classifier: c, logger: logger, now: time.Now}
}

// Process converts statement tables into a batch of classified transactions.
// Tables are concatenated before sniffing so multi-page statements resolve a
// single schema. Rows with an unparsable date or amount are dropped and
// counted; a schema that cannot be resolved fails the whole batch.
func (p *Processor) Process(tables []model.RawTable, sourceFile, statementID string) (Result, error) {
	table := model.Concat(tables)

	sel, err := sniff.Sniff(table)
	if err != nil {
		return Result{}, fmt.Errorf("resolving statement schema: %w", err)
	}
	p.logger.Debug("schema resolved",
		"file", sourceFile,
		"date_col", sel.DateCol,
		"desc_col", sel.DescCol,
		"amount_col", sel.AmountCol,
		"debit_col", sel.DebitCol,
		"credit_col", sel.CreditCol,
		"fixed_layout", sel.FixedLayout)

	res := Result{Batch: model.StatementBatch{
		ID:         statementID,
		SourceFile: sourceFile,
		ImportedAt: p.now().UTC(),
	}}

	var dateFrom, dateTo time.Time
	for i := range table.Rows {
		tx, err := p.buildRow(table, sel, i)
		if err != nil {
			res.Dropped++
			p.logger.Debug("dropping row", "file", sourceFile, "row", i, "reason", err)
			continue
		}
		tx.StatementID = statementID
		res.Transactions = append(res.Transactions, tx)

		if dateFrom.IsZero() || tx.Date.Before(dateFrom) {
			dateFrom = tx.Date
		}
		if tx.Date.After(dateTo) {
			dateTo = tx.Date
		}
	}

	if len(res.Transactions) == 0 {
		return Result{}, fmt.Errorf("%s: %w", sourceFile, ErrNoRows)
	}

	res.Batch.TransactionCount = len(res.Transactions)
	res.Batch.DateFrom = dateFrom
	res.Batch.DateTo = dateTo

	p.logger.Info("statement processed",
		"file", sourceFile,
		"statement_id", statementID,
		"transactions", len(res.Transactions),
		"dropped", res.Dropped)
	return res, nil
}

func (p *Processor) buildRow(table model.RawTable, sel sniff.Selection, row int) (model.Transaction, error) {
	date, err := normalize.ParseDate(table.Cell(row, sel.DateCol), sel.DayFirst)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("date: %w", err)
	}

	amount, err := rowAmount(table, sel, row)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("amount: %w", err)
	}

	raw := table.Cell(row, sel.DescCol)
	desc := normalize.Clean(raw)

	var hint model.SourceHint
	if sel.SubcatCol >= 0 {
		if v := table.Cell(row, sel.SubcatCol); v != "" {
			hint = model.Hint(v)
		}
	}

	cat := p.classifier.Classify(desc, hint, amount)
	amount = normalizeSign(cat.Category, desc, amount)

	return model.Transaction{
		Date:           date,
		Description:    desc,
		RawDescription: raw,
		Amount:         amount,
		Category:       cat.Category,
		Subcategory:    cat.Subcategory,
		SourceSubcat:   hint,
	}, nil
}

// normalizeSign enforces the ledger's sign convention regardless of how the
// bank signed the row: income is stored positive, expenses negative.
// Transfers and investment movements keep the feed's sign so both directions
// survive.
func normalizeSign(category, desc string, amount decimal.Decimal) decimal.Decimal {
	switch {
	case category == "Income":
		return amount.Abs()
	case category == "Transfer", strings.Contains(strings.ToLower(desc), "payward"):
		return amount
	}
	return amount.Abs().Neg()
}

func rowAmount(table model.RawTable, sel sniff.Selection, row int) (decimal.Decimal, error) {
	if sel.DebitCol >= 0 || sel.CreditCol >= 0 {
		return normalize.CombinePair(table.Cell(row, sel.DebitCol), table.Cell(row, sel.CreditCol))
	}
	return normalize.ParseAmount(table.Cell(row, sel.AmountCol))
}
