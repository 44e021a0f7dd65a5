package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SourceHint is an optional classification label carried over from the source
// statement format (e.g. "Direct Debit", "Counter Credit").
type SourceHint struct {
	Label string
	Valid bool
}

// Hint returns a valid SourceHint for label. An empty label is no hint.
func Hint(label string) SourceHint {
	if label == "" {
		return SourceHint{}
	}
	return SourceHint{Label: label, Valid: true}
}

// Transaction is one normalized, categorized ledger row.
// Date and Amount are always present and valid; Category is never empty once
// classification completes. Category and Subcategory may be rewritten later by
// manual recategorization; every other field is immutable after creation.
type Transaction struct {
	Date           time.Time
	Description    string
	RawDescription string
	Amount         decimal.Decimal // negative = expense, positive = income
	Category       string
	Subcategory    string
	SourceSubcat   SourceHint
	StatementID    string
}

// DedupKey identifies duplicate rows across imports.
func (t Transaction) DedupKey() string {
	return t.Date.Format("2006-01-02") + "\x1f" + t.Description + "\x1f" + t.Amount.String()
}

// StatementBatch records the metadata of one import operation. It owns the
// Transactions whose StatementID equals its ID; removing a batch removes them.
type StatementBatch struct {
	ID               string
	SourceFile       string
	ImportedAt       time.Time
	TransactionCount int
	DateFrom         time.Time
	DateTo           time.Time
}
