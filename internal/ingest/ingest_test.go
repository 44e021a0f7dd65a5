package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desco97/financedashboard/internal/classify"
	"github.com/desco97/financedashboard/internal/model"
)

func testProcessor() *Processor {
	taxonomy := model.Taxonomy{Categories: []model.TaxonomyCategory{
		{Name: "Income", Subcategories: []string{"Salary/Wages", "Other Income"}},
		{Name: "Food", Subcategories: []string{"Groceries", "Fast Food"}},
		{Name: "Healthcare", Subcategories: []string{"Health Insurance"}},
		{Name: "Transfer", Subcategories: []string{"Internal Transfer"}},
	}}
	return NewProcessor(classify.NewDefault(taxonomy), nil)
}

func TestProcessUnifiedAmount(t *testing.T) {
	table := model.RawTable{
		Headers: []string{"Date", "Description", "Amount"},
		Rows: [][]string{
			{"2024-01-15", "TESCO STORES 2941", "-120.00"},
			{"2024-01-31", "ACME LTD SALARY", "3100.00"},
		},
	}

	res, err := testProcessor().Process([]model.RawTable{table}, "jan.csv", "jan_20240201_abcd1234")
	require.NoError(t, err)
	require.Len(t, res.Transactions, 2)
	assert.Zero(t, res.Dropped)

	tesco := res.Transactions[0]
	assert.Equal(t, "-120", tesco.Amount.String())
	assert.Equal(t, "Food", tesco.Category)
	assert.Equal(t, "Groceries", tesco.Subcategory)
	assert.Equal(t, "jan_20240201_abcd1234", tesco.StatementID)

	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), res.Batch.DateFrom)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), res.Batch.DateTo)
	assert.Equal(t, 2, res.Batch.TransactionCount)
}

func TestProcessDebitCreditPair(t *testing.T) {
	table := model.RawTable{
		Headers: []string{"Date", "Description", "Debit", "Credit"},
		Rows: [][]string{
			{"2024-03-02", "TESCO STORES", "120.00", ""},
			{"2024-03-04", "MONTHLY SALARY", "", "3100.00"},
		},
	}

	res, err := testProcessor().Process([]model.RawTable{table}, "mar.csv", "mar_1")
	require.NoError(t, err)
	require.Len(t, res.Transactions, 2)

	// A value in the debit column is negative regardless of how it was written.
	assert.Equal(t, "-120", res.Transactions[0].Amount.String())
	assert.Equal(t, "3100", res.Transactions[1].Amount.String())
}

func TestProcessIncomeSignCorrection(t *testing.T) {
	table := model.RawTable{
		Headers: []string{"Date", "Description", "Amount"},
		Rows: [][]string{
			{"2024-01-31", "MONTHLY SALARY MARCH", "-3100.00"},
		},
	}

	res, err := testProcessor().Process([]model.RawTable{table}, "s.csv", "s_1")
	require.NoError(t, err)
	require.Len(t, res.Transactions, 1)

	// Income rows are stored positive even when the feed signs them.
	assert.Equal(t, "Income", res.Transactions[0].Category)
	assert.Equal(t, "3100", res.Transactions[0].Amount.String())
}

func TestProcessExpenseSignCorrection(t *testing.T) {
	table := model.RawTable{
		Headers: []string{"Date", "Description", "Amount"},
		Rows: [][]string{
			{"2024-01-10", "TESCO STORES 2941", "120.00"},
			{"2024-01-12", "TRANSFER FROM INSTANT SAVER", "500.00"},
		},
	}

	res, err := testProcessor().Process([]model.RawTable{table}, "s.csv", "s_2")
	require.NoError(t, err)
	require.Len(t, res.Transactions, 2)

	// A feed-signed positive expense row is stored negative.
	tesco := res.Transactions[0]
	assert.Equal(t, "Food", tesco.Category)
	assert.Equal(t, "-120", tesco.Amount.String())

	// Transfers keep the feed's sign in both directions.
	saver := res.Transactions[1]
	assert.Equal(t, "Transfer", saver.Category)
	assert.Equal(t, "500", saver.Amount.String())
}

func TestProcessFixedLayout(t *testing.T) {
	table := model.RawTable{
		Headers: []string{"Number", "Date", "Account", "Amount", "Subcategory", "Memo"},
		Rows: [][]string{
			{"1", "15/01/2024", "20-00-00 1234", "-45.00", "Direct Debit", "BUPA CENTRAL\tDDR"},
		},
	}

	res, err := testProcessor().Process([]model.RawTable{table}, "barclays.csv", "b_1")
	require.NoError(t, err)
	require.Len(t, res.Transactions, 1)

	tx := res.Transactions[0]
	// Day-first date.
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), tx.Date)
	assert.Equal(t, "Healthcare", tx.Category)
	assert.Equal(t, "Health Insurance", tx.Subcategory)
	assert.True(t, tx.SourceSubcat.Valid)
	assert.Equal(t, "Direct Debit", tx.SourceSubcat.Label)
}

func TestProcessDropsBadRows(t *testing.T) {
	table := model.RawTable{
		Headers: []string{"Date", "Description", "Amount"},
		Rows: [][]string{
			{"2024-01-15", "TESCO STORES", "-12.00"},
			{"not a date", "TESCO STORES", "-12.00"},
			{"2024-01-16", "TESCO STORES", "twelve"},
		},
	}

	res, err := testProcessor().Process([]model.RawTable{table}, "x.csv", "x_1")
	require.NoError(t, err)
	assert.Len(t, res.Transactions, 1)
	assert.Equal(t, 2, res.Dropped)
}

func TestProcessAllRowsBad(t *testing.T) {
	table := model.RawTable{
		Headers: []string{"Date", "Description", "Amount"},
		Rows: [][]string{
			{"nope", "TESCO", "-1"},
		},
	}

	_, err := testProcessor().Process([]model.RawTable{table}, "x.csv", "x_1")
	assert.ErrorIs(t, err, ErrNoRows)
}

func TestProcessMultiPage(t *testing.T) {
	page1 := model.RawTable{
		Headers: []string{"Date", "Description", "Amount"},
		Rows:    [][]string{{"2024-01-15", "TESCO STORES", "-12.00"}},
	}
	page2 := model.RawTable{
		Headers: []string{"Date", "Description", "Amount"},
		Rows: [][]string{
			{"Date", "Description", "Amount"}, // repeated header
			{"2024-01-16", "SAINSBURYS LOCAL", "-9.00"},
		},
	}

	res, err := testProcessor().Process([]model.RawTable{page1, page2}, "multi.pdf", "m_1")
	require.NoError(t, err)
	assert.Len(t, res.Transactions, 2)
}
