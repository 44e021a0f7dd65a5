package sniff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desco97/financedashboard/internal/model"
)

func TestSniffFixedLayout(t *testing.T) {
	table := model.RawTable{
		Headers: []string{"Number", "Date", "Account", "Amount", "Subcategory", "Memo"},
		Rows:    [][]string{{"1", "15/01/2024", "20-00-00 1234", "-45.00", "Direct Debit", "BUPA CENTRAL"}},
	}

	sel, err := Sniff(table)
	require.NoError(t, err)
	assert.True(t, sel.FixedLayout)
	assert.True(t, sel.DayFirst)
	assert.Equal(t, 1, sel.DateCol)
	assert.Equal(t, 5, sel.DescCol)
	assert.Equal(t, 3, sel.AmountCol)
	assert.Equal(t, 4, sel.SubcatCol)
}

func TestSniffHeaderKeywords(t *testing.T) {
	table := model.RawTable{
		Headers: []string{"Transaction Date", "Narrative", "Amount", "Type"},
		Rows: [][]string{
			{"2024-01-15", "TESCO STORES 2941", "-12.50", "Card Purchase"},
		},
	}

	sel, err := Sniff(table)
	require.NoError(t, err)
	assert.Equal(t, 0, sel.DateCol)
	assert.Equal(t, 1, sel.DescCol)
	assert.Equal(t, 2, sel.AmountCol)
	assert.Equal(t, 3, sel.SubcatCol)
	assert.Equal(t, -1, sel.DebitCol)
	assert.False(t, sel.FixedLayout)
}

func TestSniffContentHeuristics(t *testing.T) {
	// Headers carry no recognizable names; roles come from the cell contents.
	table := model.RawTable{
		Headers: []string{"A", "B", "C"},
		Rows: [][]string{
			{"15/01/2024", "TESCO STORES LONDON GB", "-12.50"},
			{"16/01/2024", "SAINSBURYS S/MKT LONDON", "-54.20"},
			{"17/01/2024", "ACME WIDGETS LTD SALARY", "3100.00"},
		},
	}

	sel, err := Sniff(table)
	require.NoError(t, err)
	assert.Equal(t, 0, sel.DateCol)
	assert.Equal(t, 1, sel.DescCol)
	assert.Equal(t, 2, sel.AmountCol)
	assert.Equal(t, -1, sel.SubcatCol)
}

func TestSniffDebitCreditByName(t *testing.T) {
	table := model.RawTable{
		Headers: []string{"Date", "Details", "Money Out Amount", "Money In Amount"},
		Rows: [][]string{
			{"2024-01-15", "TESCO STORES LONDON", "12.50", ""},
			{"2024-01-16", "MONTHLY SALARY PAYMENT", "", "3100.00"},
		},
	}

	sel, err := Sniff(table)
	require.NoError(t, err)
	assert.Equal(t, -1, sel.AmountCol)
	assert.Equal(t, 2, sel.DebitCol)
	assert.Equal(t, 3, sel.CreditCol)
}

func TestSniffDebitCreditByStats(t *testing.T) {
	// Two amount-named columns with unhelpful names: the one skewing
	// negative is the debit side.
	table := model.RawTable{
		Headers: []string{"Date", "Details", "Value One", "Value Two"},
		Rows: [][]string{
			{"2024-01-15", "TESCO STORES LONDON", "-12.50", ""},
			{"2024-01-16", "SAINSBURYS S/MKT LONDON", "-54.20", ""},
			{"2024-01-17", "MONTHLY SALARY PAYMENT", "", "3100.00"},
		},
	}

	sel, err := Sniff(table)
	require.NoError(t, err)
	assert.Equal(t, 3, sel.CreditCol)
	assert.Equal(t, 2, sel.DebitCol)
}

func TestSniffNoAmountColumn(t *testing.T) {
	table := model.RawTable{
		Headers: []string{"A", "B"},
		Rows: [][]string{
			{"one first thing here", "another piece of text"},
			{"two second thing here", "more text in this cell"},
		},
	}

	_, err := Sniff(table)
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, schemaErr.Missing, "amount")
}
