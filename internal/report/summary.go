// Package report derives summary statistics from a categorized ledger.
package report

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/desco97/financedashboard/internal/model"
)

const topTransactionCount = 10

// Summary is the aggregate view of a set of transactions. Totals are
// positive display figures; MonthlyNet keeps raw signed sums.
type Summary struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetSavings    decimal.Decimal
	SavingsRate   decimal.Decimal // percent of income

	TopExpenseCategory   string
	TopIncomeSubcategory string

	ExpenseByCategory   map[string]decimal.Decimal
	IncomeBySubcategory map[string]decimal.Decimal
	MonthlyNet          map[string]decimal.Decimal // keyed YYYY-MM

	IncomeCount  int
	ExpenseCount int

	TopIncome   []model.Transaction // largest first
	TopExpenses []model.Transaction // most negative first
}

// Summarize aggregates a transaction set. Income rows count at absolute
// magnitude; transfers and investment movements group with expenses so the
// totals reconcile against the raw signed sum.
func Summarize(txs []model.Transaction) Summary {
	s := Summary{
		ExpenseByCategory:   make(map[string]decimal.Decimal),
		IncomeBySubcategory: make(map[string]decimal.Decimal),
		MonthlyNet:          make(map[string]decimal.Decimal),
	}

	var income, outgoing []model.Transaction
	for _, tx := range txs {
		month := tx.Date.Format("2006-01")
		s.MonthlyNet[month] = s.MonthlyNet[month].Add(tx.Amount)

		if tx.Category == "Income" {
			income = append(income, tx)
			continue
		}

		out := tx
		// Transfers and investment movements keep their recorded sign;
		// everything else is an expense and reads negative.
		if out.Category != "Transfer" && !strings.Contains(strings.ToLower(out.Description), "payward") {
			out.Amount = out.Amount.Abs().Neg()
		}
		outgoing = append(outgoing, out)
	}

	for _, tx := range income {
		amt := tx.Amount.Abs()
		s.TotalIncome = s.TotalIncome.Add(amt)
		s.IncomeBySubcategory[tx.Subcategory] = s.IncomeBySubcategory[tx.Subcategory].Add(amt)
	}

	outgoingSum := decimal.Zero
	for _, tx := range outgoing {
		outgoingSum = outgoingSum.Add(tx.Amount)
		s.ExpenseByCategory[tx.Category] = s.ExpenseByCategory[tx.Category].Add(tx.Amount)
	}
	for cat, sum := range s.ExpenseByCategory {
		s.ExpenseByCategory[cat] = sum.Abs()
	}

	s.TotalExpenses = outgoingSum.Abs()
	s.NetSavings = s.TotalIncome.Sub(s.TotalExpenses)
	if s.TotalIncome.IsPositive() {
		s.SavingsRate = s.NetSavings.Div(s.TotalIncome).Mul(decimal.NewFromInt(100))
	}

	s.IncomeCount = len(income)
	s.ExpenseCount = len(outgoing)
	s.TopExpenseCategory = maxKey(s.ExpenseByCategory)
	s.TopIncomeSubcategory = maxKey(s.IncomeBySubcategory)
	s.TopIncome = topByAmount(income, true)
	s.TopExpenses = topByAmount(outgoing, false)
	return s
}

// maxKey returns the key with the greatest value, ties broken alphabetically
// for determinism.
func maxKey(m map[string]decimal.Decimal) string {
	best := ""
	var bestVal decimal.Decimal
	for k, v := range m {
		if best == "" || v.GreaterThan(bestVal) || (v.Equal(bestVal) && k < best) {
			best, bestVal = k, v
		}
	}
	return best
}

func topByAmount(txs []model.Transaction, descending bool) []model.Transaction {
	out := make([]model.Transaction, len(txs))
	copy(out, txs)
	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return out[i].Amount.GreaterThan(out[j].Amount)
		}
		return out[i].Amount.LessThan(out[j].Amount)
	})
	if len(out) > topTransactionCount {
		out = out[:topTransactionCount]
	}
	return out
}
