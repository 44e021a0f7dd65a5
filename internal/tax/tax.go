// Package tax computes income tax liability over marginal brackets.
package tax

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Bracket is one marginal band. A nil Max means the bracket is unbounded.
type Bracket struct {
	Min  decimal.Decimal
	Max  *decimal.Decimal
	Rate decimal.Decimal
}

// BracketTax is the liability accrued within one bracket.
type BracketTax struct {
	Bracket
	IncomeInBracket decimal.Decimal
	TaxAmount       decimal.Decimal
}

// Liability is a full tax computation result.
type Liability struct {
	TotalTax      decimal.Decimal
	EffectiveRate decimal.Decimal // percent of income
	Breakdown     []BracketTax
}

// Compute walks the brackets in ascending Min order, taxing the slice of
// income that falls inside each band until income is exhausted. Negative
// income is an error; zero income yields zero liability.
func Compute(annualIncome decimal.Decimal, brackets []Bracket) (Liability, error) {
	if annualIncome.IsNegative() {
		return Liability{}, fmt.Errorf("negative annual income %s", annualIncome)
	}
	if len(brackets) == 0 {
		return Liability{}, fmt.Errorf("no tax brackets supplied")
	}

	sorted := make([]Bracket, len(brackets))
	copy(sorted, brackets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Min.LessThan(sorted[j].Min)
	})

	var out Liability
	for _, b := range sorted {
		if annualIncome.LessThanOrEqual(b.Min) {
			break
		}

		upper := annualIncome
		if b.Max != nil && b.Max.LessThan(upper) {
			upper = *b.Max
		}
		inBracket := upper.Sub(b.Min)
		if inBracket.Sign() <= 0 {
			continue
		}

		amount := inBracket.Mul(b.Rate)
		out.TotalTax = out.TotalTax.Add(amount)
		out.Breakdown = append(out.Breakdown, BracketTax{
			Bracket:         b,
			IncomeInBracket: inBracket,
			TaxAmount:       amount,
		})
	}

	if annualIncome.IsPositive() {
		out.EffectiveRate = out.TotalTax.Div(annualIncome).Mul(decimal.NewFromInt(100))
	}
	return out, nil
}
