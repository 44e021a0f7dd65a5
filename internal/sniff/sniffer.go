// Package sniff infers which columns of a raw tabular batch hold the date,
// description and amount(s), with no assumptions about the source layout.
package sniff

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/desco97/financedashboard/internal/model"
	"github.com/desco97/financedashboard/internal/normalize"
)

// Selection names the role played by each chosen column. A column index of -1
// means the role is not in use.
type Selection struct {
	DateCol     int
	DescCol     int
	AmountCol   int // -1 when a debit/credit pair is in use
	DebitCol    int
	CreditCol   int
	SubcatCol   int // -1 when the source carries no subcategory hint
	FixedLayout bool
	DayFirst    bool
}

// SchemaError reports that no usable column combination exists, even after
// positional fallback. The whole batch is rejected.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("no usable %s column(s) found", strings.Join(e.Missing, "/"))
}

// fixedHeaders is the recognized fixed statement layout. It bypasses all
// heuristic passes and carries the source subcategory through.
var fixedHeaders = []string{"Number", "Date", "Account", "Amount", "Subcategory", "Memo"}

var dateKeywords = []string{"date", "time", "day", "post", "memo", "transaction date"}
var descKeywords = []string{
	"desc", "narrative", "details", "transaction", "merchant", "payee",
	"name", "memo", "description",
}
var amountKeywords = []string{"amount", "sum", "value", "debit", "credit", "balance"}

var subcatHeaders = map[string]bool{
	"subcategory": true, "subcat": true, "category": true,
	"type": true, "transaction type": true,
}

var debitNameKeywords = []string{"debit", "withdrawal", "expense", "payment", "out"}
var creditNameKeywords = []string{"credit", "deposit", "income", "received", "in"}

const (
	sampleSize    = 5
	amountSample  = 50
	amountCeiling = 100000 // plausible mean |amount| upper bound
)

// Sniff selects the date, description and amount column(s) of a table.
func Sniff(t model.RawTable) (Selection, error) {
	if isFixedLayout(t.Headers) {
		return Selection{
			DateCol: 1, DescCol: 5, AmountCol: 3,
			DebitCol: -1, CreditCol: -1, SubcatCol: 4,
			FixedLayout: true, DayFirst: true,
		}, nil
	}

	sel := Selection{DateCol: -1, DescCol: -1, AmountCol: -1, DebitCol: -1, CreditCol: -1, SubcatCol: -1}

	var dateCands, descCands, amountCands []int

	// Pass 1: header names. First matching bucket wins per column.
	for i, h := range t.Headers {
		lower := strings.ToLower(h)
		switch {
		case containsAny(lower, dateKeywords):
			dateCands = append(dateCands, i)
		case containsAny(lower, descKeywords):
			descCands = append(descCands, i)
		case containsAny(lower, amountKeywords):
			amountCands = append(amountCands, i)
		}
		if sel.SubcatCol < 0 && subcatHeaders[lower] {
			sel.SubcatCol = i
		}
	}

	// Pass 2: column contents, for roles the headers left unresolved.
	if len(dateCands) == 0 || len(descCands) == 0 || len(amountCands) == 0 {
		for i := range t.Headers {
			sample := sampleValues(t, i, sampleSize)
			if len(sample) == 0 {
				continue
			}
			if len(dateCands) == 0 && allDates(sample) {
				dateCands = append(dateCands, i)
				continue
			}
			if len(descCands) == 0 && looksTextual(sample) {
				descCands = append(descCands, i)
				continue
			}
			if len(amountCands) == 0 && looksMonetary(sampleValues(t, i, amountSample)) {
				amountCands = append(amountCands, i)
			}
		}
	}

	// Pass 3: positional fallback.
	if len(dateCands) == 0 && len(t.Headers) > 0 {
		dateCands = append(dateCands, 0)
	}
	if len(descCands) == 0 {
		if col := longestColumn(t, dateCands); col >= 0 {
			descCands = append(descCands, col)
		}
	}
	if len(amountCands) == 0 {
		amountCands = numericColumns(t, dateCands, descCands)
	}

	var missing []string
	if len(dateCands) == 0 {
		missing = append(missing, "date")
	}
	if len(descCands) == 0 {
		missing = append(missing, "description")
	}
	if len(amountCands) == 0 {
		missing = append(missing, "amount")
	}
	if len(missing) > 0 {
		return Selection{}, &SchemaError{Missing: missing}
	}

	sel.DateCol = dateCands[0]
	sel.DescCol = descCands[0]
	sel.DayFirst = true

	resolveAmount(&sel, t, amountCands)
	return sel, nil
}

// resolveAmount settles on a single signed column or a debit/credit pair.
func resolveAmount(sel *Selection, t model.RawTable, cands []int) {
	if len(cands) == 1 {
		sel.AmountCol = cands[0]
		return
	}

	// Too many candidates: keep the ones whose mean magnitude sits in the
	// typical transaction band.
	if len(cands) > 3 {
		if filtered := plausibleAmounts(t, cands); len(filtered) > 0 {
			cands = filtered
		}
	}
	if len(cands) == 1 {
		sel.AmountCol = cands[0]
		return
	}

	// Header names first.
	debit, credit := -1, -1
	for _, c := range cands {
		lower := strings.ToLower(t.Headers[c])
		switch {
		case containsAny(lower, debitNameKeywords):
			debit = c
		case containsAny(lower, creditNameKeywords):
			credit = c
		}
	}
	if debit >= 0 && credit >= 0 && debit != credit {
		sel.DebitCol, sel.CreditCol = debit, credit
		return
	}

	// Value statistics: the column that skews positive is the credit side,
	// the one that skews negative the debit side. The same column winning
	// both means a single unified signed column.
	bestPos, bestNeg := -1, -1
	var bestPosRatio, bestNegRatio float64
	for _, c := range cands {
		st := columnStats(t, c)
		if st.count == 0 {
			continue
		}
		if bestPos < 0 || st.posRatio > bestPosRatio {
			bestPos, bestPosRatio = c, st.posRatio
		}
		if bestNeg < 0 || st.negRatio > bestNegRatio {
			bestNeg, bestNegRatio = c, st.negRatio
		}
	}
	switch {
	case bestPos < 0:
		sel.AmountCol = cands[0]
	case bestPos == bestNeg:
		sel.AmountCol = bestPos
	default:
		sel.CreditCol, sel.DebitCol = bestPos, bestNeg
	}
}

type stats struct {
	count    int
	posRatio float64
	negRatio float64
}

func columnStats(t model.RawTable, col int) stats {
	var pos, neg, zero int
	for _, raw := range t.Column(col) {
		d, err := normalize.ParseAmount(raw)
		if err != nil {
			continue
		}
		switch d.Sign() {
		case 1:
			pos++
		case -1:
			neg++
		default:
			zero++
		}
	}
	// Zero cells count toward the total so a mostly-zero pair column does not
	// read as skewed toward the side its few signed values land on.
	total := pos + neg + zero
	if total == 0 {
		return stats{}
	}
	return stats{
		count:    total,
		posRatio: float64(pos) / float64(total),
		negRatio: float64(neg) / float64(total),
	}
}

func isFixedLayout(headers []string) bool {
	if len(headers) != len(fixedHeaders) {
		return false
	}
	for i, h := range headers {
		if !strings.EqualFold(strings.TrimSpace(h), fixedHeaders[i]) {
			return false
		}
	}
	return true
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// sampleValues returns up to n leading non-blank cells of a column.
func sampleValues(t model.RawTable, col, n int) []string {
	var out []string
	for i := range t.Rows {
		v := strings.TrimSpace(t.Cell(i, col))
		if v == "" {
			continue
		}
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}

func allDates(sample []string) bool {
	for _, v := range sample {
		if !normalize.LooksDate(v) {
			return false
		}
	}
	return len(sample) > 0
}

// looksTextual reports mostly non-numeric content with mean length over 10.
func looksTextual(sample []string) bool {
	numeric, totalLen := 0, 0
	for _, v := range sample {
		if normalize.LooksNumeric(v) {
			numeric++
		}
		totalLen += len(v)
	}
	if numeric*2 > len(sample) {
		return false
	}
	return float64(totalLen)/float64(len(sample)) > 10
}

// looksMonetary requires most cells numeric after currency stripping, a mean
// magnitude under the transaction ceiling, and either decimal points,
// currency symbols, or a typical magnitude band.
func looksMonetary(sample []string) bool {
	if len(sample) == 0 {
		return false
	}
	parsed := 0
	hasDecimals, hasCurrency := false, false
	sumAbs := decimal.Zero
	for _, v := range sample {
		if strings.ContainsAny(v, "$£€") {
			hasCurrency = true
		}
		d, err := normalize.ParseAmount(v)
		if err != nil {
			continue
		}
		parsed++
		if strings.Contains(v, ".") {
			hasDecimals = true
		}
		sumAbs = sumAbs.Add(d.Abs())
	}
	if parsed*10 < len(sample)*7 { // under 70% numeric
		return false
	}
	meanAbs := sumAbs.Div(decimal.NewFromInt(int64(parsed)))
	if meanAbs.GreaterThanOrEqual(decimal.NewFromInt(amountCeiling)) {
		return false
	}
	inBand := meanAbs.GreaterThanOrEqual(decimal.RequireFromString("0.01")) &&
		meanAbs.LessThanOrEqual(decimal.NewFromInt(10000))
	return hasDecimals || hasCurrency || inBand
}

// longestColumn picks the column with the greatest mean string length,
// skipping already-resolved columns.
func longestColumn(t model.RawTable, exclude []int) int {
	best, bestLen := -1, -1.0
	for i := range t.Headers {
		if contains(exclude, i) {
			continue
		}
		total, n := 0, 0
		for _, v := range t.Column(i) {
			total += len(v)
			n++
		}
		if n == 0 {
			continue
		}
		mean := float64(total) / float64(n)
		if mean > bestLen {
			best, bestLen = i, mean
		}
	}
	return best
}

// numericColumns returns remaining columns where most cells parse as amounts.
func numericColumns(t model.RawTable, dateCands, descCands []int) []int {
	var out []int
	for i := range t.Headers {
		if contains(dateCands, i) || contains(descCands, i) {
			continue
		}
		sample := sampleValues(t, i, amountSample)
		if len(sample) == 0 {
			continue
		}
		parsed := 0
		for _, v := range sample {
			if normalize.LooksNumeric(v) {
				parsed++
			}
		}
		if parsed*10 >= len(sample)*7 {
			out = append(out, i)
		}
	}
	return out
}

// plausibleAmounts filters candidates to those with mean |value| in the
// typical transaction band.
func plausibleAmounts(t model.RawTable, cands []int) []int {
	low := decimal.RequireFromString("0.01")
	high := decimal.NewFromInt(10000)
	var out []int
	for _, c := range cands {
		sumAbs, n := decimal.Zero, 0
		for _, v := range t.Column(c) {
			d, err := normalize.ParseAmount(v)
			if err != nil {
				continue
			}
			sumAbs = sumAbs.Add(d.Abs())
			n++
		}
		if n == 0 {
			continue
		}
		mean := sumAbs.Div(decimal.NewFromInt(int64(n)))
		if mean.GreaterThanOrEqual(low) && mean.LessThanOrEqual(high) {
			out = append(out, c)
		}
	}
	return out
}

func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
