// Package normalize turns raw statement cells into signed decimal amounts and
// stable vendor descriptions.
package normalize

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// stripper removes currency symbols, thousands separators and whitespace.
var stripper = strings.NewReplacer("$", "", "£", "", "€", "", ",", "", " ", "", "\t", "")

// ParseAmount parses a raw cell into a signed decimal. Parenthesized values
// are negative, a trailing CR marker is a credit (positive), a trailing DR
// marker is a debit (forced negative).
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("empty amount")
	}

	forceNegative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		forceNegative = true
		s = s[1 : len(s)-1]
	}

	upper := strings.ToUpper(strings.TrimSpace(s))
	switch {
	case strings.HasSuffix(upper, "CR"):
		s = strings.TrimSpace(s[:len(s)-2])
	case strings.HasSuffix(upper, "DR"):
		forceNegative = true
		s = strings.TrimSpace(s[:len(s)-2])
	}

	s = stripper.Replace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: %w", raw, err)
	}
	if forceNegative {
		d = d.Abs().Neg()
	}
	return d, nil
}

// CombinePair merges separate debit and credit cells into one signed amount.
// The debit side is forced to negative magnitude, the credit side to positive.
// When exactly one side is non-zero that side is used directly; this guards
// against double counting when the inactive column carries a placeholder zero
// with rounding noise. Blank cells count as zero.
func CombinePair(debitRaw, creditRaw string) (decimal.Decimal, error) {
	debit, err := parseOrZero(debitRaw)
	if err != nil {
		return decimal.Decimal{}, err
	}
	credit, err := parseOrZero(creditRaw)
	if err != nil {
		return decimal.Decimal{}, err
	}

	debit = debit.Abs().Neg()
	credit = credit.Abs()

	switch {
	case !debit.IsZero() && credit.IsZero():
		return debit, nil
	case debit.IsZero() && !credit.IsZero():
		return credit, nil
	default:
		return credit.Add(debit), nil
	}
}

func parseOrZero(raw string) (decimal.Decimal, error) {
	if strings.TrimSpace(raw) == "" {
		return decimal.Zero, nil
	}
	return ParseAmount(raw)
}

// LooksNumeric reports whether a raw cell parses as an amount after cleanup.
func LooksNumeric(raw string) bool {
	_, err := ParseAmount(raw)
	return err == nil
}
