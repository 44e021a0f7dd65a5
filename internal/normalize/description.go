package normalize

import (
	"regexp"
	"strings"
)

// Free-text memos carry bank noise around the vendor token: generic labels,
// reference codes, embedded dates. Clean applies an ordered rule pipeline where
// the first applicable extraction rule wins.

var (
	refSuffixRe   = regexp.MustCompile(`\b(DDR|BGC|CBP|BCC|CPM|BP|SO|DD|FT)$`)
	embeddedDayRe = regexp.MustCompile(`ON\s+\d+\s+[A-Z]{3}`)

	directDebitToRe = regexp.MustCompile(`(?i)Direct\s+Debit\s+to\s+([A-Za-z0-9\s&]+)`)
	paymentToRe     = regexp.MustCompile(`(?i)(?:Payment|Transfer)\s+to\s+([A-Za-z0-9\s&]+)`)
	refTokenRe      = regexp.MustCompile(`(?i)Ref:\s*([A-Za-z0-9\s&]+)`)
	hasLettersRe    = regexp.MustCompile(`[A-Za-z]{3,}`)

	refNumberRe  = regexp.MustCompile(`(?i)\b(REF|ID|TRXN|TRAN|TRANS|TRN)[\s#:]*\d+\b`)
	longDigitsRe = regexp.MustCompile(`\b\d{5,}\b`)

	datePatternRes = []*regexp.Regexp{
		regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2,4}`),
		regexp.MustCompile(`\d{1,2}-\d{1,2}-\d{2,4}`),
		regexp.MustCompile(`\d{2,4}-\d{1,2}-\d{1,2}`),
		regexp.MustCompile(`\d{1,2}\s[A-Za-z]{3}\s\d{2,4}`),
	}
)

// genericLabels are memo prefixes that name the transaction type, not the
// vendor. When the memo is tab-delimited the vendor token lives after them.
var genericLabels = map[string]bool{
	"Direct Debit":  true,
	"Debit":         true,
	"Card Purchase": true,
}

var leadingPrefixes = []string{
	"PAYMENT TO ", "PAYMENT FROM ", "PURCHASE AT ", "POS PURCHASE ",
	"DEPOSIT AT ", "ATM ", "CHQ ", "CHEQUE ", "DIRECT DEPOSIT ",
	"ACH ", "CREDIT ", "DEBIT ", "DIRECT DEBIT TO ",
}

var typeWords = []string{
	"PURCHASE", "PAYMENT", "TRANSFER", "FEE", "INTEREST", "DEPOSIT",
	"WITHDRAWAL", "REFUND", "REVERSAL", "CHARGE", "CREDIT", "DEBIT",
	"TRANSACTION",
}

var typeWordRes = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(typeWords))
	for i, w := range typeWords {
		res[i] = regexp.MustCompile(`(?i)\b` + w + `\b`)
	}
	return res
}()

// Clean strips noise from a raw memo into a stable vendor token.
func Clean(desc string) string {
	// Tab-delimited memos: the field before the tab is either the vendor or a
	// generic label, with the useful memo after it. Checked before collapse,
	// which folds tabs into spaces.
	if strings.Contains(desc, "\t") {
		parts := strings.Split(desc, "\t")
		vendor := collapse(parts[0])
		if genericLabels[vendor] && len(parts) > 1 {
			vendor = collapse(parts[1])
			vendor = strings.TrimSpace(refSuffixRe.ReplaceAllString(vendor, ""))
			vendor = strings.TrimSpace(embeddedDayRe.ReplaceAllString(vendor, ""))
		}
		return vendor
	}

	cleaned := collapse(desc)

	if m := directDebitToRe.FindStringSubmatch(cleaned); m != nil {
		payee := strings.TrimSpace(m[1])
		if payee != "" {
			if strings.EqualFold(strings.Fields(payee)[0], "bupa") {
				return "BUPA Healthcare"
			}
			return payee
		}
	}

	if m := paymentToRe.FindStringSubmatch(cleaned); m != nil {
		return strings.TrimSpace(m[1])
	}

	if m := refTokenRe.FindStringSubmatch(cleaned); m != nil {
		ref := strings.TrimSpace(m[1])
		if hasLettersRe.MatchString(ref) {
			return ref
		}
	}

	cleaned = refNumberRe.ReplaceAllString(cleaned, "")
	cleaned = longDigitsRe.ReplaceAllString(cleaned, "")
	for _, re := range datePatternRes {
		cleaned = re.ReplaceAllString(cleaned, "")
	}
	for _, prefix := range leadingPrefixes {
		if strings.HasPrefix(strings.ToUpper(cleaned), prefix) {
			cleaned = cleaned[len(prefix):]
		}
	}
	cleaned = collapse(cleaned)

	if name, ok := CanonicalMerchant(cleaned); ok {
		return name
	}

	for _, re := range typeWordRes {
		cleaned = re.ReplaceAllString(cleaned, "")
	}
	cleaned = collapse(cleaned)

	// Over-stripping guard: never return an unusably short label.
	if len(cleaned) < 2 {
		return collapse(desc)
	}
	return cleaned
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
