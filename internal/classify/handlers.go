package classify

import "strings"

// Source-subcategory handlers. Banks that label each row with a transaction
// type (Counter Credit, Direct Debit, ...) are telling us the channel the
// money moved through; each channel gets its own resolution order. The
// counter-credit and direct-debit handlers are terminal: they always return a
// result. The rest fall through to the vendor table when nothing matches.

func (c *Classifier) matchHintHandler(in input) (Result, bool) {
	switch {
	case strings.Contains(in.hint, "counter credit"):
		return c.handleCounterCredit(in), true
	case strings.Contains(in.hint, "direct debit"):
		return c.handleDirectDebit(in), true
	case strings.Contains(in.hint, "card purchase"):
		return c.handleCardPurchase(in)
	case in.hint == "debit":
		return c.handleDebit(in)
	case strings.Contains(in.hint, "funds transfer"):
		return c.handleFundsTransfer(in)
	}
	return Result{}, false
}

var transferWords = []string{"transfer", "tfr", "standing order", "faster payment"}

// handleCounterCredit resolves money paid in over the counter or by bank
// credit. Everything here is income of some kind unless it is a transfer
// between own accounts.
func (c *Classifier) handleCounterCredit(in input) Result {
	switch {
	case strings.Contains(in.desc, "ramco"),
		strings.Contains(in.desc, "jn desai limited"):
		return Result{"Income", "Business Income"}
	case strings.Contains(in.desc, "astrenska"):
		return Result{"Income", "Insurance Payout"}
	case strings.Contains(in.desc, "tax"),
		strings.Contains(in.desc, "instant saver"),
		strings.Contains(in.desc, "instant access"):
		return Result{"Transfer", "Internal Transfer"}
	case containsAnyOf(in.desc, transferWords):
		return Result{"Transfer", "Internal Transfer"}
	case strings.Contains(in.desc, "limited"),
		strings.Contains(in.desc, "ltd"),
		strings.Contains(in.desc, "llc"):
		return Result{"Income", "Business Income"}
	case strings.Contains(in.desc, "salary"),
		strings.Contains(in.desc, "wage"),
		strings.Contains(in.desc, "payroll"):
		return Result{"Income", "Salary/Wages"}
	}
	return Result{"Income", "Other Income"}
}

// handleDirectDebit resolves recurring mandates. Known billers come first,
// then a vendor-table scan, then a generic direct-debit bucket.
func (c *Classifier) handleDirectDebit(in input) Result {
	switch {
	case strings.Contains(in.desc, "bupa"):
		return Result{"Healthcare", "Health Insurance"}
	case strings.Contains(in.desc, "amex"),
		strings.Contains(in.desc, "american express"):
		return Result{"Bills & Payments", "Credit Card"}
	case strings.Contains(in.desc, "eyecare"):
		return Result{"Healthcare", "Vision"}
	case strings.Contains(in.desc, "aig life"),
		strings.Contains(in.desc, "royal london"):
		return Result{"Insurance", "Life Insurance"}
	case strings.Contains(in.desc, "clubwise"):
		return Result{"Healthcare", "Fitness"}
	case strings.Contains(in.desc, "etika"):
		return Result{"Entertainment", "Subscription Services"}
	}
	for _, r := range c.rules {
		if strings.Contains(in.desc, r.Pattern) {
			return Result{r.Category, r.Subcategory}
		}
	}
	return Result{"Bills & Payments", "Direct Debit"}
}

// handleCardPurchase resolves point-of-sale rows that the generic vendor
// table misreads, then falls through to it.
func (c *Classifier) handleCardPurchase(in input) (Result, bool) {
	switch {
	case strings.Contains(in.desc, "apple.com"):
		return Result{"Entertainment", "Subscription Services"}, true
	case strings.Contains(in.desc, "hmrc"), strings.Contains(in.desc, "gov.uk"):
		return Result{"Bills & Payments", "Tax Payments"}, true
	case strings.Contains(in.desc, "mcdonald"):
		return Result{"Food", "Fast Food"}, true
	case strings.Contains(in.desc, "sainsbury"):
		return Result{"Food", "Groceries"}, true
	}
	return Result{}, false
}

// handleDebit covers the bare "Debit" type a few feeds emit.
func (c *Classifier) handleDebit(in input) (Result, bool) {
	switch {
	case strings.Contains(in.desc, "blue rewards"):
		return Result{"Bills & Payments", "Bank Fees"}, true
	case strings.Contains(in.desc, "mcdonald"):
		return Result{"Food", "Fast Food"}, true
	case strings.Contains(in.desc, "sainsbury"):
		return Result{"Food", "Groceries"}, true
	}
	return Result{}, false
}

// handleFundsTransfer resolves bank-to-bank movements: brokerages and tax
// payments first, then own-name and savings vocabulary.
func (c *Classifier) handleFundsTransfer(in input) (Result, bool) {
	switch {
	case strings.Contains(in.desc, "etoro"):
		return Result{"Investments", "Trading Platform"}, true
	case strings.Contains(in.desc, "hmrc"), strings.Contains(in.desc, "gov.uk"):
		return Result{"Bills & Payments", "Tax Payments"}, true
	case strings.Contains(in.desc, "tax"):
		return Result{"Transfer", "Internal Transfer"}, true
	case strings.Contains(in.desc, "payward"):
		return Result{"Savings", "Investments"}, true
	case containsAnyOf(in.desc, personalNames) && !containsAnyOf(in.desc, externalPayees):
		return Result{"Transfer", "Internal Transfer"}, true
	case containsAnyOf(in.desc, accountVocab), isaWordRe.MatchString(in.desc):
		return Result{"Transfer", "Internal Transfer"}, true
	}
	return Result{}, false
}
