// Package classify maps (description, optional source hint, signed amount) to
// a (category, subcategory) pair via a fixed-priority chain of rule matchers.
package classify

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/desco97/financedashboard/internal/model"
)

// Terminal defaults. Every input reaches some category; these are the floor.
const (
	CategoryUncategorized = "Uncategorized"
	SubcategoryOther      = "Other"
)

// Result is a classification outcome.
type Result struct {
	Category    string
	Subcategory string
}

// Classifier evaluates an ordered matcher chain against immutable rule
// tables. It is safe for concurrent use; nothing is mutated after New.
type Classifier struct {
	rules    []model.VendorRule
	wordRes  []*regexp.Regexp // whole-word pattern per rule
	taxonomy model.Taxonomy
	keywords []CategoryKeywords
	matchers []matcher
}

type input struct {
	desc   string // lowercased cleaned description
	hint   string // lowercased source subcategory, "" when absent
	amount decimal.Decimal
}

// matcher returns a Result and whether it fired. Matchers run in priority
// order; the first success wins.
type matcher func(c *Classifier, in input) (Result, bool)

// New builds a Classifier over a vendor rule table, a category taxonomy and a
// keyword-category map. The inputs are not copied and must not be mutated.
func New(rules []model.VendorRule, taxonomy model.Taxonomy, keywords []CategoryKeywords) *Classifier {
	c := &Classifier{
		rules:    rules,
		wordRes:  make([]*regexp.Regexp, len(rules)),
		taxonomy: taxonomy,
		keywords: keywords,
	}
	for i, r := range rules {
		c.wordRes[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(r.Pattern) + `\b`)
	}
	c.matchers = []matcher{
		(*Classifier).matchTradingPlatform,
		(*Classifier).matchCryptoExchange,
		(*Classifier).matchInternalTransfer,
		(*Classifier).matchHintHandler,
		(*Classifier).matchIncomeKeywords,
		(*Classifier).matchRefund,
		(*Classifier).matchVendorWord,
		(*Classifier).matchVendorSubstring,
		(*Classifier).matchKeywordScore,
		(*Classifier).matchVendorOverlap,
	}
	return c
}

// NewDefault builds a Classifier with the built-in vendor table and keyword
// map over the given taxonomy.
func NewDefault(taxonomy model.Taxonomy) *Classifier {
	return New(DefaultVendorRules(), taxonomy, DefaultCategoryKeywords())
}

// Classify is total and deterministic: a pure function of its arguments and
// the classifier's static tables.
func (c *Classifier) Classify(desc string, hint model.SourceHint, amount decimal.Decimal) Result {
	in := input{
		desc:   strings.ToLower(strings.TrimSpace(desc)),
		amount: amount,
	}
	if hint.Valid {
		in.hint = strings.ToLower(strings.TrimSpace(hint.Label))
	}
	in.hint = inferHint(in.desc, in.hint)

	for _, m := range c.matchers {
		if res, ok := m(c, in); ok {
			return res
		}
	}

	// Sign-based terminal default.
	if in.amount.Sign() >= 0 {
		return Result{Category: "Income", Subcategory: "Other Income"}
	}
	return Result{Category: CategoryUncategorized, Subcategory: SubcategoryOther}
}

// inferHint fills a missing or generic hint from transaction-type markers in
// the description itself.
func inferHint(desc, hint string) string {
	if hint != "" && hint != "other" {
		return hint
	}
	switch {
	case strings.Contains(desc, "ddr"), strings.Contains(desc, "direct debit"), strings.Contains(desc, " dd"):
		return "direct debit"
	case strings.Contains(desc, "bcc"), strings.Contains(desc, "card purchase"), strings.Contains(desc, "cpm"):
		return "card purchase"
	}
	return hint
}

var tradingPlatforms = []string{"etoro", "trading 212", "coinbase", "binance"}

func (c *Classifier) matchTradingPlatform(in input) (Result, bool) {
	if containsAnyOf(in.desc, tradingPlatforms) {
		return Result{"Investments", "Trading Platform"}, true
	}
	return Result{}, false
}

func (c *Classifier) matchCryptoExchange(in input) (Result, bool) {
	if strings.Contains(in.desc, "payward") || strings.Contains(in.desc, "kraken") {
		return Result{"Savings", "Investments"}, true
	}
	return Result{}, false
}

var (
	personalNames    = []string{"jay", "desai", "j n desai"}
	externalPayees   = []string{"richard", "fairchild"}
	accountVocab     = []string{"instant saver", "instant access", "savings account", "saver account", "current account", "transfer to", "transfer from", "saver", "saving"}
	isaWordRe        = regexp.MustCompile(`\bisa\b`)
	ftWordRe         = regexp.MustCompile(`\bft\b`)
)

func (c *Classifier) matchInternalTransfer(in input) (Result, bool) {
	transfer := Result{"Transfer", "Internal Transfer"}

	// A personal name in a funds-transfer context, with no external payee
	// named, is a transfer to self.
	if containsAnyOf(in.desc, personalNames) &&
		(strings.Contains(in.hint, "funds transfer") || ftWordRe.MatchString(in.desc)) {
		if strings.Contains(in.desc, "tax") {
			return transfer, true
		}
		if !containsAnyOf(in.desc, externalPayees) {
			return transfer, true
		}
	}

	if containsAnyOf(in.desc, accountVocab) || isaWordRe.MatchString(in.desc) {
		return transfer, true
	}
	return Result{}, false
}

var incomeQuickWords = []string{"salary", "wages"}

// matchIncomeKeywords covers income markers checked ahead of the vendor
// table: salary/wages, dividends, and interest. Interest mentions alongside
// loan or mortgage vocabulary are excluded so loan interest does not read as
// income interest.
func (c *Classifier) matchIncomeKeywords(in input) (Result, bool) {
	if strings.Contains(in.desc, "instant saver") ||
		(strings.Contains(in.desc, "saver") && strings.Contains(in.desc, "tax")) {
		return Result{"Transfer", "Internal Transfer"}, true
	}
	if containsAnyOf(in.desc, incomeQuickWords) {
		return Result{"Income", "Salary/Wages"}, true
	}
	if strings.Contains(in.desc, "dividend") {
		return Result{"Income", "Dividends"}, true
	}
	if strings.Contains(in.desc, "interest") &&
		!strings.Contains(in.desc, "loan") && !strings.Contains(in.desc, "mortgage") {
		return Result{"Income", "Interest"}, true
	}
	return Result{}, false
}

// matchRefund forces the subcategory to Refund while keeping the matched
// vendor's category, evaluated ahead of the plain vendor lookup.
func (c *Classifier) matchRefund(in input) (Result, bool) {
	if !strings.Contains(in.desc, "refund") {
		return Result{}, false
	}
	for i, r := range c.rules {
		if c.wordRes[i].MatchString(in.desc) {
			return Result{Category: r.Category, Subcategory: "Refund"}, true
		}
	}
	return Result{"Income", "Refund"}, true
}

// matchVendorWord is the first vendor-table pass: whole-word matches only.
func (c *Classifier) matchVendorWord(in input) (Result, bool) {
	for i, r := range c.rules {
		if !ruleApplies(r, in) {
			continue
		}
		if c.wordRes[i].MatchString(in.desc) {
			return Result{r.Category, r.Subcategory}, true
		}
	}
	return Result{}, false
}

// matchVendorSubstring is the second pass: substring matches, multi-word
// patterns only, to avoid short-token false positives.
func (c *Classifier) matchVendorSubstring(in input) (Result, bool) {
	for _, r := range c.rules {
		if !strings.Contains(r.Pattern, " ") || !ruleApplies(r, in) {
			continue
		}
		if strings.Contains(in.desc, r.Pattern) {
			return Result{r.Category, r.Subcategory}, true
		}
	}
	return Result{}, false
}

// ruleApplies checks a rule's optional sign and context constraints.
func ruleApplies(r model.VendorRule, in input) bool {
	switch r.SignHint {
	case model.SignPositive:
		if in.amount.Sign() < 0 {
			return false
		}
	case model.SignNegative:
		if in.amount.Sign() >= 0 {
			return false
		}
	}
	if r.ContextHint != "" && !strings.Contains(in.hint, strings.ToLower(r.ContextHint)) {
		return false
	}
	return true
}

// matchKeywordScore scores each taxonomy category by keyword hits in the
// description; the highest score wins, ties broken by declaration order.
func (c *Classifier) matchKeywordScore(in input) (Result, bool) {
	best, bestScore := "", 0
	for _, ck := range c.keywords {
		if !c.taxonomy.Has(ck.Category) {
			continue
		}
		score := 0
		for _, kw := range ck.Keywords {
			if strings.Contains(in.desc, kw) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = ck.Category, score
		}
	}
	if bestScore == 0 {
		return Result{}, false
	}
	return Result{Category: best, Subcategory: c.fallbackSubcategory(best, in.desc)}, true
}

// fallbackSubcategory picks a subcategory for a keyword-scored category: an
// exact substring match of a label wins, else the label with the greatest
// word overlap, else the taxonomy's first listed subcategory.
func (c *Classifier) fallbackSubcategory(category, desc string) string {
	subcats, _ := c.taxonomy.Subcategories(category)
	if len(subcats) == 0 {
		return SubcategoryOther
	}

	descWords := wordSet(desc)
	best, bestOverlap := "", 0
	for _, sc := range subcats {
		lower := strings.ToLower(sc)
		if strings.Contains(desc, lower) {
			return sc
		}
		overlap := overlapCount(wordSet(lower), descWords)
		if overlap > bestOverlap {
			best, bestOverlap = sc, overlap
		}
	}
	if best != "" {
		return best
	}
	return subcats[0]
}

// matchVendorOverlap is the fuzzy vendor fallback: word-set overlap between
// each pattern and the description. Patterns over two words need overlap of
// at least 2, others at least 1; ties prefer the longer pattern.
func (c *Classifier) matchVendorOverlap(in input) (Result, bool) {
	descWords := wordSet(in.desc)

	var best *model.VendorRule
	bestScore, bestLen := 0, 0
	for i := range c.rules {
		r := &c.rules[i]
		if !ruleApplies(*r, in) {
			continue
		}
		patWords := wordSet(r.Pattern)
		overlap := overlapCount(patWords, descWords)

		required := 1
		if len(patWords) > 2 {
			required = 2
		}
		if overlap < required {
			continue
		}
		if overlap > bestScore || (overlap == bestScore && len(r.Pattern) > bestLen) {
			best, bestScore, bestLen = r, overlap, len(r.Pattern)
		}
	}
	if best == nil {
		return Result{}, false
	}
	return Result{best.Category, best.Subcategory}, true
}

func containsAnyOf(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(s) {
		set[w] = true
	}
	return set
}

func overlapCount(a, b map[string]bool) int {
	n := 0
	for w := range a {
		if b[w] {
			n++
		}
	}
	return n
}
