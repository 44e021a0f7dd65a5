package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// canonicalRule rewrites any text matching its pattern to a fixed brand name.
type canonicalRule struct {
	re   *regexp.Regexp
	name string
}

var canonicalRules = []canonicalRule{
	{regexp.MustCompile(`(?i)AMEX|American Express`), "American Express"},
	{regexp.MustCompile(`(?i)VISA|MASTERCARD|CREDIT CARD PMT`), "Credit Card Payment"},
	{regexp.MustCompile(`(?i)AMAZON|AMZN`), "Amazon"},
	{regexp.MustCompile(`(?i)TESCO`), "Tesco"},
	{regexp.MustCompile(`(?i)SAINSBURY`), "Sainsbury's"},
	{regexp.MustCompile(`(?i)\bASDA\b`), "Asda"},
	{regexp.MustCompile(`(?i)\bALDI\b`), "Aldi"},
	{regexp.MustCompile(`(?i)\bLIDL\b`), "Lidl"},
	{regexp.MustCompile(`(?i)MORRISONS`), "Morrisons"},
	{regexp.MustCompile(`(?i)WAITROSE`), "Waitrose"},
	{regexp.MustCompile(`(?i)\bIKEA\b`), "IKEA"},
	{regexp.MustCompile(`(?i)NETFLIX`), "Netflix"},
	{regexp.MustCompile(`(?i)SPOTIFY`), "Spotify"},
	{regexp.MustCompile(`(?i)BRITISH GAS|BRITISHGAS`), "British Gas"},
	{regexp.MustCompile(`(?i)\bEDF\b|E\.D\.F`), "EDF Energy"},
	{regexp.MustCompile(`(?i)THAMES WATER|THAMESWATER`), "Thames Water"},
	{regexp.MustCompile(`(?i)TV LICENSE|TVLICENSE`), "TV License"},
	{regexp.MustCompile(`(?i)\bSKY\b`), "Sky"},
	{regexp.MustCompile(`(?i)VIRGIN MEDIA|VIRGINMEDIA`), "Virgin Media"},
	{regexp.MustCompile(`(?i)BT GROUP|BTGROUP|BT\.COM`), "BT"},
}

// CanonicalMerchant returns the canonical brand name for a cleaned memo when a
// brand pattern matches, overriding whatever cleanup produced.
func CanonicalMerchant(cleaned string) (string, bool) {
	for _, rule := range canonicalRules {
		if rule.re.MatchString(cleaned) {
			return rule.name, true
		}
	}
	return "", false
}

var titleCaser = cases.Title(language.English)

// DisplayName formats a vendor token for display. Shouty all-caps statement
// text is title-cased; mixed-case names pass through untouched.
func DisplayName(s string) string {
	if s == strings.ToUpper(s) && strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		return titleCaser.String(strings.ToLower(s))
	}
	return s
}
