package model

// Sign constrains a vendor rule to one side of the ledger.
type Sign int

const (
	SignAny Sign = iota
	SignPositive
	SignNegative
)

// VendorRule maps a vendor/keyword pattern to a categorization. Entries live
// in the static vendor rule table and are never mutated at runtime.
type VendorRule struct {
	Pattern     string
	Category    string
	Subcategory string
	SignHint    Sign   // optional; SignAny when unconstrained
	ContextHint string // optional source-subcategory context
}

// TaxonomyCategory is one category with its ordered subcategory labels.
type TaxonomyCategory struct {
	Name          string
	Subcategories []string
}

// Taxonomy is the caller-supplied ordered category/subcategory structure. It
// constrains fallback subcategory choices; it does not drive matching.
type Taxonomy struct {
	Categories []TaxonomyCategory
}

// Has reports whether a category name exists.
func (t Taxonomy) Has(name string) bool {
	_, ok := t.Subcategories(name)
	return ok
}

// Subcategories returns the ordered subcategory labels for a category.
func (t Taxonomy) Subcategories(name string) ([]string, bool) {
	for _, c := range t.Categories {
		if c.Name == name {
			return c.Subcategories, true
		}
	}
	return nil, false
}
