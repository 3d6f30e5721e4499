package models

import (
	"fmt"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collator orders Korean strings the way the branch staff expect. The
// core is single-threaded, so sharing one collator is fine.
var collator = collate.New(language.Korean)

// CompareKorean compares two strings under Korean collation.
func CompareKorean(a, b string) int {
	return collator.CompareString(a, b)
}

// defaultBranchCount matches the number of branches currently operating.
const defaultBranchCount = 14

// defaultProducts is the orderable product list per category. 기타 has no
// fixed list; its product name is free text.
var defaultProducts = map[Category][]string{
	CategoryVegetable: {"무", "절임무", "배추", "오이", "양파", "파", "대파", "마늘", "당근", "양배추"},
	CategorySeasoning: {"마늘양념", "고추장양념", "간마늘", "생강양념"},
	CategorySauce:     {"간장소스", "된장양념", "초고추장", "와사비소스"},
	CategoryOther:     {},
}

// defaultUnits maps each catalog product to its unit of measure.
var defaultUnits = map[string]string{
	"무":     "박스",
	"절임무":   "박스",
	"배추":    "포기",
	"오이":    "박스",
	"양파":    "망",
	"파":     "단",
	"대파":    "단",
	"마늘":    "망",
	"당근":    "박스",
	"양배추":   "통",
	"마늘양념":  "통",
	"고추장양념": "통",
	"간마늘":   "kg",
	"생강양념":  "통",
	"간장소스":  "통",
	"된장양념":  "통",
	"초고추장":  "통",
	"와사비소스": "통",
}

// Catalog is the static mapping from category to orderable products and
// from product to its unit of measure, plus the branch roster.
type Catalog struct {
	products map[Category][]string
	units    map[string]string
	branches []string
}

// NewCatalog builds the default catalog. Product lists are kept in
// Korean-collated order for display.
func NewCatalog() *Catalog {
	products := make(map[Category][]string, len(defaultProducts))
	for category, list := range defaultProducts {
		sorted := make([]string, len(list))
		copy(sorted, list)
		collator.SortStrings(sorted)
		products[category] = sorted
	}

	branches := make([]string, defaultBranchCount)
	for i := range branches {
		branches[i] = fmt.Sprintf("%d번 지점", i+1)
	}

	return &Catalog{
		products: products,
		units:    defaultUnits,
		branches: branches,
	}
}

// WithBranches replaces the branch roster, e.g. from configuration.
// Empty input keeps the default roster.
func (c *Catalog) WithBranches(branches []string) *Catalog {
	if len(branches) > 0 {
		c.branches = branches
	}
	return c
}

// Products returns the orderable products of a category in display order.
func (c *Catalog) Products(category Category) []string {
	list := c.products[category]
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// UnitFor returns the unit of measure for a catalog product, or "" for
// free-text products.
func (c *Catalog) UnitFor(product string) string {
	return c.units[product]
}

// Branches returns the branch roster in numeric order.
func (c *Catalog) Branches() []string {
	out := make([]string, len(c.branches))
	copy(out, c.branches)
	return out
}

// DisplayLabel returns the form label for a category. 기타 is shown as
// 잡화(기타) on both the order form and the history view.
func DisplayLabel(category Category) string {
	if category == CategoryOther {
		return "잡화(기타)"
	}
	return string(category)
}
