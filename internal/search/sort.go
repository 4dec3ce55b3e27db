package search

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/iyabazu/pc-search/internal/catalog"
)

// SortKey selects one of the five result orderings.
type SortKey string

const (
	SortPriceAsc     SortKey = "price-asc"
	SortPriceDesc    SortKey = "price-desc"
	SortDiscountDesc SortKey = "discount-desc"
	SortNameAsc      SortKey = "name-asc"
	SortMakerAsc     SortKey = "maker-asc"
)

// ValidSortKey reports whether key is one of the five orderings.
func ValidSortKey(key SortKey) bool {
	switch key {
	case SortPriceAsc, SortPriceDesc, SortDiscountDesc, SortNameAsc, SortMakerAsc:
		return true
	}
	return false
}

// Sort returns a sorted copy of products under the given key. The sort is
// stable: ties keep their input order. Unknown keys fall back to price-asc.
func Sort(products []catalog.Product, key SortKey) []catalog.Product {
	sorted := append([]catalog.Product(nil), products...)

	// Names and makers are Japanese; compare them under the Japanese locale
	// like the original's localeCompare. A collator keeps internal buffers,
	// so each sort gets its own.
	var col *collate.Collator
	if key == SortNameAsc || key == SortMakerAsc {
		col = collate.New(language.Japanese)
	}

	var less func(a, b *catalog.Product) bool
	switch key {
	case SortPriceDesc:
		less = func(a, b *catalog.Product) bool { return a.EffectivePrice > b.EffectivePrice }
	case SortDiscountDesc:
		less = func(a, b *catalog.Product) bool { return a.DiscountRate > b.DiscountRate }
	case SortNameAsc:
		less = func(a, b *catalog.Product) bool { return col.CompareString(a.Name, b.Name) < 0 }
	case SortMakerAsc:
		less = func(a, b *catalog.Product) bool { return col.CompareString(a.Maker, b.Maker) < 0 }
	default: // price-asc and anything unrecognized
		less = func(a, b *catalog.Product) bool { return a.EffectivePrice < b.EffectivePrice }
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(&sorted[i], &sorted[j])
	})
	return sorted
}
