// Package search implements the filter/sort/paginate pipeline behind the
// product search page, plus the query-string codec that makes its state
// shareable.
package search

import (
	"strings"

	"github.com/iyabazu/pc-search/internal/catalog"
)

// Price bounds when the user has not narrowed the range.
const (
	DefaultPriceMin = 0
	DefaultPriceMax = 1000000
)

// Shape labels as they appear in product data. The `type` field carries the
// Japanese label, the `category` field the romanized one; upstream populates
// them inconsistently so both are checked.
const (
	shapeDesktopJa  = "デスクトップ"
	shapeNotebookJa = "ノートブック"
	shapeDesktopEn  = "desktop"
	shapeNotebookEn = "notebook"
)

// FilterState is the committed query driving a result set. Values are copied,
// never mutated in place; the draft/applied split lives in Session.
type FilterState struct {
	Maker   []string `json:"maker"`
	CPU     []string `json:"cpu"`
	GPU     []string `json:"gpu"`
	Memory  []string `json:"memory"`
	Storage []string `json:"storage"`

	PriceMin int `json:"priceMin"`
	PriceMax int `json:"priceMax"`

	ShowDesktop  bool `json:"showDesktop"`
	ShowNotebook bool `json:"showNotebook"`

	OnSale        bool    `json:"onSale"`
	SearchKeyword string  `json:"searchKeyword"`
	SortBy        SortKey `json:"sortBy"`
}

// DefaultFilterState returns the state of a pristine search page: desktops
// only, full price range, cheapest first.
func DefaultFilterState() FilterState {
	return FilterState{
		PriceMin:    DefaultPriceMin,
		PriceMax:    DefaultPriceMax,
		ShowDesktop: true,
		SortBy:      SortPriceAsc,
	}
}

// Clone returns a deep copy. Slices are copied so the clone can be edited
// without aliasing the original.
func (f FilterState) Clone() FilterState {
	c := f
	c.Maker = append([]string(nil), f.Maker...)
	c.CPU = append([]string(nil), f.CPU...)
	c.GPU = append([]string(nil), f.GPU...)
	c.Memory = append([]string(nil), f.Memory...)
	c.Storage = append([]string(nil), f.Storage...)
	return c
}

// Evaluate applies the filter state to the full collection and returns the
// matching subset in input order. An all-default state passes everything
// through unchanged.
func Evaluate(products []catalog.Product, applied FilterState) []catalog.Product {
	keywords := keywordTerms(applied.SearchKeyword)

	filtered := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if !matchesMaker(&p, applied.Maker) {
			continue
		}
		if !matchesShape(&p, applied.ShowDesktop, applied.ShowNotebook) {
			continue
		}
		if len(applied.CPU) > 0 && !MatchesAny(applied.CPU, p.CPU) {
			continue
		}
		if len(applied.GPU) > 0 && !MatchesAny(applied.GPU, p.GPU) {
			continue
		}
		if !containsAnySubstring(p.Memory, applied.Memory) {
			continue
		}
		if !containsAnySubstring(p.Storage, applied.Storage) {
			continue
		}
		if p.EffectivePrice < applied.PriceMin || p.EffectivePrice > applied.PriceMax {
			continue
		}
		if applied.OnSale && p.DiscountRate <= 0 {
			continue
		}
		if !matchesKeywords(&p, keywords) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func matchesMaker(p *catalog.Product, makers []string) bool {
	if len(makers) == 0 {
		return true
	}
	for _, m := range makers {
		if p.Maker == m {
			return true
		}
	}
	return false
}

// matchesShape checks the desktop/notebook toggles against both the type and
// category fields.
func matchesShape(p *catalog.Product, showDesktop, showNotebook bool) bool {
	if !showDesktop && !showNotebook {
		// Unreachable through Session, which rejects the transition, but a
		// hand-built state still gets the pass-through treatment.
		return true
	}
	if showDesktop && (p.Type == shapeDesktopJa || p.Category == shapeDesktopEn) {
		return true
	}
	if showNotebook && (p.Type == shapeNotebookJa || p.Category == shapeNotebookEn) {
		return true
	}
	return false
}

// containsAnySubstring is the memory/storage predicate: raw case-sensitive
// substring match, no normalization. "512GB" matches "512GB NVMe SSD".
func containsAnySubstring(value string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if strings.Contains(value, s) {
			return true
		}
	}
	return false
}

// keywordTerms splits the search box input into normalized AND terms.
func keywordTerms(keyword string) []string {
	if strings.TrimSpace(keyword) == "" {
		return nil
	}
	return strings.Fields(normalizeKeyword(keyword))
}

// matchesKeywords requires every term to appear somewhere across the
// normalized name, maker, CPU and GPU fields.
func matchesKeywords(p *catalog.Product, terms []string) bool {
	if len(terms) == 0 {
		return true
	}
	target := strings.Join([]string{
		normalizeKeyword(p.Name),
		normalizeKeyword(p.Maker),
		normalizeKeyword(p.CPU),
		normalizeKeyword(p.GPU),
	}, " ")
	for _, term := range terms {
		if !strings.Contains(target, term) {
			return false
		}
	}
	return true
}

// FamilyFacets counts the filtered products per CPU generation and GPU series
// bucket. This is the second of the two classification mechanisms: the filter
// predicates above match by normalized substring, the facet chips by family.
func FamilyFacets(products []catalog.Product) (cpu, gpu map[string]int) {
	cpu = make(map[string]int)
	gpu = make(map[string]int)
	for _, p := range products {
		cpu[CPUFamily(p.CPU)]++
		gpu[GPUFamily(p.GPU)]++
	}
	return cpu, gpu
}
