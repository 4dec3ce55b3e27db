package search

import "github.com/iyabazu/pc-search/internal/catalog"

// DefaultPageSize is the number of products per result page.
const DefaultPageSize = 20

// PaginationInfo describes one page of a result set. StartIndex and EndIndex
// are 1-based inclusive, sized for "1〜20件を表示 (全137件中)" display text.
type PaginationInfo struct {
	TotalItems  int  `json:"totalItems"`
	TotalPages  int  `json:"totalPages"`
	CurrentPage int  `json:"currentPage"`
	StartIndex  int  `json:"startIndex"`
	EndIndex    int  `json:"endIndex"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// Paginate slices the ordered result set into a fixed-size page. A page
// outside the valid range clamps to the nearest valid page instead of
// erroring; shared URLs go stale when the catalog shrinks.
func Paginate(products []catalog.Product, page, pageSize int) ([]catalog.Product, PaginationInfo) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	totalItems := len(products)
	totalPages := (totalItems + pageSize - 1) / pageSize

	// An empty result set still reports page 1 for display.
	maxPage := totalPages
	if maxPage < 1 {
		maxPage = 1
	}
	current := page
	if current < 1 {
		current = 1
	}
	if current > maxPage {
		current = maxPage
	}

	info := PaginationInfo{
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		CurrentPage: current,
		HasNextPage: current < totalPages,
		HasPrevPage: current > 1,
	}

	if totalItems == 0 {
		return []catalog.Product{}, info
	}

	start := (current - 1) * pageSize
	end := start + pageSize
	if end > totalItems {
		end = totalItems
	}

	info.StartIndex = start + 1
	info.EndIndex = end

	return products[start:end], info
}
