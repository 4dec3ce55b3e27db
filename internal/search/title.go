package search

import (
	"fmt"
	"strings"
)

const siteSuffix = "イヤバズDB"

var sortLabels = map[SortKey]string{
	SortPriceAsc:     "安い順",
	SortPriceDesc:    "高い順",
	SortNameAsc:      "商品名順",
	SortMakerAsc:     "メーカー順",
	SortDiscountDesc: "値下げ率順",
}

// Title builds the result-page title from the applied state: maker, then GPU,
// then CPU (first value each), the price band, the keyword, the sort label
// and the site name.
func Title(f FilterState) string {
	var parts []string

	if len(f.Maker) > 0 {
		parts = append(parts, fmt.Sprintf("%sのPC商品一覧", f.Maker[0]))
	}
	if len(f.GPU) > 0 {
		parts = append(parts, fmt.Sprintf("%s搭載PC", f.GPU[0]))
	}
	if len(f.CPU) > 0 {
		parts = append(parts, fmt.Sprintf("%s搭載PC", f.CPU[0]))
	}
	if band := priceBand(f.PriceMin, f.PriceMax); band != "" {
		parts = append(parts, band)
	}
	if kw := strings.TrimSpace(f.SearchKeyword); kw != "" {
		parts = append(parts, fmt.Sprintf("%s | 検索結果", kw))
	}
	if len(parts) == 0 {
		parts = append(parts, "PC商品一覧")
	}

	sortLabel, ok := sortLabels[f.SortBy]
	if !ok {
		sortLabel = sortLabels[SortPriceAsc]
	}

	return fmt.Sprintf("%s %s | %s", strings.Join(parts, " "), sortLabel, siteSuffix)
}

// priceBand renders the price range in 万円 units, empty at the default range.
func priceBand(priceMin, priceMax int) string {
	if priceMin == DefaultPriceMin && priceMax == DefaultPriceMax {
		return ""
	}
	if priceMin == DefaultPriceMin {
		return fmt.Sprintf("%d万円以下のPC", priceMax/10000)
	}
	if priceMax == DefaultPriceMax {
		return fmt.Sprintf("%d万円以上のPC", priceMin/10000)
	}
	return fmt.Sprintf("%d万円〜%d万円のPC", priceMin/10000, priceMax/10000)
}

// Summary renders the applied state as a compact one-line string for logging.
// Values are capped at five per field to bound cardinality.
func Summary(f FilterState, page int) string {
	plus := []string{}
	if f.ShowDesktop {
		plus = append(plus, shapeDesktopEn)
	}
	if f.ShowNotebook {
		plus = append(plus, shapeNotebookEn)
	}
	if len(plus) == 0 {
		plus = append(plus, shapeDesktopEn)
	}

	priceRange := "all"
	if f.PriceMin != DefaultPriceMin || f.PriceMax != DefaultPriceMax {
		priceRange = fmt.Sprintf("%d-%d", f.PriceMin, f.PriceMax)
	}

	kw := "no"
	if strings.TrimSpace(f.SearchKeyword) != "" {
		kw = "yes"
	}

	fields := []string{
		"maker=" + joinCapped(f.Maker),
		"cpu=" + joinCapped(f.CPU),
		"gpu=" + joinCapped(f.GPU),
		"mem=" + joinCapped(f.Memory),
		"sto=" + joinCapped(f.Storage),
		"price=" + priceRange,
		"plus=" + strings.Join(plus, ","),
		"on_sale=" + fmt.Sprintf("%t", f.OnSale),
		"kw=" + kw,
		"sort=" + string(f.SortBy),
		"page=" + fmt.Sprintf("%d", page),
	}
	return strings.Join(fields, "|")
}

func joinCapped(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	if len(values) > 5 {
		values = values[:5]
	}
	return strings.Join(values, ",")
}
