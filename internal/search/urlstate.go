package search

import (
	"net/url"
	"strconv"
	"strings"
)

// The address bar is the only durable state store: every filter apply, sort
// change or page change re-encodes the applied state into the query string,
// and every page load decodes it back. Fields equal to their defaults are
// omitted so a pristine search is just /search with no parameters.
//
// Multi-value fields are comma-joined. Option values never contain commas,
// so no escaping is layered on top of the URL encoding.

// Query parameter names, fixed by shared/bookmarked URLs in the wild.
const (
	paramKeyword  = "keyword"
	paramMaker    = "maker"
	paramCPU      = "cpu"
	paramGPU      = "gpu"
	paramMemory   = "memory"
	paramStorage  = "storage"
	paramPriceMin = "priceMin"
	paramPriceMax = "priceMax"
	paramOnSale   = "onSale"
	paramPlus     = "plus"
	paramSort     = "sort"
	paramPage     = "page"
)

// Encode serializes the state and page into a canonical query string.
// Encoding a default state with page 1 yields "".
func Encode(f FilterState, page int) string {
	params := url.Values{}

	if strings.TrimSpace(f.SearchKeyword) != "" {
		params.Set(paramKeyword, f.SearchKeyword)
	}
	setJoined(params, paramMaker, f.Maker)
	setJoined(params, paramCPU, f.CPU)
	setJoined(params, paramGPU, f.GPU)
	setJoined(params, paramMemory, f.Memory)
	setJoined(params, paramStorage, f.Storage)

	if f.PriceMin > DefaultPriceMin {
		params.Set(paramPriceMin, strconv.Itoa(f.PriceMin))
	}
	if f.PriceMax < DefaultPriceMax {
		params.Set(paramPriceMax, strconv.Itoa(f.PriceMax))
	}
	if f.OnSale {
		params.Set(paramOnSale, "true")
	}

	// A state with both shape toggles off is not representable; encode it as
	// the desktop-only default.
	showDesktop, showNotebook := f.ShowDesktop, f.ShowNotebook
	if !showDesktop && !showNotebook {
		showDesktop = true
	}
	var plus []string
	if showDesktop {
		plus = append(plus, shapeDesktopEn)
	}
	if showNotebook {
		plus = append(plus, shapeNotebookEn)
	}
	if !(len(plus) == 1 && plus[0] == shapeDesktopEn) {
		params.Set(paramPlus, strings.Join(plus, ","))
	}

	if f.SortBy != SortPriceAsc && f.SortBy != "" {
		params.Set(paramSort, string(f.SortBy))
	}
	if page > 1 {
		params.Set(paramPage, strconv.Itoa(page))
	}

	return params.Encode()
}

// Decode parses a query string into a filter state and page number. URLs are
// user-shared and must never hard-fail: anything missing or malformed falls
// back to the field default.
func Decode(params url.Values) (FilterState, int) {
	f := DefaultFilterState()

	f.SearchKeyword = params.Get(paramKeyword)
	f.Maker = splitJoined(params.Get(paramMaker))
	f.CPU = splitJoined(params.Get(paramCPU))
	f.GPU = splitJoined(params.Get(paramGPU))
	f.Memory = splitJoined(params.Get(paramMemory))
	f.Storage = splitJoined(params.Get(paramStorage))

	f.PriceMin = parseIntDefault(params.Get(paramPriceMin), DefaultPriceMin)
	f.PriceMax = parseIntDefault(params.Get(paramPriceMax), DefaultPriceMax)
	f.OnSale = params.Get(paramOnSale) == "true"

	plus := params.Get(paramPlus)
	f.ShowDesktop = plus == "" || strings.Contains(plus, shapeDesktopEn)
	f.ShowNotebook = strings.Contains(plus, shapeNotebookEn)

	if key := SortKey(params.Get(paramSort)); ValidSortKey(key) {
		f.SortBy = key
	}

	page := parseIntDefault(params.Get(paramPage), 1)
	if page < 1 {
		page = 1
	}

	return f, page
}

// DecodeQuery is Decode over a raw query string. A string url.ParseQuery
// rejects decodes as the default state.
func DecodeQuery(rawQuery string) (FilterState, int) {
	params, err := url.ParseQuery(rawQuery)
	if err != nil {
		return DefaultFilterState(), 1
	}
	return Decode(params)
}

func setJoined(params url.Values, key string, values []string) {
	if len(values) > 0 {
		params.Set(key, strings.Join(values, ","))
	}
}

func splitJoined(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, v := range strings.Split(raw, ",") {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func parseIntDefault(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
