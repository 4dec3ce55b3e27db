// Package xlsx imports product catalogs from Excel workbooks. Maker price
// lists arrive as xlsx exports; the importer maps their columns by header
// name, normalizes prices and campaign labels, and rejects rows that fail
// catalog validation.
package xlsx

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/iyabazu/pc-search/internal/catalog"
)

// ImporterOptions configures workbook parsing.
type ImporterOptions struct {
	// SheetName selects the worksheet. Empty means the first sheet.
	SheetName string
	// DefaultMaker fills the maker field for rows that leave it blank.
	DefaultMaker string
	// SkipEmptyRows drops rows whose cells are all blank.
	SkipEmptyRows bool
}

// DefaultOptions returns the importer defaults.
func DefaultOptions() ImporterOptions {
	return ImporterOptions{
		SkipEmptyRows: true,
	}
}

// ImportResult is the outcome of one workbook import.
type ImportResult struct {
	Products  []catalog.Product `json:"products"`
	TotalRows int               `json:"totalRows"`
	ValidRows int               `json:"validRows"`
	Errors    []ImportError     `json:"errors"`
	Warnings  []ImportWarning   `json:"warnings"`
}

// Importer parses xlsx workbooks into catalog products.
type Importer struct {
	options ImporterOptions
}

// NewImporter creates an importer with the given options merged over the
// defaults.
func NewImporter(options ImporterOptions) *Importer {
	opts := DefaultOptions()
	if options.SheetName != "" {
		opts.SheetName = options.SheetName
	}
	if options.DefaultMaker != "" {
		opts.DefaultMaker = options.DefaultMaker
	}
	opts.SkipEmptyRows = options.SkipEmptyRows || opts.SkipEmptyRows

	return &Importer{options: opts}
}

// Import parses workbook content into products. Parse failures are reported
// per row in the result; only an unreadable workbook is returned as an error
// entry with no rows.
func (im *Importer) Import(content []byte) (*ImportResult, error) {
	result := &ImportResult{
		Products: make([]catalog.Product, 0),
		Errors:   make([]ImportError, 0),
		Warnings: make([]ImportWarning, 0),
	}

	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		result.Errors = append(result.Errors, ImportError{
			Message: fmt.Sprintf("Failed to open workbook: %v", err),
		})
		return result, nil
	}
	defer f.Close()

	sheetName, err := im.selectSheet(f)
	if err != nil {
		result.Errors = append(result.Errors, ImportError{Message: err.Error()})
		return result, nil
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		result.Errors = append(result.Errors, ImportError{
			Message: fmt.Sprintf("Failed to read worksheet: %v", err),
		})
		return result, nil
	}

	if len(rows) == 0 {
		result.Warnings = append(result.Warnings, ImportWarning{
			Message: "Workbook is empty",
		})
		return result, nil
	}

	indices, err := resolveColumns(rows[0])
	if err != nil {
		result.Errors = append(result.Errors, ImportError{Message: err.Error()})
		return result, nil
	}

	result.TotalRows = len(rows) - 1

	for i := 1; i < len(rows); i++ {
		rawRow := rows[i]
		rowNumber := i + 1 // 1-based, matches what the sheet shows

		if im.options.SkipEmptyRows && isEmptyRow(rawRow) {
			continue
		}

		product, rowErrors, rowWarnings := im.mapRow(rawRow, rowNumber, indices)
		result.Errors = append(result.Errors, rowErrors...)
		result.Warnings = append(result.Warnings, rowWarnings...)

		if product == nil {
			continue
		}

		if err := product.Validate(); err != nil {
			result.Errors = append(result.Errors, ImportError{
				RowNumber: rowNumber,
				Message:   err.Error(),
				Value:     product.Name,
			})
			continue
		}

		result.Products = append(result.Products, *product)
	}

	result.ValidRows = len(result.Products)

	log.Debug().
		Int("total", result.TotalRows).
		Int("valid", result.ValidRows).
		Int("errors", len(result.Errors)).
		Msg("Workbook imported")

	return result, nil
}

// selectSheet picks the configured worksheet, defaulting to the first one.
func (im *Importer) selectSheet(f *excelize.File) (string, error) {
	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return "", fmt.Errorf("workbook has no sheets")
	}

	if im.options.SheetName == "" {
		return sheetList[0], nil
	}

	for _, name := range sheetList {
		if name == im.options.SheetName {
			return name, nil
		}
	}
	return "", fmt.Errorf("sheet %q not found. Available sheets: %s",
		im.options.SheetName, strings.Join(sheetList, ", "))
}

// resolveColumns maps header cells to column indices via headerAliases.
// Name and price are required; everything else is optional.
func resolveColumns(headers []string) (ColumnIndices, error) {
	indices := NewColumnIndices()

	for i, cell := range headers {
		key := strings.ToLower(strings.TrimSpace(cell))
		logical, ok := headerAliases[key]
		if !ok {
			continue
		}
		switch logical {
		case "id":
			indices.ID = i
		case "name":
			indices.Name = i
		case "maker":
			indices.Maker = i
		case "type":
			indices.Type = i
		case "category":
			indices.Category = i
		case "price":
			indices.Price = i
		case "effectivePrice":
			indices.EffectivePrice = i
		case "cpu":
			indices.CPU = i
		case "gpu":
			indices.GPU = i
		case "memory":
			indices.Memory = i
		case "storage":
			indices.Storage = i
		case "imageUrl":
			indices.ImageURL = i
		case "productUrl":
			indices.ProductURL = i
		case "shippingFee":
			indices.ShippingFee = i
		case "regularPoint":
			indices.RegularPoint = i
		case "campaigns":
			indices.Campaigns = i
		}
	}

	if indices.Name == InvalidIndex {
		return indices, fmt.Errorf("required column missing: name")
	}
	if indices.Price == InvalidIndex {
		return indices, fmt.Errorf("required column missing: price")
	}

	return indices, nil
}

// mapRow converts one raw sheet row into a product.
func (im *Importer) mapRow(rawRow []string, rowNumber int, indices ColumnIndices) (*catalog.Product, []ImportError, []ImportWarning) {
	var errors []ImportError
	var warnings []ImportWarning

	getValue := func(idx int) string {
		if idx == InvalidIndex || idx >= len(rawRow) {
			return ""
		}
		return strings.TrimSpace(rawRow[idx])
	}

	name := getValue(indices.Name)
	if name == "" {
		errors = append(errors, ImportError{
			RowNumber: rowNumber,
			Field:     "name",
			Message:   "Missing product name",
		})
		return nil, errors, warnings
	}

	priceStr := getValue(indices.Price)
	price, err := parseYen(priceStr)
	if err != nil {
		errors = append(errors, ImportError{
			RowNumber: rowNumber,
			Field:     "price",
			Message:   "Invalid price value",
			Value:     priceStr,
		})
		return nil, errors, warnings
	}

	effectivePrice := price
	if s := getValue(indices.EffectivePrice); s != "" {
		ep, err := parseYen(s)
		if err != nil {
			warnings = append(warnings, ImportWarning{
				RowNumber: rowNumber,
				Field:     "effectivePrice",
				Message:   "Invalid effective price, using list price",
			})
		} else {
			effectivePrice = ep
		}
	}
	if effectivePrice > price {
		warnings = append(warnings, ImportWarning{
			RowNumber: rowNumber,
			Field:     "effectivePrice",
			Message:   "Effective price above list price, using list price",
		})
		effectivePrice = price
	}

	maker := getValue(indices.Maker)
	if maker == "" {
		maker = im.options.DefaultMaker
	}

	shippingFee := 0
	if s := getValue(indices.ShippingFee); s != "" {
		if fee, err := parseYen(s); err == nil {
			shippingFee = fee
		} else {
			warnings = append(warnings, ImportWarning{
				RowNumber: rowNumber,
				Field:     "shippingFee",
				Message:   "Invalid shipping fee, ignoring",
			})
		}
	}

	regularPoint := 0
	if s := getValue(indices.RegularPoint); s != "" {
		if pts, err := strconv.Atoi(s); err == nil && pts >= 0 {
			regularPoint = pts
		} else {
			warnings = append(warnings, ImportWarning{
				RowNumber: rowNumber,
				Field:     "regularPoint",
				Message:   "Invalid point value, ignoring",
			})
		}
	}

	labels := splitCampaigns(getValue(indices.Campaigns))
	campaigns := make([]catalog.Campaign, 0, len(labels))
	for _, label := range labels {
		campaigns = append(campaigns, parseCampaign(label))
	}
	kept := catalog.SanitizeCampaigns(campaigns)
	if len(kept) < len(campaigns) {
		warnings = append(warnings, ImportWarning{
			RowNumber: rowNumber,
			Field:     "campaigns",
			Message:   "Unknown campaign labels dropped",
		})
	}

	discountRate := 0
	if price > 0 && effectivePrice < price {
		discountRate = (price - effectivePrice) * 100 / price
		// A discounted row never carries rate 0; sub-1% truncation floors to 1.
		if discountRate == 0 {
			discountRate = 1
		}
	}

	id := getValue(indices.ID)
	if id == "" {
		id = fmt.Sprintf("%s-%d", slugify(maker), rowNumber)
	}

	now := time.Now()
	product := &catalog.Product{
		ID:             id,
		Name:           name,
		Maker:          maker,
		Type:           getValue(indices.Type),
		Category:       getValue(indices.Category),
		Price:          price,
		EffectivePrice: effectivePrice,
		DiscountRate:   discountRate,
		CPU:            getValue(indices.CPU),
		GPU:            getValue(indices.GPU),
		Memory:         getValue(indices.Memory),
		Storage:        getValue(indices.Storage),
		ImageURL:       getValue(indices.ImageURL),
		ProductURL:     getValue(indices.ProductURL),
		ShippingFee:    shippingFee,
		RegularPoint:   regularPoint,
		Campaigns:      kept,
		IsActive:       true,
		CreatedAt:      &now,
		UpdatedAt:      &now,
	}

	return product, errors, warnings
}

// isEmptyRow checks if a row is empty
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

var yenCleanRe = regexp.MustCompile(`[¥￥,\s円]`)

// parseYen parses a yen amount. Currency marks, commas, and the 円 suffix
// are tolerated; fractions are not.
func parseYen(value string) (int, error) {
	if value == "" {
		return 0, fmt.Errorf("empty price value")
	}

	cleaned := yenCleanRe.ReplaceAllString(value, "")
	parsed, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, err
	}
	if parsed < 0 {
		return 0, fmt.Errorf("negative price value")
	}
	return parsed, nil
}

var campaignAmountRe = regexp.MustCompile(`^(\S+?)[:：](\d+)$`)

// parseCampaign reads a campaign cell entry. "ポイント:5000" carries an
// amount; a bare label has none.
func parseCampaign(label string) catalog.Campaign {
	if m := campaignAmountRe.FindStringSubmatch(label); m != nil {
		amount, _ := strconv.Atoi(m[2])
		return catalog.Campaign{Type: m[1], Amount: amount}
	}
	return catalog.Campaign{Type: label}
}

var campaignSplitRe = regexp.MustCompile(`[,;、|]`)

// splitCampaigns splits a campaign cell on common delimiters.
func splitCampaigns(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range campaignSplitRe.Split(value, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// slugify lowercases and strips a maker name into an id prefix. Non-ASCII
// makers collapse to "row".
func slugify(s string) string {
	slug := slugRe.ReplaceAllString(strings.ToLower(s), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "row"
	}
	return slug
}
