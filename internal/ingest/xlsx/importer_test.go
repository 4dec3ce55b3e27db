package xlsx

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/iyabazu/pc-search/internal/catalog"
)

func buildWorkbook(t *testing.T, rows [][]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, cell := range row {
			cellName, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatal(err)
			}
			if err := f.SetCellValue(sheet, cellName, cell); err != nil {
				t.Fatal(err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

var testHeader = []any{
	"id", "name", "maker", "type", "category", "price", "effectivePrice",
	"cpu", "gpu", "memory", "storage", "campaigns",
}

func TestImport(t *testing.T) {
	content := buildWorkbook(t, [][]any{
		testHeader,
		{"p1", "GALLERIA XA7C", "ドスパラ", "デスクトップ", "desktop",
			"259,980", "239,980", "Core i7-14700F", "RTX 4070 (12GB)",
			"32GB", "1TB NVMe SSD", "クーポン:20000、ポイント:2399"},
		{"p2", "LEVEL-M77M", "パソコン工房", "デスクトップ", "desktop",
			"¥180,000", "", "Core i5-14400F", "RTX 4060 (8GB)",
			"16GB", "500GB NVMe SSD", ""},
	})

	importer := NewImporter(DefaultOptions())
	result, err := importer.Import(content)
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if result.TotalRows != 2 || result.ValidRows != 2 {
		t.Fatalf("rows = %d/%d, want 2/2", result.ValidRows, result.TotalRows)
	}

	p1 := result.Products[0]
	if p1.ID != "p1" || p1.Price != 259980 || p1.EffectivePrice != 239980 {
		t.Errorf("p1 = %+v", p1)
	}
	if p1.DiscountRate != 7 {
		t.Errorf("p1 discount rate = %d, want 7", p1.DiscountRate)
	}
	if len(p1.Campaigns) != 2 || p1.Campaigns[0].Type != catalog.CampaignCoupon || p1.Campaigns[0].Amount != 20000 {
		t.Errorf("p1 campaigns = %v", p1.Campaigns)
	}
	if !p1.IsActive {
		t.Error("imported products must be active")
	}

	// Missing effective price falls back to the list price, no discount.
	p2 := result.Products[1]
	if p2.EffectivePrice != 180000 || p2.DiscountRate != 0 {
		t.Errorf("p2 = %+v", p2)
	}
}

func TestImportJapaneseHeaders(t *testing.T) {
	content := buildWorkbook(t, [][]any{
		{"商品名", "メーカー", "価格", "実質価格", "メモリ"},
		{"GALLERIA", "ドスパラ", "200000", "190000", "32GB"},
	})

	result, err := NewImporter(DefaultOptions()).Import(content)
	if err != nil {
		t.Fatal(err)
	}
	if result.ValidRows != 1 {
		t.Fatalf("valid rows = %d, errors %v", result.ValidRows, result.Errors)
	}
	p := result.Products[0]
	if p.Name != "GALLERIA" || p.Maker != "ドスパラ" || p.EffectivePrice != 190000 {
		t.Errorf("product = %+v", p)
	}
}

func TestImportRowErrors(t *testing.T) {
	content := buildWorkbook(t, [][]any{
		{"name", "price"},
		{"", "100000"},
		{"NoPrice", "無料"},
		{"Good", "150,000"},
	})

	result, err := NewImporter(DefaultOptions()).Import(content)
	if err != nil {
		t.Fatal(err)
	}

	if result.ValidRows != 1 {
		t.Fatalf("valid rows = %d", result.ValidRows)
	}
	if len(result.Errors) != 2 {
		t.Fatalf("errors = %v", result.Errors)
	}
	if result.Products[0].Name != "Good" {
		t.Errorf("kept product = %+v", result.Products[0])
	}
}

func TestImportEffectiveAboveList(t *testing.T) {
	content := buildWorkbook(t, [][]any{
		{"name", "price", "effectivePrice"},
		{"Odd", "100000", "120000"},
	})

	result, err := NewImporter(DefaultOptions()).Import(content)
	if err != nil {
		t.Fatal(err)
	}

	// Clamped to the list price with a warning, not rejected.
	if result.ValidRows != 1 {
		t.Fatalf("valid rows = %d, errors %v", result.ValidRows, result.Errors)
	}
	if result.Products[0].EffectivePrice != 100000 {
		t.Errorf("effective price = %d", result.Products[0].EffectivePrice)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected a warning for the clamped price")
	}
}

func TestImportTinyDiscount(t *testing.T) {
	content := buildWorkbook(t, [][]any{
		{"name", "price", "effectivePrice"},
		{"Barely", "10000", "9999"},
	})

	result, err := NewImporter(DefaultOptions()).Import(content)
	if err != nil {
		t.Fatal(err)
	}

	// A sub-1% discount floors to rate 1 instead of failing validation at 0.
	if result.ValidRows != 1 {
		t.Fatalf("valid rows = %d, errors %v", result.ValidRows, result.Errors)
	}
	p := result.Products[0]
	if p.EffectivePrice != 9999 || p.DiscountRate != 1 {
		t.Errorf("product = %+v, want effective 9999 with rate 1", p)
	}
}

func TestImportMissingRequiredColumn(t *testing.T) {
	content := buildWorkbook(t, [][]any{
		{"name", "maker"},
		{"GALLERIA", "ドスパラ"},
	})

	result, err := NewImporter(DefaultOptions()).Import(content)
	if err != nil {
		t.Fatal(err)
	}
	if result.ValidRows != 0 || len(result.Errors) == 0 {
		t.Errorf("result = %+v", result)
	}
}

func TestImportUnreadableWorkbook(t *testing.T) {
	result, err := NewImporter(DefaultOptions()).Import([]byte("not a workbook"))
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Errors) == 0 {
		t.Error("expected an error entry for unreadable content")
	}
}

func TestImportDefaultMaker(t *testing.T) {
	content := buildWorkbook(t, [][]any{
		{"name", "price"},
		{"GALLERIA", "200000"},
	})

	result, err := NewImporter(ImporterOptions{DefaultMaker: "ドスパラ", SkipEmptyRows: true}).Import(content)
	if err != nil {
		t.Fatal(err)
	}
	if result.ValidRows != 1 {
		t.Fatalf("valid rows = %d, errors %v", result.ValidRows, result.Errors)
	}
	if result.Products[0].Maker != "ドスパラ" {
		t.Errorf("maker = %q", result.Products[0].Maker)
	}
}

func TestParseYen(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"259980", 259980, false},
		{"259,980", 259980, false},
		{"¥259,980", 259980, false},
		{"259980円", 259980, false},
		{"￥1,000", 1000, false},
		{"", 0, true},
		{"無料", 0, true},
		{"-100", 0, true},
	}

	for _, tt := range tests {
		got, err := parseYen(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseYen(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseYen(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Lenovo", "lenovo"},
		{"Mouse Computer", "mouse-computer"},
		{"ドスパラ", "row"},
		{"", "row"},
	}
	for _, tt := range tests {
		if got := slugify(tt.input); got != tt.want {
			t.Errorf("slugify(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestImportSelectsSheetByName(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet("products"); err != nil {
		t.Fatal(err)
	}
	for i, row := range [][]any{
		{"name", "price"},
		{"GALLERIA", "200000"},
	} {
		for j, cell := range row {
			cellName, _ := excelize.CoordinatesToCellName(j+1, i+1)
			if err := f.SetCellValue("products", cellName, cell); err != nil {
				t.Fatal(err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatal(err)
	}

	result, err := NewImporter(ImporterOptions{SheetName: "products", SkipEmptyRows: true}).Import(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if result.ValidRows != 1 {
		t.Fatalf("valid rows = %d, errors %v", result.ValidRows, result.Errors)
	}
}
