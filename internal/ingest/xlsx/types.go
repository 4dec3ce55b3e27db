package xlsx

// ImportError describes a row that could not be imported.
type ImportError struct {
	RowNumber int    `json:"rowNumber"`
	Field     string `json:"field,omitempty"`
	Message   string `json:"message"`
	Value     string `json:"value,omitempty"`
}

// ImportWarning describes a recoverable issue. The row is still imported.
type ImportWarning struct {
	RowNumber int    `json:"rowNumber"`
	Field     string `json:"field,omitempty"`
	Message   string `json:"message"`
}

// ColumnIndices holds resolved 0-based column positions. InvalidIndex marks
// a column the sheet does not carry.
type ColumnIndices struct {
	ID             int
	Name           int
	Maker          int
	Type           int
	Category       int
	Price          int
	EffectivePrice int
	CPU            int
	GPU            int
	Memory         int
	Storage        int
	ImageURL       int
	ProductURL     int
	ShippingFee    int
	RegularPoint   int
	Campaigns      int
}

// InvalidIndex marks an unresolved column.
const InvalidIndex = -1

// NewColumnIndices returns indices with every column unresolved.
func NewColumnIndices() ColumnIndices {
	return ColumnIndices{
		ID:             InvalidIndex,
		Name:           InvalidIndex,
		Maker:          InvalidIndex,
		Type:           InvalidIndex,
		Category:       InvalidIndex,
		Price:          InvalidIndex,
		EffectivePrice: InvalidIndex,
		CPU:            InvalidIndex,
		GPU:            InvalidIndex,
		Memory:         InvalidIndex,
		Storage:        InvalidIndex,
		ImageURL:       InvalidIndex,
		ProductURL:     InvalidIndex,
		ShippingFee:    InvalidIndex,
		RegularPoint:   InvalidIndex,
		Campaigns:      InvalidIndex,
	}
}

// headerAliases maps sheet header names to logical columns. Japanese and
// English variants are both accepted; matching is case-insensitive.
var headerAliases = map[string]string{
	"id":             "id",
	"name":           "name",
	"商品名":            "name",
	"maker":          "maker",
	"メーカー":           "maker",
	"type":           "type",
	"タイプ":            "type",
	"category":       "category",
	"カテゴリ":           "category",
	"price":          "price",
	"価格":             "price",
	"effectiveprice": "effectivePrice",
	"実質価格":           "effectivePrice",
	"cpu":            "cpu",
	"gpu":            "gpu",
	"memory":         "memory",
	"メモリ":            "memory",
	"storage":        "storage",
	"ストレージ":          "storage",
	"imageurl":       "imageUrl",
	"画像url":          "imageUrl",
	"producturl":     "productUrl",
	"商品url":          "productUrl",
	"shippingfee":    "shippingFee",
	"送料":             "shippingFee",
	"regularpoint":   "regularPoint",
	"ポイント":           "regularPoint",
	"campaigns":      "campaigns",
	"キャンペーン":         "campaigns",
}
