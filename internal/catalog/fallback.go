package catalog

import "time"

// Fallback returns the small static dataset served when the product source
// is unavailable or empty. It keeps the search page demonstrable; the
// handlers flag responses built from it so the UI can show a warning.
func Fallback() []Product {
	created := func(s string) *time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return &t
	}

	return []Product{
		{
			ID:             "fallback1",
			Name:           "GALLERIA XA7C-R47S Core i7-14700KF/RTX4070 Super/32GBメモリ/1TB Gen4 SSD",
			Maker:          "ドスパラ",
			Type:           "デスクトップ",
			Category:       "ゲーミングPC",
			Price:          259980,
			EffectivePrice: 239980,
			DiscountRate:   8,
			CPU:            "Core i7-14700KF",
			GPU:            "RTX 4070 Super (12GB)",
			Memory:         "32GB",
			Storage:        "1TB Gen4 SSD",
			ShippingFee:    0,
			RegularPoint:   2399,
			Campaigns: []Campaign{
				{Type: CampaignCoupon, Amount: 20000},
				{Type: CampaignPoint, Amount: 2399},
			},
			IsActive:  true,
			CreatedAt: created("2024-01-15"),
		},
		{
			ID:             "fallback2",
			Name:           "LEVEL-R779-LC137KF-UL2X Core i7-13700KF/RTX4080/32GBメモリ/1TB M.2 SSD",
			Maker:          "パソコン工房",
			Type:           "デスクトップ",
			Category:       "ゲーミングPC",
			Price:          329980,
			EffectivePrice: 309980,
			DiscountRate:   6,
			CPU:            "Core i7-13700KF",
			GPU:            "RTX 4080 (16GB)",
			Memory:         "32GB",
			Storage:        "1TB M.2 SSD",
			ShippingFee:    0,
			RegularPoint:   3299,
			Campaigns: []Campaign{
				{Type: CampaignSale, Amount: 20000},
			},
			IsActive:  true,
			CreatedAt: created("2024-01-10"),
		},
		{
			ID:             "fallback3",
			Name:           "G-Master Spear Z790/D5 Core i5-14600KF/RTX4060Ti/16GBメモリ/1TB M.2 SSD",
			Maker:          "サイコム",
			Type:           "デスクトップ",
			Category:       "ゲーミングPC",
			Price:          199980,
			EffectivePrice: 189980,
			DiscountRate:   5,
			CPU:            "Core i5-14600KF",
			GPU:            "RTX 4060 Ti (16GB)",
			Memory:         "16GB",
			Storage:        "1TB M.2 SSD",
			ShippingFee:    2200,
			RegularPoint:   1899,
			Campaigns:      []Campaign{},
			IsActive:       true,
			CreatedAt:      created("2024-01-12"),
		},
		{
			ID:             "fallback4",
			Name:           "Legion Tower 5 Gen 8 Ryzen 7 7700/RTX4060/16GBメモリ/512GB SSD",
			Maker:          "レノボ",
			Type:           "デスクトップ",
			Category:       "ゲーミングPC",
			Price:          184800,
			EffectivePrice: 184800,
			DiscountRate:   0,
			CPU:            "Ryzen 7 7700",
			GPU:            "RTX 4060 (8GB)",
			Memory:         "16GB",
			Storage:        "512GB SSD",
			ShippingFee:    0,
			RegularPoint:   1848,
			Campaigns:      []Campaign{},
			IsActive:       true,
			CreatedAt:      created("2024-01-08"),
		},
		{
			ID:             "fallback5",
			Name:           "FRGKB760 Core i7-14700F/RTX4070Ti SUPER/32GBメモリ/1TB NVMe SSD",
			Maker:          "フロンティア",
			Type:           "デスクトップ",
			Category:       "ゲーミングPC",
			Price:          289800,
			EffectivePrice: 259800,
			DiscountRate:   10,
			CPU:            "Core i7-14700F",
			GPU:            "RTX 4070 Ti SUPER (16GB)",
			Memory:         "32GB",
			Storage:        "1TB NVMe SSD",
			ShippingFee:    0,
			RegularPoint:   0,
			Campaigns: []Campaign{
				{Type: CampaignSale, Amount: 30000},
			},
			IsActive:  true,
			CreatedAt: created("2024-01-20"),
		},
		{
			ID:             "fallback6",
			Name:           "ThinkBook 16 Gen 6 Ryzen 5 7530U/16GBメモリ/512GB SSD",
			Maker:          "レノボ",
			Type:           "ノートブック",
			Category:       "notebook",
			Price:          109800,
			EffectivePrice: 89800,
			DiscountRate:   18,
			CPU:            "Ryzen 5 7530U",
			GPU:            "Radeon 760M",
			Memory:         "16GB",
			Storage:        "512GB SSD",
			ShippingFee:    0,
			RegularPoint:   898,
			Campaigns: []Campaign{
				{Type: CampaignSale, Amount: 20000},
			},
			IsActive:  true,
			CreatedAt: created("2024-01-05"),
		},
	}
}
