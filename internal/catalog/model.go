// Package catalog holds the product data model and the stores that serve it.
package catalog

import (
	"fmt"
	"time"
)

// Recognized campaign types. Anything else coming out of the ingestion feed
// is dropped, not surfaced.
const (
	CampaignCoupon = "クーポン"
	CampaignSale   = "セール"
	CampaignPoint  = "ポイント"
)

// NewBadgeWindow is how long after creation a product counts as new.
const NewBadgeWindow = 14 * 24 * time.Hour

// Campaign is a promotional modifier attached to a product.
type Campaign struct {
	Type   string `bson:"type" json:"type"`
	Amount int    `bson:"amount" json:"amount"`
}

// Product is one listed machine. Spec fields (CPU, GPU, memory, storage) are
// vendor-supplied free text with no stable schema; all matching against them
// goes through the search package's normalizer.
type Product struct {
	ID             string     `bson:"_id" json:"id"`
	Name           string     `bson:"name" json:"name"`
	Maker          string     `bson:"maker" json:"maker"`
	Type           string     `bson:"type" json:"type"`
	Category       string     `bson:"category" json:"category"`
	Price          int        `bson:"price" json:"price"`
	EffectivePrice int        `bson:"effectiveprice" json:"effectiveprice"`
	DiscountRate   int        `bson:"discountrate" json:"discountrate"`
	CPU            string     `bson:"cpu" json:"cpu"`
	GPU            string     `bson:"gpu" json:"gpu"`
	Memory         string     `bson:"memory" json:"memory"`
	Storage        string     `bson:"storage" json:"storage"`
	ImageURL       string     `bson:"imageUrl" json:"imageUrl"`
	ProductURL     string     `bson:"productUrl" json:"productUrl"`
	ShippingFee    int        `bson:"shippingFee" json:"shippingFee"`
	RegularPoint   int        `bson:"regularPoint" json:"regularPoint"`
	Campaigns      []Campaign `bson:"campaigns" json:"campaigns"`
	IsActive       bool       `bson:"isActive" json:"isActive"`
	CreatedAt      *time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt      *time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// SanitizeCampaigns drops campaigns with unrecognized types, preserving order.
func SanitizeCampaigns(campaigns []Campaign) []Campaign {
	out := campaigns[:0:0]
	for _, c := range campaigns {
		switch c.Type {
		case CampaignCoupon, CampaignSale, CampaignPoint:
			out = append(out, c)
		}
	}
	return out
}

// IsNew reports whether the product gets the "new" badge at the given time.
// The badge is derived, never persisted.
func (p *Product) IsNew(now time.Time) bool {
	if p.CreatedAt == nil {
		return false
	}
	return now.Sub(*p.CreatedAt) <= NewBadgeWindow
}

// TotalPoints is the loyalty baseline plus all point campaign amounts.
func (p *Product) TotalPoints() int {
	total := p.RegularPoint
	for _, c := range p.Campaigns {
		if c.Type == CampaignPoint {
			total += c.Amount
		}
	}
	return total
}

// Validate checks the commercial invariants the ingestion feed promises:
// effectiveprice <= price, and discountrate > 0 exactly when the effective
// price undercuts the list price.
func (p *Product) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("product without id")
	}
	if p.EffectivePrice > p.Price {
		return fmt.Errorf("product %s: effectiveprice %d exceeds price %d", p.ID, p.EffectivePrice, p.Price)
	}
	discounted := p.Price > p.EffectivePrice
	if discounted != (p.DiscountRate > 0) {
		return fmt.Errorf("product %s: discountrate %d inconsistent with price %d/%d",
			p.ID, p.DiscountRate, p.Price, p.EffectivePrice)
	}
	return nil
}
