package catalog

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// ErrNotFound is returned by GetByID when no product has the id.
var ErrNotFound = fmt.Errorf("product not found")

// Store is the product source. The search pipeline only ever reads; Upsert
// exists for the spreadsheet importer.
type Store interface {
	// FetchActive returns up to limit active products. Inactive products are
	// excluded here but stay reachable through GetByID.
	FetchActive(ctx context.Context, limit int) ([]Product, error)

	// GetByID returns a product by id regardless of its active flag.
	GetByID(ctx context.Context, id string) (*Product, error)

	// Upsert inserts or replaces products by id.
	Upsert(ctx context.Context, products []Product) error
}

// MemoryStore is an in-memory Store used by tests and as the vehicle for the
// fallback dataset.
type MemoryStore struct {
	mu       sync.RWMutex
	products map[string]Product
}

// NewMemoryStore creates a MemoryStore seeded with the given products.
func NewMemoryStore(products []Product) *MemoryStore {
	s := &MemoryStore{products: make(map[string]Product, len(products))}
	for _, p := range products {
		p.Campaigns = SanitizeCampaigns(p.Campaigns)
		s.products[p.ID] = p
	}
	return s
}

// FetchActive returns active products ordered by id for determinism.
func (s *MemoryStore) FetchActive(ctx context.Context, limit int) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if p.IsActive {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// GetByID returns the product with the id, active or not.
func (s *MemoryStore) GetByID(ctx context.Context, id string) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

// Upsert inserts or replaces products by id.
func (s *MemoryStore) Upsert(ctx context.Context, products []Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range products {
		if p.ID == "" {
			return fmt.Errorf("upsert: product without id")
		}
		p.Campaigns = SanitizeCampaigns(p.Campaigns)
		s.products[p.ID] = p
	}
	return nil
}
