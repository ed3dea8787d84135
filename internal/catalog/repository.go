package catalog

import (
	"errors"
	"fmt"
	"log"
	"sync"
)

var (
	ErrNotFound = errors.New("product not found")
)

// Repository provides read access to the product catalog. The catalog is
// load-time fixed data; there is no mutation API.
type Repository interface {
	List() []Product
	GetByID(id int) (Product, error)
	GetBySlug(slug string) (Product, error)
	ListByIDs(ids []int) []Product
	Categories() []Category
}

// InMemoryRepository holds the catalog in insertion order.
type InMemoryRepository struct {
	mu         sync.RWMutex
	storage    []Product
	bySlug     map[string]int
	byID       map[int]int
	categories []Category
}

// NewInMemoryRepository validates and indexes the seed catalog. Duplicate
// ids or slugs are rejected; stock inconsistencies are hand-authored data
// and only logged as warnings.
func NewInMemoryRepository(seed []Product, categories []Category) (*InMemoryRepository, error) {
	r := &InMemoryRepository{
		storage: make([]Product, 0, len(seed)),
		bySlug:  make(map[string]int, len(seed)),
		byID:    make(map[int]int, len(seed)),
	}

	counts := map[string]int{}
	for _, p := range seed {
		if p.ID <= 0 || p.Slug == "" {
			return nil, fmt.Errorf("product %q: missing id or slug", p.Name)
		}
		if _, dup := r.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		if _, dup := r.bySlug[p.Slug]; dup {
			return nil, fmt.Errorf("duplicate product slug %q", p.Slug)
		}
		if p.StockCount < 0 {
			return nil, fmt.Errorf("product %d: negative stockCount", p.ID)
		}
		if !p.InStock && p.StockCount != 0 {
			log.Printf("warning: product %d (%s) marked out of stock but stockCount=%d", p.ID, p.Slug, p.StockCount)
		}
		if p.InStock && p.StockCount == 0 {
			log.Printf("warning: product %d (%s) marked in stock but stockCount=0", p.ID, p.Slug)
		}
		r.byID[p.ID] = len(r.storage)
		r.bySlug[p.Slug] = len(r.storage)
		r.storage = append(r.storage, p)
		counts[p.Category]++
	}

	r.categories = make([]Category, 0, len(categories))
	for _, cat := range categories {
		cat.Count = counts[cat.Slug]
		r.categories = append(r.categories, cat)
	}

	return r, nil
}

func (r *InMemoryRepository) List() []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, len(r.storage))
	copy(out, r.storage)
	return out
}

func (r *InMemoryRepository) GetByID(id int) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i, ok := r.byID[id]; ok {
		return r.storage[i], nil
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) GetBySlug(slug string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i, ok := r.bySlug[slug]; ok {
		return r.storage[i], nil
	}
	return Product{}, ErrNotFound
}

// ListByIDs returns the products matching ids, preserving the order of ids.
// Unknown ids are skipped.
func (r *InMemoryRepository) ListByIDs(ids []int) []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Product, 0, len(ids))
	for _, id := range ids {
		if i, ok := r.byID[id]; ok {
			out = append(out, r.storage[i])
		}
	}
	return out
}

func (r *InMemoryRepository) Categories() []Category {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Category, len(r.categories))
	copy(out, r.categories)
	return out
}
