package cart

import (
	"sync"
)

// Repository stores cart line items per visitor session. Line order is
// insertion order and survives quantity updates.
type Repository interface {
	Add(sessionID string, item LineItem) ([]LineItem, error)
	UpdateQuantity(sessionID string, productID, quantity int) ([]LineItem, error)
	Remove(sessionID string, productID int) ([]LineItem, error)
	Get(sessionID string) ([]LineItem, error)
	Clear(sessionID string) error
}

// InMemoryRepository keeps carts in a process-local map. Sessions that
// never touched the cart read as empty.
type InMemoryRepository struct {
	mu    sync.RWMutex
	carts map[string][]LineItem
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{carts: make(map[string][]LineItem)}
}

func (r *InMemoryRepository) Add(sessionID string, item LineItem) ([]LineItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.carts[sessionID]
	for i := range items {
		if items[i].ID == item.ID {
			items[i].Quantity += item.Quantity
			r.carts[sessionID] = items
			return copyItems(items), nil
		}
	}
	items = append(items, item)
	r.carts[sessionID] = items
	return copyItems(items), nil
}

func (r *InMemoryRepository) UpdateQuantity(sessionID string, productID, quantity int) ([]LineItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.carts[sessionID]
	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity = quantity
			r.carts[sessionID] = items
			break
		}
	}
	return copyItems(items), nil
}

func (r *InMemoryRepository) Remove(sessionID string, productID int) ([]LineItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.carts[sessionID]
	for i := range items {
		if items[i].ID == productID {
			items = append(items[:i], items[i+1:]...)
			r.carts[sessionID] = items
			break
		}
	}
	return copyItems(items), nil
}

func (r *InMemoryRepository) Get(sessionID string) ([]LineItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyItems(r.carts[sessionID]), nil
}

func (r *InMemoryRepository) Clear(sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
	return nil
}

func copyItems(items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}
