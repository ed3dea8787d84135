package wishlist

import "sync"

// Repository stores saved products per visitor session, keeping insertion
// order for display.
type Repository interface {
	Add(sessionID string, item Item) ([]Item, error)
	Remove(sessionID string, productID int) ([]Item, error)
	List(sessionID string) ([]Item, error)
	Contains(sessionID string, productID int) (bool, error)
	Clear(sessionID string) error
}

// InMemoryRepository keeps wishlists in a process-local map.
type InMemoryRepository struct {
	mu    sync.RWMutex
	lists map[string][]Item
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{lists: make(map[string][]Item)}
}

func (r *InMemoryRepository) Add(sessionID string, item Item) ([]Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.lists[sessionID]
	for _, it := range items {
		if it.ID == item.ID {
			return copyItems(items), nil
		}
	}
	items = append(items, item)
	r.lists[sessionID] = items
	return copyItems(items), nil
}

func (r *InMemoryRepository) Remove(sessionID string, productID int) ([]Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.lists[sessionID]
	for i, it := range items {
		if it.ID == productID {
			items = append(items[:i], items[i+1:]...)
			r.lists[sessionID] = items
			break
		}
	}
	return copyItems(items), nil
}

func (r *InMemoryRepository) List(sessionID string) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyItems(r.lists[sessionID]), nil
}

func (r *InMemoryRepository) Contains(sessionID string, productID int) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, it := range r.lists[sessionID] {
		if it.ID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryRepository) Clear(sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.lists, sessionID)
	return nil
}

func copyItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
