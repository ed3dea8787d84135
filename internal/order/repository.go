package order

import "sync"

// Repository stores confirmed orders per visitor session.
type Repository interface {
	Create(sessionID string, ord Order) (Order, error)
	ListBySession(sessionID string) ([]Order, error)
}

// InMemoryRepository keeps orders in a process-local map.
type InMemoryRepository struct {
	mu     sync.RWMutex
	orders map[string][]Order
	nextID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{orders: make(map[string][]Order), nextID: 1}
}

func (r *InMemoryRepository) Create(sessionID string, ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ord.OrderID = r.nextID
	r.nextID++
	r.orders[sessionID] = append(r.orders[sessionID], ord)
	return ord, nil
}

func (r *InMemoryRepository) ListBySession(sessionID string) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, len(r.orders[sessionID]))
	copy(out, r.orders[sessionID])
	return out, nil
}
