package checkout

import "sync"

// Repository stores in-progress checkout sessions. Sessions are never
// persisted: a process restart discards all progress.
type Repository interface {
	Get(sessionID string) (Session, bool)
	Save(sess Session)
	Delete(sessionID string)
}

// InMemoryRepository keeps checkout sessions in a process-local map.
type InMemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{sessions: make(map[string]Session)}
}

func (r *InMemoryRepository) Get(sessionID string) (Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sess, ok := r.sessions[sessionID]
	return sess, ok
}

func (r *InMemoryRepository) Save(sess Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sess.ID] = sess
}

func (r *InMemoryRepository) Delete(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
}
