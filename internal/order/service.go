package order

import (
	"errors"
	"time"
)

// Service provides business logic for orders.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

func (s *Service) Create(sessionID string, ord Order) (Order, error) {
	if sessionID == "" {
		return Order{}, errors.New("invalid session")
	}
	if len(ord.Cart) == 0 {
		return Order{}, errors.New("empty cart")
	}
	now := time.Now().UTC().Format(time.RFC3339)
	ord.CreatedAt = now
	ord.UpdatedAt = now
	if ord.Status == "" {
		ord.Status = StatusConfirmed
	}
	return s.repo.Create(sessionID, ord)
}

func (s *Service) ListBySession(sessionID string) ([]Order, error) {
	if sessionID == "" {
		return nil, errors.New("invalid session")
	}
	return s.repo.ListBySession(sessionID)
}
