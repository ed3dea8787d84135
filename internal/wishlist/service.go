package wishlist

import "errors"

var ErrInvalidItem = errors.New("invalid wishlist item")

// Service orchestrates wishlist operations. Add is idempotent and remove
// is a no-op for absent ids, so neither can fail on valid input.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Add(sessionID string, item Item) (Summary, error) {
	if item.ID <= 0 {
		return Summary{}, ErrInvalidItem
	}
	items, err := s.repo.Add(sessionID, item)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Items: items, TotalItems: len(items)}, nil
}

func (s *Service) Remove(sessionID string, productID int) (Summary, error) {
	if productID <= 0 {
		return Summary{}, ErrInvalidItem
	}
	items, err := s.repo.Remove(sessionID, productID)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Items: items, TotalItems: len(items)}, nil
}

func (s *Service) List(sessionID string) (Summary, error) {
	items, err := s.repo.List(sessionID)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Items: items, TotalItems: len(items)}, nil
}

// Contains is the membership predicate behind the saved-state toggle on
// catalog and detail views.
func (s *Service) Contains(sessionID string, productID int) (bool, error) {
	if productID <= 0 {
		return false, ErrInvalidItem
	}
	return s.repo.Contains(sessionID, productID)
}

func (s *Service) Clear(sessionID string) error {
	return s.repo.Clear(sessionID)
}
