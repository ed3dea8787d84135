package cart

import "errors"

var ErrInvalidItem = errors.New("invalid cart item")

// ServiceInterface is consumed by checkout, which reads and clears the
// cart but never edits individual lines.
type ServiceInterface interface {
	GetCart(sessionID string) (Summary, error)
	ClearCart(sessionID string) error
}

// Service orchestrates cart operations. Mutations cannot fail once the
// payload is valid: adds merge, removes and rejected updates are no-ops.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// AddToCart merges quantity into an existing line for the same product,
// or appends a new line. A missing quantity defaults to 1.
func (s *Service) AddToCart(sessionID string, item LineItem) (Summary, error) {
	if item.ID <= 0 {
		return Summary{}, ErrInvalidItem
	}
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	if item.Quantity < 0 {
		return Summary{}, ErrInvalidItem
	}
	items, err := s.repo.Add(sessionID, item)
	if err != nil {
		return Summary{}, err
	}
	return summarize(items), nil
}

// UpdateQuantity sets a line's quantity. Values below 1 are silently
// rejected; callers use RemoveFromCart for deletion, not quantity zero.
func (s *Service) UpdateQuantity(sessionID string, productID, quantity int) (Summary, error) {
	if productID <= 0 {
		return Summary{}, ErrInvalidItem
	}
	if quantity < 1 {
		return s.GetCart(sessionID)
	}
	items, err := s.repo.UpdateQuantity(sessionID, productID, quantity)
	if err != nil {
		return Summary{}, err
	}
	return summarize(items), nil
}

// RemoveFromCart deletes a line if present; absent ids are a no-op.
func (s *Service) RemoveFromCart(sessionID string, productID int) (Summary, error) {
	if productID <= 0 {
		return Summary{}, ErrInvalidItem
	}
	items, err := s.repo.Remove(sessionID, productID)
	if err != nil {
		return Summary{}, err
	}
	return summarize(items), nil
}

func (s *Service) GetCart(sessionID string) (Summary, error) {
	items, err := s.repo.Get(sessionID)
	if err != nil {
		return Summary{}, err
	}
	return summarize(items), nil
}

// ClearCart empties the cart unconditionally.
func (s *Service) ClearCart(sessionID string) error {
	return s.repo.Clear(sessionID)
}
