package wishlist

import "github.com/shopspring/decimal"

// Item is one saved product reference. The wishlist is a set keyed by
// product id; adding an already-saved product is a no-op.
type Item struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image,omitempty"`
	Slug     string          `json:"slug,omitempty"`
	Category string          `json:"category,omitempty"`
	Rating   float64         `json:"rating,omitempty"`
}

// Summary is the wishlist with its item count. Unlike the cart there is
// no price aggregate.
type Summary struct {
	Items      []Item `json:"items"`
	TotalItems int    `json:"totalItems"`
}
