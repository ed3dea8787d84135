package cart

import "github.com/shopspring/decimal"

// LineItem is one row in the cart: a single product and its requested
// quantity. Quantity is always >= 1; removal is an explicit operation,
// never quantity zero.
type LineItem struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image,omitempty"`
	Slug     string          `json:"slug,omitempty"`
	Quantity int             `json:"quantity"`
}

// Summary is the cart with its derived aggregates.
type Summary struct {
	Items      []LineItem      `json:"items"`
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

func summarize(items []LineItem) Summary {
	total := decimal.Zero
	count := 0
	for _, it := range items {
		count += it.Quantity
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return Summary{Items: items, TotalItems: count, TotalPrice: total}
}
