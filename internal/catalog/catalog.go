package catalog

import "github.com/shopspring/decimal"

// Product represents one catalog entry. Records are constructed once at
// startup and never mutated afterwards.
// JSON tags follow the camelCase convention used elsewhere in the project.
type Product struct {
	ID            int               `json:"id"`
	Slug          string            `json:"slug"`
	Name          string            `json:"name"`
	Brand         string            `json:"brand,omitempty"`
	Category      string            `json:"category"`
	Price         decimal.Decimal   `json:"price"`
	CurrentPrice  *decimal.Decimal  `json:"currentPrice,omitempty"`
	OriginalPrice *decimal.Decimal  `json:"originalPrice,omitempty"`
	Rating        float64           `json:"rating"`
	Badges        []string          `json:"badges,omitempty"`
	InStock       bool              `json:"inStock"`
	StockCount    int               `json:"stockCount"`
	Image         string            `json:"image,omitempty"`
	Description   string            `json:"description,omitempty"`
	Details       map[string]string `json:"details,omitempty"`
	Reviews       []Review          `json:"reviews,omitempty"`
}

// Review is a customer review attached to a product.
type Review struct {
	Name    string  `json:"name"`
	Rating  float64 `json:"rating"`
	Date    string  `json:"date"`
	Comment string  `json:"comment"`
}

// EffectivePrice is the price actually charged: the discounted current
// price when one is set, the base price otherwise.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.CurrentPrice != nil {
		return *p.CurrentPrice
	}
	return p.Price
}

// Category is the public DTO returned by the category API.
type Category struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Count       int    `json:"count"`
}
