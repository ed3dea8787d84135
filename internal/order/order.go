package order

import "github.com/shopspring/decimal"

// Order records a confirmed checkout. Cart maps product id (as a string
// key) to the quantity purchased.
type Order struct {
	OrderID       int             `json:"orderID"`
	Cart          map[string]int  `json:"cart"`
	Quantity      int             `json:"quantity"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	ShippingPrice decimal.Decimal `json:"shippingPrice"`
	GrandPrice    decimal.Decimal `json:"grandPrice"`
	Status        string          `json:"status"`
	CreatedAt     string          `json:"createdAt"`
	UpdatedAt     string          `json:"updatedAt"`
}

// StatusConfirmed is the only status the simulated gateway produces.
const StatusConfirmed = "confirmed"
