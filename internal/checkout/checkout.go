package checkout

import "github.com/shopspring/decimal"

// Step is the checkout wizard position. Movement is strictly forward
// except the explicit back action from payment to shipping.
type Step string

const (
	StepShipping     Step = "shipping"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
)

// DeliveryMethod selects how the order is handed over.
type DeliveryMethod string

const (
	DeliveryHome   DeliveryMethod = "home-delivery"
	DeliveryPickup DeliveryMethod = "warehouse-pickup"
)

// homeDeliveryFee is the flat fee charged for home delivery; warehouse
// pickup is free.
var homeDeliveryFee = decimal.RequireFromString("3.334")

// DeliveryFee returns the flat fee for a delivery method.
func DeliveryFee(m DeliveryMethod) decimal.Decimal {
	if m == DeliveryHome {
		return homeDeliveryFee
	}
	return decimal.Zero
}

// PaymentMethod is the discriminator for the payment form.
type PaymentMethod string

const (
	MethodCreditCard  PaymentMethod = "credit-card"
	MethodMTNMoMo     PaymentMethod = "mtn-mobile-money"
	MethodOrangeMoney PaymentMethod = "orange-money"
)

// ShippingData is a validated shipping form.
type ShippingData struct {
	FirstName      string         `json:"firstName"`
	LastName       string         `json:"lastName"`
	Address        string         `json:"address"`
	City           string         `json:"city"`
	Quarter        string         `json:"quarter"`
	Phone          string         `json:"phone"`
	Email          string         `json:"email"`
	DeliveryMethod DeliveryMethod `json:"deliveryMethod"`
}

// PaymentData is the payment form. Only the fields relevant to Method
// are required; see ValidatePayment.
type PaymentData struct {
	Method       PaymentMethod `json:"paymentMethod"`
	CardNumber   string        `json:"cardNumber,omitempty"`
	CardExpiry   string        `json:"cardExpiry,omitempty"`
	CardCVV      string        `json:"cardCVV,omitempty"`
	CardHolder   string        `json:"cardHolder,omitempty"`
	MobileNumber string        `json:"mobileNumber,omitempty"`
}

// Session is one visitor's checkout in progress. It lives in memory only
// and is discarded on abandon or process exit; there is no resume.
type Session struct {
	ID            string
	Step          Step
	Shipping      *ShippingData
	PaymentMethod PaymentMethod
	OrderID       int
}
