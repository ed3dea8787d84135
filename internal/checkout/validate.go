package checkout

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	phonePattern = regexp.MustCompile(`^\+237[6-9][0-9]{8}$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidateShipping checks the shipping form and returns field-keyed error
// messages. An empty map means the form is valid.
func ValidateShipping(d ShippingData) map[string]string {
	errs := map[string]string{}

	if utf8.RuneCountInString(strings.TrimSpace(d.FirstName)) < 2 {
		errs["firstName"] = "first name must be at least 2 characters"
	}
	if utf8.RuneCountInString(strings.TrimSpace(d.LastName)) < 2 {
		errs["lastName"] = "last name must be at least 2 characters"
	}
	if utf8.RuneCountInString(strings.TrimSpace(d.Address)) < 5 {
		errs["address"] = "address must be at least 5 characters"
	}
	if strings.TrimSpace(d.City) == "" {
		errs["city"] = "city is required"
	}
	if strings.TrimSpace(d.Quarter) == "" {
		errs["quarter"] = "quarter is required"
	}
	if !phonePattern.MatchString(d.Phone) {
		errs["phone"] = "phone must match +237 followed by 9 digits starting with 6-9"
	}
	if !emailPattern.MatchString(d.Email) {
		errs["email"] = "email is invalid"
	}
	switch d.DeliveryMethod {
	case DeliveryHome, DeliveryPickup:
	default:
		errs["deliveryMethod"] = "delivery method must be home-delivery or warehouse-pickup"
	}

	return errs
}

// ValidatePayment checks the payment form. Only the fields for the
// selected method are required; the others are ignored.
func ValidatePayment(d PaymentData) map[string]string {
	errs := map[string]string{}

	switch d.Method {
	case MethodCreditCard:
		if strings.TrimSpace(d.CardNumber) == "" {
			errs["cardNumber"] = "card number is required"
		}
		if strings.TrimSpace(d.CardExpiry) == "" {
			errs["cardExpiry"] = "expiry is required"
		}
		if strings.TrimSpace(d.CardCVV) == "" {
			errs["cardCVV"] = "CVV is required"
		}
		if strings.TrimSpace(d.CardHolder) == "" {
			errs["cardHolder"] = "cardholder name is required"
		}
	case MethodMTNMoMo, MethodOrangeMoney:
		if strings.TrimSpace(d.MobileNumber) == "" {
			errs["mobileNumber"] = "mobile number is required"
		}
	default:
		errs["paymentMethod"] = "payment method must be credit-card, mtn-mobile-money or orange-money"
	}

	return errs
}
