package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validShipping() ShippingData {
	return ShippingData{
		FirstName:      "Amina",
		LastName:       "Ngassa",
		Address:        "12 Rue Joffre",
		City:           "douala",
		Quarter:        "akwa",
		Phone:          "+237671234567",
		Email:          "amina@example.com",
		DeliveryMethod: DeliveryHome,
	}
}

func TestValidateShipping_AcceptsValidForm(t *testing.T) {
	assert.Empty(t, ValidateShipping(validShipping()))
}

func TestValidateShipping_FieldErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ShippingData)
		field  string
	}{
		{"short first name", func(d *ShippingData) { d.FirstName = "A" }, "firstName"},
		{"short last name", func(d *ShippingData) { d.LastName = " b " }, "lastName"},
		{"short address", func(d *ShippingData) { d.Address = "Rue" }, "address"},
		{"missing city", func(d *ShippingData) { d.City = "" }, "city"},
		{"missing quarter", func(d *ShippingData) { d.Quarter = "  " }, "quarter"},
		{"phone wrong prefix", func(d *ShippingData) { d.Phone = "+236671234567" }, "phone"},
		{"phone bad leading digit", func(d *ShippingData) { d.Phone = "+237571234567" }, "phone"},
		{"phone too short", func(d *ShippingData) { d.Phone = "+23767123456" }, "phone"},
		{"bad email", func(d *ShippingData) { d.Email = "not-an-email" }, "email"},
		{"bad delivery method", func(d *ShippingData) { d.DeliveryMethod = "drone" }, "deliveryMethod"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := validShipping()
			tc.mutate(&d)
			errs := ValidateShipping(d)
			assert.Contains(t, errs, tc.field)
		})
	}
}

func TestValidatePayment_ConditionalByMethod(t *testing.T) {
	// credit card requires all four card fields
	errs := ValidatePayment(PaymentData{Method: MethodCreditCard})
	assert.Contains(t, errs, "cardNumber")
	assert.Contains(t, errs, "cardExpiry")
	assert.Contains(t, errs, "cardCVV")
	assert.Contains(t, errs, "cardHolder")
	assert.NotContains(t, errs, "mobileNumber")

	errs = ValidatePayment(PaymentData{
		Method:     MethodCreditCard,
		CardNumber: "4111111111111111",
		CardExpiry: "12/27",
		CardCVV:    "123",
		CardHolder: "Amina Ngassa",
	})
	assert.Empty(t, errs)

	// mobile money requires only the mobile number
	for _, m := range []PaymentMethod{MethodMTNMoMo, MethodOrangeMoney} {
		errs = ValidatePayment(PaymentData{Method: m})
		assert.Contains(t, errs, "mobileNumber")
		assert.NotContains(t, errs, "cardNumber")

		errs = ValidatePayment(PaymentData{Method: m, MobileNumber: "+237671234567"})
		assert.Empty(t, errs)
	}

	errs = ValidatePayment(PaymentData{Method: "barter"})
	assert.Contains(t, errs, "paymentMethod")
}
