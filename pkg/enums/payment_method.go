package enums

import "fmt"

// PaymentMethod describes how a customer intends to settle an order.
// It is a label carried through to the confirmation email; no charge is taken.
type PaymentMethod string

const (
	PaymentMethodJazzCash  PaymentMethod = "jazzcash"
	PaymentMethodEasyPaisa PaymentMethod = "easypaisa"
	PaymentMethodCard      PaymentMethod = "card"
	PaymentMethodCOD       PaymentMethod = "cod"
)

var validPaymentMethods = []PaymentMethod{
	PaymentMethodJazzCash,
	PaymentMethodEasyPaisa,
	PaymentMethodCard,
	PaymentMethodCOD,
}

var paymentMethodLabels = map[PaymentMethod]string{
	PaymentMethodJazzCash:  "JazzCash",
	PaymentMethodEasyPaisa: "EasyPaisa",
	PaymentMethodCard:      "Credit/Debit Card",
	PaymentMethodCOD:       "Cash on Delivery",
}

// String implements fmt.Stringer.
func (p PaymentMethod) String() string {
	return string(p)
}

// Label returns the customer-facing display text.
func (p PaymentMethod) Label() string {
	if label, ok := paymentMethodLabels[p]; ok {
		return label
	}
	return string(p)
}

// IsValid reports whether the value is a known PaymentMethod.
func (p PaymentMethod) IsValid() bool {
	for _, candidate := range validPaymentMethods {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePaymentMethod converts raw input into a PaymentMethod.
func ParsePaymentMethod(value string) (PaymentMethod, error) {
	for _, candidate := range validPaymentMethods {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid payment method %q", value)
}
