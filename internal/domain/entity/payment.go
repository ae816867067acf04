package entity

import "strings"

// PaymentMethod is how the customer chose to pay.
type PaymentMethod string

const (
	PaymentMethodCashOnDelivery PaymentMethod = "cod"
	PaymentMethodVirtualPOS     PaymentMethod = "virtual"
	PaymentMethodCard           PaymentMethod = "card"
	PaymentMethodStripe         PaymentMethod = "stripe"
	PaymentMethodRazorpay       PaymentMethod = "razorpay"
)

var paymentMethodLabels = map[PaymentMethod]string{
	PaymentMethodCashOnDelivery: "Kapıda Ödeme",
	PaymentMethodVirtualPOS:     "Sanal Ödeme",
	PaymentMethodCard:           "Kredi Kartı",
	PaymentMethodStripe:         "Stripe",
	PaymentMethodRazorpay:       "Razorpay",
}

// String returns the method code.
func (m PaymentMethod) String() string {
	return string(m)
}

// Label returns the localized display label.
func (m PaymentMethod) Label() string {
	if label, ok := paymentMethodLabels[m]; ok {
		return label
	}

	return string(m)
}

// IsValid checks if the method is known.
func (m PaymentMethod) IsValid() bool {
	_, ok := paymentMethodLabels[m]

	return ok
}

// ParsePaymentMethod accepts a method code or its localized label.
func ParsePaymentMethod(raw string) (PaymentMethod, bool) {
	trimmed := strings.TrimSpace(raw)
	code := PaymentMethod(strings.ToLower(trimmed))
	if code.IsValid() {
		return code, true
	}

	for method, label := range paymentMethodLabels {
		if strings.EqualFold(label, trimmed) {
			return method, true
		}
	}

	return "", false
}
