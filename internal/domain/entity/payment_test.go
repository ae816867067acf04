package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePaymentMethod(t *testing.T) {
	got, ok := ParsePaymentMethod("Kapıda Ödeme")
	assert.True(t, ok)
	assert.Equal(t, PaymentMethodCashOnDelivery, got)

	got, ok = ParsePaymentMethod("CARD")
	assert.True(t, ok)
	assert.Equal(t, PaymentMethodCard, got)

	_, ok = ParsePaymentMethod("bitcoin")
	assert.False(t, ok)
}
