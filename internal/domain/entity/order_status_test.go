package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	tests := []struct {
		raw    string
		want   OrderStatus
		wantOK bool
	}{
		{raw: "placed", want: OrderStatusPlaced, wantOK: true},
		{raw: "out-for-delivery", want: OrderStatusOutForDelivery, wantOK: true},
		{raw: "OUT_FOR_DELIVERY", want: OrderStatusOutForDelivery, wantOK: true},
		{raw: "Teslim Edildi", want: OrderStatusDelivered, wantOK: true},
		{raw: "Kargoya Verildi", want: OrderStatusShipped, wantOK: true},
		{raw: "cancelled", wantOK: false},
		{raw: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseOrderStatus(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, OrderStatusPlaced.CanTransitionTo(OrderStatusPacking))
	assert.True(t, OrderStatusPlaced.CanTransitionTo(OrderStatusDelivered), "skipping forward is allowed")
	assert.True(t, OrderStatusDelivered.CanTransitionTo(OrderStatusDelivered), "same status is a no-op")
	assert.False(t, OrderStatusShipped.CanTransitionTo(OrderStatusPacking))
	assert.False(t, OrderStatusDelivered.CanTransitionTo(OrderStatusPlaced))
	assert.False(t, OrderStatus("lost").CanTransitionTo(OrderStatusPlaced))
}

func TestOrderStatus_Label(t *testing.T) {
	assert.Equal(t, "Paketlemede", OrderStatusPacking.Label())
	assert.Equal(t, "unknown", OrderStatus("unknown").Label())
}
