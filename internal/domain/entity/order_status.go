package entity

import "strings"

// OrderStatus is a step of the fulfilment progression.
type OrderStatus string

const (
	OrderStatusPlaced         OrderStatus = "placed"
	OrderStatusPacking        OrderStatus = "packing"
	OrderStatusShipped        OrderStatus = "shipped"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
)

// orderStatusFlow lists statuses in fulfilment order.
var orderStatusFlow = []OrderStatus{
	OrderStatusPlaced,
	OrderStatusPacking,
	OrderStatusShipped,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
}

// Localized labels shown by the storefront and admin panel.
var orderStatusLabels = map[OrderStatus]string{
	OrderStatusPlaced:         "Sipariş Verildi",
	OrderStatusPacking:        "Paketlemede",
	OrderStatusShipped:        "Kargoya Verildi",
	OrderStatusOutForDelivery: "Teslimat için yolda",
	OrderStatusDelivered:      "Teslim Edildi",
}

// String returns the status code.
func (s OrderStatus) String() string {
	return string(s)
}

// Label returns the localized display label.
func (s OrderStatus) Label() string {
	if label, ok := orderStatusLabels[s]; ok {
		return label
	}

	return string(s)
}

// IsValid checks if the status is part of the progression.
func (s OrderStatus) IsValid() bool {
	return s.rank() >= 0
}

// CanTransitionTo allows staying put or moving forward, including skipping steps.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !s.IsValid() || !next.IsValid() {
		return false
	}

	return next.rank() >= s.rank()
}

// IsFinal reports whether no further transition is possible.
func (s OrderStatus) IsFinal() bool {
	return s == OrderStatusDelivered
}

func (s OrderStatus) rank() int {
	for i, status := range orderStatusFlow {
		if status == s {
			return i
		}
	}

	return -1
}

// OrderStatuses returns the progression in order.
func OrderStatuses() []OrderStatus {
	out := make([]OrderStatus, len(orderStatusFlow))
	copy(out, orderStatusFlow)

	return out
}

// ParseOrderStatus accepts a status code, its hyphenated form, or its localized label.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	trimmed := strings.TrimSpace(raw)
	code := OrderStatus(strings.ReplaceAll(strings.ToLower(trimmed), "-", "_"))
	if code.IsValid() {
		return code, true
	}

	for status, label := range orderStatusLabels {
		if strings.EqualFold(label, trimmed) {
			return status, true
		}
	}

	return "", false
}
