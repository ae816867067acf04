package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for order tracking QR codes.
type QRCodeService interface {
	// GenerateOrderQR renders a PNG QR code pointing at the order's tracking page.
	GenerateOrderQR(orderID uuid.UUID) ([]byte, error)

	// ParseOrderQR extracts the order ID from scanned QR content.
	ParseOrderQR(qrData string) (uuid.UUID, error)
}
