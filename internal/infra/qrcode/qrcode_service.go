package qrcode

import (
	"encoding/json"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize  = 256
	qrTypeOrder  = "order"
	trackingPath = "/"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData is the payload encoded when no tracking page is configured.
type QRCodeData struct {
	OrderID string `json:"order_id"`
	Type    string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance. With a base URL the
// code opens <baseURL>/<orderID>; otherwise it carries a JSON payload.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// NewFromConfig builds the service from the qrcode config section.
func NewFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M", "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// GenerateOrderQR renders the order's tracking QR code as PNG.
func (s *qrcodeService) GenerateOrderQR(orderID uuid.UUID) ([]byte, error) {
	content, err := s.content(orderID)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseOrderQR accepts either payload form and returns the order id.
func (s *qrcodeService) ParseOrderQR(qrData string) (uuid.UUID, error) {
	qrData = strings.TrimSpace(qrData)

	if strings.HasPrefix(qrData, "{") {
		var data QRCodeData
		if err := json.Unmarshal([]byte(qrData), &data); err != nil {
			return uuid.Nil, errors.Wrap(err, "failed to unmarshal QR code data")
		}
		if data.Type != qrTypeOrder {
			return uuid.Nil, errors.Errorf("invalid QR code type: %s", data.Type)
		}

		return parseOrderID(data.OrderID)
	}

	if s.baseURL == "" {
		return uuid.Nil, errors.New("QR code is not an order payload")
	}

	rest, ok := strings.CutPrefix(qrData, s.baseURL+trackingPath)
	if !ok {
		return uuid.Nil, errors.New("QR code does not point at this storefront")
	}

	return parseOrderID(rest)
}

func (s *qrcodeService) content(orderID uuid.UUID) (string, error) {
	if s.baseURL != "" {
		return s.baseURL + trackingPath + orderID.String(), nil
	}

	jsonData, err := json.Marshal(QRCodeData{OrderID: orderID.String(), Type: qrTypeOrder})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal QR code data")
	}

	return string(jsonData), nil
}

func parseOrderID(raw string) (uuid.UUID, error) {
	orderID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse order ID")
	}

	return orderID, nil
}
