package service

import (
	"io"

	"storefront/internal/domain/entity"
)

// OrderReportExporter renders orders into a downloadable report.
type OrderReportExporter interface {
	// ContentType is the MIME type of the produced document.
	ContentType() string

	// FileExtension is appended to download file names, including the dot.
	FileExtension() string

	// WriteOrders renders orders into w.
	WriteOrders(w io.Writer, orders []*entity.Order) error
}
