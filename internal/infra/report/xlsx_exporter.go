// Package report renders admin order exports.
package report

import (
	"fmt"
	"io"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/tealeg/xlsx"
)

const (
	sheetName       = "Orders"
	timestampLayout = "2006-01-02 15:04:05"
)

//nolint:gochecknoglobals
var orderColumns = []string{
	"Order ID", "Placed At", "Customer", "Email", "Phone", "Address",
	"Items", "Item Count", "Amount", "Payment Method", "Paid", "Status",
}

type xlsxExporter struct{}

// NewXLSXExporter returns an exporter producing one spreadsheet row per order.
func NewXLSXExporter() service.OrderReportExporter {
	return &xlsxExporter{}
}

func (e *xlsxExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *xlsxExporter) FileExtension() string {
	return ".xlsx"
}

// WriteOrders writes a header row followed by the orders in the given order.
func (e *xlsxExporter) WriteOrders(w io.Writer, orders []*entity.Order) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return errors.Wrap(err, "failed to create sheet")
	}

	header := sheet.AddRow()
	for _, title := range orderColumns {
		header.AddCell().SetString(title)
	}

	for _, order := range orders {
		row := sheet.AddRow()
		addr := order.Address

		row.AddCell().SetString(order.ID.String())
		row.AddCell().SetString(order.CreatedAt.UTC().Format(timestampLayout))
		row.AddCell().SetString(strings.TrimSpace(addr.FirstName + " " + addr.LastName))
		row.AddCell().SetString(addr.Email)
		row.AddCell().SetString(addr.Phone)
		row.AddCell().SetString(formatAddress(addr))
		row.AddCell().SetString(formatItems(order.Items))
		row.AddCell().SetInt(order.ItemCount())
		amount, _ := order.Amount.Float64()
		row.AddCell().SetFloatWithFormat(amount, "#,##0.00")
		row.AddCell().SetString(order.PaymentMethod.Label())
		row.AddCell().SetBool(order.Payment)
		row.AddCell().SetString(order.Status.Label())
	}

	if err := file.Write(w); err != nil {
		return errors.Wrap(err, "failed to write workbook")
	}

	return nil
}

func formatAddress(addr entity.ShippingAddress) string {
	parts := make([]string, 0, 5)
	for _, part := range []string{addr.Street, addr.City, addr.State, addr.Zipcode, addr.Country} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, ", ")
}

func formatItems(items []entity.LineItem) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s (%s) x %d", item.Name, item.Size, item.Quantity))
	}

	return strings.Join(lines, "; ")
}
