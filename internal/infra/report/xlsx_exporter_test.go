package report

import (
	"bytes"
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
)

func TestXLSXExporter_WriteOrders(t *testing.T) {
	order := &entity.Order{
		ID: uuid.New(),
		Items: []entity.LineItem{
			{Name: "Runner", Size: "42.0", Quantity: 2, Price: decimal.RequireFromString("100")},
			{Name: "Trail", Size: "43.5", Quantity: 1, Price: decimal.RequireFromString("50")},
		},
		Address: entity.ShippingAddress{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Street:    "1 Analytical St",
			City:      "London",
			Country:   "UK",
		},
		Amount:        decimal.RequireFromString("250.00"),
		PaymentMethod: entity.PaymentMethodCashOnDelivery,
		Payment:       true,
		Status:        entity.OrderStatusShipped,
		CreatedAt:     time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC),
	}

	exporter := NewXLSXExporter()
	assert.Equal(t, ".xlsx", exporter.FileExtension())
	assert.Contains(t, exporter.ContentType(), "spreadsheetml")

	var buf bytes.Buffer
	require.NoError(t, exporter.WriteOrders(&buf, []*entity.Order{order}))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	assert.Equal(t, "Orders", sheet.Name)
	require.Len(t, sheet.Rows, 2)

	header := sheet.Rows[0].Cells
	assert.Equal(t, "Order ID", header[0].Value)
	assert.Equal(t, "Status", header[len(header)-1].Value)

	row := sheet.Rows[1].Cells
	assert.Equal(t, order.ID.String(), row[0].Value)
	assert.Equal(t, "2026-03-04 10:30:00", row[1].Value)
	assert.Equal(t, "Ada Lovelace", row[2].Value)
	assert.Equal(t, "1 Analytical St, London, UK", row[5].Value)
	assert.Equal(t, "Runner (42.0) x 2; Trail (43.5) x 1", row[6].Value)
	assert.Equal(t, "3", row[7].Value)
	assert.Equal(t, entity.OrderStatusShipped.Label(), row[11].Value)
}

func TestXLSXExporter_EmptyExportHasHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewXLSXExporter().WriteOrders(&buf, nil))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	assert.Len(t, file.Sheets[0].Rows, 1)
}
