package main

import (
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportOrdersFlags_Filter(t *testing.T) {
	flags := exportOrdersFlags{
		status: "shipped",
		from:   "2026-01-01",
		to:     "2026-01-31",
		search: "  ada ",
		paid:   "Pending",
		limit:  20,
	}

	filter, err := flags.filter()
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusShipped, filter.Status)
	require.NotNil(t, filter.Paid)
	assert.False(t, *filter.Paid)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), *filter.From)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond), *filter.To)
	assert.Equal(t, "ada", filter.Search)
	assert.Equal(t, 20, filter.Limit)
}

func TestExportOrdersFlags_FilterRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		flags exportOrdersFlags
	}{
		{name: "unknown status", flags: exportOrdersFlags{status: "lost"}},
		{name: "bad payment", flags: exportOrdersFlags{paid: "maybe"}},
		{name: "bad from", flags: exportOrdersFlags{from: "01/02/2026"}},
		{name: "bad to", flags: exportOrdersFlags{to: "yesterday"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.flags.filter()
			assert.Error(t, err)
		})
	}
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"migrate", "export-orders"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}
