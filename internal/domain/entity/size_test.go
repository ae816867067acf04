package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSizeCatalog(t *testing.T) {
	catalog := DefaultSizeCatalog()
	labels := catalog.Labels()

	require.Len(t, labels, 73)
	assert.Equal(t, Size("19.0"), labels[0])
	assert.Equal(t, Size("19.5"), labels[1])
	assert.Equal(t, Size("55.0"), labels[len(labels)-1])
}

func TestSizeCatalog_Normalize(t *testing.T) {
	catalog := DefaultSizeCatalog()

	tests := []struct {
		raw    string
		want   Size
		wantOK bool
	}{
		{raw: "42", want: "42.0", wantOK: true},
		{raw: " 42.5 ", want: "42.5", wantOK: true},
		{raw: "42.50", want: "42.5", wantOK: true},
		{raw: "42.25", wantOK: false},
		{raw: "XL", wantOK: false},
		{raw: "", wantOK: false},
		{raw: "70", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := catalog.Normalize(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNewSizeCatalog(t *testing.T) {
	t.Run("letter sizes are upper-cased", func(t *testing.T) {
		catalog, err := NewSizeCatalog([]string{"s", "M", "l"})
		require.NoError(t, err)

		got, ok := catalog.Normalize("m")
		assert.True(t, ok)
		assert.Equal(t, Size("M"), got)
		assert.Equal(t, []Size{"S", "M", "L"}, catalog.Labels())
	})

	t.Run("duplicates are rejected", func(t *testing.T) {
		_, err := NewSizeCatalog([]string{"42", "42.0"})
		assert.Error(t, err)
	})

	t.Run("empty is rejected", func(t *testing.T) {
		_, err := NewSizeCatalog(nil)
		assert.Error(t, err)
	})
}

func TestSizeCatalog_Sort(t *testing.T) {
	catalog := DefaultSizeCatalog()
	sizes := []Size{"44.0", "unknown", "19.5", "42.0"}

	catalog.Sort(sizes)

	assert.Equal(t, []Size{"19.5", "42.0", "44.0", "unknown"}, sizes)
}
