package entity

import (
	"slices"
	"strconv"
	"strings"

	"storefront/internal/errors"
)

// Size is a canonical size label such as "42.0".
type Size string

// String returns the label.
func (s Size) String() string {
	return string(s)
}

const (
	defaultMinShoeSize  = 19.0
	defaultMaxShoeSize  = 55.0
	defaultShoeSizeStep = 0.5
)

// SizeCatalog is the closed set of size labels the store accepts.
// Numeric labels are normalized to one decimal place, so "42" and "42.0" are the same size.
type SizeCatalog struct {
	labels []Size
	index  map[Size]int
}

// NewSizeCatalog builds a catalog from the given labels, keeping their order.
func NewSizeCatalog(labels []string) (*SizeCatalog, error) {
	if len(labels) == 0 {
		return nil, errors.New("size catalog must not be empty")
	}

	catalog := &SizeCatalog{
		labels: make([]Size, 0, len(labels)),
		index:  make(map[Size]int, len(labels)),
	}
	for _, raw := range labels {
		size := canonicalSize(raw)
		if size == "" {
			return nil, errors.Errorf("invalid size label %q", raw)
		}
		if _, dup := catalog.index[size]; dup {
			return nil, errors.Errorf("duplicate size label %q", raw)
		}
		catalog.index[size] = len(catalog.labels)
		catalog.labels = append(catalog.labels, size)
	}

	return catalog, nil
}

// DefaultSizeCatalog returns shoe sizes 19.0 through 55.0 in half steps.
func DefaultSizeCatalog() *SizeCatalog {
	labels := make([]string, 0, int((defaultMaxShoeSize-defaultMinShoeSize)/defaultShoeSizeStep)+1)
	for v := defaultMinShoeSize; v <= defaultMaxShoeSize; v += defaultShoeSizeStep {
		labels = append(labels, strconv.FormatFloat(v, 'f', 1, 64))
	}

	catalog, _ := NewSizeCatalog(labels)

	return catalog
}

// Normalize maps raw input onto a catalog size.
func (c *SizeCatalog) Normalize(raw string) (Size, bool) {
	size := canonicalSize(raw)
	if _, ok := c.index[size]; !ok {
		return "", false
	}

	return size, true
}

// Contains reports whether size is part of the catalog.
func (c *SizeCatalog) Contains(size Size) bool {
	_, ok := c.index[size]

	return ok
}

// Labels returns the catalog in display order.
func (c *SizeCatalog) Labels() []Size {
	return slices.Clone(c.labels)
}

// Sort orders sizes by catalog position; unknown sizes go last.
func (c *SizeCatalog) Sort(sizes []Size) {
	slices.SortStableFunc(sizes, func(a, b Size) int {
		return c.position(a) - c.position(b)
	})
}

func (c *SizeCatalog) position(size Size) int {
	if pos, ok := c.index[size]; ok {
		return pos
	}

	return len(c.labels)
}

func canonicalSize(raw string) Size {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Size(strconv.FormatFloat(v, 'f', 1, 64))
	}

	return Size(strings.ToUpper(trimmed))
}
