package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxProductImages bounds the gallery of a product.
const MaxProductImages = 4

// Stock maps each size to the units left. Quantities are never negative.
type Stock map[Size]int

// Available returns the units recorded for size and whether the size is stocked at all.
func (s Stock) Available(size Size) (int, bool) {
	qty, ok := s[size]

	return qty, ok
}

// Total sums the units across sizes.
func (s Stock) Total() int {
	total := 0
	for _, qty := range s {
		total += qty
	}

	return total
}

// Product is a catalog entry with per-size stock.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Brand       string
	Price       decimal.Decimal
	Category    string
	SubCategory string
	Color       string
	Sizes       []Size
	Images      []string
	Bestseller  bool
	NewSeason   bool
	Stock       Stock
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasSize reports whether the product is offered in size.
func (p *Product) HasSize(size Size) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}

	return false
}

// FirstImage is used for order snapshots.
func (p *Product) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}

	return p.Images[0]
}

// ProductFilter narrows catalog listings. Zero values mean "any".
type ProductFilter struct {
	Category    string
	SubCategory string
	Bestseller  *bool
	NewSeason   *bool
	Search      string
	Limit       int
	Offset      int
}
