package impl

import (
	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// NewSizeCatalog builds the accepted size enumeration from catalog.sizes,
// falling back to the default shoe range.
func NewSizeCatalog(cfg *config.Config) (*entity.SizeCatalog, error) {
	if cfg == nil || cfg.Catalog == nil || len(cfg.Catalog.Sizes) == 0 {
		return entity.DefaultSizeCatalog(), nil
	}

	catalog, err := entity.NewSizeCatalog(cfg.Catalog.Sizes)
	if err != nil {
		return nil, errors.Wrap(err, "invalid catalog.sizes")
	}

	return catalog, nil
}
