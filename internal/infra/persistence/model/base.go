// Package model holds the GORM persistence structs. They are mapped to and
// from domain entities by the postgres repositories and never leave that layer.
package model

import (
	"github.com/google/uuid"
)

// assignID fills an empty primary key so rows can be inserted without a database-side UUID extension.
func assignID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

// All lists every model in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&AddressModel{},
		&ProductModel{},
		&ProductStockModel{},
		&CartItemModel{},
		&OrderModel{},
		&OrderItemModel{},
		&OrderEventModel{},
	}
}
