// Package catalogrepo reads catalog item snapshots and applies stock
// decrements. Catalog management itself (creating shops and items) belongs
// to an external service; this repository only consumes the tables.
package catalogrepo

import (
	"foodcourt/internal/core/domain/model/catalog"
	"foodcourt/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ItemDTO represents the database row for a catalog item.
type ItemDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShopID uuid.UUID `gorm:"type:uuid;index"`
	Name   string
	Price  int64
	Stock  int
}

// TableName overrides GORM's default naming to use "catalog_items".
func (ItemDTO) TableName() string {
	return "catalog_items"
}

func toDomain(dto ItemDTO) (*catalog.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	shopID, err := kernel.UUIDFromBytes(dto.ShopID[:])
	if err != nil {
		return nil, err
	}
	return catalog.NewItem(id, shopID, dto.Name, kernel.Money(dto.Price), dto.Stock)
}
