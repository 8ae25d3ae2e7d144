// Package directoryrepo is the read-only view of the identity tables:
// shops and participants. Accounts are managed by an external identity
// service; the core only looks them up.
package directoryrepo

import (
	"foodcourt/internal/core/domain/model/catalog"
	"foodcourt/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ShopDTO represents the database row for a shop.
type ShopDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID uuid.UUID `gorm:"type:uuid;index"`
	Name    string
}

// TableName overrides GORM's default naming to use "shops".
func (ShopDTO) TableName() string {
	return "shops"
}

// UserDTO represents the database row for a participant.
type UserDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
	Role string `gorm:"index"`
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

func shopToDomain(dto ShopDTO) (catalog.Shop, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return catalog.Shop{}, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return catalog.Shop{}, err
	}
	return catalog.Shop{ID: id, OwnerID: ownerID, Name: dto.Name}, nil
}
