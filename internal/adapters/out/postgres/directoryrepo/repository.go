package directoryrepo

import (
	"context"
	"errors"

	"foodcourt/internal/core/domain/model/catalog"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDirectory implements ports.Directory using GORM.
type GormDirectory struct {
	db *gorm.DB
}

// NewGormDirectory creates a new GORM directory.
func NewGormDirectory(db *gorm.DB) *GormDirectory {
	return &GormDirectory{db: db}
}

// GetShop retrieves a shop record by its identifier.
func (r *GormDirectory) GetShop(ctx context.Context, id kernel.UUID) (catalog.Shop, error) {
	if err := id.Validate(); err != nil {
		return catalog.Shop{}, err
	}

	var dto ShopDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Shop{}, errs.NewObjectNotFoundError("shop", id.String())
		}
		return catalog.Shop{}, err
	}

	return shopToDomain(dto)
}

// GetShopsByIDs resolves shop records in one batch, keyed by shop id.
func (r *GormDirectory) GetShopsByIDs(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]catalog.Shop, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []ShopDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	shops := make(map[kernel.UUID]catalog.Shop, len(dtos))
	for _, dto := range dtos {
		shop, err := shopToDomain(dto)
		if err != nil {
			return nil, err
		}
		shops[shop.ID] = shop
	}
	return shops, nil
}

// ListCourierIDs enumerates every participant with the courier role.
func (r *GormDirectory) ListCourierIDs(ctx context.Context) ([]kernel.UUID, error) {
	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT id
		FROM users
		WHERE role = ?
		ORDER BY id
	`, string(order.RoleCourier)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []kernel.UUID
	for rows.Next() {
		var raw uuid.UUID
		if err = rows.Scan(&raw); err != nil {
			return nil, err
		}
		id, idErr := kernel.UUIDFromBytes(raw[:])
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
