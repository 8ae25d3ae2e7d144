package catalogrepo

import (
	"context"

	"foodcourt/internal/core/domain/model/catalog"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCatalogRepository implements ports.CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// FindItemsByIDs resolves catalog items in one batch. Missing items are
// absent from the result.
func (r *GormCatalogRepository) FindItemsByIDs(ctx context.Context, ids []kernel.UUID) ([]*catalog.Item, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	items := make([]*catalog.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// DecrementStock subtracts quantity from an item's stock. In conditional
// mode the WHERE clause refuses to take the stock negative, so concurrent
// placements of the same item cannot oversell; zero rows affected on an
// existing item means the stock ran out and is reported as a conflict.
func (r *GormCatalogRepository) DecrementStock(ctx context.Context, itemID kernel.UUID, quantity int, conditional bool) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, 10000)
	}

	query := r.db.WithContext(ctx).Model(&ItemDTO{}).Where("id = ?", itemID.Bytes())
	if conditional {
		query = query.Where("stock >= ?", quantity)
	}

	result := query.Update("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		if !conditional {
			return errs.NewObjectNotFoundError("itemId", itemID.String())
		}
		var count int64
		if err := r.db.WithContext(ctx).Model(&ItemDTO{}).
			Where("id = ?", itemID.Bytes()).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("itemId", itemID.String())
		}
		return errs.NewConflictError("stock", "insufficient")
	}

	return nil
}
