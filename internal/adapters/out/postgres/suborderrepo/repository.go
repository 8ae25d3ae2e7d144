package suborderrepo

import (
	"context"
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSubOrderRepository implements ports.SubOrderRepository using GORM.
type GormSubOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSubOrderRepository creates a new GORM sub-order repository.
func NewGormSubOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormSubOrderRepository {
	return &GormSubOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new sub-order and its line items. The position within the
// parent order is the number of sub-orders already persisted for it, which
// preserves placement order because placement writes sequentially in one
// transaction.
func (r *GormSubOrderRepository) Add(ctx context.Context, aggregate *order.SubOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	var position int64
	if err := r.db.WithContext(ctx).Model(&SubOrderDTO{}).
		Where("order_id = ?", aggregate.OrderID().Bytes()).
		Count(&position).Error; err != nil {
		return err
	}

	dto := fromDomain(aggregate, int(position))
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists status and courier changes. Line items are immutable and
// never rewritten.
func (r *GormSubOrderRepository) Update(ctx context.Context, aggregate *order.SubOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	updates := map[string]any{
		"status": aggregate.Status().String(),
	}
	if courier := aggregate.Courier(); courier != nil {
		updates["courier_id"] = courier.Bytes()
	}

	result := r.db.WithContext(ctx).Model(&SubOrderDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("subOrder", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a sub-order with its line items.
func (r *GormSubOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.SubOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SubOrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("line_items.position") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("subOrder", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Claim performs the first-claim compare-and-set. The conditional UPDATE is
// the arbiter: of two concurrent claims only one matches the WHERE clause,
// the other sees zero rows affected and gets a conflict.
func (r *GormSubOrderRepository) Claim(ctx context.Context, id, courierID kernel.UUID) (*order.SubOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	result := r.db.WithContext(ctx).Model(&SubOrderDTO{}).
		Where("id = ? AND courier_id IS NULL AND status = ?",
			id.Bytes(), order.SubOrderPreparing.String()).
		Updates(map[string]any{
			"courier_id": courierID.Bytes(),
			"status":     order.SubOrderAccepted.String(),
		})
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		subOrder, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		return nil, errs.NewConflictError("subOrder", subOrder.Status().String())
	}

	subOrder, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(subOrder.ID(), subOrder)
	return subOrder, nil
}

// GetAllUnassigned retrieves sub-orders that are preparing with no courier,
// oldest first.
func (r *GormSubOrderRepository) GetAllUnassigned(ctx context.Context) ([]*order.SubOrder, error) {
	var dtos []SubOrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("line_items.position") }).
		Where("courier_id IS NULL AND status = ?", order.SubOrderPreparing.String()).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	subOrders := make([]*order.SubOrder, 0, len(dtos))
	for _, dto := range dtos {
		subOrder, soErr := toDomain(dto)
		if soErr != nil {
			return nil, soErr
		}
		subOrders = append(subOrders, subOrder)
	}
	return subOrders, nil
}
