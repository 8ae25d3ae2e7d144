package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetShopOrdersQueryHandler serves a shop owner's sub-orders with their
// line items, so the kitchen sees what to prepare without extra lookups.
type GetShopOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetShopOrdersQueryHandler creates a handler for shop work queue queries.
func NewGetShopOrdersQueryHandler(db *gorm.DB) GetShopOrdersQueryHandler {
	return GetShopOrdersQueryHandler{db: db}
}

// Handle executes the query.
func (h GetShopOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetShopOrdersQuery,
) ([]SubOrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+subOrderColumns+`
		FROM sub_orders
		WHERE shop_owner_id = ?
		ORDER BY created_at DESC
	`, query.OwnerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views, err := scanSubOrders(rows)
	if err != nil {
		return nil, err
	}

	if err = attachLineItems(ctx, h.db, views); err != nil {
		return nil, err
	}
	return views, nil
}
