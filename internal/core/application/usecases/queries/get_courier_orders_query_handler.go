package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCourierOrdersQueryHandler serves a courier's assigned sub-orders.
type GetCourierOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierOrdersQueryHandler creates a handler for courier assignment queries.
func NewGetCourierOrdersQueryHandler(db *gorm.DB) GetCourierOrdersQueryHandler {
	return GetCourierOrdersQueryHandler{db: db}
}

// Handle executes the query.
func (h GetCourierOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCourierOrdersQuery,
) ([]SubOrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+subOrderColumns+`
		FROM sub_orders
		WHERE courier_id = ?
		ORDER BY created_at DESC
	`, query.CourierID().Bytes()).Rows()
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
