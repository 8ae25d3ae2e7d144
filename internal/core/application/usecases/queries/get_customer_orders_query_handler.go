package queries

import (
	"context"
	"time"

	"foodcourt/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler serves a customer's order history with
// sub-order summaries, newest order first.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order
// history queries.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, customer_id, status, total_amount, total_quantity, note, created_at
		FROM orders
		WHERE customer_id = ?
		ORDER BY created_at DESC
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderView, 0)
	index := make(map[kernel.UUID]int)

	for rows.Next() {
		var (
			id, customerID uuid.UUID
			status, note   string
			totalAmount    int64
			totalQuantity  int
			createdAt      time.Time
		)
		if err = rows.Scan(&id, &customerID, &status, &totalAmount, &totalQuantity, &note, &createdAt); err != nil {
			return nil, err
		}

		view := OrderView{
			Status:        status,
			TotalAmount:   kernel.Money(totalAmount),
			TotalQuantity: totalQuantity,
			Note:          note,
			CreatedAt:     createdAt,
		}
		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}

		index[view.ID] = len(orders)
		orders = append(orders, view)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	orderIDs := make([]uuid.UUID, 0, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.ID.Bytes())
	}

	subRows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+subOrderColumns+`
		FROM sub_orders
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer subRows.Close()

	subOrders, err := scanSubOrders(subRows)
	if err != nil {
		return nil, err
	}
	if err = attachLineItems(ctx, h.db, subOrders); err != nil {
		return nil, err
	}

	for _, subOrder := range subOrders {
		if i, ok := index[subOrder.OrderID]; ok {
			orders[i].SubOrders = append(orders[i].SubOrders, subOrder)
		}
	}

	return orders, nil
}
