package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler serves one order with full detail.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. An order that exists but belongs to another
// customer is reported as not found, never as forbidden, so the response
// does not confirm the order's existence.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, customer_id, status, total_amount, total_quantity, note, created_at
		FROM orders
		WHERE id = ? AND customer_id = ?
	`, query.OrderID().Bytes(), query.CustomerID().Bytes()).Row()

	var (
		id, customerID uuid.UUID
		status, note   string
		totalAmount    int64
		totalQuantity  int
		createdAt      time.Time
	)
	err := row.Scan(&id, &customerID, &status, &totalAmount, &totalQuantity, &note, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return OrderView{}, err
	}

	view := OrderView{
		Status:        status,
		TotalAmount:   kernel.Money(totalAmount),
		TotalQuantity: totalQuantity,
		Note:          note,
		CreatedAt:     createdAt,
	}
	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderView{}, err
	}
	if view.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return OrderView{}, err
	}

	subRows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+subOrderColumns+`
		FROM sub_orders
		WHERE order_id = ?
		ORDER BY position
	`, view.ID.Bytes()).Rows()
	if err != nil {
		return OrderView{}, err
	}
	defer subRows.Close()

	view.SubOrders, err = scanSubOrders(subRows)
	if err != nil {
		return OrderView{}, err
	}

	if err = attachLineItems(ctx, h.db, view.SubOrders); err != nil {
		return OrderView{}, err
	}

	return view, nil
}
