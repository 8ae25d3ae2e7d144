package queries

import (
	"context"
	"database/sql"
	"time"

	"foodcourt/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const subOrderColumns = `
	id, order_id, shop_id, status,
	subtotal, tax, delivery_fee, total,
	courier_id, note, created_at`

func scanSubOrders(rows *sql.Rows) ([]SubOrderView, error) {
	var views []SubOrderView
	for rows.Next() {
		var (
			id, orderID, shopID               uuid.UUID
			status, note                      string
			subtotal, tax, deliveryFee, total int64
			courierID                         *uuid.UUID
			createdAt                         time.Time
		)
		if err := rows.Scan(
			&id, &orderID, &shopID, &status,
			&subtotal, &tax, &deliveryFee, &total,
			&courierID, &note, &createdAt,
		); err != nil {
			return nil, err
		}

		view := SubOrderView{
			Status:      status,
			Subtotal:    kernel.Money(subtotal),
			Tax:         kernel.Money(tax),
			DeliveryFee: kernel.Money(deliveryFee),
			Total:       kernel.Money(total),
			Note:        note,
			CreatedAt:   createdAt,
		}

		var err error
		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if view.ShopID, err = kernel.UUIDFromBytes(shopID[:]); err != nil {
			return nil, err
		}
		if courierID != nil {
			deliveryBoy, boyErr := kernel.UUIDFromBytes((*courierID)[:])
			if boyErr != nil {
				return nil, boyErr
			}
			view.DeliveryBoy = &deliveryBoy
		}

		views = append(views, view)
	}
	return views, rows.Err()
}

// attachLineItems loads the line items for every view in one query and
// distributes them by sub-order.
func attachLineItems(ctx context.Context, db *gorm.DB, views []SubOrderView) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(views))
	index := make(map[kernel.UUID]int, len(views))
	for i, view := range views {
		ids = append(ids, view.ID.Bytes())
		index[view.ID] = i
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT sub_order_id, item_id, item_name, price_at_purchase, quantity, total
		FROM line_items
		WHERE sub_order_id IN ?
		ORDER BY sub_order_id, position
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			subOrderID, itemID uuid.UUID
			itemName           string
			price, total       int64
			quantity           int
		)
		if err = rows.Scan(&subOrderID, &itemID, &itemName, &price, &quantity, &total); err != nil {
			return err
		}

		ownerID, idErr := kernel.UUIDFromBytes(subOrderID[:])
		if idErr != nil {
			return idErr
		}
		catalogItemID, idErr := kernel.UUIDFromBytes(itemID[:])
		if idErr != nil {
			return idErr
		}

		i, ok := index[ownerID]
		if !ok {
			continue
		}
		views[i].Items = append(views[i].Items, LineItemView{
			ItemID:   catalogItemID,
			ItemName: itemName,
			Price:    kernel.Money(price),
			Quantity: quantity,
			Total:    kernel.Money(total),
		})
	}
	return rows.Err()
}
