// Package suborderrepo persists sub-order aggregates with their line items
// and implements the atomic first-claim assignment.
package suborderrepo

import (
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// SubOrderDTO represents the database row for a sub-order.
type SubOrderDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID  `gorm:"type:uuid;index"`
	ShopID      uuid.UUID  `gorm:"type:uuid;index"`
	ShopOwnerID uuid.UUID  `gorm:"type:uuid;index"`
	CourierID   *uuid.UUID `gorm:"type:uuid;index"`
	Status      string     `gorm:"index"`
	Subtotal    int64
	Tax         int64
	DeliveryFee int64
	Total       int64
	Note        string
	Position    int
	Items       []LineItemDTO `gorm:"foreignKey:SubOrderID;references:ID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides GORM's default naming to use "sub_orders".
func (SubOrderDTO) TableName() string {
	return "sub_orders"
}

// LineItemDTO is the immutable snapshot of one cart line within a sub-order.
type LineItemDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	SubOrderID      uuid.UUID `gorm:"type:uuid;index"`
	ItemID          uuid.UUID `gorm:"type:uuid"`
	ItemName        string
	PriceAtPurchase int64
	Quantity        int
	Total           int64
	Position        int
}

// TableName overrides GORM's default naming to use "line_items".
func (LineItemDTO) TableName() string {
	return "line_items"
}

func fromDomain(aggregate *order.SubOrder, position int) SubOrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	items := aggregate.Items()
	itemDTOs := make([]LineItemDTO, 0, len(items))
	for i, item := range items {
		itemDTOs = append(itemDTOs, LineItemDTO{
			ID:              item.ID().Bytes(),
			SubOrderID:      aggregate.ID().Bytes(),
			ItemID:          item.ItemID().Bytes(),
			ItemName:        item.ItemName(),
			PriceAtPurchase: item.PriceAtPurchase().Int64(),
			Quantity:        item.Quantity(),
			Total:           item.Total().Int64(),
			Position:        i,
		})
	}

	return SubOrderDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		ShopID:      aggregate.ShopID().Bytes(),
		ShopOwnerID: aggregate.ShopOwnerID().Bytes(),
		CourierID:   courierID,
		Status:      aggregate.Status().String(),
		Subtotal:    aggregate.Subtotal().Int64(),
		Tax:         aggregate.Tax().Int64(),
		DeliveryFee: aggregate.DeliveryFee().Int64(),
		Total:       aggregate.Total().Int64(),
		Note:        aggregate.Note(),
		Position:    position,
		Items:       itemDTOs,
	}
}

func toDomain(dto SubOrderDTO) (*order.SubOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	shopID, err := kernel.UUIDFromBytes(dto.ShopID[:])
	if err != nil {
		return nil, err
	}
	shopOwnerID, err := kernel.UUIDFromBytes(dto.ShopOwnerID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	status, err := order.ParseSubOrderStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := lineItemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreSubOrder(
		id, orderID, shopID, shopOwnerID,
		kernel.Money(dto.Subtotal), kernel.Money(dto.Tax),
		kernel.Money(dto.DeliveryFee), kernel.Money(dto.Total),
		status, courierID, items, dto.Note)
}

func lineItemToDomain(dto LineItemDTO) (order.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.LineItem{}, err
	}
	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return order.LineItem{}, err
	}

	return order.RestoreLineItem(
		id, itemID, dto.ItemName,
		kernel.Money(dto.PriceAtPurchase), dto.Quantity, kernel.Money(dto.Total))
}
