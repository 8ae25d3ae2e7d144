package http

import (
	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func optionalNote(note string) *string {
	if note == "" {
		return nil
	}
	return &note
}

func lineItemResponse(view queries.LineItemView) servers.LineItem {
	return servers.LineItem{
		ItemId:   view.ItemID.Bytes(),
		ItemName: view.ItemName,
		Price:    int64(view.Price),
		Quantity: view.Quantity,
		Total:    int64(view.Total),
	}
}

func subOrderResponse(view queries.SubOrderView) servers.SubOrder {
	var deliveryBoy *openapi_types.UUID
	if view.DeliveryBoy != nil {
		id := view.DeliveryBoy.Bytes()
		deliveryBoy = &id
	}

	items := make([]servers.LineItem, len(view.Items))
	for i, item := range view.Items {
		items[i] = lineItemResponse(item)
	}

	return servers.SubOrder{
		Id:          view.ID.Bytes(),
		OrderId:     view.OrderID.Bytes(),
		ShopId:      view.ShopID.Bytes(),
		Status:      view.Status,
		Subtotal:    int64(view.Subtotal),
		Tax:         int64(view.Tax),
		DeliveryFee: int64(view.DeliveryFee),
		Total:       int64(view.Total),
		DeliveryBoy: deliveryBoy,
		Note:        optionalNote(view.Note),
		Items:       items,
		CreatedAt:   view.CreatedAt,
	}
}

func subOrderResponses(views []queries.SubOrderView) []servers.SubOrder {
	responses := make([]servers.SubOrder, len(views))
	for i, view := range views {
		responses[i] = subOrderResponse(view)
	}
	return responses
}

func orderResponse(view queries.OrderView) servers.Order {
	return servers.Order{
		Id:            view.ID.Bytes(),
		CustomerId:    view.CustomerID.Bytes(),
		Status:        view.Status,
		TotalAmount:   int64(view.TotalAmount),
		TotalQuantity: view.TotalQuantity,
		Note:          optionalNote(view.Note),
		SubOrders:     subOrderResponses(view.SubOrders),
		CreatedAt:     view.CreatedAt,
	}
}
