package ports

import (
	"foodcourt/internal/core/domain/model/kernel"
)

// Event names understood by connected clients. The wire vocabulary calls
// the courier a delivery boy and is kept as-is for client compatibility.
const (
	EventOrderStatusUpdated   = "orderStatusUpdated"
	EventNewShopOrder         = "newShopOrder"
	EventNewOrderRequest      = "newOrderRequest"
	EventOrderAcceptedByBoy   = "orderAcceptedByDeliveryBoy"
	EventOrderRequestAccepted = "orderRequestAccepted"
)

// OrderStatusUpdatedPayload is broadcast on every successful status
// transition so customer, owner and couriers can all react to it.
type OrderStatusUpdatedPayload struct {
	OrderID     string  `json:"orderId"`
	SubOrderID  string  `json:"subOrderId"`
	Status      string  `json:"status"`
	ShopID      string  `json:"shopId"`
	DeliveryBoy *string `json:"deliveryBoy"`
}

// NewShopOrderPayload is targeted to a shop owner when a placement creates
// a sub-order for their shop.
type NewShopOrderPayload struct {
	SubOrderID string `json:"subOrderId"`
	OrderID    string `json:"orderId"`
	Total      int64  `json:"total"`
	Status     string `json:"status"`
}

// NewOrderRequestPayload is targeted to each online courier when a
// sub-order becomes offerable.
type NewOrderRequestPayload struct {
	SubOrderID      string `json:"subOrderId"`
	OrderID         string `json:"orderId"`
	ShopName        string `json:"shopName"`
	Total           int64  `json:"total"`
	CustomerAddress string `json:"customerAddress"`
}

// OrderAcceptedPayload is targeted to the shop owner when a courier wins
// the claim.
type OrderAcceptedPayload struct {
	SubOrderID  string `json:"subOrderId"`
	OrderID     string `json:"orderId"`
	DeliveryBoy string `json:"deliveryBoy"`
	ShopName    string `json:"shopName"`
	Status      string `json:"status"`
}

// OrderRequestAcceptedPayload is broadcast after a successful claim so the
// remaining couriers withdraw the offer.
type OrderRequestAcceptedPayload struct {
	SubOrderID string `json:"subOrderId"`
	AcceptedBy string `json:"acceptedBy"`
}

// Notifier is the realtime dispatch contract. Delivery is best-effort and
// at-most-once: events to absent participants are dropped, and no failure
// ever propagates to the caller of a state transition.
type Notifier interface {
	// Notify delivers an event to one participant if currently present.
	Notify(participantID kernel.UUID, eventName string, payload any)

	// Broadcast delivers an event to every connected participant.
	Broadcast(eventName string, payload any)
}
