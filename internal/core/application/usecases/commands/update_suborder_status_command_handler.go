package commands

import (
	"context"

	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/core/ports"
)

// UpdateSubOrderStatusCommandHandler drives the sub-order state machine.
// The domain decides legality of the transition; the handler persists the
// outcome and fires the realtime side effects after commit:
//
//   - every successful transition broadcasts orderStatusUpdated
//   - the owner's acceptance (pending to preparing) additionally offers the
//     sub-order to every courier currently online
type UpdateSubOrderStatusCommandHandler struct {
	uowFactory SubOrderUoWFactory
	directory  ports.Directory
	notifier   ports.Notifier
	pool       services.CourierPool
}

// NewUpdateSubOrderStatusCommandHandler creates a handler for status transitions.
func NewUpdateSubOrderStatusCommandHandler(
	uowFactory SubOrderUoWFactory,
	directory ports.Directory,
	notifier ports.Notifier,
) UpdateSubOrderStatusCommandHandler {
	return UpdateSubOrderStatusCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
		notifier:   notifier,
		pool:       services.NewCourierPool(),
	}
}

// Handle processes the transition command.
func (h UpdateSubOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateSubOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	subOrder, err := uow.SubOrderRepository().Get(ctx, cmd.SubOrderID())
	if err != nil {
		return err
	}

	if err = subOrder.ChangeStatus(cmd.Actor(), cmd.Target()); err != nil {
		return err
	}

	if err = uow.SubOrderRepository().Update(ctx, subOrder); err != nil {
		return err
	}

	parent, err := uow.OrderRepository().Get(ctx, subOrder.OrderID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Broadcast(ports.EventOrderStatusUpdated, statusPayload(subOrder))

	if cmd.Target() == order.SubOrderPreparing {
		// Offer failures are not surfaced: delivery is best-effort and the
		// re-offer job picks up sub-orders that stay unassigned.
		h.offerToPool(ctx, subOrder, parent.Address().String())
	}

	return nil
}

func (h UpdateSubOrderStatusCommandHandler) offerToPool(
	ctx context.Context,
	subOrder *order.SubOrder,
	customerAddress string,
) {
	shop, err := h.directory.GetShop(ctx, subOrder.ShopID())
	if err != nil {
		return
	}
	courierIDs, err := h.directory.ListCourierIDs(ctx)
	if err != nil {
		return
	}

	offers, err := h.pool.PlanOffers(subOrder, shop.Name, customerAddress, courierIDs)
	if err != nil {
		return
	}

	for _, offer := range offers {
		h.notifier.Notify(offer.CourierID, ports.EventNewOrderRequest, ports.NewOrderRequestPayload{
			SubOrderID:      offer.SubOrderID.String(),
			OrderID:         offer.OrderID.String(),
			ShopName:        offer.ShopName,
			Total:           offer.Total.Int64(),
			CustomerAddress: offer.CustomerAddress,
		})
	}
}

// statusPayload builds the broadcast payload for a persisted sub-order.
func statusPayload(subOrder *order.SubOrder) ports.OrderStatusUpdatedPayload {
	var deliveryBoy *string
	if subOrder.Courier() != nil {
		id := subOrder.Courier().String()
		deliveryBoy = &id
	}
	return ports.OrderStatusUpdatedPayload{
		OrderID:     subOrder.OrderID().String(),
		SubOrderID:  subOrder.ID().String(),
		Status:      subOrder.Status().String(),
		ShopID:      subOrder.ShopID().String(),
		DeliveryBoy: deliveryBoy,
	}
}
