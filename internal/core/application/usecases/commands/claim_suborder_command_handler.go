package commands

import (
	"context"

	"foodcourt/internal/core/ports"
)

// ClaimSubOrderCommandHandler arbitrates the first-claim race. The
// repository performs a single conditional update, so of two concurrent
// claims exactly one succeeds and the loser gets a conflict error.
//
// After a successful commit:
//
//   - orderStatusUpdated is broadcast with the new accepted status
//   - the shop owner gets a targeted orderAcceptedByDeliveryBoy event
//   - orderRequestAccepted is broadcast so other couriers withdraw the offer
type ClaimSubOrderCommandHandler struct {
	uowFactory SubOrderUoWFactory
	directory  ports.Directory
	notifier   ports.Notifier
}

// NewClaimSubOrderCommandHandler creates a handler for courier claims.
func NewClaimSubOrderCommandHandler(
	uowFactory SubOrderUoWFactory,
	directory ports.Directory,
	notifier ports.Notifier,
) ClaimSubOrderCommandHandler {
	return ClaimSubOrderCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
		notifier:   notifier,
	}
}

// Handle processes the claim command.
func (h ClaimSubOrderCommandHandler) Handle(ctx context.Context, cmd ClaimSubOrderCommand) error {
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

	subOrder, err := uow.SubOrderRepository().Claim(ctx, cmd.SubOrderID(), cmd.CourierID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Broadcast(ports.EventOrderStatusUpdated, statusPayload(subOrder))

	shopName := ""
	if shop, shopErr := h.directory.GetShop(ctx, subOrder.ShopID()); shopErr == nil {
		shopName = shop.Name
	}
	h.notifier.Notify(subOrder.ShopOwnerID(), ports.EventOrderAcceptedByBoy, ports.OrderAcceptedPayload{
		SubOrderID:  subOrder.ID().String(),
		OrderID:     subOrder.OrderID().String(),
		DeliveryBoy: cmd.CourierID().String(),
		ShopName:    shopName,
		Status:      subOrder.Status().String(),
	})

	h.notifier.Broadcast(ports.EventOrderRequestAccepted, ports.OrderRequestAcceptedPayload{
		SubOrderID: subOrder.ID().String(),
		AcceptedBy: cmd.CourierID().String(),
	})

	return nil
}
