package commands

import (
	"context"
	"errors"

	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/core/ports"
)

var (
	// ErrNoUnassignedSubOrders reports an empty sweep. Expected most of the
	// time; callers should not treat it as a failure.
	ErrNoUnassignedSubOrders = errors.New("no unassigned sub-orders found")

	// ErrNoCouriersOnline reports that nobody is available to offer to.
	ErrNoCouriersOnline = errors.New("no couriers online")
)

// ReOfferSubOrdersCommandHandler re-offers every unassigned preparing
// sub-order to the online couriers. Offers are advisory: the claim operation
// still arbitrates, so offering the same sub-order twice, or to a courier
// who already saw it, is harmless.
//
// Example:
//
//	handler := NewReOfferSubOrdersCommandHandler(uowFactory, directory, notifier)
//	cmd := NewReOfferSubOrdersCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoUnassignedSubOrders):
//	    log.Println("Nothing waiting for a courier")
//	case errors.Is(err, ErrNoCouriersOnline):
//	    log.Println("No couriers to offer to")
//	case err != nil:
//	    log.Printf("Re-offer sweep failed: %v", err)
//	}
type ReOfferSubOrdersCommandHandler struct {
	uowFactory SubOrderUoWFactory
	directory  ports.Directory
	notifier   ports.Notifier
	pool       services.CourierPool
}

// NewReOfferSubOrdersCommandHandler creates a handler for re-offer sweeps.
func NewReOfferSubOrdersCommandHandler(
	uowFactory SubOrderUoWFactory,
	directory ports.Directory,
	notifier ports.Notifier,
) ReOfferSubOrdersCommandHandler {
	return ReOfferSubOrdersCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
		notifier:   notifier,
		pool:       services.NewCourierPool(),
	}
}

// Handle runs one sweep. The sweep only reads, so it runs outside a
// transaction; a claim landing mid-sweep just makes that offer stale, and
// the claim arbitration ignores stale claims anyway. A sub-order whose shop
// or parent cannot be resolved is skipped rather than failing the sweep.
func (h ReOfferSubOrdersCommandHandler) Handle(ctx context.Context, cmd ReOfferSubOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()

	subOrders, err := uow.SubOrderRepository().GetAllUnassigned(ctx)
	if err != nil {
		return err
	}
	if len(subOrders) == 0 {
		return ErrNoUnassignedSubOrders
	}

	courierIDs, err := h.directory.ListCourierIDs(ctx)
	if err != nil {
		return err
	}
	if len(courierIDs) == 0 {
		return ErrNoCouriersOnline
	}

	for _, subOrder := range subOrders {
		parent, err := uow.OrderRepository().Get(ctx, subOrder.OrderID())
		if err != nil {
			continue
		}
		shop, err := h.directory.GetShop(ctx, subOrder.ShopID())
		if err != nil {
			continue
		}

		offers, err := h.pool.PlanOffers(subOrder, shop.Name, parent.Address().String(), courierIDs)
		if err != nil {
			continue
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

	return nil
}
