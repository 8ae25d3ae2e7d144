package commands

import (
	"context"

	"foodcourt/internal/core/domain/model/catalog"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/core/ports"
	"foodcourt/internal/pkg/errs"
)

// PlaceOrderCommandHandler runs the checkout aggregation: it resolves the
// cart against the catalog, builds one parent order plus one sub-order per
// shop, and persists everything including stock decrements in a single
// transaction. A single unresolvable item fails the whole placement with no
// partial writes.
//
// After a successful commit each involved shop owner gets a targeted
// newShopOrder event if they are online.
type PlaceOrderCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
	directory  ports.Directory
	notifier   ports.Notifier
	builder    services.OrderBuilder
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// enforceStock selects the conditional stock policy: when true, a cart line
// exceeding the available stock rejects the placement.
func NewPlaceOrderCommandHandler(
	uowFactory PlaceOrderUoWFactory,
	directory ports.Directory,
	notifier ports.Notifier,
	enforceStock bool,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
		notifier:   notifier,
		builder:    services.NewOrderBuilder(enforceStock),
	}
}

// Handle processes the placement command.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
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

	lines := cmd.Lines()
	items, err := h.resolveItems(ctx, uow.CatalogRepository(), lines)
	if err != nil {
		return err
	}

	shops, err := h.resolveShops(ctx, items)
	if err != nil {
		return err
	}

	parent, subOrders, err := h.builder.Build(
		cmd.OrderID(), cmd.CustomerID(), cmd.Address(), cmd.Payment(), cmd.Note(),
		lines, items, shops)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, parent); err != nil {
		return err
	}
	for _, subOrder := range subOrders {
		if err = uow.SubOrderRepository().Add(ctx, subOrder); err != nil {
			return err
		}
	}

	decrements, err := services.StockDecrements(lines)
	if err != nil {
		return err
	}
	for itemID, quantity := range decrements {
		if err = uow.CatalogRepository().DecrementStock(ctx, itemID, quantity, h.builder.EnforcesStock()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, subOrder := range subOrders {
		h.notifier.Notify(subOrder.ShopOwnerID(), ports.EventNewShopOrder, ports.NewShopOrderPayload{
			SubOrderID: subOrder.ID().String(),
			OrderID:    parent.ID().String(),
			Total:      subOrder.Total().Int64(),
			Status:     subOrder.Status().String(),
		})
	}

	return nil
}

func (h PlaceOrderCommandHandler) resolveItems(
	ctx context.Context,
	catalogRepo ports.CatalogRepository,
	lines []services.CartLine,
) ([]*catalog.Item, error) {
	ids := make([]kernel.UUID, 0, len(lines))
	seen := make(map[kernel.UUID]bool, len(lines))
	for _, line := range lines {
		if !seen[line.ItemID] {
			seen[line.ItemID] = true
			ids = append(ids, line.ItemID)
		}
	}

	items, err := catalogRepo.FindItemsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(items) != len(ids) {
		found := make(map[kernel.UUID]bool, len(items))
		for _, item := range items {
			found[item.ID()] = true
		}
		for _, id := range ids {
			if !found[id] {
				return nil, errs.NewObjectNotFoundError("itemId", id.String())
			}
		}
	}
	return items, nil
}

func (h PlaceOrderCommandHandler) resolveShops(
	ctx context.Context,
	items []*catalog.Item,
) (map[kernel.UUID]catalog.Shop, error) {
	ids := make([]kernel.UUID, 0, len(items))
	seen := make(map[kernel.UUID]bool, len(items))
	for _, item := range items {
		if !seen[item.ShopID()] {
			seen[item.ShopID()] = true
			ids = append(ids, item.ShopID())
		}
	}
	return h.directory.GetShopsByIDs(ctx, ids)
}
