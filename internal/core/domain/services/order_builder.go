package services

import (
	"fmt"

	"foodcourt/internal/core/domain/model/catalog"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"
)

const (
	// TaxRatePercent is the fixed tax rate applied to each shop subtotal.
	TaxRatePercent = 5

	// DeliveryFee is the fixed per-shop delivery fee in currency units.
	DeliveryFee = kernel.Money(40)
)

// TaxOn computes the tax on a subtotal at the fixed rate, rounding half up
// to whole currency units. round(110 * 5%) = 6, round(200 * 5%) = 10.
func TaxOn(subtotal kernel.Money) kernel.Money {
	return kernel.Money((subtotal.Int64()*TaxRatePercent + 50) / 100)
}

// CartLine is one entry of a submitted cart: a catalog item reference and the
// desired quantity.
type CartLine struct {
	ItemID   kernel.UUID
	Quantity int
}

// OrderBuilder is the domain service that turns a resolved cart into one
// parent Order plus one SubOrder per shop involved.
//
// Responsibilities:
//   - validating cart lines against the resolved catalog snapshots
//   - partitioning lines by owning shop, preserving first-seen shop order
//   - computing per-shop subtotal, tax and delivery fee
//   - fixing the parent totals as the exact sums across sub-orders
//
// The builder is pure: it never touches persistence. Resolving items and
// shops, and decrementing stock, are the caller's concern.
type OrderBuilder struct {
	enforceStock bool
}

// NewOrderBuilder creates an OrderBuilder. When enforceStock is true,
// building fails with a validation error if any cart line exceeds the
// snapshot stock of its item; when false, shortfalls are ignored, matching
// the reference behavior of not blocking placement on stock.
func NewOrderBuilder(enforceStock bool) OrderBuilder {
	return OrderBuilder{enforceStock: enforceStock}
}

// EnforcesStock reports whether the builder validates cart quantities
// against catalog stock.
func (b OrderBuilder) EnforcesStock() bool {
	return b.enforceStock
}

// Build constructs the parent order and its per-shop sub-orders.
//
// Every cart line must reference an item present in items, and every
// involved shop must be present in shops; a single unresolvable reference
// fails the whole build with no partial result. Quantities must be positive.
func (b OrderBuilder) Build(
	orderID, customerID kernel.UUID,
	address kernel.Address,
	payment order.PaymentInfo,
	note string,
	lines []CartLine,
	items []*catalog.Item,
	shops map[kernel.UUID]catalog.Shop,
) (*order.Order, []*order.SubOrder, error) {
	if len(lines) == 0 {
		return nil, nil, errs.NewValueIsRequiredError("cartItems")
	}

	itemsByID := make(map[kernel.UUID]*catalog.Item, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, nil, err
		}
		itemsByID[item.ID()] = item
	}

	parent, err := order.NewOrder(orderID, customerID, address, payment, note)
	if err != nil {
		return nil, nil, err
	}

	// Partition resolved lines by shop, keeping shops in the order their
	// first item appears in the cart so sub-order creation is deterministic.
	type partition struct {
		shop  catalog.Shop
		items []order.LineItem
	}
	var shopOrder []kernel.UUID
	partitions := make(map[kernel.UUID]*partition)

	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, nil, errs.NewValueIsOutOfRangeError("quantity", line.Quantity, 1, 10000)
		}
		item, ok := itemsByID[line.ItemID]
		if !ok {
			return nil, nil, errs.NewObjectNotFoundError("itemId", line.ItemID.String())
		}
		if b.enforceStock && line.Quantity > item.Stock() {
			return nil, nil, errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("not enough stock for item %s", item.Name()))
		}

		lineItem, liErr := order.NewLineItem(kernel.NewUUID(), item.ID(), item.Name(), item.Price(), line.Quantity)
		if liErr != nil {
			return nil, nil, liErr
		}

		p, seen := partitions[item.ShopID()]
		if !seen {
			shop, found := shops[item.ShopID()]
			if !found {
				return nil, nil, errs.NewObjectNotFoundError("shopId", item.ShopID().String())
			}
			p = &partition{shop: shop}
			partitions[item.ShopID()] = p
			shopOrder = append(shopOrder, item.ShopID())
		}
		p.items = append(p.items, lineItem)
	}

	subOrders := make([]*order.SubOrder, 0, len(shopOrder))
	for _, shopID := range shopOrder {
		p := partitions[shopID]

		var subtotal kernel.Money
		for _, li := range p.items {
			subtotal = subtotal.Add(li.Total())
		}
		tax := TaxOn(subtotal)

		subOrder, soErr := order.NewSubOrder(
			kernel.NewUUID(), parent.ID(), p.shop.ID, p.shop.OwnerID,
			subtotal, tax, DeliveryFee, p.items, note)
		if soErr != nil {
			return nil, nil, soErr
		}
		subOrders = append(subOrders, subOrder)
	}

	if err = parent.AttachSubOrders(subOrders); err != nil {
		return nil, nil, err
	}

	return parent, subOrders, nil
}

// StockDecrements returns the per-item quantities to subtract from catalog
// stock for the given cart, merging duplicate lines for the same item.
func StockDecrements(lines []CartLine) (map[kernel.UUID]int, error) {
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("cartItems")
	}

	decrements := make(map[kernel.UUID]int, len(lines))
	for _, line := range lines {
		if err := line.ItemID.Validate(); err != nil {
			return nil, err
		}
		if line.Quantity <= 0 {
			return nil, errs.NewValueIsOutOfRangeError("quantity", line.Quantity, 1, 10000)
		}
		decrements[line.ItemID] += line.Quantity
	}
	return decrements, nil
}
