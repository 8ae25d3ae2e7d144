package order

import (
	"errors"
	"strings"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through the NewLineItem factory method.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// maxLineItemQuantity bounds a single cart line. The cap exists to keep the
// out-of-range error informative, not as a business rule.
const maxLineItemQuantity = 10000

// LineItem is an immutable snapshot of one catalog item within a sub-order:
// the item's name and unit price frozen at purchase time so later catalog
// edits never change historical orders.
type LineItem struct {
	id              kernel.UUID
	itemID          kernel.UUID
	itemName        string
	priceAtPurchase kernel.Money
	quantity        int
	total           kernel.Money

	isConstructed bool
}

// NewLineItem creates a line item snapshot. Quantity must be at least 1 and
// the line total is derived from price and quantity, never supplied.
func NewLineItem(id, itemID kernel.UUID, itemName string, priceAtPurchase kernel.Money, quantity int) (LineItem, error) {
	if err := id.Validate(); err != nil {
		return LineItem{}, err
	}
	if err := itemID.Validate(); err != nil {
		return LineItem{}, err
	}
	itemName = strings.TrimSpace(itemName)
	if itemName == "" {
		return LineItem{}, errs.NewValueIsRequiredError("itemName")
	}
	if priceAtPurchase < 0 {
		return LineItem{}, errs.NewValueIsInvalidError("priceAtPurchase")
	}
	if quantity < 1 || quantity > maxLineItemQuantity {
		return LineItem{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxLineItemQuantity)
	}

	return LineItem{
		id:              id,
		itemID:          itemID,
		itemName:        itemName,
		priceAtPurchase: priceAtPurchase,
		quantity:        quantity,
		total:           priceAtPurchase.MulQty(quantity),
		isConstructed:   true,
	}, nil
}

// RestoreLineItem reconstructs a line item from persistence without
// recomputing the stored total. Used only by repository implementations.
func RestoreLineItem(
	id, itemID kernel.UUID,
	itemName string,
	priceAtPurchase kernel.Money,
	quantity int,
	total kernel.Money,
) (LineItem, error) {
	li, err := NewLineItem(id, itemID, itemName, priceAtPurchase, quantity)
	if err != nil {
		return LineItem{}, err
	}
	li.total = total
	return li, nil
}

// Validate ensures the LineItem was created via NewLineItem.
func (li LineItem) Validate() error {
	if !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// ID returns the line item identifier.
func (li LineItem) ID() kernel.UUID {
	return li.id
}

// ItemID returns the referenced catalog item identifier.
func (li LineItem) ItemID() kernel.UUID {
	return li.itemID
}

// ItemName returns the item name frozen at purchase time.
func (li LineItem) ItemName() string {
	return li.itemName
}

// PriceAtPurchase returns the unit price frozen at purchase time.
func (li LineItem) PriceAtPurchase() kernel.Money {
	return li.priceAtPurchase
}

// Quantity returns the purchased quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// Total returns the line total (price at purchase times quantity).
func (li LineItem) Total() kernel.Money {
	return li.total
}
