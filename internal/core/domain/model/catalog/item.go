// Package catalog holds the read-side snapshot of catalog items that the
// order aggregation engine consumes. The catalog itself (menu CRUD, images,
// categories) is an external collaborator; this package only models the
// fields placement needs: identity, owning shop, name, price and stock.
package catalog

import (
	"errors"
	"strings"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a snapshot of one catalog item at the moment of a cart lookup.
// The name and price captured here are frozen into line items at placement
// time so later catalog edits never rewrite order history.
type Item struct {
	id     kernel.UUID
	shopID kernel.UUID
	name   string
	price  kernel.Money
	stock  int

	isConstructed bool
}

// NewItem creates an Item snapshot with validated identity, name and price.
// Stock may be any value including negative: the reference catalog does not
// guarantee non-negative stock under concurrent placements.
func NewItem(id, shopID kernel.UUID, name string, price kernel.Money, stock int) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := shopID.Validate(); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if price < 0 {
		return nil, errs.NewValueIsInvalidError("price")
	}

	return &Item{
		id:            id,
		shopID:        shopID,
		name:          name,
		price:         price,
		stock:         stock,
		isConstructed: true,
	}, nil
}

// Validate ensures the Item was created via NewItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the catalog item identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ShopID returns the identifier of the shop that owns this item.
func (i *Item) ShopID() kernel.UUID {
	return i.shopID
}

// Name returns the item name at snapshot time.
func (i *Item) Name() string {
	return i.name
}

// Price returns the unit price at snapshot time.
func (i *Item) Price() kernel.Money {
	return i.price
}

// Stock returns the stock quantity at snapshot time.
func (i *Item) Stock() int {
	return i.stock
}
