package order

import (
	"errors"
	"fmt"
	"strings"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

var (
	// ErrSubOrderIsNotConstructed is returned when a SubOrder instance was not
	// created through NewSubOrder or RestoreSubOrder.
	ErrSubOrderIsNotConstructed = errors.New("SubOrder must be created via NewSubOrder constructor")
)

// SubOrder is the per-shop portion of an order and the unit of fulfillment
// tracking. It owns its line item snapshots and the status state machine.
//
// Invariants:
//   - total = subtotal + tax + deliveryFee, fixed at creation
//   - subtotal equals the sum of line item totals
//   - the courier assignment is nil until a claim succeeds and immutable after
//   - status changes only through ChangeStatus and Claim
//
// The shop owner's identity is denormalized onto the sub-order at creation,
// the same way line items freeze item names: authorization checks then need
// no directory lookup.
type SubOrder struct {
	id          kernel.UUID
	orderID     kernel.UUID
	shopID      kernel.UUID
	shopOwnerID kernel.UUID
	courierID   *kernel.UUID
	status      SubOrderStatus
	subtotal    kernel.Money
	tax         kernel.Money
	deliveryFee kernel.Money
	total       kernel.Money
	items       []LineItem
	note        string

	isConstructed bool
}

// NewSubOrder creates a pending SubOrder with no courier assigned.
// The total is derived from subtotal, tax and delivery fee; the subtotal must
// equal the sum of the line item totals or construction fails.
func NewSubOrder(
	id, orderID, shopID, shopOwnerID kernel.UUID,
	subtotal, tax, deliveryFee kernel.Money,
	items []LineItem,
	note string,
) (*SubOrder, error) {
	subOrder := &SubOrder{
		status:        SubOrderPending,
		isConstructed: true,
	}

	if err := errors.Join(
		subOrder.setIDs(id, orderID, shopID, shopOwnerID),
		subOrder.setAmounts(subtotal, tax, deliveryFee),
		subOrder.setItems(items),
	); err != nil {
		return nil, err
	}

	if sum := subOrder.itemsTotal(); sum != subtotal {
		return nil, errs.NewValueIsInvalidErrorWithCause("subtotal",
			fmt.Errorf("subtotal %s does not match line item sum %s", subtotal, sum))
	}

	subOrder.total = subtotal.Add(tax).Add(deliveryFee)
	subOrder.note = strings.TrimSpace(note)
	return subOrder, nil
}

// RestoreSubOrder reconstructs a SubOrder from persistence, trusting the
// stored status, courier assignment and total. Used only by repository
// implementations.
func RestoreSubOrder(
	id, orderID, shopID, shopOwnerID kernel.UUID,
	subtotal, tax, deliveryFee, total kernel.Money,
	status SubOrderStatus,
	courierID *kernel.UUID,
	items []LineItem,
	note string,
) (*SubOrder, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
	}

	subOrder := &SubOrder{
		status:        status,
		isConstructed: true,
	}

	if err := errors.Join(
		subOrder.setIDs(id, orderID, shopID, shopOwnerID),
		subOrder.setAmounts(subtotal, tax, deliveryFee),
		subOrder.setItems(items),
	); err != nil {
		return nil, err
	}

	subOrder.total = total
	subOrder.courierID = courierID
	subOrder.note = strings.TrimSpace(note)
	return subOrder, nil
}

// Validate ensures the SubOrder was created through a constructor.
func (so *SubOrder) Validate() error {
	if so == nil || !so.isConstructed {
		return ErrSubOrderIsNotConstructed
	}
	return nil
}

// ID returns the sub-order identifier.
func (so *SubOrder) ID() kernel.UUID {
	return so.id
}

// OrderID returns the parent order identifier.
func (so *SubOrder) OrderID() kernel.UUID {
	return so.orderID
}

// ShopID returns the fulfilling shop identifier.
func (so *SubOrder) ShopID() kernel.UUID {
	return so.shopID
}

// ShopOwnerID returns the identity of the shop's owner, frozen at creation.
func (so *SubOrder) ShopOwnerID() kernel.UUID {
	return so.shopOwnerID
}

// Courier returns the assigned courier's identity, or nil before a claim.
func (so *SubOrder) Courier() *kernel.UUID {
	return so.courierID
}

// Status returns the current fulfillment status.
func (so *SubOrder) Status() SubOrderStatus {
	return so.status
}

// Subtotal returns the sum of line item totals.
func (so *SubOrder) Subtotal() kernel.Money {
	return so.subtotal
}

// Tax returns the tax amount applied at creation.
func (so *SubOrder) Tax() kernel.Money {
	return so.tax
}

// DeliveryFee returns the delivery fee applied at creation.
func (so *SubOrder) DeliveryFee() kernel.Money {
	return so.deliveryFee
}

// Total returns subtotal + tax + deliveryFee as fixed at creation.
func (so *SubOrder) Total() kernel.Money {
	return so.total
}

// Items returns a copy of the line item snapshots.
func (so *SubOrder) Items() []LineItem {
	items := make([]LineItem, len(so.items))
	copy(items, so.items)
	return items
}

// Note returns the free-text note attached at placement.
func (so *SubOrder) Note() string {
	return so.note
}

// TotalQuantity returns the summed quantity across all line items.
func (so *SubOrder) TotalQuantity() int {
	qty := 0
	for _, li := range so.items {
		qty += li.Quantity()
	}
	return qty
}

// IsAssignedTo reports whether the given courier holds the assignment.
func (so *SubOrder) IsAssignedTo(courierID kernel.UUID) bool {
	return so.courierID != nil && so.courierID.IsEqual(courierID)
}

// ChangeStatus attempts a status transition on behalf of an actor.
//
// Checks run in a fixed order so callers can rely on the error kind:
//  1. the target status itself must be valid (validation error),
//  2. the actor's role and identity must permit setting the target
//     (authorization error),
//  3. the current status must allow the transition (conflict error, carrying
//     the current state so the caller can refresh and retry).
//
// The accepted status can never be set through this method: it is entered
// exclusively via Claim. Reverting to pending is always a conflict.
func (so *SubOrder) ChangeStatus(actor Actor, target SubOrderStatus) error {
	if err := so.Validate(); err != nil {
		return err
	}
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	switch target {
	case SubOrderPending:
		return errs.NewConflictErrorWithCause("subOrder", so.status.String(),
			errors.New("reverting to pending is not allowed"))

	case SubOrderAccepted:
		return errs.NewNotAuthorizedErrorWithCause(actor.Role().String(), "set status accepted",
			errors.New("couriers are assigned via claim, not direct status updates"))

	case SubOrderPreparing, SubOrderCancelled:
		if err := so.authorizeOwner(actor, "set status "+target.String()); err != nil {
			return err
		}
		if so.status != SubOrderPending {
			return errs.NewConflictError("subOrder", so.status.String())
		}

	case SubOrderReadyForPickup:
		switch actor.Role() {
		case RoleShopOwner:
			if err := so.authorizeOwner(actor, "set status ready_for_pickup"); err != nil {
				return err
			}
			if so.courierID == nil {
				return errs.NewConflictErrorWithCause("subOrder", so.status.String(),
					errors.New("no courier assigned yet"))
			}
		case RoleCourier:
			if err := so.authorizeCourier(actor, "set status ready_for_pickup"); err != nil {
				return err
			}
		default:
			return errs.NewNotAuthorizedError(actor.Role().String(), "set status ready_for_pickup")
		}
		if so.status != SubOrderAccepted && so.status != SubOrderPreparing {
			return errs.NewConflictError("subOrder", so.status.String())
		}

	case SubOrderOutForDelivery:
		if err := so.authorizeCourier(actor, "set status out_for_delivery"); err != nil {
			return err
		}
		if so.status != SubOrderAccepted && so.status != SubOrderReadyForPickup {
			return errs.NewConflictError("subOrder", so.status.String())
		}

	case SubOrderDelivered:
		if err := so.authorizeCourier(actor, "set status delivered"); err != nil {
			return err
		}
		if so.status != SubOrderOutForDelivery {
			return errs.NewConflictError("subOrder", so.status.String())
		}

	default:
		return errs.NewValueIsInvalidError("status")
	}

	so.status = target
	return nil
}

// Claim assigns a courier to an unclaimed preparing sub-order and advances it
// to accepted. A sub-order that already has a courier, or whose status has
// moved past preparing, rejects the claim with a conflict.
//
// The in-memory check here mirrors the repository's atomic compare-and-set;
// the persisted CAS is the authority under concurrent claims.
func (so *SubOrder) Claim(courierID kernel.UUID) error {
	if err := so.Validate(); err != nil {
		return err
	}
	if err := courierID.Validate(); err != nil {
		return err
	}

	if so.courierID != nil {
		return errs.NewConflictErrorWithCause("subOrder", so.status.String(),
			errors.New("already claimed by another courier"))
	}
	if so.status != SubOrderPreparing {
		return errs.NewConflictError("subOrder", so.status.String())
	}

	so.courierID = &courierID
	so.status = SubOrderAccepted
	return nil
}

func (so *SubOrder) authorizeOwner(actor Actor, action string) error {
	if actor.Role() != RoleShopOwner {
		return errs.NewNotAuthorizedError(actor.Role().String(), action)
	}
	if !actor.ID().IsEqual(so.shopOwnerID) {
		return errs.NewNotAuthorizedErrorWithCause(actor.Role().String(), action,
			errors.New("actor does not own this shop"))
	}
	return nil
}

func (so *SubOrder) authorizeCourier(actor Actor, action string) error {
	if actor.Role() != RoleCourier {
		return errs.NewNotAuthorizedError(actor.Role().String(), action)
	}
	if !so.IsAssignedTo(actor.ID()) {
		return errs.NewNotAuthorizedErrorWithCause(actor.Role().String(), action,
			errors.New("actor is not the assigned courier"))
	}
	return nil
}

func (so *SubOrder) setIDs(id, orderID, shopID, shopOwnerID kernel.UUID) error {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		shopID.Validate(),
		shopOwnerID.Validate(),
	); err != nil {
		return err
	}

	so.id = id
	so.orderID = orderID
	so.shopID = shopID
	so.shopOwnerID = shopOwnerID
	return nil
}

func (so *SubOrder) setAmounts(subtotal, tax, deliveryFee kernel.Money) error {
	if subtotal < 0 {
		return errs.NewValueIsInvalidError("subtotal")
	}
	if tax < 0 {
		return errs.NewValueIsInvalidError("tax")
	}
	if deliveryFee < 0 {
		return errs.NewValueIsInvalidError("deliveryFee")
	}

	so.subtotal = subtotal
	so.tax = tax
	so.deliveryFee = deliveryFee
	return nil
}

func (so *SubOrder) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, li := range items {
		if err := li.Validate(); err != nil {
			return err
		}
	}

	so.items = make([]LineItem, len(items))
	copy(so.items, items)
	return nil
}

func (so *SubOrder) itemsTotal() kernel.Money {
	var sum kernel.Money
	for _, li := range so.items {
		sum = sum.Add(li.Total())
	}
	return sum
}
