package order

import (
	"errors"
	"strings"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents one checkout transaction by one customer, possibly
// spanning multiple shops. It is the aggregate root that references the
// per-shop sub-orders created alongside it.
//
// Invariants:
//   - totalAmount equals the sum of all sub-order totals
//   - totalQuantity equals the sum of all sub-order item quantities
//
// Both totals are computed once when the sub-orders are attached at creation
// and are not recomputed reactively afterwards. Sub-order amounts are
// immutable after creation, so the sums cannot drift in normal operation.
type Order struct {
	id            kernel.UUID
	customerID    kernel.UUID
	address       kernel.Address
	payment       PaymentInfo
	note          string
	totalAmount   kernel.Money
	totalQuantity int
	status        Status
	subOrderIDs   []kernel.UUID

	isConstructed bool
}

// NewOrder creates an Order in Created status with no sub-orders attached.
// AttachSubOrders must be called before the order is persisted.
func NewOrder(id, customerID kernel.UUID, address kernel.Address, payment PaymentInfo, note string) (*Order, error) {
	o := &Order{
		status:        StatusCreated,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setAddress(address),
		o.setPayment(payment),
	); err != nil {
		return nil, err
	}

	o.note = strings.TrimSpace(note)
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, trusting the stored
// totals and status. Used only by repository implementations.
func RestoreOrder(
	id, customerID kernel.UUID,
	address kernel.Address,
	payment PaymentInfo,
	note string,
	totalAmount kernel.Money,
	totalQuantity int,
	status Status,
	subOrderIDs []kernel.UUID,
) (*Order, error) {
	o, err := NewOrder(id, customerID, address, payment, note)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.totalAmount = totalAmount
	o.totalQuantity = totalQuantity
	o.status = status
	o.subOrderIDs = make([]kernel.UUID, len(subOrderIDs))
	copy(o.subOrderIDs, subOrderIDs)
	return o, nil
}

// AttachSubOrders records the created sub-orders on the parent and fixes the
// aggregate totals as the sums across them. It may be called exactly once,
// during order creation; the totals are never recomputed afterwards.
func (o *Order) AttachSubOrders(subOrders []*SubOrder) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if len(o.subOrderIDs) != 0 {
		return errs.NewConflictErrorWithCause("order", o.status.String(),
			errors.New("sub-orders are already attached"))
	}
	if len(subOrders) == 0 {
		return errs.NewValueIsRequiredError("subOrders")
	}

	var amount kernel.Money
	quantity := 0
	ids := make([]kernel.UUID, 0, len(subOrders))
	for _, so := range subOrders {
		if err := so.Validate(); err != nil {
			return err
		}
		amount = amount.Add(so.Total())
		quantity += so.TotalQuantity()
		ids = append(ids, so.ID())
	}

	o.totalAmount = amount
	o.totalQuantity = quantity
	o.subOrderIDs = ids
	return nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Address returns the delivery address.
func (o *Order) Address() kernel.Address {
	return o.address
}

// Payment returns the payment descriptor.
func (o *Order) Payment() PaymentInfo {
	return o.payment
}

// Note returns the free-text note from checkout.
func (o *Order) Note() string {
	return o.note
}

// TotalAmount returns the aggregate total across all sub-orders.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// TotalQuantity returns the aggregate item quantity across all sub-orders.
func (o *Order) TotalQuantity() int {
	return o.totalQuantity
}

// Status returns the parent lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// SubOrderIDs returns a copy of the attached sub-order identifiers in
// creation order.
func (o *Order) SubOrderIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(o.subOrderIDs))
	copy(ids, o.subOrderIDs)
	return ids
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setPayment(payment PaymentInfo) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	o.payment = payment
	return nil
}
