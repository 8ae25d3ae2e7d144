package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents one customer checkout: a cart possibly
// spanning multiple shops, plus delivery and payment details.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), customerID, address, payment, "ring twice", lines)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	address    kernel.Address
	payment    order.PaymentInfo
	note       string
	lines      []services.CartLine

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a checkout command. The cart must be
// non-empty with positive quantities; the address must be fully populated.
func NewPlaceOrderCommand(
	orderID, customerID kernel.UUID,
	address kernel.Address,
	payment order.PaymentInfo,
	note string,
	lines []services.CartLine,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(orderID, customerID),
		cmd.setDelivery(address, payment),
		cmd.setLines(lines),
	); err != nil {
		return PlaceOrderCommand{}, err
	}
	cmd.note = note

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new parent order will be created under.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer's identifier.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Address returns the delivery address.
func (c PlaceOrderCommand) Address() kernel.Address {
	return c.address
}

// Payment returns the payment descriptor.
func (c PlaceOrderCommand) Payment() order.PaymentInfo {
	return c.payment
}

// Note returns the free-text delivery note.
func (c PlaceOrderCommand) Note() string {
	return c.note
}

// Lines returns the cart lines.
func (c PlaceOrderCommand) Lines() []services.CartLine {
	lines := make([]services.CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *PlaceOrderCommand) setIDs(orderID, customerID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setDelivery(address kernel.Address, payment order.PaymentInfo) error {
	if err := address.Validate(); err != nil {
		return err
	}
	if err := payment.Validate(); err != nil {
		return err
	}

	c.address = address
	c.payment = payment
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []services.CartLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("cartItems")
	}
	for _, line := range lines {
		if err := line.ItemID.Validate(); err != nil {
			return err
		}
		if line.Quantity <= 0 {
			return errs.NewValueIsOutOfRangeError("quantity", line.Quantity, 1, 10000)
		}
	}

	c.lines = make([]services.CartLine, len(lines))
	copy(c.lines, lines)
	return nil
}
