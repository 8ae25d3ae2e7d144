package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/guard"
)

var ErrUpdateSubOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateSubOrderStatusCommand must be created via NewUpdateSubOrderStatusCommand constructor",
)

// UpdateSubOrderStatusCommand represents one actor's attempt to move a
// sub-order to a target status. Role and identity checks happen in the
// domain; the command only guarantees the input is well formed.
type UpdateSubOrderStatusCommand struct { //nolint:recvcheck //using for validation
	actor      order.Actor
	subOrderID kernel.UUID
	target     order.SubOrderStatus

	guard guard.ConstructorGuard
}

// NewUpdateSubOrderStatusCommand creates a status transition command.
// An unknown status string is rejected here as a validation error, before
// any authorization check can run.
func NewUpdateSubOrderStatusCommand(
	actor order.Actor,
	subOrderID kernel.UUID,
	status string,
) (UpdateSubOrderStatusCommand, error) {
	cmd := UpdateSubOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	target, err := order.ParseSubOrderStatus(status)
	if err != nil {
		return UpdateSubOrderStatusCommand{}, err
	}

	if err = errors.Join(
		actor.Validate(),
		subOrderID.Validate(),
	); err != nil {
		return UpdateSubOrderStatusCommand{}, err
	}

	cmd.actor = actor
	cmd.subOrderID = subOrderID
	cmd.target = target
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateSubOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSubOrderStatusCommandIsNotConstructed)
}

// Actor returns the acting participant.
func (c UpdateSubOrderStatusCommand) Actor() order.Actor {
	return c.actor
}

// SubOrderID returns the target sub-order's identifier.
func (c UpdateSubOrderStatusCommand) SubOrderID() kernel.UUID {
	return c.subOrderID
}

// Target returns the requested status.
func (c UpdateSubOrderStatusCommand) Target() order.SubOrderStatus {
	return c.target
}
