package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var ErrClaimSubOrderCommandIsNotConstructed = errors.New(
	"ClaimSubOrderCommand must be created via NewClaimSubOrderCommand constructor",
)

// ClaimSubOrderCommand represents a courier claiming an offered sub-order.
// Whether the claim wins is decided atomically against the persisted row,
// not here.
type ClaimSubOrderCommand struct { //nolint:recvcheck //using for validation
	subOrderID kernel.UUID
	courierID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewClaimSubOrderCommand creates a claim command.
func NewClaimSubOrderCommand(subOrderID, courierID kernel.UUID) (ClaimSubOrderCommand, error) {
	cmd := ClaimSubOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		subOrderID.Validate(),
		courierID.Validate(),
	); err != nil {
		return ClaimSubOrderCommand{}, err
	}

	cmd.subOrderID = subOrderID
	cmd.courierID = courierID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimSubOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimSubOrderCommandIsNotConstructed)
}

// SubOrderID returns the claimed sub-order's identifier.
func (c ClaimSubOrderCommand) SubOrderID() kernel.UUID {
	return c.subOrderID
}

// CourierID returns the claiming courier's identifier.
func (c ClaimSubOrderCommand) CourierID() kernel.UUID {
	return c.courierID
}
