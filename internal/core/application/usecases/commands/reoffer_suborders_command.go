package commands

import (
	"errors"

	"foodcourt/internal/pkg/guard"
)

var ErrReOfferSubOrdersCommandIsNotConstructed = errors.New(
	"ReOfferSubOrdersCommand must be created via NewReOfferSubOrdersCommand constructor",
)

// ReOfferSubOrdersCommand triggers a re-offer sweep: every sub-order that is
// ready for a courier but still unassigned is offered to the online couriers
// again. This covers couriers who were offline when the original offer went
// out, and offers lost to dropped connections.
//
// Example:
//
//	cmd := NewReOfferSubOrdersCommand()
//	handler := NewReOfferSubOrdersCommandHandler(uowFactory, directory, notifier)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("Nothing to re-offer: %v", err)
//	}
type ReOfferSubOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewReOfferSubOrdersCommand creates a new command to trigger a re-offer sweep.
func NewReOfferSubOrdersCommand() ReOfferSubOrdersCommand {
	return ReOfferSubOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ReOfferSubOrdersCommand) Validate() error {
	return c.guard.Validate(
		ErrReOfferSubOrdersCommandIsNotConstructed,
	)
}
