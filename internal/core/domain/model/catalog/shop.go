package catalog

import "foodcourt/internal/core/domain/model/kernel"

// Shop is the read-side view of a shop that order placement and courier
// offers need: identity, display name, and the owner who is authorized to
// drive the shop's sub-orders. Shop management itself is external.
type Shop struct {
	ID      kernel.UUID
	OwnerID kernel.UUID
	Name    string
}
