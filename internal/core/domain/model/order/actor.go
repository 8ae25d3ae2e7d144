package order

import (
	"fmt"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

// Role identifies which of the three participant kinds is acting on a
// sub-order. The identity service authenticates participants and supplies
// their role; the domain trusts it and only checks it against the transition
// rules.
type Role string

const (
	// RoleCustomer is the ordering customer.
	RoleCustomer Role = "customer"

	// RoleShopOwner is the owner of the shop fulfilling a sub-order.
	RoleShopOwner Role = "shopOwner"

	// RoleCourier is a delivery courier.
	RoleCourier Role = "courier"
)

// ParseRole converts a wire role string into a Role.
// Unknown strings produce a validation error.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer, RoleShopOwner, RoleCourier:
		return Role(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
	}
}

// String returns the wire representation of the role.
func (r Role) String() string {
	return string(r)
}

// Actor is the authenticated party attempting a sub-order transition:
// a role plus the participant identity the transition rules match against.
type Actor struct {
	role Role
	id   kernel.UUID
}

// NewActor creates an Actor from a validated role and participant identity.
func NewActor(role Role, id kernel.UUID) (Actor, error) {
	if _, err := ParseRole(string(role)); err != nil {
		return Actor{}, err
	}
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{role: role, id: id}, nil
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// ID returns the actor's participant identity.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Validate reports whether the actor was created via NewActor.
func (a Actor) Validate() error {
	if a.role == "" {
		return errs.NewValueIsRequiredError("actor role")
	}
	return a.id.Validate()
}
