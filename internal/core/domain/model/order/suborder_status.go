package order

import (
	"fmt"

	"foodcourt/internal/pkg/errs"
)

// SubOrderStatus represents the fulfillment state of a per-shop sub-order.
//
// State transitions (who may perform each is enforced by SubOrder):
//
//	pending ──> preparing ──> accepted ──> ready_for_pickup ──> out_for_delivery ──> delivered
//	   │                          │
//	   └──> cancelled             └──────────^ (owner may also mark ready while accepted)
//
// SubOrderAccepted is only ever entered through the claim operation, never by
// a direct status update. SubOrderDelivered and SubOrderCancelled are
// terminal.
type SubOrderStatus int

const (
	// SubOrderUnknown represents an invalid or undefined status.
	SubOrderUnknown SubOrderStatus = iota

	// SubOrderPending is the initial state after placement: the shop owner
	// has not yet accepted or rejected the sub-order.
	SubOrderPending

	// SubOrderPreparing means the shop owner accepted and the kitchen is
	// working; the sub-order is offered to the courier pool at this point.
	SubOrderPreparing

	// SubOrderAccepted means a courier claimed the sub-order. Set exclusively
	// by the claim operation; the courier assignment becomes non-null here.
	SubOrderAccepted

	// SubOrderReadyForPickup means the food is packed and waiting for the
	// assigned courier.
	SubOrderReadyForPickup

	// SubOrderOutForDelivery means the assigned courier picked up the order.
	SubOrderOutForDelivery

	// SubOrderDelivered is the terminal success state.
	SubOrderDelivered

	// SubOrderCancelled is the terminal rejection state, reachable only from
	// SubOrderPending by the shop owner.
	SubOrderCancelled
)

func getSubOrderStatusStrings() map[SubOrderStatus]string {
	return map[SubOrderStatus]string{
		SubOrderUnknown:        "unknown",
		SubOrderPending:        "pending",
		SubOrderPreparing:      "preparing",
		SubOrderAccepted:       "accepted",
		SubOrderReadyForPickup: "ready_for_pickup",
		SubOrderOutForDelivery: "out_for_delivery",
		SubOrderDelivered:      "delivered",
		SubOrderCancelled:      "cancelled",
	}
}

func getValidSubOrderStatusStrings() map[SubOrderStatus]string {
	//nolint:exhaustive // SubOrderUnknown is intentionally excluded as it's invalid
	return map[SubOrderStatus]string{
		SubOrderPending:        "pending",
		SubOrderPreparing:      "preparing",
		SubOrderAccepted:       "accepted",
		SubOrderReadyForPickup: "ready_for_pickup",
		SubOrderOutForDelivery: "out_for_delivery",
		SubOrderDelivered:      "delivered",
		SubOrderCancelled:      "cancelled",
	}
}

// ParseSubOrderStatus converts a wire status string into a SubOrderStatus.
// Unknown strings produce a validation error; the caller rejects them before
// any authorization check runs.
func ParseSubOrderStatus(s string) (SubOrderStatus, error) {
	for status, str := range getValidSubOrderStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return SubOrderUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a known sub-order status", s))
}

// Validate checks if the SubOrderStatus value is valid.
func (s SubOrderStatus) Validate() error {
	if _, ok := getValidSubOrderStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid sub-order status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s SubOrderStatus) String() string {
	if str, ok := getSubOrderStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s SubOrderStatus) IsTerminal() bool {
	return s == SubOrderDelivered || s == SubOrderCancelled
}
