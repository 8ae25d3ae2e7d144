package order

import (
	"fmt"

	"foodcourt/internal/pkg/errs"
)

// Status represents the lifecycle state of a parent order.
//
// The parent status is coarse bookkeeping for the checkout transaction as a
// whole; operational fulfillment tracking lives on the per-shop SubOrder.
// Parents are written once in Created status and the remaining states exist
// for reporting and for the external payment flow to advance.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusCreated is the initial status after a cart is submitted.
	StatusCreated

	// StatusConfirmed indicates payment has been confirmed.
	StatusConfirmed

	// StatusProcessing indicates at least one sub-order is being fulfilled.
	StatusProcessing

	// StatusCompleted indicates all sub-orders reached a terminal state.
	StatusCompleted

	// StatusCancelled indicates the checkout was cancelled.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "unknown",
		StatusCreated:    "created",
		StatusConfirmed:  "confirmed",
		StatusProcessing: "processing",
		StatusCompleted:  "completed",
		StatusCancelled:  "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusCreated:    "created",
		StatusConfirmed:  "confirmed",
		StatusProcessing: "processing",
		StatusCompleted:  "completed",
		StatusCancelled:  "cancelled",
	}
}

// ParseStatus converts a wire status string into a Status.
// Unknown strings produce a validation error.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a known order status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
