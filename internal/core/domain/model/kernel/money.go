package kernel

import (
	"fmt"
	"math"

	"foodcourt/internal/pkg/errs"
)

// Money represents a monetary amount in whole currency units.
// Amounts are kept as integers so that per-shop totals sum exactly to the
// parent order total without floating point drift.
//
// Money is a value object: arithmetic methods return new values and never
// mutate the receiver. Negative amounts are rejected by the constructor but
// the zero value (zero currency units) is valid, so Money can be embedded
// directly in aggregates without a constructor guard.
type Money int64

// NewMoney creates a Money amount, rejecting negative values.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return 0, errs.NewValueIsOutOfRangeError("amount", amount, 0, int64(math.MaxInt64))
	}
	return Money(amount), nil
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return m + other
}

// MulQty returns the amount multiplied by an item quantity.
func (m Money) MulQty(qty int) Money {
	return m * Money(qty)
}

// Int64 returns the raw amount in whole currency units.
func (m Money) Int64() int64 {
	return int64(m)
}

// String renders the amount for logs and error messages.
func (m Money) String() string {
	return fmt.Sprintf("%d", int64(m))
}
