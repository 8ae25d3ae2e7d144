// Package kernel contains shared value objects used across the domain model:
// identifiers, monetary amounts, and delivery addresses.
//
// All types in this package are immutable value objects. Their zero values are
// invalid; instances must be created through the provided constructors, which
// enforce the invariants the rest of the domain relies on.
package kernel
