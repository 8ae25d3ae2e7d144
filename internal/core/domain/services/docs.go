// Package services contains stateless domain services that coordinate
// behavior across aggregates: building a multi-shop order from a cart, and
// planning courier pool offers for unassigned sub-orders.
package services
