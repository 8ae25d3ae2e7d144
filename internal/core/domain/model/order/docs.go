// Package order contains the order aggregate and its children: the parent
// Order created per checkout, one SubOrder per shop involved, and the
// immutable LineItem snapshots within each sub-order.
//
// The SubOrder carries the fulfillment state machine. All status mutations go
// through SubOrder methods that take the acting party (role plus identity) and
// enforce both the legal transition graph and per-role authorization:
//
//	pending ──owner──> preparing ──claim──> accepted ──> ready_for_pickup ──> out_for_delivery ──> delivered
//	   │
//	   └──owner──> cancelled
//
// A courier becomes assigned exclusively through the claim operation; once
// set, the assignment is immutable for the rest of the sub-order's life.
package order
