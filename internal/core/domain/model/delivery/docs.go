// Package delivery provides the Delivery aggregate: the rider-facing
// fulfillment record linked 1:1 to an order, tracking pickup and drop-off
// and its own status sequence
//
//	pending -> assigned -> picked_up -> in_transit -> delivered
//
// with failed as the absorbing alternative. A delivery is claimed by
// exactly one rider; the claim itself is made atomic at the storage layer,
// and the aggregate re-validates the same preconditions so in-memory use
// cannot bypass them. Re-issuing a transition the delivery has already made
// is a no-op, which makes retried progression requests idempotent.
package delivery
