// Package order provides the Order aggregate of the marketplace: a
// customer's purchase against one shop, its immutable item snapshots, and
// the status state machine governing its lifecycle.
//
// Key business rules:
//   - total amount always equals subtotal + delivery fee + platform fee;
//     the invariant is enforced at construction and restoration
//   - status only moves forward through the canonical sequence
//     pending -> confirmed -> preparing -> ready -> picked_up ->
//     in_transit -> delivered, with cancelled as the only exception
//   - every transition is gated by the acting role; pickup, transit and
//     delivery are cascaded from the delivery record and never set directly
//   - re-applying an already-achieved transition is a no-op, so retried
//     requests are idempotent
package order
