package order

import (
	"fmt"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with role-gated, forward-only transitions:
//
//	pending -> confirmed -> preparing -> ready -> picked_up -> in_transit -> delivered
//
// cancelled is reachable from pending/confirmed by the customer (with a
// reason), from any pre-pickup state by the seller or admin, and from any
// non-terminal state by the system when the delivery fails. picked_up,
// in_transit and delivered are system transitions cascaded from the
// delivery record.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status after checkout.
	Pending

	// Confirmed means the seller has accepted the order.
	Confirmed

	// Preparing means the seller is preparing the order.
	Preparing

	// Ready means the order awaits pickup by a rider.
	Ready

	// PickedUp means the rider has collected the order from the shop.
	PickedUp

	// InTransit means the rider is on the way to the customer.
	InTransit

	// Delivered is the successful final state.
	Delivered

	// Cancelled is the unsuccessful final state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Preparing: "preparing",
		Ready:     "ready",
		PickedUp:  "picked_up",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses a status received from the transport layer.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks that the status is one of the defined lifecycle values.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// rank is the position in the canonical fulfillment sequence. Cancelled has
// no rank; it is handled separately.
func (s Status) rank() int {
	if s == Cancelled {
		return -1
	}
	return int(s)
}

// Advance validates the transition to the target status for the given role
// and returns the new status. Transitions are forward-only; sellers and
// admins advance one step at a time through the preparation stages, while
// system cascades may skip intermediate steps. The caller is responsible
// for treating "target equals current" as an idempotent no-op before
// calling Advance.
func (s Status) Advance(to Status, role kernel.Role) (Status, error) {
	if err := to.Validate(); err != nil {
		return Unknown, err
	}
	if err := role.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, errs.NewConflictError("order status", s.String())
	}

	if to == Cancelled {
		return s.cancel(role)
	}

	if to.rank() <= s.rank() {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("cannot move backward from %s to %s", s, to))
	}

	switch role {
	case kernel.RoleSeller, kernel.RoleAdmin:
		if to != Confirmed && to != Preparing && to != Ready {
			return Unknown, errs.NewActorNotAllowedError(role.String(),
				fmt.Sprintf("set order status to %s", to))
		}
		if to.rank() != s.rank()+1 {
			return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
				fmt.Errorf("cannot skip from %s to %s", s, to))
		}
	case kernel.RoleSystem:
		if to != PickedUp && to != InTransit && to != Delivered {
			return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
				fmt.Errorf("%s is not a delivery cascade status", to))
		}
	default:
		return Unknown, errs.NewActorNotAllowedError(role.String(),
			fmt.Sprintf("set order status to %s", to))
	}

	return to, nil
}

func (s Status) cancel(role kernel.Role) (Status, error) {
	switch role {
	case kernel.RoleCustomer:
		if s != Pending && s != Confirmed {
			return Unknown, errs.NewConflictError("order status", s.String())
		}
	case kernel.RoleSeller, kernel.RoleAdmin:
		if s.rank() >= PickedUp.rank() {
			return Unknown, errs.NewConflictError("order status", s.String())
		}
	case kernel.RoleSystem:
		// Any non-terminal state; terminal states were rejected above.
	default:
		return Unknown, errs.NewActorNotAllowedError(role.String(), "cancel the order")
	}
	return Cancelled, nil
}
