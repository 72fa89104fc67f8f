package delivery

import (
	"fmt"

	"sokoni/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending means the delivery awaits a rider claim.
	Pending

	// Assigned means a rider has claimed the delivery.
	Assigned

	// PickedUp means the rider has collected the package from the shop.
	PickedUp

	// InTransit means the rider is on the way to the drop-off address.
	InTransit

	// Delivered is the successful final state.
	Delivered

	// Failed is the unsuccessful final state, also used when the underlying
	// order is cancelled before or during fulfillment.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Assigned:  "assigned",
		PickedUp:  "picked_up",
		InTransit: "in_transit",
		Delivered: "delivered",
		Failed:    "failed",
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
		fmt.Errorf("%q is not a valid delivery status", s))
}

// Validate checks that the status is one of the defined lifecycle values.
func (s Status) Validate() error {
	if s <= Unknown || s > Failed {
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
	return s == Delivered || s == Failed
}

// Assign transitions the status to Assigned. Only pending deliveries can be
// claimed; anything else is a conflict carrying the current state.
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewConflictError("delivery status", s.String())
	}
	return Assigned, nil
}

// PickUp transitions the status to PickedUp.
func (s Status) PickUp() (Status, error) {
	if s != Assigned {
		return Unknown, errs.NewConflictError("delivery status", s.String())
	}
	return PickedUp, nil
}

// Transit transitions the status to InTransit.
func (s Status) Transit() (Status, error) {
	if s != PickedUp {
		return Unknown, errs.NewConflictError("delivery status", s.String())
	}
	return InTransit, nil
}

// Deliver transitions the status to Delivered.
func (s Status) Deliver() (Status, error) {
	if s != InTransit {
		return Unknown, errs.NewConflictError("delivery status", s.String())
	}
	return Delivered, nil
}

// Fail transitions the status to Failed from any non-terminal state.
func (s Status) Fail() (Status, error) {
	if s.IsTerminal() {
		return Unknown, errs.NewConflictError("delivery status", s.String())
	}
	return Failed, nil
}

// ValidateCanHaveRider validates consistency between status and rider
// assignment: pending deliveries must be riderless, active and delivered
// ones must have a rider, and failed ones may be either (a delivery failed
// before any claim has no rider).
func (s Status) ValidateCanHaveRider(rider bool) error {
	if s == Pending && rider {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s delivery cannot have a rider", s))
	}
	if !rider && (s == Assigned || s == PickedUp || s == InTransit || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s delivery must have a rider", s))
	}
	return nil
}
