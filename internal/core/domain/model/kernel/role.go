package kernel

import (
	"fmt"

	"sokoni/internal/pkg/errs"
)

// Role identifies the actor performing an operation. Status transitions are
// gated per role server-side; the client UI only hints at what is possible.
type Role string

const (
	// RoleCustomer places orders and may cancel them early.
	RoleCustomer Role = "customer"

	// RoleSeller advances orders through the preparation stages for its shop.
	RoleSeller Role = "seller"

	// RoleRider claims deliveries and progresses them to completion.
	RoleRider Role = "rider"

	// RoleAdmin may perform any seller transition on any order.
	RoleAdmin Role = "admin"

	// RoleSystem marks transitions cascaded from delivery progress; it is
	// never accepted from the wire.
	RoleSystem Role = "system"
)

// RoleFromString parses an actor role received from the transport layer.
// RoleSystem is internal and rejected here.
func RoleFromString(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer, RoleSeller, RoleRider, RoleAdmin:
		return Role(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid actor role", s))
	}
}

// Validate checks that the role is one of the defined values.
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleSeller, RoleRider, RoleAdmin, RoleSystem:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", string(r)))
	}
}

// String returns the role name.
func (r Role) String() string {
	return string(r)
}
