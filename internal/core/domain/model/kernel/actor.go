package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Role identifies the kind of principal performing a state-mutating operation.
// The role is supplied explicitly by the auth collaborator with every call and
// validated server-side; there is no ambient session state.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer is the owner of an order. Customers may create orders,
	// submit payment proof, and cancel orders that have not been paid.
	RoleCustomer

	// RoleAdmin is an operator. Admins may perform any forward transition,
	// verify or reject payments, and manage deliveries.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "Unknown",
		RoleCustomer: "customer",
		RoleAdmin:    "admin",
	}
}

// RoleFromString parses a role name supplied by the auth collaborator.
func RoleFromString(s string) (Role, error) {
	switch s {
	case "customer":
		return RoleCustomer, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", s))
	}
}

// String returns the wire name of the role.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "Unknown"
}

// Validate checks that the role is one of the known roles.
func (r Role) Validate() error {
	if r != RoleCustomer && r != RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// Actor is the principal performing an operation: its identity plus its role.
// Every status-mutating call in the application takes an explicit Actor and
// validates what that actor is allowed to do.
type Actor struct {
	id   UUID
	role Role
}

// NewActor creates an Actor from a validated identity and role.
func NewActor(id UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role}, nil
}

// ID returns the actor's identity.
func (a Actor) ID() UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}

// Validate checks that the actor carries a valid identity and role.
func (a Actor) Validate() error {
	if err := a.id.Validate(); err != nil {
		return err
	}
	return a.role.Validate()
}
