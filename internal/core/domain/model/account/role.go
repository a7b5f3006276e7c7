package account

import (
	"fmt"

	"parcels/internal/pkg/errs"
)

// Role represents the closed set of actor roles in the logistics pipeline.
// Every authenticated request carries exactly one role, and the parcel
// status engine consults it when deciding whether a transition is allowed.
//
// Role is a value object: the zero value (RoleUnknown) is invalid and is caught
// by Validate before any permission decision is made.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleAdmin is the operations administrator. Admins bypass the abnormal-state
	// lock and carry no status allow-list.
	RoleAdmin

	// RoleStaff is office personnel. Staff carry no status allow-list but do not
	// bypass the abnormal-state lock.
	RoleStaff

	// RoleDriver is delivery personnel, restricted to transit-side statuses.
	RoleDriver

	// RoleWarehouse is warehouse personnel, restricted to intake-side statuses.
	RoleWarehouse

	// RoleCustomer is a sender account. Customers may never change parcel status.
	RoleCustomer
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:   "unknown",
		RoleAdmin:     "admin",
		RoleStaff:     "staff",
		RoleDriver:    "driver",
		RoleWarehouse: "warehouse",
		RoleCustomer:  "customer",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleAdmin:     "admin",
		RoleStaff:     "staff",
		RoleDriver:    "driver",
		RoleWarehouse: "warehouse",
		RoleCustomer:  "customer",
	}
}

// RoleFromString parses a role label as stored in accounts and carried in
// access tokens. Parsing is exact: unrecognized labels return an error
// rather than falling back to a default role.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// String returns the lowercase label of the role, e.g. "warehouse".
// It implements fmt.Stringer and is safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the Role value is one of the closed role set.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}
