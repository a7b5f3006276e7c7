package parcel

import "parcels/internal/core/domain/model/account"

// statusTargetsByRole is the static capability table consulted by
// Parcel.ChangeStatus. A role present in the table may only set the listed
// target statuses; a role absent from the table is unrestricted. Customer
// never appears here because customers are rejected before the table is
// consulted.
var statusTargetsByRole = map[account.Role]map[Status]bool{
	account.RoleDriver: {
		StatusLoaded:    true,
		StatusInTransit: true,
		StatusDelivered: true,
		StatusDelayed:   true,
		StatusLost:      true,
		StatusDamaged:   true,
	},
	account.RoleWarehouse: {
		StatusReceived:    true,
		StatusInWarehouse: true,
		StatusLoaded:      true,
		StatusReturned:    true,
		StatusDamaged:     true,
	},
}

// roleMaySetStatus reports whether the role's allow-list permits the target
// status. Roles without an allow-list (admin, staff) may set any status.
func roleMaySetStatus(role account.Role, target Status) bool {
	targets, restricted := statusTargetsByRole[role]
	if !restricted {
		return true
	}
	return targets[target]
}
