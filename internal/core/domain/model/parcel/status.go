package parcel

import (
	"fmt"

	"parcels/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel in the logistics
// pipeline. The set is closed: every status a parcel can ever hold is
// listed here, and every accepted change to it produces exactly one
// tracking event carrying the new status as its event type.
//
// Statuses fall into two groups:
//   - regular flow: Created, Received, InWarehouse, Loaded, InTransit,
//     Delayed, Delivered, Processing
//   - abnormal states: Lost, Damaged, Returned
//
// Once a parcel enters an abnormal state it is locked: non-admin actors can
// only move it to Processing or Returned (see Parcel.ChangeStatus).
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusCreated is the initial status assigned at parcel creation.
	StatusCreated

	// StatusReceived indicates warehouse intake has accepted the parcel.
	StatusReceived

	// StatusInWarehouse indicates the parcel is stored in a warehouse.
	StatusInWarehouse

	// StatusLoaded indicates the parcel has been loaded onto a vehicle.
	StatusLoaded

	// StatusInTransit indicates the parcel is on the road.
	StatusInTransit

	// StatusDelayed indicates delivery is running late.
	StatusDelayed

	// StatusDelivered indicates the parcel reached its recipient.
	StatusDelivered

	// StatusLost is an abnormal state: the parcel cannot be located.
	StatusLost

	// StatusDamaged is an abnormal state: the parcel was damaged in handling.
	StatusDamaged

	// StatusReturned is an abnormal state: the parcel is being sent back.
	StatusReturned

	// StatusProcessing marks an abnormal parcel as under investigation.
	StatusProcessing
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:     "UNKNOWN",
		StatusCreated:     "CREATED",
		StatusReceived:    "RECEIVED",
		StatusInWarehouse: "IN_WAREHOUSE",
		StatusLoaded:      "LOADED",
		StatusInTransit:   "IN_TRANSIT",
		StatusDelayed:     "DELAYED",
		StatusDelivered:   "DELIVERED",
		StatusLost:        "LOST",
		StatusDamaged:     "DAMAGED",
		StatusReturned:    "RETURNED",
		StatusProcessing:  "PROCESSING",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusCreated:     "CREATED",
		StatusReceived:    "RECEIVED",
		StatusInWarehouse: "IN_WAREHOUSE",
		StatusLoaded:      "LOADED",
		StatusInTransit:   "IN_TRANSIT",
		StatusDelayed:     "DELAYED",
		StatusDelivered:   "DELIVERED",
		StatusLost:        "LOST",
		StatusDamaged:     "DAMAGED",
		StatusReturned:    "RETURNED",
		StatusProcessing:  "PROCESSING",
	}
}

// StatusFromString parses a status literal, e.g. "IN_TRANSIT".
// Unrecognized literals return an error; there is no default status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is a member of the closed status set.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status literal, e.g. "IN_WAREHOUSE".
// It implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsAbnormal reports whether the status is one of the abnormal states
// (Lost, Damaged, Returned) that engage the abnormal-state lock.
func (s Status) IsAbnormal() bool {
	return s == StatusLost || s == StatusDamaged || s == StatusReturned
}

// unlocksAbnormal reports whether a target status is reachable from an
// abnormal state without admin privileges.
func (s Status) unlocksAbnormal() bool {
	return s == StatusProcessing || s == StatusReturned
}
