package commands

import (
	"errors"

	"parcels/internal/core/domain/model/account"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var (
	ErrSetParcelStatusCommandIsNotConstructed = errors.New(
		"SetParcelStatusCommand must be created via NewSetParcelStatusCommand constructor",
	)
)

// SetParcelStatusCommand represents a request to move a parcel to a new
// lifecycle status. The acting role and operator identity come from the
// verified request context, never from the request body.
//
// Example:
//
//	cmd, err := NewSetParcelStatusCommand(account.RoleDriver, "driver1", trackingNumber,
//	    parcel.StatusInTransit, "Hub 3", "TRUCK-17", "", "")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewSetParcelStatusCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // Forbidden, abnormal lock, not found, or storage failure
//	}
type SetParcelStatusCommand struct { //nolint:recvcheck //using for validation
	actorRole      account.Role
	operator       string
	trackingNumber parcel.TrackingNumber
	newStatus      parcel.Status
	location       string
	vehicleID      string
	warehouseID    string
	description    string

	guard guard.ConstructorGuard
}

// NewSetParcelStatusCommand creates a status transition request.
// Validates that the role and target status are members of their closed
// sets and that the tracking number and operator are present. Permission
// and lock rules are not evaluated here; they belong to the aggregate and
// require its current state.
func NewSetParcelStatusCommand(
	actorRole account.Role,
	operator string,
	trackingNumber parcel.TrackingNumber,
	newStatus parcel.Status,
	location string,
	vehicleID string,
	warehouseID string,
	description string,
) (SetParcelStatusCommand, error) {
	cmd := SetParcelStatusCommand{
		location:    location,
		vehicleID:   vehicleID,
		warehouseID: warehouseID,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorRole(actorRole),
		cmd.setOperator(operator),
		cmd.setTrackingNumber(trackingNumber),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return SetParcelStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetParcelStatusCommandIsNotConstructed)
}

// ActorRole returns the role performing the transition.
func (c SetParcelStatusCommand) ActorRole() account.Role { return c.actorRole }

// Operator returns the authenticated username performing the transition.
func (c SetParcelStatusCommand) Operator() string { return c.operator }

// TrackingNumber returns the target parcel's tracking number.
func (c SetParcelStatusCommand) TrackingNumber() parcel.TrackingNumber { return c.trackingNumber }

// NewStatus returns the requested target status.
func (c SetParcelStatusCommand) NewStatus() parcel.Status { return c.newStatus }

// Location returns where the transition happened, possibly empty.
func (c SetParcelStatusCommand) Location() string { return c.location }

// VehicleID returns the vehicle involved, possibly empty.
func (c SetParcelStatusCommand) VehicleID() string { return c.vehicleID }

// WarehouseID returns the warehouse involved, possibly empty.
func (c SetParcelStatusCommand) WarehouseID() string { return c.warehouseID }

// Description returns the caller-supplied event description, possibly empty.
func (c SetParcelStatusCommand) Description() string { return c.description }

func (c *SetParcelStatusCommand) setActorRole(actorRole account.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}
	c.actorRole = actorRole
	return nil
}

func (c *SetParcelStatusCommand) setOperator(operator string) error {
	if operator == "" {
		return errs.NewValueIsRequiredError("operator")
	}
	c.operator = operator
	return nil
}

func (c *SetParcelStatusCommand) setTrackingNumber(trackingNumber parcel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}
	c.trackingNumber = trackingNumber
	return nil
}

func (c *SetParcelStatusCommand) setNewStatus(newStatus parcel.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	c.newStatus = newStatus
	return nil
}
