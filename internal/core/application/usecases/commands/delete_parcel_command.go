package commands

import (
	"errors"

	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/guard"
)

var (
	ErrDeleteParcelCommandIsNotConstructed = errors.New(
		"DeleteParcelCommand must be created via NewDeleteParcelCommand constructor",
	)
)

// DeleteParcelCommand represents a request to remove a parcel and its audit
// trail. The admin/staff restriction is enforced by the HTTP layer before
// the command is built.
type DeleteParcelCommand struct { //nolint:recvcheck //using for validation
	trackingNumber parcel.TrackingNumber

	guard guard.ConstructorGuard
}

// NewDeleteParcelCommand creates a parcel deletion command.
func NewDeleteParcelCommand(trackingNumber parcel.TrackingNumber) (DeleteParcelCommand, error) {
	cmd := DeleteParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTrackingNumber(trackingNumber); err != nil {
		return DeleteParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteParcelCommand) Validate() error {
	return c.guard.Validate(ErrDeleteParcelCommandIsNotConstructed)
}

// TrackingNumber returns the tracking number of the parcel to delete.
func (c DeleteParcelCommand) TrackingNumber() parcel.TrackingNumber { return c.trackingNumber }

func (c *DeleteParcelCommand) setTrackingNumber(trackingNumber parcel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}
	c.trackingNumber = trackingNumber
	return nil
}
