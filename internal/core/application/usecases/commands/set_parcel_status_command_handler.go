package commands

import (
	"context"
	"fmt"
	"time"

	"parcels/internal/core/domain/model/tracking"
)

// SetParcelStatusCommandHandler is the status transition engine. It loads
// the parcel under a row-level lock, lets the aggregate evaluate the role
// and abnormal-lock rules against its current status, and commits the
// status write together with exactly one audit event.
//
// Two concurrent transitions on the same parcel serialize on the locked
// read: the second caller observes the first caller's committed status, so
// the lock rules are always evaluated against the latest state. A failure
// anywhere in the sequence rolls back both the status write and the event
// append; the parcel and its audit trail never diverge.
type SetParcelStatusCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewSetParcelStatusCommandHandler creates the status transition engine.
// Requires a ParcelUoWFactory for transactional persistence.
func NewSetParcelStatusCommandHandler(uowFactory ParcelUoWFactory) SetParcelStatusCommandHandler {
	return SetParcelStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status transition command.
// Failure order: unknown parcel, then customer rejection, then the
// abnormal-state lock, then the role allow-list. When the caller supplies
// no description, the event records "status changed to <STATUS>".
func (h *SetParcelStatusCommandHandler) Handle(ctx context.Context, cmd SetParcelStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()

	aggregate, err := parcelRepo.GetForUpdate(ctx, cmd.TrackingNumber())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(cmd.ActorRole(), cmd.NewStatus()); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	description := cmd.Description()
	if description == "" {
		description = fmt.Sprintf("status changed to %s", cmd.NewStatus())
	}

	event, err := tracking.NewEvent(
		cmd.TrackingNumber(),
		cmd.NewStatus().String(),
		time.Now(),
		tracking.Context{
			Location:    cmd.Location(),
			VehicleID:   cmd.VehicleID(),
			WarehouseID: cmd.WarehouseID(),
		},
		cmd.Operator(),
		description,
	)
	if err != nil {
		return err
	}

	if err = uow.TrackingEventRepository().Add(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
