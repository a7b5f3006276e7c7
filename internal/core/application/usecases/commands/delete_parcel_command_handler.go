package commands

import (
	"context"
)

// DeleteParcelCommandHandler handles parcel deletion. The parcel row and
// its entire audit trail are removed in one transaction; a parcel is never
// left behind without its events or vice versa.
type DeleteParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewDeleteParcelCommandHandler creates a handler for parcel deletion.
// Requires a ParcelUoWFactory for transactional persistence.
func NewDeleteParcelCommandHandler(uowFactory ParcelUoWFactory) DeleteParcelCommandHandler {
	return DeleteParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
// Fails with an object-not-found error when the tracking number is unknown.
func (h *DeleteParcelCommandHandler) Handle(ctx context.Context, cmd DeleteParcelCommand) error {
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

	// Locked read so a concurrent transition cannot append to a trail that
	// is being deleted.
	if _, err := parcelRepo.GetForUpdate(ctx, cmd.TrackingNumber()); err != nil {
		return err
	}

	if err := uow.TrackingEventRepository().DeleteForParcel(ctx, cmd.TrackingNumber()); err != nil {
		return err
	}

	if err := parcelRepo.Delete(ctx, cmd.TrackingNumber()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
