package commands

import (
	"context"
	"fmt"
	"time"

	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/tracking"
)

// CreateParcelCommandHandler handles the business logic for parcel creation.
// Allocates a tracking number, persists the parcel in CREATED status and
// appends the creation event to the audit trail, all in one transaction.
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewCreateParcelCommandHandler creates a handler for parcel creation.
// Requires a ParcelUoWFactory for transactional persistence.
func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel creation command and returns the created
// aggregate. The parcel insert and the creation event commit together; a
// failure of either leaves no trace of the parcel.
func (h *CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	createdAt := time.Now()
	trackingNumber := parcel.NewTrackingNumber(createdAt)

	newParcel, err := parcel.NewParcel(
		trackingNumber,
		cmd.SenderID(),
		cmd.RecipientName(),
		cmd.RecipientAddress(),
		cmd.Weight(),
		cmd.PackageType(),
		cmd.DeclaredValue(),
		cmd.Contents(),
		cmd.ServiceType(),
		createdAt,
	)
	if err != nil {
		return nil, err
	}

	event, err := tracking.NewEvent(
		trackingNumber,
		parcel.StatusCreated.String(),
		createdAt,
		tracking.Context{Location: "system"},
		cmd.Operator(),
		fmt.Sprintf("parcel created by %s", cmd.SenderID()),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ParcelRepository().Add(ctx, newParcel); err != nil {
		return nil, err
	}

	if err = uow.TrackingEventRepository().Add(ctx, event); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newParcel, nil
}
