package commands

import (
	"context"
	"fmt"
	"time"

	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/tracking"
)

// SetParcelAmountCommandHandler handles the billing operation. The amount
// write and its "billing completed" audit event commit as one transaction,
// under the same row lock the status engine uses, so billing can run
// repeatedly and concurrently without corrupting the trail.
type SetParcelAmountCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewSetParcelAmountCommandHandler creates a handler for billing operations.
// Requires a ParcelUoWFactory for transactional persistence.
func NewSetParcelAmountCommandHandler(uowFactory ParcelUoWFactory) SetParcelAmountCommandHandler {
	return SetParcelAmountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the billing command and returns the updated parcel.
func (h *SetParcelAmountCommandHandler) Handle(ctx context.Context, cmd SetParcelAmountCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()

	aggregate, err := parcelRepo.GetForUpdate(ctx, cmd.TrackingNumber())
	if err != nil {
		return nil, err
	}

	if err = aggregate.SetBilling(cmd.Amount(), cmd.Method(), cmd.NewServiceType()); err != nil {
		return nil, err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	description := fmt.Sprintf("amount: %.2f, method: %s, status: %s",
		cmd.Amount(), cmd.Method(), aggregate.PaymentStatus())
	if cmd.NewServiceType() != "" {
		description += fmt.Sprintf(", service type updated to: %s", cmd.NewServiceType())
	}

	event, err := tracking.NewEvent(
		cmd.TrackingNumber(),
		tracking.EventTypeBillingCompleted,
		time.Now(),
		tracking.Context{Location: "system"},
		cmd.Operator(),
		description,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.TrackingEventRepository().Add(ctx, event); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
