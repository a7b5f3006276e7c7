package ports

import (
	"context"

	"parcels/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
// Implementations surface errs.ObjectNotFoundError for unknown tracking
// numbers so callers can classify the failure without knowing the storage
// engine.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel by its tracking number.
	Get(ctx context.Context, trackingNumber parcel.TrackingNumber) (*parcel.Parcel, error)

	// GetForUpdate retrieves a parcel by its tracking number while holding a
	// row-level lock for the remainder of the surrounding transaction.
	// Concurrent callers on the same tracking number serialize here, which is
	// what keeps the read-check-write-append sequence of a status transition
	// atomic. Must be called inside an active transaction.
	GetForUpdate(ctx context.Context, trackingNumber parcel.TrackingNumber) (*parcel.Parcel, error)

	// Delete removes a parcel. The caller is responsible for removing the
	// parcel's tracking events in the same transaction.
	Delete(ctx context.Context, trackingNumber parcel.TrackingNumber) error
}
