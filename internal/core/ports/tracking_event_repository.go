package ports

import (
	"context"

	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/tracking"
)

// TrackingEventRepository defines the persistence contract for the
// append-only audit trail. Events are never updated; the only removal is
// the cascade that accompanies parcel deletion.
type TrackingEventRepository interface {
	// Add appends an immutable event to the trail. Fails only on storage
	// unavailability, which is propagated, not swallowed.
	Add(ctx context.Context, event *tracking.Event) error

	// DeleteForParcel removes every event of the given parcel. Used only by
	// parcel deletion, in the same transaction that removes the parcel.
	DeleteForParcel(ctx context.Context, trackingNumber parcel.TrackingNumber) error
}
