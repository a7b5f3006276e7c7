package eventrepo

import (
	"context"

	"gorm.io/gorm"

	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/tracking"
)

// GormTrackingEventRepository implements TrackingEventRepository using GORM.
type GormTrackingEventRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormTrackingEventRepository creates a new GORM tracking event repository.
func NewGormTrackingEventRepository(db *gorm.DB, tracker aggregateTracker) *GormTrackingEventRepository {
	return &GormTrackingEventRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends an event to the audit trail.
func (r *GormTrackingEventRepository) Add(ctx context.Context, event *tracking.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(event.ID().String(), event)
	return nil
}

// DeleteForParcel removes all events belonging to a parcel. Deleting zero
// rows is not an error: a parcel may legitimately have no trail rows left.
func (r *GormTrackingEventRepository) DeleteForParcel(
	ctx context.Context, trackingNumber parcel.TrackingNumber,
) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Delete(&EventDTO{}, "tracking_number = ?", trackingNumber.String()).Error
}
