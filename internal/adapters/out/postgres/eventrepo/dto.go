// Package eventrepo provides data transfer objects and mapping functions for
// tracking event persistence. Events form the append-only audit trail; the
// bigserial surrogate key preserves insertion order for same-timestamp ties.
package eventrepo

import (
	"time"

	"parcels/internal/core/domain/model/tracking"
)

// EventDTO represents the database structure for persisting tracking events.
// The surrogate id keeps insertion order; event_id stays unique on its own.
type EventDTO struct {
	ID             uint64 `gorm:"primaryKey;autoIncrement"`
	EventID        string `gorm:"uniqueIndex"`
	TrackingNumber string `gorm:"index"`
	EventType      string
	Timestamp      time.Time `gorm:"index"`
	Location       string
	VehicleID      string
	WarehouseID    string
	Operator       string
	Description    string
}

// TableName specifies the database table name for tracking events.
func (EventDTO) TableName() string {
	return "tracking_events"
}

// fromDomain converts a tracking event to its database representation.
// The surrogate id is left zero so the database assigns it.
func fromDomain(event *tracking.Event) EventDTO {
	return EventDTO{
		EventID:        event.ID().String(),
		TrackingNumber: event.TrackingNumber().String(),
		EventType:      event.EventType(),
		Timestamp:      event.Timestamp(),
		Location:       event.Location(),
		VehicleID:      event.VehicleID(),
		WarehouseID:    event.WarehouseID(),
		Operator:       event.Operator(),
		Description:    event.Description(),
	}
}
