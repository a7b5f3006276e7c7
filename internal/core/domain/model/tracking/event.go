package tracking

import (
	"errors"
	"strings"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/errs"
)

// EventTypeBillingCompleted labels the audit record appended by the billing
// operation. Status transitions use the status literal itself as the event
// type, so this is the only non-status event type in the trail.
const EventTypeBillingCompleted = "billing completed"

// eventIDPrefix is a display convention only; uniqueness rests on the
// UUID-derived body.
const eventIDPrefix = "EVT"

var (
	// ErrEventIsNotConstructed is returned when an Event instance was not
	// created through NewEvent or RestoreEvent.
	ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent or RestoreEvent")
)

// EventID is the unique key of a tracking event, formatted as
// EVT-<32 hex chars>.
type EventID struct {
	value string
}

// NewEventID allocates a new event identifier.
func NewEventID() EventID {
	return EventID{value: eventIDPrefix + "-" + strings.ReplaceAll(kernel.NewUUID().String(), "-", "")}
}

// EventIDFromString reconstructs an event identifier from persistence.
func EventIDFromString(s string) (EventID, error) {
	if s == "" {
		return EventID{}, errs.NewValueIsRequiredError("event_id")
	}
	return EventID{value: s}, nil
}

// String returns the full event identifier.
func (id EventID) String() string { return id.value }

// Validate checks that the event identifier is non-empty.
func (id EventID) Validate() error {
	if id.value == "" {
		return errs.NewValueIsRequiredError("event_id")
	}
	return nil
}

// Context carries the optional circumstances of an event: where it
// happened and which vehicle or warehouse was involved.
type Context struct {
	Location    string
	VehicleID   string
	WarehouseID string
}

// Event is one immutable record in a parcel's audit trail. Every accepted
// status transition appends exactly one event whose type equals the new
// status literal; billing appends one "billing completed" event. Events are
// never updated or individually deleted; they only disappear when their
// parcel is deleted, which cascades over the whole trail.
type Event struct {
	id             EventID
	trackingNumber parcel.TrackingNumber
	eventType      string
	timestamp      time.Time
	location       string
	vehicleID      string
	warehouseID    string
	operator       string
	description    string

	isConstructed bool
}

// NewEvent creates an audit record for the given parcel. An event identifier
// is assigned automatically. The event type and operator are required; the
// context fields are optional.
func NewEvent(
	trackingNumber parcel.TrackingNumber,
	eventType string,
	timestamp time.Time,
	ctx Context,
	operator string,
	description string,
) (*Event, error) {
	if err := trackingNumber.Validate(); err != nil {
		return nil, err
	}
	if eventType == "" {
		return nil, errs.NewValueIsRequiredError("event_type")
	}
	if operator == "" {
		return nil, errs.NewValueIsRequiredError("operator")
	}

	return &Event{
		id:             NewEventID(),
		trackingNumber: trackingNumber,
		eventType:      eventType,
		timestamp:      timestamp,
		location:       ctx.Location,
		vehicleID:      ctx.VehicleID,
		warehouseID:    ctx.WarehouseID,
		operator:       operator,
		description:    description,
		isConstructed:  true,
	}, nil
}

// RestoreEvent reconstructs an event from persistence, keeping its stored
// identifier.
func RestoreEvent(
	id EventID,
	trackingNumber parcel.TrackingNumber,
	eventType string,
	timestamp time.Time,
	ctx Context,
	operator string,
	description string,
) (*Event, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := trackingNumber.Validate(); err != nil {
		return nil, err
	}
	if eventType == "" {
		return nil, errs.NewValueIsRequiredError("event_type")
	}

	return &Event{
		id:             id,
		trackingNumber: trackingNumber,
		eventType:      eventType,
		timestamp:      timestamp,
		location:       ctx.Location,
		vehicleID:      ctx.VehicleID,
		warehouseID:    ctx.WarehouseID,
		operator:       operator,
		description:    description,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Event instance was properly constructed.
func (e *Event) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

// ID returns the event's unique identifier.
func (e *Event) ID() EventID { return e.id }

// TrackingNumber returns the tracking number of the parcel the event belongs to.
func (e *Event) TrackingNumber() parcel.TrackingNumber { return e.trackingNumber }

// EventType returns the event type: a status literal, or a descriptive
// label for non-status events such as billing.
func (e *Event) EventType() string { return e.eventType }

// Timestamp returns when the event occurred.
func (e *Event) Timestamp() time.Time { return e.timestamp }

// Location returns where the event occurred, if recorded.
func (e *Event) Location() string { return e.location }

// VehicleID returns the vehicle involved, if any.
func (e *Event) VehicleID() string { return e.vehicleID }

// WarehouseID returns the warehouse involved, if any.
func (e *Event) WarehouseID() string { return e.warehouseID }

// Operator returns the identity of the actor who caused the event.
func (e *Event) Operator() string { return e.operator }

// Description returns the human-readable event description.
func (e *Event) Description() string { return e.description }
