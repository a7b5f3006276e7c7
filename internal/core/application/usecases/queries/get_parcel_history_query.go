// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var (
	ErrGetParcelHistoryQueryIsNotConstructed = errors.New(
		"GetParcelHistoryQuery must be created via NewGetParcelHistoryQuery constructor",
	)
)

// GetParcelHistoryQuery retrieves a parcel's complete audit trail, ordered
// newest first. An unknown tracking number yields an empty trail, not an
// error.
//
// Example:
//
//	query, err := NewGetParcelHistoryQuery("TRK-20250115-3fa85f642b88")
//	if err != nil {
//	    return err
//	}
//
//	events, err := handler.Handle(ctx, query)
type GetParcelHistoryQuery struct {
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewGetParcelHistoryQuery creates a history query for one parcel.
func NewGetParcelHistoryQuery(trackingNumber string) (GetParcelHistoryQuery, error) {
	if trackingNumber == "" {
		return GetParcelHistoryQuery{}, errs.NewValueIsRequiredError("tracking_number")
	}
	return GetParcelHistoryQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelHistoryQueryIsNotConstructed)
}

// TrackingNumber returns the tracking number the history is requested for.
func (q GetParcelHistoryQuery) TrackingNumber() string {
	return q.trackingNumber
}

// GetParcelHistoryQueryResponse represents one audit trail entry in the
// read model.
type GetParcelHistoryQueryResponse struct {
	EventID        string
	TrackingNumber string
	EventType      string
	Timestamp      time.Time
	Location       string
	VehicleID      string
	WarehouseID    string
	Operator       string
	Description    string
}
