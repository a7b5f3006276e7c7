package queries

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var (
	ErrGetParcelHistoryQueryHandlerIsNotConstructed = errors.New(
		"GetParcelHistoryQueryHandler must be created via NewGetParcelHistoryQueryHandler constructor",
	)
)

// GetParcelHistoryQueryHandler reads the audit trail straight from the
// events table, bypassing the domain model.
type GetParcelHistoryQueryHandler struct {
	db *gorm.DB

	guard guard.ConstructorGuard
}

// NewGetParcelHistoryQueryHandler creates a handler bound to a database
// connection.
func NewGetParcelHistoryQueryHandler(db *gorm.DB) (GetParcelHistoryQueryHandler, error) {
	if db == nil {
		return GetParcelHistoryQueryHandler{}, errs.NewValueIsRequiredError("db")
	}
	return GetParcelHistoryQueryHandler{
		db:    db,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Handle returns the parcel's events ordered newest first. Events sharing
// a timestamp keep insertion order via the surrogate id.
func (h GetParcelHistoryQueryHandler) Handle(
	ctx context.Context, query GetParcelHistoryQuery,
) ([]GetParcelHistoryQueryResponse, error) {
	if err := h.guard.Validate(ErrGetParcelHistoryQueryHandlerIsNotConstructed); err != nil {
		return nil, err
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT event_id, tracking_number, event_type, timestamp,
		        location, vehicle_id, warehouse_id, operator, description
		 FROM tracking_events
		 WHERE tracking_number = ?
		 ORDER BY timestamp DESC, id DESC`,
		query.TrackingNumber(),
	).Rows()
	if err != nil {
		return nil, fmt.Errorf("query parcel history: %w", err)
	}
	defer rows.Close()

	events := make([]GetParcelHistoryQueryResponse, 0)
	for rows.Next() {
		var event GetParcelHistoryQueryResponse
		err := rows.Scan(
			&event.EventID,
			&event.TrackingNumber,
			&event.EventType,
			&event.Timestamp,
			&event.Location,
			&event.VehicleID,
			&event.WarehouseID,
			&event.Operator,
			&event.Description,
		)
		if err != nil {
			return nil, fmt.Errorf("scan parcel history row: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate parcel history rows: %w", err)
	}

	return events, nil
}
