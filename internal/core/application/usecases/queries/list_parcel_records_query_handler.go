package queries

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"parcels/internal/core/domain/model/account"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var (
	ErrListParcelRecordsQueryHandlerIsNotConstructed = errors.New(
		"ListParcelRecordsQueryHandler must be created via NewListParcelRecordsQueryHandler constructor",
	)
)

// ListParcelRecordsQueryHandler reads parcel rows straight from the
// database, applying actor scoping and audit trail filters in SQL.
type ListParcelRecordsQueryHandler struct {
	db *gorm.DB

	guard guard.ConstructorGuard
}

// NewListParcelRecordsQueryHandler creates a handler bound to a database
// connection.
func NewListParcelRecordsQueryHandler(db *gorm.DB) (ListParcelRecordsQueryHandler, error) {
	if db == nil {
		return ListParcelRecordsQueryHandler{}, errs.NewValueIsRequiredError("db")
	}
	return ListParcelRecordsQueryHandler{
		db:    db,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Handle returns the parcel records visible to the query's actor.
// Customers are scoped to their own parcels; vehicle/warehouse patterns
// select parcels whose audit trail matches.
func (h ListParcelRecordsQueryHandler) Handle(
	ctx context.Context, query ListParcelRecordsQuery,
) ([]ListParcelRecordsQueryResponse, error) {
	if err := h.guard.Validate(ErrListParcelRecordsQueryHandlerIsNotConstructed); err != nil {
		return nil, err
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := strings.Builder{}
	sql.WriteString(
		`SELECT tracking_number, sender_id, recipient_name, recipient_address,
		        weight, package_type, created_at, amount, status
		 FROM parcels
		 WHERE 1=1`,
	)
	args := make([]any, 0, 3)

	if query.ActorRole() == account.RoleCustomer {
		sql.WriteString(" AND sender_id = ?")
		args = append(args, query.ActorUsername())
	}
	// A vehicle pattern and a warehouse pattern widen the same trail
	// search: a parcel matches when any of its events matches either.
	trailConditions := make([]string, 0, 2)
	if query.VehicleID() != "" {
		trailConditions = append(trailConditions, "LOWER(vehicle_id) LIKE ?")
		args = append(args, "%"+strings.ToLower(query.VehicleID())+"%")
	}
	if query.WarehouseID() != "" {
		trailConditions = append(trailConditions, "LOWER(warehouse_id) LIKE ?")
		args = append(args, "%"+strings.ToLower(query.WarehouseID())+"%")
	}
	if len(trailConditions) > 0 {
		sql.WriteString(
			` AND tracking_number IN (
			     SELECT tracking_number FROM tracking_events
			     WHERE ` + strings.Join(trailConditions, " OR ") + `)`,
		)
	}
	sql.WriteString(" ORDER BY created_at DESC, tracking_number")

	rows, err := h.db.WithContext(ctx).Raw(sql.String(), args...).Rows()
	if err != nil {
		return nil, fmt.Errorf("query parcel records: %w", err)
	}
	defer rows.Close()

	records := make([]ListParcelRecordsQueryResponse, 0)
	for rows.Next() {
		var record ListParcelRecordsQueryResponse
		var status int
		err := rows.Scan(
			&record.TrackingNumber,
			&record.SenderID,
			&record.RecipientName,
			&record.RecipientAddress,
			&record.Weight,
			&record.PackageType,
			&record.CreatedAt,
			&record.Amount,
			&status,
		)
		if err != nil {
			return nil, fmt.Errorf("scan parcel record row: %w", err)
		}
		record.Status = parcel.Status(status).String()
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate parcel record rows: %w", err)
	}

	return records, nil
}
