package queries

import (
	"errors"
	"time"

	"parcels/internal/core/domain/model/account"
	"parcels/internal/pkg/guard"
)

var (
	ErrListParcelRecordsQueryIsNotConstructed = errors.New(
		"ListParcelRecordsQuery must be created via NewListParcelRecordsQuery constructor",
	)
)

// ListParcelRecordsQuery retrieves parcel records visible to the calling
// actor. Customers only see parcels they sent; other roles see everything.
// Optional vehicle/warehouse patterns narrow the result to parcels whose
// audit trail mentions a matching vehicle or warehouse.
type ListParcelRecordsQuery struct {
	actorRole     account.Role
	actorUsername string
	vehicleID     string
	warehouseID   string

	guard guard.ConstructorGuard
}

// NewListParcelRecordsQuery creates a records query for the given actor.
// vehicleID and warehouseID are optional case-insensitive substring
// filters; empty strings disable them.
func NewListParcelRecordsQuery(
	actorRole account.Role, actorUsername string, vehicleID string, warehouseID string,
) (ListParcelRecordsQuery, error) {
	if err := actorRole.Validate(); err != nil {
		return ListParcelRecordsQuery{}, err
	}
	return ListParcelRecordsQuery{
		actorRole:     actorRole,
		actorUsername: actorUsername,
		vehicleID:     vehicleID,
		warehouseID:   warehouseID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListParcelRecordsQuery) Validate() error {
	return q.guard.Validate(ErrListParcelRecordsQueryIsNotConstructed)
}

// ActorRole returns the role of the caller.
func (q ListParcelRecordsQuery) ActorRole() account.Role {
	return q.actorRole
}

// ActorUsername returns the username of the caller.
func (q ListParcelRecordsQuery) ActorUsername() string {
	return q.actorUsername
}

// VehicleID returns the vehicle filter pattern, empty when unset.
func (q ListParcelRecordsQuery) VehicleID() string {
	return q.vehicleID
}

// WarehouseID returns the warehouse filter pattern, empty when unset.
func (q ListParcelRecordsQuery) WarehouseID() string {
	return q.warehouseID
}

// ListParcelRecordsQueryResponse represents one parcel row in the
// records read model.
type ListParcelRecordsQueryResponse struct {
	TrackingNumber   string
	SenderID         string
	RecipientName    string
	RecipientAddress string
	Weight           float64
	PackageType      string
	CreatedAt        time.Time
	Amount           *float64
	Status           string
}
