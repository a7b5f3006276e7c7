package queries

import (
	"errors"
	"time"

	"parcels/internal/pkg/guard"
)

var (
	ErrListCustomersQueryIsNotConstructed = errors.New(
		"ListCustomersQuery must be created via NewListCustomersQuery constructor",
	)
)

// ListCustomersQuery retrieves all customer profiles. Access control is
// the inbound adapter's concern.
type ListCustomersQuery struct {
	guard guard.ConstructorGuard
}

// NewListCustomersQuery creates a customers listing query.
func NewListCustomersQuery() (ListCustomersQuery, error) {
	return ListCustomersQuery{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListCustomersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomersQueryIsNotConstructed)
}

// ListCustomersQueryResponse represents one customer profile row.
type ListCustomersQueryResponse struct {
	AccountUsername   string
	Name              string
	Phone             string
	Email             string
	Address           string
	CustomerType      string
	BillingPreference string
	CreatedAt         time.Time
}
