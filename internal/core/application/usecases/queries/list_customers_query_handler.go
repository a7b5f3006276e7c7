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
	ErrListCustomersQueryHandlerIsNotConstructed = errors.New(
		"ListCustomersQueryHandler must be created via NewListCustomersQueryHandler constructor",
	)
)

// ListCustomersQueryHandler reads customer profiles straight from the
// database.
type ListCustomersQueryHandler struct {
	db *gorm.DB

	guard guard.ConstructorGuard
}

// NewListCustomersQueryHandler creates a handler bound to a database
// connection.
func NewListCustomersQueryHandler(db *gorm.DB) (ListCustomersQueryHandler, error) {
	if db == nil {
		return ListCustomersQueryHandler{}, errs.NewValueIsRequiredError("db")
	}
	return ListCustomersQueryHandler{
		db:    db,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Handle returns all customer profiles ordered by username.
func (h ListCustomersQueryHandler) Handle(
	ctx context.Context, query ListCustomersQuery,
) ([]ListCustomersQueryResponse, error) {
	if err := h.guard.Validate(ErrListCustomersQueryHandlerIsNotConstructed); err != nil {
		return nil, err
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT account_username, name, phone, email, address,
		        customer_type, billing_preference, created_at
		 FROM customers
		 ORDER BY account_username`,
	).Rows()
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	defer rows.Close()

	customers := make([]ListCustomersQueryResponse, 0)
	for rows.Next() {
		var customer ListCustomersQueryResponse
		err := rows.Scan(
			&customer.AccountUsername,
			&customer.Name,
			&customer.Phone,
			&customer.Email,
			&customer.Address,
			&customer.CustomerType,
			&customer.BillingPreference,
			&customer.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan customer row: %w", err)
		}
		customers = append(customers, customer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customer rows: %w", err)
	}

	return customers, nil
}
