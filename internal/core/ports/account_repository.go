package ports

import (
	"context"

	"parcels/internal/core/domain/model/account"
)

// AccountRepository defines the persistence contract for login accounts.
type AccountRepository interface {
	// Add persists a new account. Fails if the username already exists.
	Add(ctx context.Context, aggregate *account.Account) error

	// GetByUsername retrieves an account by its unique username.
	GetByUsername(ctx context.Context, username string) (*account.Account, error)
}

// CustomerRepository defines the persistence contract for customer profiles.
type CustomerRepository interface {
	// Add persists a new customer profile.
	Add(ctx context.Context, aggregate *account.Customer) error

	// Update persists changes to an existing customer profile.
	Update(ctx context.Context, aggregate *account.Customer) error

	// GetByAccount retrieves the profile owned by the given account username.
	GetByAccount(ctx context.Context, accountName string) (*account.Customer, error)
}
