package cmd

import (
	"context"
	"errors"
	"log/slog"

	"parcels/internal/core/domain/model/account"
	"parcels/internal/pkg/errs"
)

type seedAccount struct {
	username string
	password string
	role     account.Role
}

var defaultAccounts = []seedAccount{
	{"staff1", "staff123", account.RoleStaff},
	{"admin1", "admin123", account.RoleAdmin},
	{"driver1", "driver123", account.RoleDriver},
	{"warehouse1", "warehouse123", account.RoleWarehouse},
	{"test1", "test123", account.RoleCustomer},
}

// SeedDefaultAccounts inserts the built-in accounts when they are absent.
// Existing accounts are left untouched, so operators can rotate passwords
// without the seeder reverting them on restart.
func (c *CompositionRoot) SeedDefaultAccounts(ctx context.Context) error {
	for _, seed := range defaultAccounts {
		uow := c.uowFactory.Create()

		_, err := uow.AccountRepository().GetByUsername(ctx, seed.username)
		if err == nil {
			continue
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}

		aggregate, err := account.NewAccount(seed.username, seed.password, seed.role)
		if err != nil {
			return err
		}

		if err = uow.Begin(ctx); err != nil {
			return err
		}
		if err = uow.AccountRepository().Add(ctx, aggregate); err != nil {
			_ = uow.Rollback(ctx)
			return err
		}
		if err = uow.Commit(ctx); err != nil {
			return err
		}

		slog.Info("seeded default account",
			"username", seed.username, "role", seed.role.String())
	}

	return nil
}
