package commands

import (
	"context"
	"errors"

	"parcels/internal/core/domain/model/account"
	"parcels/internal/pkg/errs"
)

// RegisterCustomerCommandHandler handles customer self-registration.
// The account and its customer profile are created in one transaction, so a
// customer account never exists without its profile.
type RegisterCustomerCommandHandler struct {
	uowFactory IdentityUoWFactory
}

// NewRegisterCustomerCommandHandler creates a handler for registration.
// Requires an IdentityUoWFactory for transactional persistence.
func NewRegisterCustomerCommandHandler(uowFactory IdentityUoWFactory) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
// Fails with ErrUsernameAlreadyTaken when the username exists.
func (h *RegisterCustomerCommandHandler) Handle(ctx context.Context, cmd RegisterCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()

	_, err := accountRepo.GetByUsername(ctx, cmd.Username())
	switch {
	case err == nil:
		return ErrUsernameAlreadyTaken
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	newAccount, err := account.NewAccount(cmd.Username(), cmd.Password(), account.RoleCustomer)
	if err != nil {
		return err
	}

	profile, err := account.NewCustomer(
		cmd.Username(),
		cmd.Name(),
		cmd.Phone(),
		cmd.Email(),
		cmd.Address(),
		cmd.CustomerType(),
		cmd.BillingPreference(),
	)
	if err != nil {
		return err
	}

	if err = accountRepo.Add(ctx, newAccount); err != nil {
		return err
	}

	if err = uow.CustomerRepository().Add(ctx, profile); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
