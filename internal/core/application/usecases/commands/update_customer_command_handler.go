package commands

import (
	"context"
)

// UpdateCustomerCommandHandler handles office-side customer profile edits.
type UpdateCustomerCommandHandler struct {
	uowFactory IdentityUoWFactory
}

// NewUpdateCustomerCommandHandler creates a handler for profile updates.
func NewUpdateCustomerCommandHandler(uowFactory IdentityUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the profile update command.
// Fails with an object-not-found error when no profile exists for the account.
func (h *UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) error {
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

	customerRepo := uow.CustomerRepository()

	profile, err := customerRepo.GetByAccount(ctx, cmd.Account())
	if err != nil {
		return err
	}

	if err = profile.Update(
		cmd.Name(),
		cmd.Phone(),
		cmd.Email(),
		cmd.Address(),
		cmd.CustomerType(),
		cmd.BillingPreference(),
	); err != nil {
		return err
	}

	if err = customerRepo.Update(ctx, profile); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
