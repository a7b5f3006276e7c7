package commands

import (
	"context"
	"errors"

	"parcels/internal/core/domain/model/account"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var (
	ErrCreateCustomerCommandIsNotConstructed = errors.New(
		"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
	)
)

// CreateCustomerCommand represents an office-side creation of a customer
// profile, independent of self-registration. The staff/admin restriction is
// enforced by the HTTP layer.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	account           string
	name              string
	phone             string
	email             string
	address           string
	customerType      string
	billingPreference string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a profile creation command.
func NewCreateCustomerCommand(
	accountName string,
	name string,
	phone string,
	email string,
	address string,
	customerType string,
	billingPreference string,
) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		name:              name,
		phone:             phone,
		email:             email,
		address:           address,
		customerType:      customerType,
		billingPreference: billingPreference,
		guard:             guard.NewConstructorGuard(),
	}

	if accountName == "" {
		return CreateCustomerCommand{}, errs.NewValueIsRequiredError("account")
	}
	cmd.account = accountName

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// Account returns the username the profile is attached to.
func (c CreateCustomerCommand) Account() string { return c.account }

// CreateCustomerCommandHandler handles office-side customer profile creation.
type CreateCustomerCommandHandler struct {
	uowFactory IdentityUoWFactory
}

// NewCreateCustomerCommandHandler creates a handler for profile creation.
func NewCreateCustomerCommandHandler(uowFactory IdentityUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the profile creation command.
func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	profile, err := account.NewCustomer(
		cmd.account,
		cmd.name,
		cmd.phone,
		cmd.email,
		cmd.address,
		cmd.customerType,
		cmd.billingPreference,
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CustomerRepository().Add(ctx, profile); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
