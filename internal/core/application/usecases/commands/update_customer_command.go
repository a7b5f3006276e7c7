package commands

import (
	"errors"

	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var (
	ErrUpdateCustomerCommandIsNotConstructed = errors.New(
		"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
	)
)

// UpdateCustomerCommand represents an office-side edit of a customer
// profile. Empty fields keep their current values.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	account           string
	name              string
	phone             string
	email             string
	address           string
	customerType      string
	billingPreference string

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates a profile update command.
func NewUpdateCustomerCommand(
	accountName string,
	name string,
	phone string,
	email string,
	address string,
	customerType string,
	billingPreference string,
) (UpdateCustomerCommand, error) {
	cmd := UpdateCustomerCommand{
		name:              name,
		phone:             phone,
		email:             email,
		address:           address,
		customerType:      customerType,
		billingPreference: billingPreference,
		guard:             guard.NewConstructorGuard(),
	}

	if err := cmd.setAccount(accountName); err != nil {
		return UpdateCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// Account returns the username of the profile's owning account.
func (c UpdateCustomerCommand) Account() string { return c.account }

// Name returns the replacement contact name, possibly empty.
func (c UpdateCustomerCommand) Name() string { return c.name }

// Phone returns the replacement phone, possibly empty.
func (c UpdateCustomerCommand) Phone() string { return c.phone }

// Email returns the replacement email, possibly empty.
func (c UpdateCustomerCommand) Email() string { return c.email }

// Address returns the replacement address, possibly empty.
func (c UpdateCustomerCommand) Address() string { return c.address }

// CustomerType returns the replacement contract classification, possibly empty.
func (c UpdateCustomerCommand) CustomerType() string { return c.customerType }

// BillingPreference returns the replacement billing mode, possibly empty.
func (c UpdateCustomerCommand) BillingPreference() string { return c.billingPreference }

func (c *UpdateCustomerCommand) setAccount(accountName string) error {
	if accountName == "" {
		return errs.NewValueIsRequiredError("account")
	}
	c.account = accountName
	return nil
}
