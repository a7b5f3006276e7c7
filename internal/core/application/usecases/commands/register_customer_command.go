package commands

import (
	"errors"

	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var (
	ErrRegisterCustomerCommandIsNotConstructed = errors.New(
		"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
	)

	// ErrUsernameAlreadyTaken rejects registration under an existing username.
	ErrUsernameAlreadyTaken = errors.New("username is already taken")
)

// RegisterCustomerCommand represents a self-service customer registration:
// one customer-role account plus its contact/billing profile.
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	username          string
	password          string
	name              string
	phone             string
	email             string
	address           string
	customerType      string
	billingPreference string

	guard guard.ConstructorGuard
}

// NewRegisterCustomerCommand creates a registration command.
// Username and password are required; profile fields are optional and fall
// back to the account package defaults.
func NewRegisterCustomerCommand(
	username string,
	password string,
	name string,
	phone string,
	email string,
	address string,
	customerType string,
	billingPreference string,
) (RegisterCustomerCommand, error) {
	cmd := RegisterCustomerCommand{
		name:              name,
		phone:             phone,
		email:             email,
		address:           address,
		customerType:      customerType,
		billingPreference: billingPreference,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUsername(username),
		cmd.setPassword(password),
	); err != nil {
		return RegisterCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

// Username returns the requested login name.
func (c RegisterCustomerCommand) Username() string { return c.username }

// Password returns the plaintext password to be hashed.
func (c RegisterCustomerCommand) Password() string { return c.password }

// Name returns the contact name, possibly empty.
func (c RegisterCustomerCommand) Name() string { return c.name }

// Phone returns the contact phone, possibly empty.
func (c RegisterCustomerCommand) Phone() string { return c.phone }

// Email returns the contact email, possibly empty.
func (c RegisterCustomerCommand) Email() string { return c.email }

// Address returns the billing address, possibly empty.
func (c RegisterCustomerCommand) Address() string { return c.address }

// CustomerType returns the contract classification, possibly empty.
func (c RegisterCustomerCommand) CustomerType() string { return c.customerType }

// BillingPreference returns the preferred billing mode, possibly empty.
func (c RegisterCustomerCommand) BillingPreference() string { return c.billingPreference }

func (c *RegisterCustomerCommand) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	c.username = username
	return nil
}

func (c *RegisterCustomerCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = password
	return nil
}
