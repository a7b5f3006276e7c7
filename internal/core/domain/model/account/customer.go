package account

import (
	"errors"
	"time"

	"parcels/internal/pkg/errs"
)

// Default profile values applied when registration omits them.
const (
	DefaultCustomerType      = "NON_CONTRACT"
	DefaultBillingPreference = "COD"
)

var (
	// ErrCustomerIsNotConstructed is returned when a Customer instance was not
	// created through NewCustomer or RestoreCustomer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer")
)

// Customer holds the contact and billing profile attached one-to-one to an
// Account of role Customer. It is a plain record: the status engine never
// touches it.
type Customer struct {
	account           string
	name              string
	phone             string
	email             string
	address           string
	customerType      string
	billingPreference string
	createdAt         time.Time

	isConstructed bool
}

// NewCustomer creates a customer profile for the given account username.
// Empty customer type and billing preference fall back to the defaults.
func NewCustomer(accountName, name, phone, email, address, customerType, billingPreference string) (*Customer, error) {
	if accountName == "" {
		return nil, errs.NewValueIsRequiredError("account")
	}
	if customerType == "" {
		customerType = DefaultCustomerType
	}
	if billingPreference == "" {
		billingPreference = DefaultBillingPreference
	}

	return &Customer{
		account:           accountName,
		name:              name,
		phone:             phone,
		email:             email,
		address:           address,
		customerType:      customerType,
		billingPreference: billingPreference,
		createdAt:         time.Now(),
		isConstructed:     true,
	}, nil
}

// RestoreCustomer reconstructs a customer profile from persistence.
func RestoreCustomer(accountName, name, phone, email, address, customerType, billingPreference string, createdAt time.Time) (*Customer, error) {
	if accountName == "" {
		return nil, errs.NewValueIsRequiredError("account")
	}

	return &Customer{
		account:           accountName,
		name:              name,
		phone:             phone,
		email:             email,
		address:           address,
		customerType:      customerType,
		billingPreference: billingPreference,
		createdAt:         createdAt,
		isConstructed:     true,
	}, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// Account returns the username of the owning account.
func (c *Customer) Account() string { return c.account }

// Name returns the contact name.
func (c *Customer) Name() string { return c.name }

// Phone returns the contact phone number.
func (c *Customer) Phone() string { return c.phone }

// Email returns the contact email.
func (c *Customer) Email() string { return c.email }

// Address returns the billing address.
func (c *Customer) Address() string { return c.address }

// CustomerType returns the contract classification.
func (c *Customer) CustomerType() string { return c.customerType }

// BillingPreference returns the preferred billing mode.
func (c *Customer) BillingPreference() string { return c.billingPreference }

// CreatedAt returns the profile creation time.
func (c *Customer) CreatedAt() time.Time { return c.createdAt }

// Update applies a partial profile change. Empty fields keep their current
// values, mirroring how the office edit form submits only what changed.
func (c *Customer) Update(name, phone, email, address, customerType, billingPreference string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if name != "" {
		c.name = name
	}
	if phone != "" {
		c.phone = phone
	}
	if email != "" {
		c.email = email
	}
	if address != "" {
		c.address = address
	}
	if customerType != "" {
		c.customerType = customerType
	}
	if billingPreference != "" {
		c.billingPreference = billingPreference
	}
	return nil
}
