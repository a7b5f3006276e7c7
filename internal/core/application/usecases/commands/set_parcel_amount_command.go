package commands

import (
	"errors"
	"fmt"

	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var (
	ErrSetParcelAmountCommandIsNotConstructed = errors.New(
		"SetParcelAmountCommand must be created via NewSetParcelAmountCommand constructor",
	)
)

// SetParcelAmountCommand represents a billing request: set the parcel's
// amount, resolve its payment status from the payment method, and
// optionally switch the service type. Any authenticated actor may bill a
// parcel; the operation carries no role restriction.
type SetParcelAmountCommand struct { //nolint:recvcheck //using for validation
	operator       string
	trackingNumber parcel.TrackingNumber
	amount         float64
	method         string
	newServiceType string

	guard guard.ConstructorGuard
}

// NewSetParcelAmountCommand creates a billing command.
// The amount must not be negative; zero is a valid charge.
func NewSetParcelAmountCommand(
	operator string,
	trackingNumber parcel.TrackingNumber,
	amount float64,
	method string,
	newServiceType string,
) (SetParcelAmountCommand, error) {
	cmd := SetParcelAmountCommand{
		method:         method,
		newServiceType: newServiceType,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOperator(operator),
		cmd.setTrackingNumber(trackingNumber),
		cmd.setAmount(amount),
	); err != nil {
		return SetParcelAmountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetParcelAmountCommand) Validate() error {
	return c.guard.Validate(ErrSetParcelAmountCommandIsNotConstructed)
}

// Operator returns the authenticated username performing the billing.
func (c SetParcelAmountCommand) Operator() string { return c.operator }

// TrackingNumber returns the target parcel's tracking number.
func (c SetParcelAmountCommand) TrackingNumber() parcel.TrackingNumber { return c.trackingNumber }

// Amount returns the billed amount.
func (c SetParcelAmountCommand) Amount() float64 { return c.amount }

// Method returns the payment method label.
func (c SetParcelAmountCommand) Method() string { return c.method }

// NewServiceType returns the replacement service type, possibly empty.
func (c SetParcelAmountCommand) NewServiceType() string { return c.newServiceType }

func (c *SetParcelAmountCommand) setOperator(operator string) error {
	if operator == "" {
		return errs.NewValueIsRequiredError("operator")
	}
	c.operator = operator
	return nil
}

func (c *SetParcelAmountCommand) setTrackingNumber(trackingNumber parcel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}
	c.trackingNumber = trackingNumber
	return nil
}

func (c *SetParcelAmountCommand) setAmount(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v must not be negative", amount))
	}
	c.amount = amount
	return nil
}
