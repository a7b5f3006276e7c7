package commands

import (
	"errors"
	"fmt"
	"strconv"

	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
)

// CreateParcelCommand represents a request to register a new parcel.
// Weight must be strictly positive. Volume is accepted as a free-form string:
// a value that parses as a negative number is rejected, while a non-numeric
// value is tolerated silently — the field is advisory and is not persisted.
//
// Example:
//
//	cmd, err := NewCreateParcelCommand("alice", "Bob", "12 Harbor Rd", 5.5, "", "small box", 100, "books", "express", "alice")
//	if err != nil {
//	    return fmt.Errorf("invalid parcel data: %w", err)
//	}
//
//	handler := NewCreateParcelCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	senderID         string
	recipientName    string
	recipientAddress string
	weight           float64
	volume           string
	packageType      string
	declaredValue    float64
	contents         string
	serviceType      string
	operator         string

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a new parcel.
// The operator is the authenticated username recorded on the creation event.
func NewCreateParcelCommand(
	senderID string,
	recipientName string,
	recipientAddress string,
	weight float64,
	volume string,
	packageType string,
	declaredValue float64,
	contents string,
	serviceType string,
	operator string,
) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{
		recipientAddress: recipientAddress,
		packageType:      packageType,
		declaredValue:    declaredValue,
		contents:         contents,
		serviceType:      serviceType,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSenderID(senderID),
		cmd.setRecipientName(recipientName),
		cmd.setWeight(weight),
		cmd.setVolume(volume),
		cmd.setOperator(operator),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// SenderID returns the sending account's username.
func (c CreateParcelCommand) SenderID() string { return c.senderID }

// RecipientName returns the recipient's name.
func (c CreateParcelCommand) RecipientName() string { return c.recipientName }

// RecipientAddress returns the delivery address.
func (c CreateParcelCommand) RecipientAddress() string { return c.recipientAddress }

// Weight returns the parcel weight.
func (c CreateParcelCommand) Weight() float64 { return c.weight }

// Volume returns the advisory volume string as supplied.
func (c CreateParcelCommand) Volume() string { return c.volume }

// PackageType returns the package classification, possibly empty.
func (c CreateParcelCommand) PackageType() string { return c.packageType }

// DeclaredValue returns the declared value of the contents.
func (c CreateParcelCommand) DeclaredValue() float64 { return c.declaredValue }

// Contents returns the declared contents description, possibly empty.
func (c CreateParcelCommand) Contents() string { return c.contents }

// ServiceType returns the requested service tier, possibly empty.
func (c CreateParcelCommand) ServiceType() string { return c.serviceType }

// Operator returns the authenticated username performing the creation.
func (c CreateParcelCommand) Operator() string { return c.operator }

func (c *CreateParcelCommand) setSenderID(senderID string) error {
	if senderID == "" {
		return errs.NewValueIsRequiredError("sender_id")
	}
	c.senderID = senderID
	return nil
}

func (c *CreateParcelCommand) setRecipientName(recipientName string) error {
	if recipientName == "" {
		return errs.NewValueIsRequiredError("recipient_name")
	}
	c.recipientName = recipientName
	return nil
}

func (c *CreateParcelCommand) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%v is not greater than 0", weight))
	}
	c.weight = weight
	return nil
}

func (c *CreateParcelCommand) setVolume(volume string) error {
	if volume == "" {
		return nil
	}

	// Non-numeric volume strings pass through untouched; only a parsed
	// negative number is rejected.
	if v, err := strconv.ParseFloat(volume, 64); err == nil && v < 0 {
		return errs.NewValueIsInvalidErrorWithCause("volume",
			fmt.Errorf("%v must not be negative", v))
	}

	c.volume = volume
	return nil
}

func (c *CreateParcelCommand) setOperator(operator string) error {
	if operator == "" {
		return errs.NewValueIsRequiredError("operator")
	}
	c.operator = operator
	return nil
}
