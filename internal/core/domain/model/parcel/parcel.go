package parcel

import (
	"errors"
	"fmt"
	"time"

	"parcels/internal/core/domain/model/account"
	"parcels/internal/pkg/errs"
)

// Defaults applied when parcel creation omits the optional attributes.
const (
	DefaultPackageType = "medium box"
	DefaultContents    = "general goods"
	DefaultServiceType = "standard"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not
	// created through NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel")

	// ErrCustomerMayNotChangeStatus rejects any status change requested by a
	// customer actor, regardless of current or target status.
	ErrCustomerMayNotChangeStatus = errors.New("customers are not allowed to change parcel status")

	// ErrStatusNotAllowedForRole rejects a target status outside the acting
	// role's allow-list.
	ErrStatusNotAllowedForRole = errors.New("role is not allowed to set this status")

	// ErrAbnormalStateLocked rejects a regular status change on a parcel that
	// sits in an abnormal state. Only admins bypass the lock; other roles may
	// only move the parcel to PROCESSING or RETURNED.
	ErrAbnormalStateLocked = errors.New("parcel is locked in an abnormal state")
)

// Parcel is the aggregate root of the tracking domain. It owns the parcel's
// shipping attributes, its billing fields, and its lifecycle status.
//
// Parcel follows these invariants:
//   - The tracking number is globally unique and immutable once created
//   - Weight is strictly positive
//   - Status is always a member of the closed status set
//   - Status changes pass the role and abnormal-lock rules of ChangeStatus
//   - Can only be created through NewParcel or RestoreParcel
type Parcel struct {
	trackingNumber   TrackingNumber
	senderID         string
	recipientName    string
	recipientAddress string
	weight           float64
	packageType      string
	declaredValue    float64
	contents         string
	serviceType      string
	status           Status
	amount           *float64
	paymentStatus    string
	createdAt        time.Time

	isConstructed bool
}

// NewParcel creates a parcel in Created status with an unset amount.
// Weight must be strictly positive and the recipient name is required;
// empty optional attributes fall back to the package defaults.
func NewParcel(
	trackingNumber TrackingNumber,
	senderID string,
	recipientName string,
	recipientAddress string,
	weight float64,
	packageType string,
	declaredValue float64,
	contents string,
	serviceType string,
	createdAt time.Time,
) (*Parcel, error) {
	p := &Parcel{
		status:        StatusCreated,
		paymentStatus: PaymentStatusUnpaid,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setTrackingNumber(trackingNumber),
		p.setSenderID(senderID),
		p.setRecipientName(recipientName),
		p.setWeight(weight),
	); err != nil {
		return nil, err
	}

	p.recipientAddress = recipientAddress
	p.packageType = orDefault(packageType, DefaultPackageType)
	p.declaredValue = declaredValue
	p.contents = orDefault(contents, DefaultContents)
	p.serviceType = orDefault(serviceType, DefaultServiceType)

	return p, nil
}

// RestoreParcel reconstructs a parcel from persistence, including its
// current status and billing fields.
func RestoreParcel(
	trackingNumber TrackingNumber,
	senderID string,
	recipientName string,
	recipientAddress string,
	weight float64,
	packageType string,
	declaredValue float64,
	contents string,
	serviceType string,
	status Status,
	amount *float64,
	paymentStatus string,
	createdAt time.Time,
) (*Parcel, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	p := &Parcel{
		status:           status,
		recipientAddress: recipientAddress,
		packageType:      packageType,
		declaredValue:    declaredValue,
		contents:         contents,
		serviceType:      serviceType,
		amount:           amount,
		paymentStatus:    paymentStatus,
		createdAt:        createdAt,
		isConstructed:    true,
	}

	if err := errors.Join(
		p.setTrackingNumber(trackingNumber),
		p.setSenderID(senderID),
		p.setRecipientName(recipientName),
		p.setWeight(weight),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Parcel instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares two parcels by their tracking numbers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.trackingNumber.IsEqual(other.trackingNumber)
}

// TrackingNumber returns the parcel's unique tracking number.
func (p *Parcel) TrackingNumber() TrackingNumber { return p.trackingNumber }

// SenderID returns the username of the sending account.
func (p *Parcel) SenderID() string { return p.senderID }

// RecipientName returns the recipient's name.
func (p *Parcel) RecipientName() string { return p.recipientName }

// RecipientAddress returns the delivery address.
func (p *Parcel) RecipientAddress() string { return p.recipientAddress }

// Weight returns the parcel weight in kilograms.
func (p *Parcel) Weight() float64 { return p.weight }

// PackageType returns the package classification.
func (p *Parcel) PackageType() string { return p.packageType }

// DeclaredValue returns the declared value of the contents.
func (p *Parcel) DeclaredValue() float64 { return p.declaredValue }

// Contents returns the declared contents description.
func (p *Parcel) Contents() string { return p.contents }

// ServiceType returns the delivery service tier.
func (p *Parcel) ServiceType() string { return p.serviceType }

// Status returns the parcel's current lifecycle status.
func (p *Parcel) Status() Status { return p.status }

// Amount returns the billed amount, or nil if billing has not run yet.
func (p *Parcel) Amount() *float64 { return p.amount }

// PaymentStatus returns the current payment-status label.
func (p *Parcel) PaymentStatus() string { return p.paymentStatus }

// CreatedAt returns the parcel creation time.
func (p *Parcel) CreatedAt() time.Time { return p.createdAt }

// ChangeStatus applies a status transition requested by the given actor
// role. The checks run in a fixed order, and the first failing check
// determines the error surfaced when several would apply:
//
//  1. Customer actors are rejected outright.
//  2. The abnormal-state lock is enforced: a parcel in LOST, DAMAGED or
//     RETURNED only accepts PROCESSING or RETURNED from non-admin actors.
//     Admins bypass the lock entirely.
//  3. The role's allow-list is consulted (driver and warehouse are
//     restricted; staff and admin are not).
//
// On success the status is mutated in place. The caller is responsible for
// persisting the change and its tracking event as one atomic unit.
func (p *Parcel) ChangeStatus(actor account.Role, next Status) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}

	if actor == account.RoleCustomer {
		return ErrCustomerMayNotChangeStatus
	}

	if p.status.IsAbnormal() && !next.unlocksAbnormal() && actor != account.RoleAdmin {
		return fmt.Errorf("%w: parcel is %s", ErrAbnormalStateLocked, p.status)
	}

	if !roleMaySetStatus(actor, next) {
		return fmt.Errorf("%w: %s may not set %s", ErrStatusNotAllowedForRole, actor, next)
	}

	p.status = next
	return nil
}

// SetBilling records the billed amount, resolves the payment-status label
// from the payment method, and optionally replaces the service type.
// Billing may run repeatedly; each call overwrites the previous values.
// The amount must not be negative; zero is accepted.
func (p *Parcel) SetBilling(amount float64, method, newServiceType string) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v must not be negative", amount))
	}

	p.amount = &amount
	p.paymentStatus = ResolvePaymentStatus(method)
	if newServiceType != "" {
		p.serviceType = newServiceType
	}
	return nil
}

func (p *Parcel) setTrackingNumber(trackingNumber TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}
	p.trackingNumber = trackingNumber
	return nil
}

func (p *Parcel) setSenderID(senderID string) error {
	if senderID == "" {
		return errs.NewValueIsRequiredError("sender_id")
	}
	p.senderID = senderID
	return nil
}

func (p *Parcel) setRecipientName(recipientName string) error {
	if recipientName == "" {
		return errs.NewValueIsRequiredError("recipient_name")
	}
	p.recipientName = recipientName
	return nil
}

func (p *Parcel) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%v is not greater than 0", weight))
	}
	p.weight = weight
	return nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
