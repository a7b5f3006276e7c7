// Package customerrepo provides data transfer objects and mapping functions
// for customer profile persistence.
package customerrepo

import (
	"time"

	"parcels/internal/core/domain/model/account"
)

// CustomerDTO represents the database structure for persisting customer
// profiles. One profile per account.
type CustomerDTO struct {
	AccountUsername   string `gorm:"primaryKey"`
	Name              string
	Phone             string
	Email             string
	Address           string
	CustomerType      string
	BillingPreference string
	CreatedAt         time.Time
}

// TableName specifies the database table name for customer profiles.
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer profile to its database representation.
func fromDomain(aggregate *account.Customer) CustomerDTO {
	return CustomerDTO{
		AccountUsername:   aggregate.Account(),
		Name:              aggregate.Name(),
		Phone:             aggregate.Phone(),
		Email:             aggregate.Email(),
		Address:           aggregate.Address(),
		CustomerType:      aggregate.CustomerType(),
		BillingPreference: aggregate.BillingPreference(),
		CreatedAt:         aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a customer profile using RestoreCustomer.
func toDomain(dto CustomerDTO) (*account.Customer, error) {
	return account.RestoreCustomer(
		dto.AccountUsername,
		dto.Name,
		dto.Phone,
		dto.Email,
		dto.Address,
		dto.CustomerType,
		dto.BillingPreference,
		dto.CreatedAt,
	)
}
