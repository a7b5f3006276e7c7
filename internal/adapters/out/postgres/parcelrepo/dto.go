// Package parcelrepo provides data transfer objects and mapping functions for parcel persistence.
// This package implements the repository pattern for the parcel domain aggregate, handling
// the conversion between domain entities and database representations.
package parcelrepo

import (
	"time"

	"parcels/internal/core/domain/model/parcel"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// The tracking number serves as the natural primary key; the sender column is
// indexed for customer-scoped listings.
type ParcelDTO struct {
	TrackingNumber   string `gorm:"primaryKey"`
	SenderID         string `gorm:"index"`
	RecipientName    string
	RecipientAddress string
	Weight           float64
	PackageType      string
	DeclaredValue    float64
	Contents         string
	ServiceType      string
	Status           int
	Amount           *float64
	PaymentStatus    string
	CreatedAt        time.Time
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel domain aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	return ParcelDTO{
		TrackingNumber:   aggregate.TrackingNumber().String(),
		SenderID:         aggregate.SenderID(),
		RecipientName:    aggregate.RecipientName(),
		RecipientAddress: aggregate.RecipientAddress(),
		Weight:           aggregate.Weight(),
		PackageType:      aggregate.PackageType(),
		DeclaredValue:    aggregate.DeclaredValue(),
		Contents:         aggregate.Contents(),
		ServiceType:      aggregate.ServiceType(),
		Status:           int(aggregate.Status()),
		Amount:           aggregate.Amount(),
		PaymentStatus:    aggregate.PaymentStatus(),
		CreatedAt:        aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a parcel domain aggregate using RestoreParcel.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	trackingNumber, err := parcel.TrackingNumberFromString(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		trackingNumber,
		dto.SenderID,
		dto.RecipientName,
		dto.RecipientAddress,
		dto.Weight,
		dto.PackageType,
		dto.DeclaredValue,
		dto.Contents,
		dto.ServiceType,
		parcel.Status(dto.Status),
		dto.Amount,
		dto.PaymentStatus,
		dto.CreatedAt,
	)
}
