// Package accountrepo provides data transfer objects and mapping functions
// for login account persistence.
package accountrepo

import (
	"time"

	"parcels/internal/core/domain/model/account"
)

// AccountDTO represents the database structure for persisting accounts.
// The username is the natural primary key; uniqueness of logins rests on it.
type AccountDTO struct {
	Username     string `gorm:"primaryKey"`
	PasswordHash string
	Role         int
	CreatedAt    time.Time
}

// TableName specifies the database table name for accounts.
func (AccountDTO) TableName() string {
	return "accounts"
}

// fromDomain converts an account to its database representation.
func fromDomain(aggregate *account.Account) AccountDTO {
	return AccountDTO{
		Username:     aggregate.Username(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         int(aggregate.Role()),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an account using RestoreAccount.
func toDomain(dto AccountDTO) (*account.Account, error) {
	return account.RestoreAccount(
		dto.Username,
		dto.PasswordHash,
		account.Role(dto.Role),
		dto.CreatedAt,
	)
}
