package account

import (
	"errors"
	"time"

	"parcels/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrAccountIsNotConstructed is returned when an Account instance was not
	// created through NewAccount or RestoreAccount.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount or RestoreAccount")
)

// Account represents a login identity with a role. Accounts are plain records
// maintained by the registration flow and the startup seeder; the status
// engine only ever sees the role extracted from a verified token.
//
// Invariants:
//   - Username is unique and never reused (enforced by storage)
//   - Password is stored as a bcrypt hash, never in plain text
//   - Role is one of the closed role set
type Account struct {
	username     string
	passwordHash string
	role         Role
	createdAt    time.Time

	isConstructed bool
}

// NewAccount creates an account with a freshly hashed password.
// Returns a validation error if the username or password is empty or the
// role is invalid.
func NewAccount(username, password string, role Role) (*Account, error) {
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}
	if password == "" {
		return nil, errs.NewValueIsRequiredError("password")
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &Account{
		username:      username,
		passwordHash:  string(hash),
		role:          role,
		createdAt:     time.Now(),
		isConstructed: true,
	}, nil
}

// RestoreAccount reconstructs an account from persistence.
func RestoreAccount(username, passwordHash string, role Role, createdAt time.Time) (*Account, error) {
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}

	return &Account{
		username:      username,
		passwordHash:  passwordHash,
		role:          role,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Account instance was properly constructed.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// Username returns the unique login name.
func (a *Account) Username() string {
	return a.username
}

// PasswordHash returns the stored bcrypt hash.
func (a *Account) PasswordHash() string {
	return a.passwordHash
}

// Role returns the account's role.
func (a *Account) Role() Role {
	return a.role
}

// CreatedAt returns the account creation time.
func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

// PasswordMatches checks a plaintext password against the stored hash.
// A mismatch returns (false, nil); any other bcrypt failure is returned as
// an error.
func (a *Account) PasswordMatches(plaintext string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(plaintext))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
