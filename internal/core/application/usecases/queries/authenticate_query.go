package queries

import (
	"errors"

	"parcels/internal/core/domain/model/account"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var (
	ErrAuthenticateQueryIsNotConstructed = errors.New(
		"AuthenticateQuery must be created via NewAuthenticateQuery constructor",
	)

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password, so callers cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthenticateQuery verifies a username/password pair.
type AuthenticateQuery struct {
	username string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateQuery creates an authentication query.
func NewAuthenticateQuery(username string, password string) (AuthenticateQuery, error) {
	if username == "" {
		return AuthenticateQuery{}, errs.NewValueIsRequiredError("username")
	}
	if password == "" {
		return AuthenticateQuery{}, errs.NewValueIsRequiredError("password")
	}
	return AuthenticateQuery{
		username: username,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateQueryIsNotConstructed)
}

// Username returns the username being authenticated.
func (q AuthenticateQuery) Username() string {
	return q.username
}

// Password returns the plaintext password to verify.
func (q AuthenticateQuery) Password() string {
	return q.password
}

// AuthenticateQueryResponse is the verified identity of the caller.
type AuthenticateQueryResponse struct {
	Username string
	Role     account.Role
}
