package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"parcels/internal/core/domain/model/account"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var (
	ErrAuthenticateQueryHandlerIsNotConstructed = errors.New(
		"AuthenticateQueryHandler must be created via NewAuthenticateQueryHandler constructor",
	)
)

// AuthenticateQueryHandler verifies credentials against the stored
// bcrypt hash.
type AuthenticateQueryHandler struct {
	db *gorm.DB

	guard guard.ConstructorGuard
}

// NewAuthenticateQueryHandler creates a handler bound to a database
// connection.
func NewAuthenticateQueryHandler(db *gorm.DB) (AuthenticateQueryHandler, error) {
	if db == nil {
		return AuthenticateQueryHandler{}, errs.NewValueIsRequiredError("db")
	}
	return AuthenticateQueryHandler{
		db:    db,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Handle verifies the credentials and returns the caller's identity.
// Unknown usernames and wrong passwords both yield ErrInvalidCredentials.
func (h AuthenticateQueryHandler) Handle(
	ctx context.Context, query AuthenticateQuery,
) (AuthenticateQueryResponse, error) {
	if err := h.guard.Validate(ErrAuthenticateQueryHandlerIsNotConstructed); err != nil {
		return AuthenticateQueryResponse{}, err
	}
	if err := query.Validate(); err != nil {
		return AuthenticateQueryResponse{}, err
	}

	var (
		passwordHash string
		role         int
		createdAt    time.Time
	)
	row := h.db.WithContext(ctx).Raw(
		`SELECT password_hash, role, created_at FROM accounts WHERE username = ?`,
		query.Username(),
	).Row()
	err := row.Scan(&passwordHash, &role, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return AuthenticateQueryResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		return AuthenticateQueryResponse{}, fmt.Errorf("query account: %w", err)
	}

	acc, err := account.RestoreAccount(query.Username(), passwordHash, account.Role(role), createdAt)
	if err != nil {
		return AuthenticateQueryResponse{}, fmt.Errorf("restore account: %w", err)
	}
	matches, err := acc.PasswordMatches(query.Password())
	if err != nil {
		return AuthenticateQueryResponse{}, fmt.Errorf("verify password: %w", err)
	}
	if !matches {
		return AuthenticateQueryResponse{}, ErrInvalidCredentials
	}

	return AuthenticateQueryResponse{
		Username: acc.Username(),
		Role:     acc.Role(),
	}, nil
}
