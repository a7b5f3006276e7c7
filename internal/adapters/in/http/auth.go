package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"parcels/internal/core/domain/model/account"
)

const actorContextKey = "actor"

// Actor is the authenticated identity injected into the request context by
// the auth middleware. Handlers read the caller's role from here; tokens
// are never re-parsed downstream.
type Actor struct {
	Username string
	Role     account.Role
}

// TokenSigner issues and verifies the HS256 tokens used for API access.
type TokenSigner struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenSigner creates a signer with the given shared secret and token
// lifetime.
func NewTokenSigner(secret string, ttl time.Duration) TokenSigner {
	return TokenSigner{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue creates a signed token carrying the actor's username and role.
func (s TokenSigner) Issue(actor Actor, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": actor.Username,
		"role":     actor.Role.String(),
		"iat":      now.Unix(),
		"exp":      now.Add(s.ttl).Unix(),
	})
	return token.SignedString(s.secret)
}

// Parse verifies a token and reconstructs the actor it carries.
func (s TokenSigner) Parse(tokenString string) (Actor, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return Actor{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Actor{}, errors.New("invalid token claims")
	}

	username, _ := claims["username"].(string)
	roleName, _ := claims["role"].(string)
	role, err := account.RoleFromString(roleName)
	if err != nil {
		return Actor{}, err
	}
	if username == "" {
		return Actor{}, errors.New("token has no username")
	}

	return Actor{Username: username, Role: role}, nil
}

// RequireAuth returns middleware that validates the Bearer token once and
// injects the resulting Actor into the echo context.
func RequireAuth(signer TokenSigner) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found || tokenString == "" {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			actor, err := signer.Parse(tokenString)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid token",
				})
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

// RequireRoles returns middleware that rejects actors outside the allowed
// roles. Must run after RequireAuth.
func RequireRoles(allowed ...account.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			actor, ok := actorFrom(ctx)
			if !ok {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}
			for _, role := range allowed {
				if actor.Role == role {
					return next(ctx)
				}
			}
			return ctx.JSON(http.StatusForbidden, ErrorResponse{
				Code:    http.StatusForbidden,
				Message: "insufficient permissions",
			})
		}
	}
}

// actorFrom extracts the authenticated actor placed by RequireAuth.
func actorFrom(ctx echo.Context) (Actor, bool) {
	actor, ok := ctx.Get(actorContextKey).(Actor)
	return actor, ok
}
