package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	apperrors "selli/internal/errors"
	"selli/internal/model"
)

// currentUserKey is the echo context key the resolved identity lives under.
// Handlers read it through CurrentUser rather than touching the key directly.
const currentUserKey = "currentUser"

// UserFinder is the slice of the user repository the middleware needs.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
}

// ResolveUser turns the claims left by the echo-jwt middleware into a loaded
// user on the request context. A revoked token or a token whose user no
// longer exists is rejected with 401 before any handler runs.
func ResolveUser(tokenStore TokenStoreInterface, users UserFinder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return apperrors.NewUnauthorized("Invalid JWT")
			}
			claims, ok := token.Claims.(*Claims)
			if !ok {
				return apperrors.NewUnauthorized("Invalid JWT")
			}

			ctx := c.Request().Context()
			if revoked, _ := tokenStore.IsTokenRevoked(ctx, claims.ID); revoked {
				return apperrors.NewUnauthorized("Invalid JWT")
			}

			user, err := users.FindByID(ctx, claims.UserID)
			if err != nil || user == nil {
				return apperrors.NewUnauthorized("Invalid JWT")
			}

			SetCurrentUser(c, user)
			return next(c)
		}
	}
}

// SetCurrentUser attaches the authenticated user to the request context.
// ResolveUser calls it after verification; tests use it to stand in for the
// whole middleware chain.
func SetCurrentUser(c echo.Context, user *model.User) {
	c.Set(currentUserKey, user)
}

// CurrentUser returns the authenticated user resolved by ResolveUser.
func CurrentUser(c echo.Context) (*model.User, error) {
	user, ok := c.Get(currentUserKey).(*model.User)
	if !ok {
		return nil, apperrors.NewUnauthorized("Invalid JWT")
	}
	return user, nil
}

// CurrentClaims returns the verified claims of the presented token, used
// when an operation needs the token's JTI and expiry (e.g. revocation on
// account deletion).
func CurrentClaims(c echo.Context) (*Claims, bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, false
	}
	claims, ok := token.Claims.(*Claims)
	return claims, ok
}
