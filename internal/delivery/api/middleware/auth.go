package middleware

import (
	"slices"
	"strings"

	deliverycontext "traiteur/internal/delivery/context"
	"traiteur/internal/domain/entity"
	domainerrors "traiteur/internal/domain/errors"
	"traiteur/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the caller on the context.
// The caller's role is the account's primary role, so Customer wins over Administrator.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization must be a bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized.WrapMessage(err.Error())
		}

		role, ok := entity.RolesFromStrings(claims.Roles).Primary()
		if !ok {
			return domainerrors.ErrForbidden.WrapMessage("token carries no known role")
		}

		deliverycontext.SetCaller(c, entity.Caller{
			IdentityID: claims.Subject,
			Role:       role,
		})

		return next(c)
	}
}

// RequireRole rejects callers whose role is not listed. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, ok := deliverycontext.GetCaller(c)
			if !ok {
				return domainerrors.ErrUnauthorized.WrapMessage("caller missing from context")
			}
			if !slices.Contains(roles, caller.Role) {
				return domainerrors.ErrForbidden.WrapMessage("role " + caller.Role.String() + " not allowed")
			}

			return next(c)
		}
	}
}
