package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/rental-cars/catalog-api/internal/core/domain"
	"github.com/rental-cars/catalog-api/internal/core/ports"
)

// RequireRole enforces role-based access control on routes behind Auth.
// The check is flat string equality via AuthService.ValidateRole; there is no
// role hierarchy.
func RequireRole(auth ports.AuthService, role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := Principal(c)
			if err != nil {
				return err
			}
			if !auth.ValidateRole(user, role) {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
