package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rental-cars/catalog-api/internal/api/metrics"
	"github.com/rental-cars/catalog-api/internal/core/domain"
	"github.com/rental-cars/catalog-api/internal/core/ports"
)

// principalKey is the echo context key under which Auth stores the decoded
// principal.
const principalKey = "principal"

// Auth validates the bearer token and injects the decoded principal into the
// request context. A missing or malformed Authorization header is a client
// error; a token that fails validation propagates as the raw validation
// fault and renders as an internal error at the boundary.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return domain.ErrMissingAuthorization
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return domain.ErrMissingAuthorization
			}

			user, err := auth.ValidateToken(parts[1])
			if err != nil {
				metrics.TokenValidationsTotal.WithLabelValues("invalid").Inc()
				return err
			}
			metrics.TokenValidationsTotal.WithLabelValues("valid").Inc()

			c.Set(principalKey, user)
			return next(c)
		}
	}
}

// Principal extracts the principal injected by Auth. Its presence proves the
// middleware ran on this route.
func Principal(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(principalKey).(*domain.User)
	if user == nil {
		return nil, domain.ErrMissingAuthorization
	}
	return user, nil
}
