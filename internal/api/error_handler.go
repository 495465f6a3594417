package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/rental-cars/catalog-api/internal/api/respond"
	"github.com/rental-cars/catalog-api/internal/core/domain"
)

// clientErrorLabel is rendered in the data field of every client error
// envelope, mirroring the error kind name.
const clientErrorLabel = "client error"

// NewHTTPErrorHandler returns the terminal echo.HTTPErrorHandler:
//   - Typed client errors render with their own status code and message.
//   - Router misses render the canonical 404 envelope.
//   - Everything else is an opaque fault: 500, with the fault's own message
//     exposed in the envelope and the full error logged internally.
//
// All rendering funnels through renderFault/respond.JSON so the exposure
// policy can be tightened in one place.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ce *domain.ClientError
		if errors.As(err, &ce) {
			_ = respond.JSON(c, ce.StatusCode, ce.Message, clientErrorLabel, nil)
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			if he.Code == http.StatusNotFound {
				_ = respond.JSON(c, http.StatusNotFound, "resource, data or page not found", "404 NOT FOUND", nil)
				return
			}
			_ = respond.JSON(c, he.Code, fmt.Sprintf("%v", he.Message), http.StatusText(he.Code), nil)
			return
		}

		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")

		renderFault(c, err)
	}
}

// renderFault renders an opaque fault. The internal message is passed through
// to the client and the data field carries the fault's concrete type. A
// stricter policy (generic message) only needs to change this function.
func renderFault(c echo.Context, err error) {
	_ = respond.JSON(c, http.StatusInternalServerError, err.Error(), fmt.Sprintf("%T", err), nil)
}
