package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zarinpos/core/internal/domain/entities"
	"github.com/zarinpos/core/internal/domain/jalali"
	"github.com/zarinpos/core/internal/domain/weights"
	"github.com/zarinpos/core/internal/infrastructure/logger"
	"github.com/zarinpos/core/internal/ports"
)

// ClaimsContextKey is where the auth middleware stores the verified claims.
const ClaimsContextKey = "claims"

// httpError maps service errors onto HTTP status codes. Anything without a
// known sentinel becomes a 500 with a generic message so internals never
// leak to terminals.
func httpError(log *logger.Logger, err error) *echo.HTTPError {
	switch {
	case errors.Is(err, entities.ErrTerminalNotFound),
		errors.Is(err, entities.ErrHolidayNotFound),
		errors.Is(err, entities.ErrRateNotFound),
		errors.Is(err, jalali.ErrUnknownPreset):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())

	case errors.Is(err, entities.ErrHolidayExists):
		return echo.NewHTTPError(http.StatusConflict, err.Error())

	case errors.Is(err, entities.ErrInvalidCredentials),
		errors.Is(err, entities.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")

	case errors.Is(err, entities.ErrTerminalInactive):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())

	case errors.Is(err, jalali.ErrInvalidDate),
		errors.Is(err, jalali.ErrInvalidRange),
		errors.Is(err, weights.ErrUnknownUnit),
		errors.Is(err, entities.ErrInvalidRate),
		errors.Is(err, entities.ErrInvalidWeight):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())

	default:
		log.Errorw("Unhandled service error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
}

// getClaimsFromContext returns the claims stored by the auth middleware,
// or nil on unauthenticated routes.
func getClaimsFromContext(c echo.Context) *ports.Claims {
	claims, ok := c.Get(ClaimsContextKey).(*ports.Claims)
	if !ok {
		return nil
	}
	return claims
}
