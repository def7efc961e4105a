package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zarinpos/core/internal/infrastructure/logger"
	"github.com/zarinpos/core/internal/ports"
)

// CalendarHandler handles Jalali calendar requests
type CalendarHandler struct {
	calendarService ports.CalendarService
	logger          *logger.Logger
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(calendarService ports.CalendarService, logger *logger.Logger) *CalendarHandler {
	return &CalendarHandler{
		calendarService: calendarService,
		logger:          logger,
	}
}

// Today returns the current Jalali day with holiday and weekend flags
func (h *CalendarHandler) Today(c echo.Context) error {
	response, err := h.calendarService.Today(c.Request().Context())
	if err != nil {
		return httpError(h.logger, err)
	}

	return c.JSON(http.StatusOK, response)
}

// ToJalali converts a Gregorian date to Jalali
func (h *CalendarHandler) ToJalali(c echo.Context) error {
	var req ports.ToJalaliRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	response, err := h.calendarService.ToJalali(c.Request().Context(), req)
	if err != nil {
		return httpError(h.logger, err)
	}

	return c.JSON(http.StatusOK, response)
}

// ToGregorian converts a Jalali date to Gregorian
func (h *CalendarHandler) ToGregorian(c echo.Context) error {
	var req ports.ToGregorianRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	response, err := h.calendarService.ToGregorian(c.Request().Context(), req)
	if err != nil {
		return httpError(h.logger, err)
	}

	return c.JSON(http.StatusOK, response)
}

// Validate checks whether a Jalali date string names a real day
func (h *CalendarHandler) Validate(c echo.Context) error {
	var req ports.ValidateDateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, h.calendarService.Validate(c.Request().Context(), req))
}

// Months lists the Jalali months with their lengths
func (h *CalendarHandler) Months(c echo.Context) error {
	return c.JSON(http.StatusOK, h.calendarService.Months(c.Request().Context()))
}

// Weekdays lists the week starting from Saturday
func (h *CalendarHandler) Weekdays(c echo.Context) error {
	return c.JSON(http.StatusOK, h.calendarService.Weekdays(c.Request().Context()))
}

// ListRanges lists the available range presets
func (h *CalendarHandler) ListRanges(c echo.Context) error {
	return c.JSON(http.StatusOK, h.calendarService.Presets(c.Request().Context()))
}

// ResolveRange materialises a range preset against today
func (h *CalendarHandler) ResolveRange(c echo.Context) error {
	response, err := h.calendarService.ResolvePreset(c.Request().Context(), c.Param("key"))
	if err != nil {
		return httpError(h.logger, err)
	}

	return c.JSON(http.StatusOK, response)
}

// BusinessDays counts working days in a Jalali date range
func (h *CalendarHandler) BusinessDays(c echo.Context) error {
	var req ports.BusinessDaysRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	response, err := h.calendarService.BusinessDays(c.Request().Context(), req)
	if err != nil {
		return httpError(h.logger, err)
	}

	return c.JSON(http.StatusOK, response)
}
