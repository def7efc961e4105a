package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/zarinpos/core/internal/infrastructure/logger"
	"github.com/zarinpos/core/internal/ports"
)

// HolidayHandler handles holiday calendar requests
type HolidayHandler struct {
	holidayService ports.HolidayService
	logger         *logger.Logger
}

// NewHolidayHandler creates a new holiday handler
func NewHolidayHandler(holidayService ports.HolidayService, logger *logger.Logger) *HolidayHandler {
	return &HolidayHandler{
		holidayService: holidayService,
		logger:         logger,
	}
}

// CreateHoliday registers a holiday on a Jalali day
func (h *HolidayHandler) CreateHoliday(c echo.Context) error {
	var req ports.CreateHolidayRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	holiday, err := h.holidayService.AddHoliday(c.Request().Context(), req)
	if err != nil {
		return httpError(h.logger, err)
	}

	return c.JSON(http.StatusCreated, holiday)
}

// ListYear lists the holidays of a Jalali year
func (h *HolidayHandler) ListYear(c echo.Context) error {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid year parameter")
	}

	holidays, err := h.holidayService.ListByYear(c.Request().Context(), year)
	if err != nil {
		return httpError(h.logger, err)
	}

	return c.JSON(http.StatusOK, holidays)
}

// ListMonth lists the holidays of a Jalali month
func (h *HolidayHandler) ListMonth(c echo.Context) error {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid year parameter")
	}

	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid month parameter")
	}

	holidays, err := h.holidayService.ListByMonth(c.Request().Context(), year, month)
	if err != nil {
		return httpError(h.logger, err)
	}

	return c.JSON(http.StatusOK, holidays)
}

// DeleteHoliday removes a holiday by id
func (h *HolidayHandler) DeleteHoliday(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid holiday ID")
	}

	if err := h.holidayService.RemoveHoliday(c.Request().Context(), id); err != nil {
		return httpError(h.logger, err)
	}

	return c.JSON(http.StatusOK, ports.MessageResponse{Message: "Holiday removed"})
}
