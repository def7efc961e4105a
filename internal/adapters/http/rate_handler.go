package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/zarinpos/core/internal/domain/jalali"
	"github.com/zarinpos/core/internal/infrastructure/logger"
	"github.com/zarinpos/core/internal/ports"
)

// RateHandler handles daily gold rate requests
type RateHandler struct {
	rateService ports.RateService
	logger      *logger.Logger
}

// NewRateHandler creates a new rate handler
func NewRateHandler(rateService ports.RateService, logger *logger.Logger) *RateHandler {
	return &RateHandler{
		rateService: rateService,
		logger:      logger,
	}
}

// SetRate records the per-gram price for a day
func (h *RateHandler) SetRate(c echo.Context) error {
	var req ports.SetRateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	response, err := h.rateService.SetRate(c.Request().Context(), req)
	if err != nil {
		return httpError(h.logger, err)
	}

	return c.JSON(http.StatusOK, response)
}

// Latest returns the most recently dated rate
func (h *RateHandler) Latest(c echo.Context) error {
	response, err := h.rateService.LatestRate(c.Request().Context())
	if err != nil {
		return httpError(h.logger, err)
	}

	return c.JSON(http.StatusOK, response)
}

// GetByDay returns the rate recorded for one Jalali day
func (h *RateHandler) GetByDay(c echo.Context) error {
	date, err := dateFromParams(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid date parameters")
	}

	response, err := h.rateService.GetRate(c.Request().Context(), date)
	if err != nil {
		return httpError(h.logger, err)
	}

	return c.JSON(http.StatusOK, response)
}

// ListMonth lists the recorded rates of one Jalali month
func (h *RateHandler) ListMonth(c echo.Context) error {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid year parameter")
	}

	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid month parameter")
	}

	rates, err := h.rateService.MonthRates(c.Request().Context(), year, month)
	if err != nil {
		return httpError(h.logger, err)
	}

	return c.JSON(http.StatusOK, rates)
}

// DeleteRate removes a recorded rate by id
func (h *RateHandler) DeleteRate(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid rate ID")
	}

	if err := h.rateService.RemoveRate(c.Request().Context(), id); err != nil {
		return httpError(h.logger, err)
	}

	return c.JSON(http.StatusOK, ports.MessageResponse{Message: "Rate removed"})
}

func dateFromParams(c echo.Context) (jalali.Date, error) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return jalali.Date{}, err
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		return jalali.Date{}, err
	}
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		return jalali.Date{}, err
	}
	return jalali.New(year, month, day)
}
