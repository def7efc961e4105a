package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zarinpos/core/internal/infrastructure/logger"
	"github.com/zarinpos/core/internal/ports"
)

// FormatHandler handles Persian rendering and weight conversion requests
type FormatHandler struct {
	formatService ports.FormatService
	logger        *logger.Logger
}

// NewFormatHandler creates a new format handler
func NewFormatHandler(formatService ports.FormatService, logger *logger.Logger) *FormatHandler {
	return &FormatHandler{
		formatService: formatService,
		logger:        logger,
	}
}

// FormatNumber renders an integer with thousand grouping in both digit sets
func (h *FormatHandler) FormatNumber(c echo.Context) error {
	var req ports.FormatNumberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	return c.JSON(http.StatusOK, h.formatService.FormatNumber(c.Request().Context(), req))
}

// FormatCurrency renders a toman amount the way receipts print it
func (h *FormatHandler) FormatCurrency(c echo.Context) error {
	var req ports.FormatCurrencyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	return c.JSON(http.StatusOK, h.formatService.FormatCurrency(c.Request().Context(), req))
}

// ConvertWeight converts between goldsmith units
func (h *FormatHandler) ConvertWeight(c echo.Context) error {
	var req ports.ConvertWeightRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	response, err := h.formatService.ConvertWeight(c.Request().Context(), req)
	if err != nil {
		return httpError(h.logger, err)
	}

	return c.JSON(http.StatusOK, response)
}

// ListUnits lists the supported goldsmith weight units
func (h *FormatHandler) ListUnits(c echo.Context) error {
	return c.JSON(http.StatusOK, h.formatService.Units(c.Request().Context()))
}
