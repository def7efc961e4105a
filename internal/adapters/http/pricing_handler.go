package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zarinpos/core/internal/infrastructure/logger"
	"github.com/zarinpos/core/internal/ports"
)

// PricingHandler handles sale quote requests
type PricingHandler struct {
	pricingService ports.PricingService
	logger         *logger.Logger
}

// NewPricingHandler creates a new pricing handler
func NewPricingHandler(pricingService ports.PricingService, logger *logger.Logger) *PricingHandler {
	return &PricingHandler{
		pricingService: pricingService,
		logger:         logger,
	}
}

// Quote prices one gold item
func (h *PricingHandler) Quote(c echo.Context) error {
	var req ports.QuoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	response, err := h.pricingService.Quote(c.Request().Context(), req)
	if err != nil {
		return httpError(h.logger, err)
	}

	return c.JSON(http.StatusOK, response)
}
