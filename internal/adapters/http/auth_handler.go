package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/zarinpos/core/internal/infrastructure/logger"
	"github.com/zarinpos/core/internal/ports"
)

// AuthHandler handles terminal authentication requests
type AuthHandler struct {
	authService ports.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService ports.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// IssueToken exchanges a terminal API key for an access token
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var req ports.TokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	response, err := h.authService.IssueToken(c.Request().Context(), req)
	if err != nil {
		return httpError(h.logger, err)
	}

	return c.JSON(http.StatusOK, response)
}

// CreateTerminal registers a new terminal. Without an explicit tenant the
// terminal lands in the caller's own tenant.
func (h *AuthHandler) CreateTerminal(c echo.Context) error {
	var req ports.CreateTerminalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if req.TenantID == uuid.Nil {
		if claims := getClaimsFromContext(c); claims != nil {
			req.TenantID = claims.TenantID
		}
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	credentials, err := h.authService.CreateTerminal(c.Request().Context(), req)
	if err != nil {
		return httpError(h.logger, err)
	}

	return c.JSON(http.StatusCreated, credentials)
}

// ListTerminals lists the terminals of the caller's tenant
func (h *AuthHandler) ListTerminals(c echo.Context) error {
	claims := getClaimsFromContext(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing credentials")
	}

	terminals, err := h.authService.ListTerminals(c.Request().Context(), claims.TenantID)
	if err != nil {
		return httpError(h.logger, err)
	}

	return c.JSON(http.StatusOK, terminals)
}

// RevokeTerminal deactivates a terminal of the caller's tenant
func (h *AuthHandler) RevokeTerminal(c echo.Context) error {
	claims := getClaimsFromContext(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing credentials")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid terminal ID")
	}

	// Admins only see and revoke terminals inside their own tenant.
	terminals, err := h.authService.ListTerminals(c.Request().Context(), claims.TenantID)
	if err != nil {
		return httpError(h.logger, err)
	}

	owned := false
	for _, terminal := range terminals {
		if terminal.ID == id {
			owned = true
			break
		}
	}
	if !owned {
		return echo.NewHTTPError(http.StatusNotFound, "Terminal not found")
	}

	if err := h.authService.RevokeTerminal(c.Request().Context(), id); err != nil {
		return httpError(h.logger, err)
	}

	return c.JSON(http.StatusOK, ports.MessageResponse{Message: "Terminal revoked"})
}
