package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/zarinpos/core/internal/domain/entities"
	"github.com/zarinpos/core/internal/infrastructure/config"
	"github.com/zarinpos/core/internal/infrastructure/logger"
	"github.com/zarinpos/core/internal/infrastructure/metrics"
	"github.com/zarinpos/core/internal/ports"
)

// Claims represents the JWT claims carried by a terminal token
type Claims struct {
	TerminalID string                `json:"terminal_id"`
	TenantID   string                `json:"tenant_id"`
	Role       entities.TerminalRole `json:"role"`
	jwt.RegisteredClaims
}

// AuthServiceImpl handles terminal authentication. Terminals hold an API key
// of the form "<terminal-id>.<secret>"; only the bcrypt hash of the secret is
// stored, and a successful exchange yields a short-lived JWT.
type AuthServiceImpl struct {
	terminalRepo ports.TerminalRepository
	jwtConfig    config.JWTConfig
	logger       *logger.Logger
	metrics      *metrics.Collector
}

// NewAuthService creates a new auth service
func NewAuthService(terminalRepo ports.TerminalRepository, jwtConfig config.JWTConfig, logger *logger.Logger, collector *metrics.Collector) ports.AuthService {
	return &AuthServiceImpl{
		terminalRepo: terminalRepo,
		jwtConfig:    jwtConfig,
		logger:       logger,
		metrics:      collector,
	}
}

// IssueToken exchanges a terminal API key for a signed access token
func (s *AuthServiceImpl) IssueToken(ctx context.Context, req ports.TokenRequest) (*ports.TokenResponse, error) {
	terminalID, secret, ok := splitAPIKey(req.APIKey)
	if !ok {
		s.metrics.RecordAuthAttempt("failure")
		return nil, entities.ErrInvalidCredentials
	}

	terminal, err := s.terminalRepo.GetByID(ctx, terminalID)
	if err != nil {
		s.metrics.RecordAuthAttempt("failure")
		s.logger.Warnw("Token request for unknown terminal", "terminal_id", terminalID)
		return nil, entities.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(terminal.KeyHash), []byte(secret)); err != nil {
		s.metrics.RecordAuthAttempt("failure")
		s.logger.LogSecurityEvent("invalid_api_key", terminalID.String(), "", nil)
		return nil, entities.ErrInvalidCredentials
	}

	if !terminal.CanServe() {
		s.metrics.RecordAuthAttempt("failure")
		s.logger.Warnw("Token request for inactive terminal", "terminal_id", terminal.ID, "tenant_id", terminal.TenantID)
		return nil, entities.ErrTerminalInactive
	}

	accessToken, err := s.generateAccessToken(terminal)
	if err != nil {
		s.metrics.RecordAuthAttempt("failure")
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.metrics.RecordAuthAttempt("success")
	s.logger.LogTerminalAction(terminal.ID.String(), "token_issued", map[string]interface{}{
		"tenant_id": terminal.TenantID.String(),
	})

	return &ports.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.jwtConfig.ExpiresIn.Seconds()),
		Terminal:    terminal,
	}, nil
}

// ValidateToken validates a JWT token and returns claims
func (s *AuthServiceImpl) ValidateToken(tokenString string) (*ports.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtConfig.Secret), nil
	})
	if err != nil {
		return nil, entities.ErrUnauthorized
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, entities.ErrUnauthorized
	}

	terminalID, err := uuid.Parse(claims.TerminalID)
	if err != nil {
		return nil, entities.ErrUnauthorized
	}
	tenantID, err := uuid.Parse(claims.TenantID)
	if err != nil {
		return nil, entities.ErrUnauthorized
	}

	return &ports.Claims{
		TerminalID: terminalID,
		TenantID:   tenantID,
		Role:       claims.Role,
	}, nil
}

// CreateTerminal registers a new terminal and returns its credentials.
// The API key appears in the response exactly once; only its hash is stored.
func (s *AuthServiceImpl) CreateTerminal(ctx context.Context, req ports.CreateTerminalRequest) (*ports.TerminalCredentials, error) {
	if !req.Role.IsValid() {
		return nil, fmt.Errorf("invalid terminal role: %s", req.Role)
	}

	secret, err := generateSecret()
	if err != nil {
		return nil, fmt.Errorf("failed to generate secret: %w", err)
	}

	keyHash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash secret: %w", err)
	}

	terminal := &entities.Terminal{
		ID:       uuid.New(),
		TenantID: req.TenantID,
		Name:     req.Name,
		KeyHash:  string(keyHash),
		Role:     req.Role,
		IsActive: true,
	}

	if err := s.terminalRepo.Create(ctx, terminal); err != nil {
		return nil, fmt.Errorf("failed to create terminal: %w", err)
	}

	s.logger.LogTerminalAction(terminal.ID.String(), "terminal_created", map[string]interface{}{
		"tenant_id": terminal.TenantID.String(),
		"role":      string(terminal.Role),
	})

	return &ports.TerminalCredentials{
		Terminal: terminal,
		APIKey:   terminal.ID.String() + "." + secret,
	}, nil
}

// ListTerminals returns all terminals belonging to a tenant
func (s *AuthServiceImpl) ListTerminals(ctx context.Context, tenantID uuid.UUID) ([]*entities.Terminal, error) {
	terminals, err := s.terminalRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list terminals: %w", err)
	}
	return terminals, nil
}

// RevokeTerminal deactivates a terminal so its key stops working
func (s *AuthServiceImpl) RevokeTerminal(ctx context.Context, id uuid.UUID) error {
	if err := s.terminalRepo.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("failed to revoke terminal: %w", err)
	}

	s.logger.LogSecurityEvent("terminal_revoked", id.String(), "", nil)
	return nil
}

func (s *AuthServiceImpl) generateAccessToken(terminal *entities.Terminal) (string, error) {
	claims := &Claims{
		TerminalID: terminal.ID.String(),
		TenantID:   terminal.TenantID.String(),
		Role:       terminal.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.jwtConfig.ExpiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    s.jwtConfig.Issuer,
			Subject:   terminal.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtConfig.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// splitAPIKey breaks "<terminal-id>.<secret>" into its parts.
func splitAPIKey(key string) (uuid.UUID, string, bool) {
	parts := strings.SplitN(strings.TrimSpace(key), ".", 2)
	if len(parts) != 2 || parts[1] == "" {
		return uuid.Nil, "", false
	}

	id, err := uuid.Parse(parts[0])
	if err != nil {
		return uuid.Nil, "", false
	}

	return id, parts[1], true
}

func generateSecret() (string, error) {
	secretBytes := make([]byte, 16)
	if _, err := rand.Read(secretBytes); err != nil {
		return "", fmt.Errorf("failed to generate random secret: %w", err)
	}
	return hex.EncodeToString(secretBytes), nil
}
