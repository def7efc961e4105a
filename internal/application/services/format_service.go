package services

import (
	"context"
	"fmt"

	"github.com/zarinpos/core/internal/domain/entities"
	"github.com/zarinpos/core/internal/domain/format"
	"github.com/zarinpos/core/internal/domain/weights"
	"github.com/zarinpos/core/internal/infrastructure/logger"
	"github.com/zarinpos/core/internal/ports"
)

// FormatServiceImpl exposes Persian rendering and weight conversion
type FormatServiceImpl struct {
	logger *logger.Logger
}

// NewFormatService creates a new format service
func NewFormatService(logger *logger.Logger) ports.FormatService {
	return &FormatServiceImpl{logger: logger}
}

// FormatNumber renders an integer with thousand grouping, in both digit sets
func (s *FormatServiceImpl) FormatNumber(ctx context.Context, req ports.FormatNumberRequest) *ports.FormatNumberResponse {
	return &ports.FormatNumberResponse{
		Value:   req.Value,
		Grouped: format.GroupThousands(req.Value),
		Persian: format.Number(req.Value),
	}
}

// FormatCurrency renders a toman amount the way receipts print it
func (s *FormatServiceImpl) FormatCurrency(ctx context.Context, req ports.FormatCurrencyRequest) *ports.FormatCurrencyResponse {
	return &ports.FormatCurrencyResponse{
		Amount:    req.Amount,
		Formatted: format.Toman(req.Amount),
	}
}

// ConvertWeight converts between goldsmith units
func (s *FormatServiceImpl) ConvertWeight(ctx context.Context, req ports.ConvertWeightRequest) (*ports.ConvertWeightResponse, error) {
	if req.Value < 0 {
		return nil, entities.ErrInvalidWeight
	}

	from, err := weights.ParseUnit(req.From)
	if err != nil {
		return nil, fmt.Errorf("invalid source unit %q: %w", req.From, err)
	}

	to, err := weights.ParseUnit(req.To)
	if err != nil {
		return nil, fmt.Errorf("invalid target unit %q: %w", req.To, err)
	}

	result, err := weights.Convert(req.Value, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to convert weight: %w", err)
	}

	return &ports.ConvertWeightResponse{
		Value:     req.Value,
		From:      string(from),
		To:        string(to),
		Result:    result,
		Formatted: weights.Format(result, to),
	}, nil
}

// Units lists the supported goldsmith weight units
func (s *FormatServiceImpl) Units(ctx context.Context) []ports.UnitInfo {
	units := weights.Units()

	infos := make([]ports.UnitInfo, 0, len(units))
	for _, u := range units {
		grams, _ := u.Grams()
		infos = append(infos, ports.UnitInfo{
			Key:   string(u),
			Label: u.Label(),
			Grams: grams,
		})
	}
	return infos
}
