package services

import (
	"context"
	"fmt"
	"math"

	"github.com/zarinpos/core/internal/domain/entities"
	"github.com/zarinpos/core/internal/domain/format"
	"github.com/zarinpos/core/internal/domain/weights"
	"github.com/zarinpos/core/internal/infrastructure/config"
	"github.com/zarinpos/core/internal/infrastructure/logger"
	"github.com/zarinpos/core/internal/infrastructure/metrics"
	"github.com/zarinpos/core/internal/ports"
)

// PricingServiceImpl computes sale quotes for gold items.
//
// Each component is rounded to whole toman before the next one is computed.
// Receipts printed from these quotes are reconciled line by line, so the
// rounding points are part of the contract, not an implementation detail.
type PricingServiceImpl struct {
	rateSvc ports.RateService
	pricing config.PricingConfig
	logger  *logger.Logger
	metrics *metrics.Collector
}

// NewPricingService creates a new pricing service
func NewPricingService(rateSvc ports.RateService, pricing config.PricingConfig, logger *logger.Logger, collector *metrics.Collector) ports.PricingService {
	return &PricingServiceImpl{
		rateSvc: rateSvc,
		pricing: pricing,
		logger:  logger,
		metrics: collector,
	}
}

// Quote prices one item. The rate comes from the request when given,
// otherwise from the latest recorded daily rate. Percentages left nil fall
// back to the configured defaults; an explicit zero is honoured.
func (s *PricingServiceImpl) Quote(ctx context.Context, req ports.QuoteRequest) (*ports.QuoteResponse, error) {
	if req.Weight <= 0 {
		return nil, entities.ErrInvalidWeight
	}

	unit, err := weights.ParseUnit(req.Unit)
	if err != nil {
		return nil, fmt.Errorf("invalid weight unit %q: %w", req.Unit, err)
	}

	grams, err := weights.ToGrams(req.Weight, unit)
	if err != nil {
		return nil, fmt.Errorf("failed to convert weight: %w", err)
	}

	pricePerGram := req.PricePerGram
	if pricePerGram <= 0 {
		latest, err := s.rateSvc.LatestRate(ctx)
		if err != nil {
			return nil, fmt.Errorf("no rate given and no daily rate recorded: %w", err)
		}
		pricePerGram = latest.PricePerGram
	}

	wagePct := s.pricing.DefaultWagePercent
	if req.WagePercent != nil {
		wagePct = *req.WagePercent
	}
	profitPct := s.pricing.DefaultProfitPercent
	if req.ProfitPercent != nil {
		profitPct = *req.ProfitPercent
	}
	taxPct := s.pricing.TaxPercent
	if req.TaxPercent != nil {
		taxPct = *req.TaxPercent
	}

	goldValue := roundToman(grams * float64(pricePerGram))
	wage := roundToman(float64(goldValue) * wagePct / 100)
	profit := roundToman(float64(goldValue+wage) * profitPct / 100)
	tax := roundToman(float64(wage+profit) * taxPct / 100)
	total := goldValue + wage + profit + tax

	s.metrics.RecordQuote(total)
	s.logger.Debugw("Quote computed",
		"grams", grams,
		"price_per_gram", pricePerGram,
		"gold_value", goldValue,
		"wage", wage,
		"profit", profit,
		"tax", tax,
		"total", total,
	)

	return &ports.QuoteResponse{
		Grams:          grams,
		PricePerGram:   pricePerGram,
		GoldValue:      goldValue,
		Wage:           wage,
		Profit:         profit,
		Tax:            tax,
		Total:          total,
		TotalFormatted: format.Toman(total),
	}, nil
}

func roundToman(v float64) int64 {
	return int64(math.Round(v))
}
