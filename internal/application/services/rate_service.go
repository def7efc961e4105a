package services

import (
	"context"
	"fmt"
	"time"

	"github.com/zarinpos/core/internal/domain/entities"
	"github.com/zarinpos/core/internal/domain/format"
	"github.com/zarinpos/core/internal/domain/jalali"
	"github.com/zarinpos/core/internal/infrastructure/cache"
	"github.com/zarinpos/core/internal/infrastructure/logger"
	"github.com/zarinpos/core/internal/infrastructure/metrics"
	"github.com/zarinpos/core/internal/ports"
)

// Latest-rate lookups back every quote, so the cache TTL stays short enough
// that an intraday correction shows up quickly.
const latestRateTTL = 5 * time.Minute

const latestRateKey = "rates:latest"

// RateServiceImpl manages daily 18 karat gold rates
type RateServiceImpl struct {
	rateRepo ports.RateRepository
	clock    ports.Clock
	cache    *cache.Cache
	logger   *logger.Logger
	metrics  *metrics.Collector
}

// NewRateService creates a new rate service
func NewRateService(rateRepo ports.RateRepository, clock ports.Clock, cache *cache.Cache, logger *logger.Logger, collector *metrics.Collector) ports.RateService {
	return &RateServiceImpl{
		rateRepo: rateRepo,
		clock:    clock,
		cache:    cache,
		logger:   logger,
		metrics:  collector,
	}
}

// SetRate records the per-gram price for a day, overwriting any earlier
// value. An empty date means today.
func (s *RateServiceImpl) SetRate(ctx context.Context, req ports.SetRateRequest) (*ports.RateResponse, error) {
	var date jalali.Date
	if req.Date == "" {
		date = s.clock.Today()
	} else {
		parsed, err := jalali.Parse(req.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid rate date %q: %w", req.Date, err)
		}
		date = parsed
	}

	rate := &entities.GoldRate{
		JYear:        date.Year,
		JMonth:       date.Month,
		JDay:         date.Day,
		PricePerGram: req.PricePerGram,
		Source:       req.Source,
	}

	if !rate.IsValid() {
		return nil, entities.ErrInvalidRate
	}

	if err := s.rateRepo.Upsert(ctx, rate); err != nil {
		return nil, fmt.Errorf("failed to store rate: %w", err)
	}

	s.invalidateLatest(ctx)
	s.logger.Infow("Gold rate set", "date", date.Format(), "price_per_gram", rate.PricePerGram, "source", rate.Source)

	return rateResponse(rate), nil
}

// GetRate returns the rate recorded for a specific day
func (s *RateServiceImpl) GetRate(ctx context.Context, date jalali.Date) (*ports.RateResponse, error) {
	if !date.IsValid() {
		return nil, jalali.ErrInvalidDate
	}

	rate, err := s.rateRepo.GetByDay(ctx, date.Year, date.Month, date.Day)
	if err != nil {
		return nil, fmt.Errorf("failed to get rate for %s: %w", date.Format(), err)
	}

	return rateResponse(rate), nil
}

// LatestRate returns the most recently dated rate
func (s *RateServiceImpl) LatestRate(ctx context.Context) (*ports.RateResponse, error) {
	var cached entities.GoldRate
	if err := s.cache.Get(ctx, latestRateKey, &cached); err == nil {
		s.metrics.RecordCacheHit("rates")
		return rateResponse(&cached), nil
	}
	s.metrics.RecordCacheMiss("rates")

	rate, err := s.rateRepo.GetLatest(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest rate: %w", err)
	}

	if err := s.cache.Set(ctx, latestRateKey, rate, latestRateTTL); err != nil {
		s.logger.Warnw("Failed to cache latest rate", "error", err)
	}

	return rateResponse(rate), nil
}

// MonthRates lists the recorded rates of one Jalali month
func (s *RateServiceImpl) MonthRates(ctx context.Context, year, month int) ([]*ports.RateResponse, error) {
	if _, err := jalali.DaysInMonth(year, month); err != nil {
		return nil, err
	}

	rates, err := s.rateRepo.ListByMonth(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list rates for %d/%d: %w", year, month, err)
	}

	responses := make([]*ports.RateResponse, 0, len(rates))
	for _, r := range rates {
		responses = append(responses, rateResponse(r))
	}
	return responses, nil
}

// RemoveRate deletes a recorded rate by id
func (s *RateServiceImpl) RemoveRate(ctx context.Context, id int) error {
	if err := s.rateRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete rate %d: %w", id, err)
	}

	s.invalidateLatest(ctx)
	s.logger.Infow("Gold rate removed", "id", id)

	return nil
}

func (s *RateServiceImpl) invalidateLatest(ctx context.Context) {
	if err := s.cache.Delete(ctx, latestRateKey); err != nil {
		s.logger.Warnw("Failed to invalidate latest rate cache", "error", err)
	}
}

func rateResponse(r *entities.GoldRate) *ports.RateResponse {
	date := r.Date()
	return &ports.RateResponse{
		ID:           r.ID,
		Date:         date,
		DatePersian:  date.FormatPersian(),
		PricePerGram: r.PricePerGram,
		Formatted:    format.Toman(r.PricePerGram),
		Source:       r.Source,
	}
}
