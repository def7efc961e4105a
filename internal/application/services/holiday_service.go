package services

import (
	"context"
	"fmt"
	"time"

	"github.com/zarinpos/core/internal/domain/entities"
	"github.com/zarinpos/core/internal/domain/jalali"
	"github.com/zarinpos/core/internal/infrastructure/cache"
	"github.com/zarinpos/core/internal/infrastructure/logger"
	"github.com/zarinpos/core/internal/infrastructure/metrics"
	"github.com/zarinpos/core/internal/ports"
)

const holidayCacheTTL = time.Hour

// HolidayServiceImpl manages the tenant holiday calendar. Whole years are
// cached under one key each, since the hot path (the today banner) asks for
// the same year all day long.
type HolidayServiceImpl struct {
	holidayRepo ports.HolidayRepository
	cache       *cache.Cache
	logger      *logger.Logger
	metrics     *metrics.Collector
}

// NewHolidayService creates a new holiday service
func NewHolidayService(holidayRepo ports.HolidayRepository, cache *cache.Cache, logger *logger.Logger, collector *metrics.Collector) ports.HolidayService {
	return &HolidayServiceImpl{
		holidayRepo: holidayRepo,
		cache:       cache,
		logger:      logger,
		metrics:     collector,
	}
}

// AddHoliday registers a holiday on a Jalali day
func (s *HolidayServiceImpl) AddHoliday(ctx context.Context, req ports.CreateHolidayRequest) (*entities.Holiday, error) {
	date, err := jalali.Parse(req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid holiday date %q: %w", req.Date, err)
	}

	holiday := &entities.Holiday{
		JYear:      date.Year,
		JMonth:     date.Month,
		JDay:       date.Day,
		Title:      req.Title,
		IsOfficial: req.IsOfficial,
	}

	if err := s.holidayRepo.Create(ctx, holiday); err != nil {
		return nil, fmt.Errorf("failed to create holiday: %w", err)
	}

	s.invalidateYear(ctx, date.Year)
	s.logger.Infow("Holiday added", "date", date.Format(), "title", holiday.Title)

	return holiday, nil
}

// ListByYear returns all holidays in a Jalali year, cached for an hour
func (s *HolidayServiceImpl) ListByYear(ctx context.Context, year int) ([]*entities.Holiday, error) {
	if year < jalali.MinYear || year > jalali.MaxYear {
		return nil, fmt.Errorf("year %d: %w", year, jalali.ErrInvalidDate)
	}

	key := holidayYearKey(year)

	var cached []*entities.Holiday
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		s.metrics.RecordCacheHit("holidays")
		return cached, nil
	}
	s.metrics.RecordCacheMiss("holidays")

	holidays, err := s.holidayRepo.ListByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays for %d: %w", year, err)
	}

	if err := s.cache.Set(ctx, key, holidays, holidayCacheTTL); err != nil {
		s.logger.Warnw("Failed to cache holidays", "year", year, "error", err)
	}

	return holidays, nil
}

// ListByMonth returns the holidays of one Jalali month
func (s *HolidayServiceImpl) ListByMonth(ctx context.Context, year, month int) ([]*entities.Holiday, error) {
	if _, err := jalali.DaysInMonth(year, month); err != nil {
		return nil, err
	}

	holidays, err := s.holidayRepo.ListByMonth(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays for %d/%d: %w", year, month, err)
	}

	return holidays, nil
}

// RemoveHoliday deletes a holiday by id
func (s *HolidayServiceImpl) RemoveHoliday(ctx context.Context, id int) error {
	holiday, err := s.holidayRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get holiday %d: %w", id, err)
	}

	if err := s.holidayRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete holiday %d: %w", id, err)
	}

	s.invalidateYear(ctx, holiday.JYear)
	s.logger.Infow("Holiday removed", "id", id, "title", holiday.Title)

	return nil
}

// IsHoliday reports whether a day is a registered holiday, with the matching
// entries. A cached year list answers without touching the database.
func (s *HolidayServiceImpl) IsHoliday(ctx context.Context, date jalali.Date) (bool, []*entities.Holiday, error) {
	if !date.IsValid() {
		return false, nil, jalali.ErrInvalidDate
	}

	var cached []*entities.Holiday
	if err := s.cache.Get(ctx, holidayYearKey(date.Year), &cached); err == nil {
		s.metrics.RecordCacheHit("holidays")

		var matches []*entities.Holiday
		for _, h := range cached {
			if h.Matches(date) {
				matches = append(matches, h)
			}
		}
		return len(matches) > 0, matches, nil
	}
	s.metrics.RecordCacheMiss("holidays")

	holidays, err := s.holidayRepo.ListByDay(ctx, date.Year, date.Month, date.Day)
	if err != nil {
		return false, nil, fmt.Errorf("failed to check holiday %s: %w", date.Format(), err)
	}

	return len(holidays) > 0, holidays, nil
}

func (s *HolidayServiceImpl) invalidateYear(ctx context.Context, year int) {
	if err := s.cache.Delete(ctx, holidayYearKey(year)); err != nil {
		s.logger.Warnw("Failed to invalidate holiday cache", "year", year, "error", err)
	}
}

func holidayYearKey(year int) string {
	return fmt.Sprintf("holidays:%d", year)
}
