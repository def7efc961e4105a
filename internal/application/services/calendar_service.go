package services

import (
	"context"
	"fmt"
	"time"

	"github.com/zarinpos/core/internal/domain/format"
	"github.com/zarinpos/core/internal/domain/jalali"
	"github.com/zarinpos/core/internal/infrastructure/logger"
	"github.com/zarinpos/core/internal/infrastructure/metrics"
	"github.com/zarinpos/core/internal/ports"
)

// CalendarServiceImpl implements Jalali calendar operations
type CalendarServiceImpl struct {
	clock      ports.Clock
	holidaySvc ports.HolidayService
	logger     *logger.Logger
	metrics    *metrics.Collector
}

// NewCalendarService creates a new calendar service
func NewCalendarService(clock ports.Clock, holidaySvc ports.HolidayService, logger *logger.Logger, collector *metrics.Collector) ports.CalendarService {
	return &CalendarServiceImpl{
		clock:      clock,
		holidaySvc: holidaySvc,
		logger:     logger,
		metrics:    collector,
	}
}

// Today returns the current Jalali day with holiday and weekend flags.
// Holiday lookup failures degrade to an unflagged day rather than failing
// the whole request; terminals need the date banner even when the holiday
// table is unreachable.
func (s *CalendarServiceImpl) Today(ctx context.Context) (*ports.TodayResponse, error) {
	today := s.clock.Today()

	resp := &ports.TodayResponse{
		ConversionResponse: conversionResponse(today),
		MonthName:          today.MonthName(),
		IsFriday:           today.Weekday() == jalali.Friday,
	}

	isHoliday, holidays, err := s.holidaySvc.IsHoliday(ctx, today)
	if err != nil {
		s.logger.Warnw("Failed to check holidays for today", "date", today.Format(), "error", err)
		return resp, nil
	}

	resp.IsHoliday = isHoliday
	for _, h := range holidays {
		resp.Holidays = append(resp.Holidays, h.Title)
	}

	return resp, nil
}

// ToJalali converts a Gregorian date string (YYYY-MM-DD) to Jalali
func (s *CalendarServiceImpl) ToJalali(ctx context.Context, req ports.ToJalaliRequest) (*ports.ConversionResponse, error) {
	t, err := time.Parse("2006-01-02", format.ToEnglishDigits(req.Date))
	if err != nil {
		return nil, fmt.Errorf("invalid gregorian date %q: %w", req.Date, err)
	}

	date := jalali.FromGregorian(t.Year(), int(t.Month()), t.Day())
	if !date.IsValid() {
		return nil, fmt.Errorf("gregorian date %q maps outside the supported years: %w", req.Date, jalali.ErrInvalidDate)
	}

	s.metrics.RecordConversion("to_jalali")

	resp := conversionResponse(date)
	return &resp, nil
}

// ToGregorian converts a Jalali date string (YYYY/MM/DD) to Gregorian
func (s *CalendarServiceImpl) ToGregorian(ctx context.Context, req ports.ToGregorianRequest) (*ports.ConversionResponse, error) {
	date, err := jalali.Parse(req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid jalali date %q: %w", req.Date, err)
	}

	s.metrics.RecordConversion("to_gregorian")

	resp := conversionResponse(date)
	return &resp, nil
}

// Validate reports whether a Jalali date string names a real calendar day
func (s *CalendarServiceImpl) Validate(ctx context.Context, req ports.ValidateDateRequest) *ports.ValidationResponse {
	date, err := jalali.Parse(req.Date)
	if err != nil {
		return &ports.ValidationResponse{
			Valid:  false,
			Reason: err.Error(),
		}
	}

	return &ports.ValidationResponse{
		Valid:   true,
		Date:    date,
		Weekday: date.Weekday().String(),
	}
}

// Months lists the twelve Jalali months with their lengths in the current year
func (s *CalendarServiceImpl) Months(ctx context.Context) []ports.MonthInfo {
	year := s.clock.Today().Year

	months := make([]ports.MonthInfo, 0, 12)
	for m := 1; m <= 12; m++ {
		days, _ := jalali.DaysInMonth(year, m)
		months = append(months, ports.MonthInfo{
			Number: m,
			Name:   jalali.MonthName(m),
			Days:   days,
		})
	}
	return months
}

// Weekdays lists the week starting from Saturday
func (s *CalendarServiceImpl) Weekdays(ctx context.Context) []ports.WeekdayInfo {
	weekdays := make([]ports.WeekdayInfo, 0, len(jalali.WeekdayNames))
	for i, name := range jalali.WeekdayNames {
		weekdays = append(weekdays, ports.WeekdayInfo{Index: i, Name: name})
	}
	return weekdays
}

// Presets lists the reporting range presets in display order
func (s *CalendarServiceImpl) Presets(ctx context.Context) []ports.PresetInfo {
	presets := jalali.Presets()

	infos := make([]ports.PresetInfo, 0, len(presets))
	for _, p := range presets {
		infos = append(infos, ports.PresetInfo{Key: string(p), Label: p.Label()})
	}
	return infos
}

// ResolvePreset materialises a named range preset against today
func (s *CalendarServiceImpl) ResolvePreset(ctx context.Context, key string) (*ports.RangeResponse, error) {
	preset := jalali.Preset(key)
	today := s.clock.Today()

	r, err := jalali.PresetRange(preset, today)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve preset %q: %w", key, err)
	}

	s.metrics.RecordRangeResolution(key)

	return &ports.RangeResponse{
		Key:          key,
		Label:        preset.Label(),
		Start:        r.Start,
		End:          r.End,
		StartPersian: r.Start.FormatPersian(),
		EndPersian:   r.End.FormatPersian(),
		Days:         r.Days(),
	}, nil
}

// BusinessDays counts working days in an inclusive range. Fridays and
// registered holidays are excluded; a holiday falling on a Friday is
// excluded once.
func (s *CalendarServiceImpl) BusinessDays(ctx context.Context, req ports.BusinessDaysRequest) (*ports.BusinessDaysResponse, error) {
	start, err := jalali.Parse(req.Start)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", req.Start, err)
	}

	end, err := jalali.Parse(req.End)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", req.End, err)
	}

	// The coarse range check cannot see day-level order around month seams,
	// so guard on the exact difference before walking.
	if end.Sub(start) < 0 {
		return nil, jalali.ErrInvalidRange
	}

	holidaySet := make(map[jalali.Date]bool)
	for year := start.Year; year <= end.Year; year++ {
		list, err := s.holidaySvc.ListByYear(ctx, year)
		if err != nil {
			return nil, fmt.Errorf("failed to load holidays for %d: %w", year, err)
		}
		for _, h := range list {
			holidaySet[h.Date()] = true
		}
	}

	var total, fridays, holidays, business int
	for cur := start; ; cur = cur.AddDays(1) {
		total++
		isFriday := cur.Weekday() == jalali.Friday
		isHoliday := holidaySet[cur]

		if isFriday {
			fridays++
		}
		if isHoliday {
			holidays++
		}
		if !isFriday && !isHoliday {
			business++
		}

		if cur == end {
			break
		}
	}

	return &ports.BusinessDaysResponse{
		Start:        start,
		End:          end,
		TotalDays:    total,
		Fridays:      fridays,
		Holidays:     holidays,
		BusinessDays: business,
	}, nil
}

func conversionResponse(d jalali.Date) ports.ConversionResponse {
	return ports.ConversionResponse{
		Jalali:        d,
		JalaliPersian: d.FormatPersian(),
		JalaliLong:    d.FormatLong(),
		Gregorian:     d.GregorianString(),
		Weekday:       d.Weekday().String(),
		Year:          d.Year,
		Month:         d.Month,
		Day:           d.Day,
	}
}
