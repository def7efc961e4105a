package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zarinpos/core/internal/domain/jalali"
	"github.com/zarinpos/core/internal/ports"
)

func newCalendarFixture(t *testing.T, today jalali.Date) (ports.CalendarService, ports.HolidayService) {
	t.Helper()
	log := newTestLogger(t)
	holidaySvc := NewHolidayService(newFakeHolidayRepo(), nil, log, nil)
	calendarSvc := NewCalendarService(fixedClock{today: today}, holidaySvc, log, nil)
	return calendarSvc, holidaySvc
}

func TestCalendarServiceToday(t *testing.T) {
	ctx := context.Background()
	today := mustDate(t, 1403, 5, 15)
	calendarSvc, holidaySvc := newCalendarFixture(t, today)

	_, err := holidaySvc.AddHoliday(ctx, ports.CreateHolidayRequest{
		Date:       "1403/05/15",
		Title:      "عید غدیر",
		IsOfficial: true,
	})
	require.NoError(t, err)

	resp, err := calendarSvc.Today(ctx)
	require.NoError(t, err)

	assert.Equal(t, today, resp.Jalali)
	assert.Equal(t, "مرداد", resp.MonthName)
	assert.Equal(t, "2024-08-05", resp.Gregorian)
	assert.Equal(t, "دوشنبه", resp.Weekday)
	assert.True(t, resp.IsHoliday)
	assert.False(t, resp.IsFriday)
	assert.Equal(t, []string{"عید غدیر"}, resp.Holidays)
}

func TestCalendarServiceTodayFriday(t *testing.T) {
	ctx := context.Background()
	calendarSvc, _ := newCalendarFixture(t, mustDate(t, 1403, 5, 19))

	resp, err := calendarSvc.Today(ctx)
	require.NoError(t, err)

	assert.True(t, resp.IsFriday)
	assert.False(t, resp.IsHoliday)
	assert.Empty(t, resp.Holidays)
}

func TestCalendarServiceToJalali(t *testing.T) {
	ctx := context.Background()
	calendarSvc, _ := newCalendarFixture(t, mustDate(t, 1403, 5, 15))

	resp, err := calendarSvc.ToJalali(ctx, ports.ToJalaliRequest{Date: "2024-08-05"})
	require.NoError(t, err)

	assert.Equal(t, 1403, resp.Year)
	assert.Equal(t, 5, resp.Month)
	assert.Equal(t, 15, resp.Day)
	assert.Equal(t, "۱۴۰۳/۰۵/۱۵", resp.JalaliPersian)
}

func TestCalendarServiceToJalaliInvalid(t *testing.T) {
	ctx := context.Background()
	calendarSvc, _ := newCalendarFixture(t, mustDate(t, 1403, 5, 15))

	_, err := calendarSvc.ToJalali(ctx, ports.ToJalaliRequest{Date: "not-a-date"})
	assert.Error(t, err)

	_, err = calendarSvc.ToJalali(ctx, ports.ToJalaliRequest{Date: "1200-01-01"})
	assert.ErrorIs(t, err, jalali.ErrInvalidDate)
}

func TestCalendarServiceToGregorian(t *testing.T) {
	ctx := context.Background()
	calendarSvc, _ := newCalendarFixture(t, mustDate(t, 1403, 5, 15))

	tests := []struct {
		input string
		want  string
	}{
		{"1403/05/15", "2024-08-05"},
		{"۱۴۰۳/۰۵/۱۵", "2024-08-05"},
		{"1403-05-15", "2024-08-05"},
	}

	for _, tt := range tests {
		resp, err := calendarSvc.ToGregorian(ctx, ports.ToGregorianRequest{Date: tt.input})
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, resp.Gregorian, "input %q", tt.input)
	}

	_, err := calendarSvc.ToGregorian(ctx, ports.ToGregorianRequest{Date: "1403/13/01"})
	assert.ErrorIs(t, err, jalali.ErrInvalidDate)
}

func TestCalendarServiceValidate(t *testing.T) {
	ctx := context.Background()
	calendarSvc, _ := newCalendarFixture(t, mustDate(t, 1403, 5, 15))

	valid := calendarSvc.Validate(ctx, ports.ValidateDateRequest{Date: "1403/12/29"})
	assert.True(t, valid.Valid)
	assert.Equal(t, "چهارشنبه", valid.Weekday)

	invalid := calendarSvc.Validate(ctx, ports.ValidateDateRequest{Date: "1403/12/30"})
	assert.False(t, invalid.Valid)
	assert.NotEmpty(t, invalid.Reason)
}

func TestCalendarServiceMonths(t *testing.T) {
	ctx := context.Background()
	calendarSvc, _ := newCalendarFixture(t, mustDate(t, 1403, 5, 15))

	months := calendarSvc.Months(ctx)
	require.Len(t, months, 12)

	assert.Equal(t, ports.MonthInfo{Number: 1, Name: "فروردین", Days: 31}, months[0])
	assert.Equal(t, ports.MonthInfo{Number: 7, Name: "مهر", Days: 30}, months[6])
	assert.Equal(t, ports.MonthInfo{Number: 12, Name: "اسفند", Days: 29}, months[11])
}

func TestCalendarServiceMonthsLeapYear(t *testing.T) {
	ctx := context.Background()
	calendarSvc, _ := newCalendarFixture(t, mustDate(t, 1405, 1, 1))

	months := calendarSvc.Months(ctx)
	require.Len(t, months, 12)
	assert.Equal(t, 30, months[11].Days)
}

func TestCalendarServiceWeekdays(t *testing.T) {
	ctx := context.Background()
	calendarSvc, _ := newCalendarFixture(t, mustDate(t, 1403, 5, 15))

	weekdays := calendarSvc.Weekdays(ctx)
	require.Len(t, weekdays, 7)

	assert.Equal(t, ports.WeekdayInfo{Index: 0, Name: "شنبه"}, weekdays[0])
	assert.Equal(t, ports.WeekdayInfo{Index: 6, Name: "جمعه"}, weekdays[6])
}

func TestCalendarServicePresets(t *testing.T) {
	ctx := context.Background()
	calendarSvc, _ := newCalendarFixture(t, mustDate(t, 1403, 5, 15))

	presets := calendarSvc.Presets(ctx)
	require.Len(t, presets, 16)

	assert.Equal(t, "today", presets[0].Key)
	for _, p := range presets {
		assert.NotEmpty(t, p.Label, "preset %s", p.Key)
	}
}

func TestCalendarServiceResolvePreset(t *testing.T) {
	ctx := context.Background()
	calendarSvc, _ := newCalendarFixture(t, mustDate(t, 1403, 5, 15))

	tests := []struct {
		key   string
		start jalali.Date
		end   jalali.Date
		days  int
	}{
		{"today", jalali.Date{Year: 1403, Month: 5, Day: 15}, jalali.Date{Year: 1403, Month: 5, Day: 15}, 1},
		{"this-week", jalali.Date{Year: 1403, Month: 5, Day: 13}, jalali.Date{Year: 1403, Month: 5, Day: 19}, 7},
		{"last-month", jalali.Date{Year: 1403, Month: 4, Day: 1}, jalali.Date{Year: 1403, Month: 4, Day: 31}, 31},
		{"q2", jalali.Date{Year: 1403, Month: 4, Day: 1}, jalali.Date{Year: 1403, Month: 6, Day: 31}, 91},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			resp, err := calendarSvc.ResolvePreset(ctx, tt.key)
			require.NoError(t, err)

			assert.Equal(t, tt.key, resp.Key)
			assert.NotEmpty(t, resp.Label)
			assert.Equal(t, tt.start, resp.Start)
			assert.Equal(t, tt.end, resp.End)
			assert.Equal(t, tt.days, resp.Days)
		})
	}
}

func TestCalendarServiceResolvePresetUnknown(t *testing.T) {
	ctx := context.Background()
	calendarSvc, _ := newCalendarFixture(t, mustDate(t, 1403, 5, 15))

	_, err := calendarSvc.ResolvePreset(ctx, "fortnight")
	assert.ErrorIs(t, err, jalali.ErrUnknownPreset)
}

func TestCalendarServiceBusinessDays(t *testing.T) {
	ctx := context.Background()
	calendarSvc, holidaySvc := newCalendarFixture(t, mustDate(t, 1403, 5, 15))

	_, err := holidaySvc.AddHoliday(ctx, ports.CreateHolidayRequest{
		Date:  "1403/05/15",
		Title: "عید غدیر",
	})
	require.NoError(t, err)

	resp, err := calendarSvc.BusinessDays(ctx, ports.BusinessDaysRequest{
		Start: "1403/05/13",
		End:   "1403/05/19",
	})
	require.NoError(t, err)

	assert.Equal(t, 7, resp.TotalDays)
	assert.Equal(t, 1, resp.Fridays)
	assert.Equal(t, 1, resp.Holidays)
	assert.Equal(t, 5, resp.BusinessDays)
}

func TestCalendarServiceBusinessDaysHolidayOnFriday(t *testing.T) {
	ctx := context.Background()
	calendarSvc, holidaySvc := newCalendarFixture(t, mustDate(t, 1403, 5, 15))

	// 1403/05/19 is a Friday; it must not be subtracted twice.
	_, err := holidaySvc.AddHoliday(ctx, ports.CreateHolidayRequest{
		Date:  "1403/05/19",
		Title: "تعطیل رسمی",
	})
	require.NoError(t, err)

	resp, err := calendarSvc.BusinessDays(ctx, ports.BusinessDaysRequest{
		Start: "1403/05/13",
		End:   "1403/05/19",
	})
	require.NoError(t, err)

	assert.Equal(t, 7, resp.TotalDays)
	assert.Equal(t, 1, resp.Fridays)
	assert.Equal(t, 1, resp.Holidays)
	assert.Equal(t, 6, resp.BusinessDays)
}

func TestCalendarServiceBusinessDaysInvalidRange(t *testing.T) {
	ctx := context.Background()
	calendarSvc, _ := newCalendarFixture(t, mustDate(t, 1403, 5, 15))

	// The two days have equal coarse ordinals but run backwards.
	_, err := calendarSvc.BusinessDays(ctx, ports.BusinessDaysRequest{
		Start: "1403/02/01",
		End:   "1403/01/31",
	})
	assert.ErrorIs(t, err, jalali.ErrInvalidRange)

	_, err = calendarSvc.BusinessDays(ctx, ports.BusinessDaysRequest{
		Start: "1403/05/99",
		End:   "1403/05/19",
	})
	assert.Error(t, err)
}
