package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zarinpos/core/internal/domain/entities"
	"github.com/zarinpos/core/internal/domain/jalali"
	"github.com/zarinpos/core/internal/ports"
)

func newHolidayFixture(t *testing.T) ports.HolidayService {
	t.Helper()
	return NewHolidayService(newFakeHolidayRepo(), nil, newTestLogger(t), nil)
}

func TestHolidayServiceAddAndList(t *testing.T) {
	ctx := context.Background()
	svc := newHolidayFixture(t)

	first, err := svc.AddHoliday(ctx, ports.CreateHolidayRequest{
		Date:       "1403/01/01",
		Title:      "نوروز",
		IsOfficial: true,
	})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	_, err = svc.AddHoliday(ctx, ports.CreateHolidayRequest{
		Date:  "1403/05/15",
		Title: "افتتاحیه شعبه",
	})
	require.NoError(t, err)

	_, err = svc.AddHoliday(ctx, ports.CreateHolidayRequest{
		Date:       "1404/01/01",
		Title:      "نوروز",
		IsOfficial: true,
	})
	require.NoError(t, err)

	year, err := svc.ListByYear(ctx, 1403)
	require.NoError(t, err)
	assert.Len(t, year, 2)

	month, err := svc.ListByMonth(ctx, 1403, 5)
	require.NoError(t, err)
	require.Len(t, month, 1)
	assert.Equal(t, "افتتاحیه شعبه", month[0].Title)
}

func TestHolidayServiceAddDuplicate(t *testing.T) {
	ctx := context.Background()
	svc := newHolidayFixture(t)

	req := ports.CreateHolidayRequest{Date: "1403/01/01", Title: "نوروز", IsOfficial: true}

	_, err := svc.AddHoliday(ctx, req)
	require.NoError(t, err)

	_, err = svc.AddHoliday(ctx, req)
	assert.ErrorIs(t, err, entities.ErrHolidayExists)
}

func TestHolidayServiceAddInvalidDate(t *testing.T) {
	ctx := context.Background()
	svc := newHolidayFixture(t)

	_, err := svc.AddHoliday(ctx, ports.CreateHolidayRequest{Date: "1403/13/01", Title: "ناموجود"})
	assert.ErrorIs(t, err, jalali.ErrInvalidDate)
}

func TestHolidayServiceIsHoliday(t *testing.T) {
	ctx := context.Background()
	svc := newHolidayFixture(t)

	_, err := svc.AddHoliday(ctx, ports.CreateHolidayRequest{Date: "1403/05/15", Title: "عید غدیر", IsOfficial: true})
	require.NoError(t, err)

	isHoliday, matches, err := svc.IsHoliday(ctx, mustDate(t, 1403, 5, 15))
	require.NoError(t, err)
	assert.True(t, isHoliday)
	require.Len(t, matches, 1)
	assert.Equal(t, "عید غدیر", matches[0].Title)

	isHoliday, matches, err = svc.IsHoliday(ctx, mustDate(t, 1403, 5, 16))
	require.NoError(t, err)
	assert.False(t, isHoliday)
	assert.Empty(t, matches)
}

func TestHolidayServiceRemove(t *testing.T) {
	ctx := context.Background()
	svc := newHolidayFixture(t)

	holiday, err := svc.AddHoliday(ctx, ports.CreateHolidayRequest{Date: "1403/01/13", Title: "سیزده بدر", IsOfficial: true})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveHoliday(ctx, holiday.ID))

	year, err := svc.ListByYear(ctx, 1403)
	require.NoError(t, err)
	assert.Empty(t, year)

	err = svc.RemoveHoliday(ctx, holiday.ID)
	assert.ErrorIs(t, err, entities.ErrHolidayNotFound)
}

func TestHolidayServiceListByYearOutOfRange(t *testing.T) {
	ctx := context.Background()
	svc := newHolidayFixture(t)

	_, err := svc.ListByYear(ctx, 1200)
	assert.ErrorIs(t, err, jalali.ErrInvalidDate)

	_, err = svc.ListByMonth(ctx, 1403, 13)
	assert.ErrorIs(t, err, jalali.ErrInvalidDate)
}
