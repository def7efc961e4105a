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

func newRateFixture(t *testing.T, today jalali.Date) ports.RateService {
	t.Helper()
	return NewRateService(newFakeRateRepo(), fixedClock{today: today}, nil, newTestLogger(t), nil)
}

func TestRateServiceSetAndGet(t *testing.T) {
	ctx := context.Background()
	svc := newRateFixture(t, mustDate(t, 1403, 5, 15))

	set, err := svc.SetRate(ctx, ports.SetRateRequest{
		Date:         "1403/05/15",
		PricePerGram: 5_000_000,
		Source:       "tgju",
	})
	require.NoError(t, err)
	assert.NotZero(t, set.ID)

	got, err := svc.GetRate(ctx, mustDate(t, 1403, 5, 15))
	require.NoError(t, err)

	assert.Equal(t, int64(5_000_000), got.PricePerGram)
	assert.Equal(t, "۱۴۰۳/۰۵/۱۵", got.DatePersian)
	assert.Equal(t, "۵,۰۰۰,۰۰۰ تومان", got.Formatted)
	assert.Equal(t, "tgju", got.Source)
}

func TestRateServiceSetRateDefaultsToToday(t *testing.T) {
	ctx := context.Background()
	today := mustDate(t, 1403, 5, 15)
	svc := newRateFixture(t, today)

	resp, err := svc.SetRate(ctx, ports.SetRateRequest{PricePerGram: 4_800_000})
	require.NoError(t, err)

	assert.Equal(t, today, resp.Date)
}

func TestRateServiceUpsertOverwrites(t *testing.T) {
	ctx := context.Background()
	svc := newRateFixture(t, mustDate(t, 1403, 5, 15))

	_, err := svc.SetRate(ctx, ports.SetRateRequest{Date: "1403/05/15", PricePerGram: 5_000_000})
	require.NoError(t, err)

	_, err = svc.SetRate(ctx, ports.SetRateRequest{Date: "1403/05/15", PricePerGram: 5_100_000, Source: "manual"})
	require.NoError(t, err)

	got, err := svc.GetRate(ctx, mustDate(t, 1403, 5, 15))
	require.NoError(t, err)
	assert.Equal(t, int64(5_100_000), got.PricePerGram)
	assert.Equal(t, "manual", got.Source)

	month, err := svc.MonthRates(ctx, 1403, 5)
	require.NoError(t, err)
	assert.Len(t, month, 1)
}

func TestRateServiceLatest(t *testing.T) {
	ctx := context.Background()
	svc := newRateFixture(t, mustDate(t, 1403, 5, 15))

	_, err := svc.LatestRate(ctx)
	assert.ErrorIs(t, err, entities.ErrRateNotFound)

	for _, seed := range []struct {
		date  string
		price int64
	}{
		{"1403/04/20", 4_700_000},
		{"1403/05/15", 5_000_000},
		{"1403/05/10", 4_900_000},
	} {
		_, err := svc.SetRate(ctx, ports.SetRateRequest{Date: seed.date, PricePerGram: seed.price})
		require.NoError(t, err)
	}

	latest, err := svc.LatestRate(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5_000_000), latest.PricePerGram)
	assert.Equal(t, mustDate(t, 1403, 5, 15), latest.Date)
}

func TestRateServiceSetRateInvalid(t *testing.T) {
	ctx := context.Background()
	svc := newRateFixture(t, mustDate(t, 1403, 5, 15))

	_, err := svc.SetRate(ctx, ports.SetRateRequest{Date: "1403/13/01", PricePerGram: 5_000_000})
	assert.ErrorIs(t, err, jalali.ErrInvalidDate)

	_, err = svc.SetRate(ctx, ports.SetRateRequest{Date: "1403/05/15", PricePerGram: -1})
	assert.ErrorIs(t, err, entities.ErrInvalidRate)
}

func TestRateServiceMonthRates(t *testing.T) {
	ctx := context.Background()
	svc := newRateFixture(t, mustDate(t, 1403, 5, 15))

	_, err := svc.SetRate(ctx, ports.SetRateRequest{Date: "1403/05/10", PricePerGram: 4_900_000})
	require.NoError(t, err)
	_, err = svc.SetRate(ctx, ports.SetRateRequest{Date: "1403/05/01", PricePerGram: 4_850_000})
	require.NoError(t, err)

	rates, err := svc.MonthRates(ctx, 1403, 5)
	require.NoError(t, err)
	require.Len(t, rates, 2)
	assert.Equal(t, 1, rates[0].Date.Day)
	assert.Equal(t, 10, rates[1].Date.Day)

	_, err = svc.MonthRates(ctx, 1403, 13)
	assert.ErrorIs(t, err, jalali.ErrInvalidDate)
}

func TestRateServiceRemove(t *testing.T) {
	ctx := context.Background()
	svc := newRateFixture(t, mustDate(t, 1403, 5, 15))

	set, err := svc.SetRate(ctx, ports.SetRateRequest{Date: "1403/05/15", PricePerGram: 5_000_000})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveRate(ctx, set.ID))

	_, err = svc.GetRate(ctx, mustDate(t, 1403, 5, 15))
	assert.ErrorIs(t, err, entities.ErrRateNotFound)

	err = svc.RemoveRate(ctx, set.ID)
	assert.ErrorIs(t, err, entities.ErrRateNotFound)
}
