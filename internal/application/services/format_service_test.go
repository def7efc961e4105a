package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zarinpos/core/internal/domain/entities"
	"github.com/zarinpos/core/internal/domain/weights"
	"github.com/zarinpos/core/internal/ports"
)

func newFormatFixture(t *testing.T) ports.FormatService {
	t.Helper()
	return NewFormatService(newTestLogger(t))
}

func TestFormatServiceFormatNumber(t *testing.T) {
	ctx := context.Background()
	svc := newFormatFixture(t)

	resp := svc.FormatNumber(ctx, ports.FormatNumberRequest{Value: 2_500_000})

	assert.Equal(t, "2,500,000", resp.Grouped)
	assert.Equal(t, "۲,۵۰۰,۰۰۰", resp.Persian)
}

func TestFormatServiceFormatCurrency(t *testing.T) {
	ctx := context.Background()
	svc := newFormatFixture(t)

	resp := svc.FormatCurrency(ctx, ports.FormatCurrencyRequest{Amount: 2_500_000})

	assert.Equal(t, "۲,۵۰۰,۰۰۰ تومان", resp.Formatted)
}

func TestFormatServiceConvertWeight(t *testing.T) {
	ctx := context.Background()
	svc := newFormatFixture(t)

	resp, err := svc.ConvertWeight(ctx, ports.ConvertWeightRequest{Value: 2, From: "mesghal", To: "gram"})
	require.NoError(t, err)

	assert.InDelta(t, 9.216, resp.Result, 1e-9)
	assert.Equal(t, "۹٫۲۱۶ گرم", resp.Formatted)

	resp, err = svc.ConvertWeight(ctx, ports.ConvertWeightRequest{Value: 1, From: "mesghal", To: "soot"})
	require.NoError(t, err)
	assert.InDelta(t, 20, resp.Result, 1e-9)
}

func TestFormatServiceConvertWeightInvalid(t *testing.T) {
	ctx := context.Background()
	svc := newFormatFixture(t)

	_, err := svc.ConvertWeight(ctx, ports.ConvertWeightRequest{Value: 1, From: "carat", To: "gram"})
	assert.ErrorIs(t, err, weights.ErrUnknownUnit)

	_, err = svc.ConvertWeight(ctx, ports.ConvertWeightRequest{Value: -1, From: "gram", To: "mesghal"})
	assert.ErrorIs(t, err, entities.ErrInvalidWeight)
}

func TestFormatServiceUnits(t *testing.T) {
	ctx := context.Background()
	svc := newFormatFixture(t)

	units := svc.Units(ctx)
	require.Len(t, units, 6)

	assert.Equal(t, ports.UnitInfo{Key: "gram", Label: "گرم", Grams: 1}, units[0])
	assert.Equal(t, ports.UnitInfo{Key: "mesghal", Label: "مثقال", Grams: 4.608}, units[1])
}
