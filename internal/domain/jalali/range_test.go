package jalali

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRange(t *testing.T) {
	r, err := NewRange(Date{1403, 1, 1}, Date{1403, 1, 31})
	require.NoError(t, err)
	assert.Equal(t, Date{1403, 1, 1}, r.Start)
	assert.Equal(t, Date{1403, 1, 31}, r.End)

	_, err = NewRange(Date{1403, 2, 5}, Date{1403, 1, 5})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestNewRangeOrdinalCollision(t *testing.T) {
	// 1403/02/01 and 1403/01/31 share a coarse ordinal, so the reversed pair
	// is not rejected. Pinned: the screens built on this scale accept it.
	r, err := NewRange(Date{1403, 2, 1}, Date{1403, 1, 31})
	require.NoError(t, err)
	assert.Equal(t, 1, r.Days())
}

func TestRangeDays(t *testing.T) {
	tests := []struct {
		name      string
		r         Range
		days      int
		exactDays int
	}{
		{"single day", Range{Date{1403, 5, 15}, Date{1403, 5, 15}}, 1, 1},
		{"full month", Range{Date{1403, 1, 1}, Date{1403, 1, 31}}, 31, 31},
		{"across 31-day boundary", Range{Date{1403, 1, 15}, Date{1403, 2, 15}}, 31, 32},
		{"across year", Range{Date{1403, 12, 25}, Date{1404, 1, 5}}, 16, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.days, tt.r.Days(), "coarse")
			assert.Equal(t, tt.exactDays, tt.r.ExactDays(), "exact")
		})
	}
}

func TestRangeContains(t *testing.T) {
	r := Range{Start: Date{1403, 5, 1}, End: Date{1403, 5, 31}}

	assert.True(t, r.Contains(Date{1403, 5, 15}))
	assert.True(t, r.Contains(Date{1403, 5, 1}))
	assert.True(t, r.Contains(Date{1403, 5, 31}))
	assert.False(t, r.Contains(Date{1403, 4, 30}))
	assert.False(t, r.Contains(Date{1403, 6, 2}))
}

func TestPresets(t *testing.T) {
	presets := Presets()
	require.Len(t, presets, 16)
	assert.Equal(t, PresetToday, presets[0])
	assert.Equal(t, PresetLastYearQ4, presets[15])
}

func TestPresetLabel(t *testing.T) {
	assert.Equal(t, "امروز", PresetToday.Label())
	assert.Equal(t, "سه‌ماهه اول", PresetQ1.Label())
	assert.Equal(t, "nope", Preset("nope").Label())
}

func TestPresetRange(t *testing.T) {
	// 1403/05/15 falls on a Monday, so its week runs 05/13 through 05/19.
	today := Date{1403, 5, 15}

	tests := []struct {
		preset Preset
		want   Range
	}{
		{PresetToday, Range{Date{1403, 5, 15}, Date{1403, 5, 15}}},
		{PresetYesterday, Range{Date{1403, 5, 14}, Date{1403, 5, 14}}},
		{PresetThisWeek, Range{Date{1403, 5, 13}, Date{1403, 5, 19}}},
		{PresetLastWeek, Range{Date{1403, 5, 6}, Date{1403, 5, 12}}},
		{PresetThisMonth, Range{Date{1403, 5, 1}, Date{1403, 5, 31}}},
		{PresetLastMonth, Range{Date{1403, 4, 1}, Date{1403, 4, 31}}},
		{PresetThisYear, Range{Date{1403, 1, 1}, Date{1403, 12, 29}}},
		{PresetLastYear, Range{Date{1402, 1, 1}, Date{1402, 12, 29}}},
		{PresetQ1, Range{Date{1403, 1, 1}, Date{1403, 3, 31}}},
		{PresetQ2, Range{Date{1403, 4, 1}, Date{1403, 6, 31}}},
		{PresetQ3, Range{Date{1403, 7, 1}, Date{1403, 9, 30}}},
		{PresetQ4, Range{Date{1403, 10, 1}, Date{1403, 12, 29}}},
		{PresetLastYearQ1, Range{Date{1402, 1, 1}, Date{1402, 3, 31}}},
		{PresetLastYearQ4, Range{Date{1402, 10, 1}, Date{1402, 12, 29}}},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			got, err := PresetRange(tt.preset, today)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPresetRangeYearBoundary(t *testing.T) {
	// 1403/01/03 falls on a Saturday, three days into the new year, so the
	// previous week and month both reach back into 1402.
	today := Date{1403, 1, 3}

	tests := []struct {
		preset Preset
		want   Range
	}{
		{PresetThisWeek, Range{Date{1403, 1, 3}, Date{1403, 1, 9}}},
		{PresetLastWeek, Range{Date{1402, 12, 25}, Date{1403, 1, 2}}},
		{PresetLastMonth, Range{Date{1402, 12, 1}, Date{1402, 12, 29}}},
		{PresetYesterday, Range{Date{1403, 1, 2}, Date{1403, 1, 2}}},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			got, err := PresetRange(tt.preset, today)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPresetRangeLeapYear(t *testing.T) {
	today := Date{1405, 6, 1}

	got, err := PresetRange(PresetThisYear, today)
	require.NoError(t, err)
	assert.Equal(t, Date{1405, 12, 30}, got.End)

	got, err = PresetRange(PresetQ4, today)
	require.NoError(t, err)
	assert.Equal(t, Date{1405, 12, 30}, got.End)
}

func TestPresetRangeUnknown(t *testing.T) {
	_, err := PresetRange(Preset("next-decade"), Date{1403, 5, 15})
	assert.ErrorIs(t, err, ErrUnknownPreset)
}
