package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPersianDigits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain number", "2500000", "۲۵۰۰۰۰۰"},
		{"mixed text", "سال 1403", "سال ۱۴۰۳"},
		{"already persian", "۱۴۰۳", "۱۴۰۳"},
		{"empty", "", ""},
		{"no digits", "تومان", "تومان"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToPersianDigits(tt.input))
		})
	}
}

func TestToEnglishDigits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"persian digits", "۱۴۰۳", "1403"},
		{"arabic-indic digits", "٤٥٦", "456"},
		{"mixed scripts", "۱2٣", "123"},
		{"date string", "۱۴۰۳/۰۵/۱۲", "1403/05/12"},
		{"no digits", "abc", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToEnglishDigits(tt.input))
		})
	}
}

func TestDigitsRoundTrip(t *testing.T) {
	assert.Equal(t, "2500000", ToEnglishDigits(ToPersianDigits("2500000")))
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		name  string
		input int64
		want  string
	}{
		{"millions", 2500000, "2,500,000"},
		{"exact thousand", 1000, "1,000"},
		{"under a thousand", 999, "999"},
		{"zero", 0, "0"},
		{"single digit", 7, "7"},
		{"negative", -1234567, "-1,234,567"},
		{"negative small", -42, "-42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GroupThousands(tt.input))
		})
	}
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "۲,۵۰۰,۰۰۰", Number(2500000))
}

func TestToman(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   string
	}{
		{"millions", 2500000, "۲,۵۰۰,۰۰۰ تومان"},
		{"zero", 0, "۰ تومان"},
		{"small", 500, "۵۰۰ تومان"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Toman(tt.amount))
		})
	}
}

func TestDecimal(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		prec int
		want string
	}{
		{"weight factor", 4.608, 3, "۴٫۶۰۸"},
		{"whole number", 2, 3, "۲"},
		{"trailing zeros trimmed", 1.5, 3, "۱٫۵"},
		{"rounded to precision", 0.23041, 4, "۰٫۲۳۰۴"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decimal(tt.v, tt.prec))
		})
	}
}
