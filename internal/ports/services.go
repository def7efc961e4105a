package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/zarinpos/core/internal/domain/entities"
	"github.com/zarinpos/core/internal/domain/jalali"
)

// Clock supplies the current instant and the Jalali day it falls on. Every
// "today"-relative operation goes through it so tests can pin the day.
type Clock interface {
	Now() time.Time
	Today() jalali.Date
}

// AuthService interface for terminal authentication operations
type AuthService interface {
	IssueToken(ctx context.Context, req TokenRequest) (*TokenResponse, error)
	ValidateToken(tokenString string) (*Claims, error)
	CreateTerminal(ctx context.Context, req CreateTerminalRequest) (*TerminalCredentials, error)
	ListTerminals(ctx context.Context, tenantID uuid.UUID) ([]*entities.Terminal, error)
	RevokeTerminal(ctx context.Context, id uuid.UUID) error
}

// CalendarService interface for Jalali calendar operations
type CalendarService interface {
	Today(ctx context.Context) (*TodayResponse, error)
	ToJalali(ctx context.Context, req ToJalaliRequest) (*ConversionResponse, error)
	ToGregorian(ctx context.Context, req ToGregorianRequest) (*ConversionResponse, error)
	Validate(ctx context.Context, req ValidateDateRequest) *ValidationResponse
	Months(ctx context.Context) []MonthInfo
	Weekdays(ctx context.Context) []WeekdayInfo
	Presets(ctx context.Context) []PresetInfo
	ResolvePreset(ctx context.Context, key string) (*RangeResponse, error)
	BusinessDays(ctx context.Context, req BusinessDaysRequest) (*BusinessDaysResponse, error)
}

// HolidayService interface for holiday calendar management
type HolidayService interface {
	AddHoliday(ctx context.Context, req CreateHolidayRequest) (*entities.Holiday, error)
	ListByYear(ctx context.Context, year int) ([]*entities.Holiday, error)
	ListByMonth(ctx context.Context, year, month int) ([]*entities.Holiday, error)
	RemoveHoliday(ctx context.Context, id int) error
	IsHoliday(ctx context.Context, date jalali.Date) (bool, []*entities.Holiday, error)
}

// RateService interface for daily gold rate management
type RateService interface {
	SetRate(ctx context.Context, req SetRateRequest) (*RateResponse, error)
	GetRate(ctx context.Context, date jalali.Date) (*RateResponse, error)
	LatestRate(ctx context.Context) (*RateResponse, error)
	MonthRates(ctx context.Context, year, month int) ([]*RateResponse, error)
	RemoveRate(ctx context.Context, id int) error
}

// PricingService interface for sale price quotes
type PricingService interface {
	Quote(ctx context.Context, req QuoteRequest) (*QuoteResponse, error)
}

// FormatService interface for Persian rendering operations
type FormatService interface {
	FormatNumber(ctx context.Context, req FormatNumberRequest) *FormatNumberResponse
	FormatCurrency(ctx context.Context, req FormatCurrencyRequest) *FormatCurrencyResponse
	ConvertWeight(ctx context.Context, req ConvertWeightRequest) (*ConvertWeightResponse, error)
	Units(ctx context.Context) []UnitInfo
}

// Request/Response Types

// Auth related types
type TokenRequest struct {
	APIKey string `json:"api_key" validate:"required"`
}

type TokenResponse struct {
	AccessToken string             `json:"access_token"`
	TokenType   string             `json:"token_type"`
	ExpiresIn   int64              `json:"expires_in"`
	Terminal    *entities.Terminal `json:"terminal"`
}

type Claims struct {
	TerminalID uuid.UUID             `json:"terminal_id"`
	TenantID   uuid.UUID             `json:"tenant_id"`
	Role       entities.TerminalRole `json:"role"`
}

type CreateTerminalRequest struct {
	TenantID uuid.UUID             `json:"tenant_id" validate:"required"`
	Name     string                `json:"name" validate:"required,max=100"`
	Role     entities.TerminalRole `json:"role" validate:"required"`
}

// TerminalCredentials carries the freshly generated API key. The key is
// returned exactly once; only its hash is stored.
type TerminalCredentials struct {
	Terminal *entities.Terminal `json:"terminal"`
	APIKey   string             `json:"api_key"`
}

// Calendar related types
type ToJalaliRequest struct {
	Date string `json:"date" validate:"required"`
}

type ToGregorianRequest struct {
	Date string `json:"date" validate:"required"`
}

type ConversionResponse struct {
	Jalali        jalali.Date `json:"jalali"`
	JalaliPersian string      `json:"jalali_persian"`
	JalaliLong    string      `json:"jalali_long"`
	Gregorian     string      `json:"gregorian"`
	Weekday       string      `json:"weekday"`
	Year          int         `json:"year"`
	Month         int         `json:"month"`
	Day           int         `json:"day"`
}

type TodayResponse struct {
	ConversionResponse
	MonthName string   `json:"month_name"`
	IsHoliday bool     `json:"is_holiday"`
	IsFriday  bool     `json:"is_friday"`
	Holidays  []string `json:"holidays,omitempty"`
}

type ValidateDateRequest struct {
	Date string `json:"date" validate:"required"`
}

type ValidationResponse struct {
	Valid   bool        `json:"valid"`
	Date    jalali.Date `json:"date,omitempty"`
	Weekday string      `json:"weekday,omitempty"`
	Reason  string      `json:"reason,omitempty"`
}

type MonthInfo struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
	Days   int    `json:"days"`
}

type WeekdayInfo struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

type PresetInfo struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type RangeResponse struct {
	Key          string      `json:"key,omitempty"`
	Label        string      `json:"label,omitempty"`
	Start        jalali.Date `json:"start"`
	End          jalali.Date `json:"end"`
	StartPersian string      `json:"start_persian"`
	EndPersian   string      `json:"end_persian"`
	Days         int         `json:"days"`
}

type BusinessDaysRequest struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

type BusinessDaysResponse struct {
	Start        jalali.Date `json:"start"`
	End          jalali.Date `json:"end"`
	TotalDays    int         `json:"total_days"`
	Fridays      int         `json:"fridays"`
	Holidays     int         `json:"holidays"`
	BusinessDays int         `json:"business_days"`
}

// Holiday related types
type CreateHolidayRequest struct {
	Date       string `json:"date" validate:"required"`
	Title      string `json:"title" validate:"required,max=200"`
	IsOfficial bool   `json:"is_official"`
}

// Rate related types
type SetRateRequest struct {
	Date         string `json:"date" validate:"omitempty"`
	PricePerGram int64  `json:"price_per_gram" validate:"required,gt=0"`
	Source       string `json:"source" validate:"omitempty,max=100"`
}

type RateResponse struct {
	ID           int         `json:"id"`
	Date         jalali.Date `json:"date"`
	DatePersian  string      `json:"date_persian"`
	PricePerGram int64       `json:"price_per_gram"`
	Formatted    string      `json:"formatted"`
	Source       string      `json:"source,omitempty"`
}

// Pricing related types
// QuoteRequest describes one sale to price. Percentages left nil fall back to
// the configured defaults; zero is a real value and is honoured.
type QuoteRequest struct {
	Weight        float64  `json:"weight" validate:"required,gt=0"`
	Unit          string   `json:"unit" validate:"required"`
	PricePerGram  int64    `json:"price_per_gram" validate:"omitempty,gt=0"`
	WagePercent   *float64 `json:"wage_percent" validate:"omitempty,gte=0,lte=100"`
	ProfitPercent *float64 `json:"profit_percent" validate:"omitempty,gte=0,lte=100"`
	TaxPercent    *float64 `json:"tax_percent" validate:"omitempty,gte=0,lte=100"`
}

type QuoteResponse struct {
	Grams          float64 `json:"grams"`
	PricePerGram   int64   `json:"price_per_gram"`
	GoldValue      int64   `json:"gold_value"`
	Wage           int64   `json:"wage"`
	Profit         int64   `json:"profit"`
	Tax            int64   `json:"tax"`
	Total          int64   `json:"total"`
	TotalFormatted string  `json:"total_formatted"`
}

// Format related types
type FormatNumberRequest struct {
	Value int64 `json:"value"`
}

type FormatNumberResponse struct {
	Value   int64  `json:"value"`
	Grouped string `json:"grouped"`
	Persian string `json:"persian"`
}

type FormatCurrencyRequest struct {
	Amount int64 `json:"amount"`
}

type FormatCurrencyResponse struct {
	Amount    int64  `json:"amount"`
	Formatted string `json:"formatted"`
}

type ConvertWeightRequest struct {
	Value float64 `json:"value" validate:"gte=0"`
	From  string  `json:"from" validate:"required"`
	To    string  `json:"to" validate:"required"`
}

type ConvertWeightResponse struct {
	Value     float64 `json:"value"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Result    float64 `json:"result"`
	Formatted string  `json:"formatted"`
}

type UnitInfo struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Grams float64 `json:"grams"`
}

// Response types for common structures
type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
