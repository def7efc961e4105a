package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/zarinpos/core/internal/domain/jalali"
)

// Common errors
var (
	ErrTerminalNotFound   = errors.New("terminal not found")
	ErrHolidayNotFound    = errors.New("holiday not found")
	ErrRateNotFound       = errors.New("gold rate not found")
	ErrHolidayExists      = errors.New("holiday already registered for that day")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid terminal credentials")
	ErrTerminalInactive   = errors.New("terminal is inactive")
	ErrInvalidRate        = errors.New("rate must be positive")
	ErrInvalidWeight      = errors.New("weight must be positive")
)

// Enums and types
type TerminalRole string

const (
	TerminalRoleAdmin    TerminalRole = "admin"
	TerminalRoleTerminal TerminalRole = "terminal"
)

// Terminal represents a point-of-sale device registered under a tenant.
type Terminal struct {
	ID        uuid.UUID    `json:"id" db:"id"`
	TenantID  uuid.UUID    `json:"tenant_id" db:"tenant_id"`
	Name      string       `json:"name" db:"name"`
	KeyHash   string       `json:"-" db:"key_hash"`
	Role      TerminalRole `json:"role" db:"role"`
	IsActive  bool         `json:"is_active" db:"is_active"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time   `json:"deleted_at" db:"deleted_at"`
}

// Holiday represents one day of the shared holiday calendar, keyed by its
// Jalali date. Official holidays come from the national calendar; the rest
// are shop closures.
type Holiday struct {
	ID         int       `json:"id" db:"id"`
	JYear      int       `json:"jyear" db:"jyear"`
	JMonth     int       `json:"jmonth" db:"jmonth"`
	JDay       int       `json:"jday" db:"jday"`
	Title      string    `json:"title" db:"title"`
	IsOfficial bool      `json:"is_official" db:"is_official"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// GoldRate represents the per-gram price of 18 karat gold on a Jalali day,
// in toman.
type GoldRate struct {
	ID           int       `json:"id" db:"id"`
	JYear        int       `json:"jyear" db:"jyear"`
	JMonth       int       `json:"jmonth" db:"jmonth"`
	JDay         int       `json:"jday" db:"jday"`
	PricePerGram int64     `json:"price_per_gram" db:"price_per_gram"`
	Source       string    `json:"source" db:"source"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Business logic methods for Terminal
func (t *Terminal) CanServe() bool {
	return t.IsActive && t.DeletedAt == nil
}

func (t *Terminal) CanManageCalendar() bool {
	return t.CanServe() && t.Role == TerminalRoleAdmin
}

// Business logic methods for Holiday
func (h *Holiday) Date() jalali.Date {
	return jalali.Date{Year: h.JYear, Month: h.JMonth, Day: h.JDay}
}

func (h *Holiday) Matches(d jalali.Date) bool {
	return h.JYear == d.Year && h.JMonth == d.Month && h.JDay == d.Day
}

// Business logic methods for GoldRate
func (r *GoldRate) Date() jalali.Date {
	return jalali.Date{Year: r.JYear, Month: r.JMonth, Day: r.JDay}
}

func (r *GoldRate) IsValid() bool {
	return r.PricePerGram > 0 && r.Date().IsValid()
}

// Utility methods
func (tr TerminalRole) IsValid() bool {
	switch tr {
	case TerminalRoleAdmin, TerminalRoleTerminal:
		return true
	default:
		return false
	}
}
