// Package jalali implements the Jalali (Shamsi) calendar arithmetic the rest
// of the system is built on: date validation, leap years, day arithmetic,
// weekday resolution and the simplified Gregorian conversion used by the
// point-of-sale screens.
//
// The first six months have 31 days, months seven through eleven have 30,
// and Esfand has 29 or 30 depending on the leap year. Leap years come from a
// fixed 128-year cycle table rather than the astronomical rule. The table is
// what every stored report was produced with; it disagrees with the
// observational calendar in some years (1403 is not a leap year here) and
// that behaviour is load-bearing.
package jalali

import (
	"errors"
	"fmt"
)

// Supported year range. Dates outside it are rejected by validation.
const (
	MinYear = 1300
	MaxYear = 1500
)

// ErrInvalidDate is returned when a year/month/day triple does not name a real
// calendar day, or when a date string cannot be parsed.
var ErrInvalidDate = errors.New("invalid jalali date")

// leapPositions lists the leap years of the 128-year cycle, as positions of
// year mod 128.
var leapPositions = [...]int{
	1, 5, 9, 13, 17, 22, 26, 30, 34, 38, 42, 46, 50, 55, 59, 63,
	67, 71, 75, 79, 83, 88, 92, 96, 100, 104, 108, 112, 116, 121, 125,
}

var leapTable [128]bool

func init() {
	for _, p := range leapPositions {
		leapTable[p] = true
	}
}

// Date is a Jalali calendar day. It marshals to and from the "1403/05/12"
// wire form. The zero value is not a valid date; IsZero reports it so callers
// can treat it as "unset".
type Date struct {
	Year  int
	Month int
	Day   int
}

// New builds a validated Date.
func New(year, month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if !d.IsValid() {
		return Date{}, fmt.Errorf("%w: %04d/%02d/%02d", ErrInvalidDate, year, month, day)
	}
	return d, nil
}

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool {
	return d == Date{}
}

// IsLeapYear reports whether year is a leap year of the 128-year cycle.
func IsLeapYear(year int) bool {
	return leapTable[((year%128)+128)%128]
}

// monthLength assumes month is in 1..12.
func monthLength(year, month int) int {
	switch {
	case month <= 6:
		return 31
	case month <= 11:
		return 30
	default:
		if IsLeapYear(year) {
			return 30
		}
		return 29
	}
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year, month int) (int, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("%w: month %d out of range", ErrInvalidDate, month)
	}
	return monthLength(year, month), nil
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// IsValid reports whether d names a real day within the supported year range.
func (d Date) IsValid() bool {
	if d.Year < MinYear || d.Year > MaxYear {
		return false
	}
	if d.Month < 1 || d.Month > 12 {
		return false
	}
	return d.Day >= 1 && d.Day <= monthLength(d.Year, d.Month)
}

// dayOfYear assumes d is valid. Months 1..6 have 31 days, so day 186 closes
// Shahrivar and the 30-day run starts at 187.
func dayOfYear(d Date) int {
	if d.Month <= 7 {
		return (d.Month-1)*31 + d.Day
	}
	return 186 + (d.Month-7)*30 + d.Day
}

func fromDayOfYear(doy int) (month, day int) {
	if doy <= 186 {
		return (doy-1)/31 + 1, (doy-1)%31 + 1
	}
	r := doy - 186
	return (r-1)/30 + 7, (r-1)%30 + 1
}

// AddDays returns the date delta days after d. Negative deltas step backwards.
// Month and year boundaries are carried through the real month lengths.
func (d Date) AddDays(delta int) Date {
	doy := dayOfYear(d) + delta
	year := d.Year
	for doy < 1 {
		year--
		doy += DaysInYear(year)
	}
	for doy > DaysInYear(year) {
		doy -= DaysInYear(year)
		year++
	}
	month, day := fromDayOfYear(doy)
	return Date{Year: year, Month: month, Day: day}
}

// Ordinal maps d onto the coarse day scale year*365 + month*30 + day. This is
// the ordering and day-difference scale the sales screens were built around.
// It is monotone enough for range checks but not collision free: the last day
// of a 31-day month and the first day of the next month share an ordinal.
// Use Sub for an exact day count.
func (d Date) Ordinal() int {
	return d.Year*365 + d.Month*30 + d.Day
}

// Before reports whether d orders strictly before other on the coarse
// ordinal scale.
func (d Date) Before(other Date) bool {
	return d.Ordinal() < other.Ordinal()
}

// After reports whether d orders strictly after other on the coarse
// ordinal scale.
func (d Date) After(other Date) bool {
	return d.Ordinal() > other.Ordinal()
}

// Equal reports whether d and other are the same calendar day.
func (d Date) Equal(other Date) bool {
	return d == other
}

// absDay assumes d is valid and returns the exact day number counted from
// MinYear/01/01 = 1.
func absDay(d Date) int {
	n := dayOfYear(d)
	for y := MinYear; y < d.Year; y++ {
		n += DaysInYear(y)
	}
	return n
}

// Sub returns the exact number of calendar days from other to d. It is
// positive when d is after other. Unlike ordinal differences it has no
// month-boundary drift.
func (d Date) Sub(other Date) int {
	return absDay(d) - absDay(other)
}
