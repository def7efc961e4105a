package jalali

import (
	"fmt"
	"time"
)

// The Gregorian conversion below is the fixed quarter-offset scheme the sales
// screens have always used: each Gregorian quarter maps onto the Jalali
// calendar with a constant month and day shift, and day overflow is carried
// through real month lengths. Mid-quarter dates convert exactly; dates within
// about ten days of a quarter seam can land one or two days off the
// astronomical calendar. That drift is pinned by tests and must not change,
// because stored reports were produced with it.

// FromGregorian converts a Gregorian calendar day to a Jalali date.
func FromGregorian(gy, gm, gd int) Date {
	var jy, jm, jd int
	switch {
	case gm <= 3:
		jy, jm, jd = gy-622, gm+9, gd+10
	case gm <= 6:
		jy, jm, jd = gy-621, gm-3, gd+11
	default:
		jy, jm, jd = gy-621, gm-3, gd+10
	}
	for {
		ml := monthLength(jy, jm)
		if jd <= ml {
			break
		}
		jd -= ml
		jm++
		if jm > 12 {
			jm = 1
			jy++
		}
	}
	return Date{Year: jy, Month: jm, Day: jd}
}

// FromTime converts the civil date of t, in t's location, to a Jalali date.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return FromGregorian(y, int(m), d)
}

// ToGregorian converts d back through the same quarter offsets. Day underflow
// borrows through real Gregorian month lengths. Because Jalali and Gregorian
// month lengths differ near the seams, ToGregorian(FromGregorian(g)) can drift
// from g by a day or two there; mid-quarter it is exact.
func (d Date) ToGregorian() (year, month, day int) {
	var gy, gm, gd int
	switch {
	case d.Month <= 3:
		gy, gm, gd = d.Year+621, d.Month+3, d.Day-11
	case d.Month <= 9:
		gy, gm, gd = d.Year+621, d.Month+3, d.Day-10
	default:
		gy, gm, gd = d.Year+622, d.Month-9, d.Day-10
	}
	for gd < 1 {
		gm--
		if gm < 1 {
			gm = 12
			gy--
		}
		gd += gregorianMonthLength(gy, gm)
	}
	return gy, gm, gd
}

// ToTime returns d's Gregorian civil date at midnight in loc.
func (d Date) ToTime(loc *time.Location) time.Time {
	gy, gm, gd := d.ToGregorian()
	return time.Date(gy, time.Month(gm), gd, 0, 0, 0, 0, loc)
}

// GregorianString returns d's Gregorian date in ISO form, e.g. "2024-08-05".
func (d Date) GregorianString() string {
	gy, gm, gd := d.ToGregorian()
	return fmt.Sprintf("%04d-%02d-%02d", gy, gm, gd)
}

// Weekday returns d's day of the Persian week, resolved through the Gregorian
// mapping above.
func (d Date) Weekday() Weekday {
	gy, gm, gd := d.ToGregorian()
	wd := time.Date(gy, time.Month(gm), gd, 0, 0, 0, 0, time.UTC).Weekday()
	return Weekday((int(wd) + 1) % 7)
}

func isGregorianLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func gregorianMonthLength(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	default:
		if isGregorianLeap(year) {
			return 29
		}
		return 28
	}
}
