package jalali

import (
	"errors"
	"fmt"
)

// ErrUnknownPreset is returned when a range preset key is not recognised.
var ErrUnknownPreset = errors.New("unknown range preset")

// ErrInvalidRange is returned when a range's start orders after its end.
var ErrInvalidRange = errors.New("invalid date range: start after end")

// Range is an inclusive span of Jalali days.
type Range struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// NewRange builds a Range after checking that start does not order after end
// on the coarse ordinal scale.
func NewRange(start, end Date) (Range, error) {
	if start.After(end) {
		return Range{}, fmt.Errorf("%w: %s > %s", ErrInvalidRange, start, end)
	}
	return Range{Start: start, End: end}, nil
}

// Days returns the inclusive length of r on the coarse ordinal scale. Spans
// that cross a 31-day month boundary read one short of the exact count; the
// report screens have always shown this figure. Use ExactDays when the
// precise count matters.
func (r Range) Days() int {
	return r.End.Ordinal() - r.Start.Ordinal() + 1
}

// ExactDays returns the exact inclusive day count of r.
func (r Range) ExactDays() int {
	return r.End.Sub(r.Start) + 1
}

// Contains reports whether d falls inside r on the coarse ordinal scale.
func (r Range) Contains(d Date) bool {
	o := d.Ordinal()
	return o >= r.Start.Ordinal() && o <= r.End.Ordinal()
}

// Preset names a predefined reporting period.
type Preset string

const (
	PresetToday      Preset = "today"
	PresetYesterday  Preset = "yesterday"
	PresetThisWeek   Preset = "this-week"
	PresetLastWeek   Preset = "last-week"
	PresetThisMonth  Preset = "this-month"
	PresetLastMonth  Preset = "last-month"
	PresetThisYear   Preset = "this-year"
	PresetLastYear   Preset = "last-year"
	PresetQ1         Preset = "q1"
	PresetQ2         Preset = "q2"
	PresetQ3         Preset = "q3"
	PresetQ4         Preset = "q4"
	PresetLastYearQ1 Preset = "last-year-q1"
	PresetLastYearQ2 Preset = "last-year-q2"
	PresetLastYearQ3 Preset = "last-year-q3"
	PresetLastYearQ4 Preset = "last-year-q4"
)

// presetOrder fixes the listing order shown to clients.
var presetOrder = []Preset{
	PresetToday, PresetYesterday,
	PresetThisWeek, PresetLastWeek,
	PresetThisMonth, PresetLastMonth,
	PresetThisYear, PresetLastYear,
	PresetQ1, PresetQ2, PresetQ3, PresetQ4,
	PresetLastYearQ1, PresetLastYearQ2, PresetLastYearQ3, PresetLastYearQ4,
}

var presetLabels = map[Preset]string{
	PresetToday:      "امروز",
	PresetYesterday:  "دیروز",
	PresetThisWeek:   "این هفته",
	PresetLastWeek:   "هفته قبل",
	PresetThisMonth:  "این ماه",
	PresetLastMonth:  "ماه قبل",
	PresetThisYear:   "امسال",
	PresetLastYear:   "سال قبل",
	PresetQ1:         "سه‌ماهه اول",
	PresetQ2:         "سه‌ماهه دوم",
	PresetQ3:         "سه‌ماهه سوم",
	PresetQ4:         "سه‌ماهه چهارم",
	PresetLastYearQ1: "سه‌ماهه اول سال قبل",
	PresetLastYearQ2: "سه‌ماهه دوم سال قبل",
	PresetLastYearQ3: "سه‌ماهه سوم سال قبل",
	PresetLastYearQ4: "سه‌ماهه چهارم سال قبل",
}

// Presets returns every preset key in a stable order.
func Presets() []Preset {
	out := make([]Preset, len(presetOrder))
	copy(out, presetOrder)
	return out
}

// Label returns the Persian display name of p, or the raw key if unknown.
func (p Preset) Label() string {
	if l, ok := presetLabels[p]; ok {
		return l
	}
	return string(p)
}

// PresetRange resolves p against the given today. The week starts on
// Saturday, months span their real lengths and quarters are the fixed
// three-month blocks of the fiscal calendar.
func PresetRange(p Preset, today Date) (Range, error) {
	switch p {
	case PresetToday:
		return Range{Start: today, End: today}, nil
	case PresetYesterday:
		y := today.AddDays(-1)
		return Range{Start: y, End: y}, nil
	case PresetThisWeek:
		start := today.AddDays(-int(today.Weekday()))
		return Range{Start: start, End: start.AddDays(6)}, nil
	case PresetLastWeek:
		start := today.AddDays(-int(today.Weekday()) - 7)
		return Range{Start: start, End: start.AddDays(6)}, nil
	case PresetThisMonth:
		return monthRange(today.Year, today.Month), nil
	case PresetLastMonth:
		y, m := today.Year, today.Month-1
		if m < 1 {
			y, m = y-1, 12
		}
		return monthRange(y, m), nil
	case PresetThisYear:
		return yearRange(today.Year), nil
	case PresetLastYear:
		return yearRange(today.Year - 1), nil
	case PresetQ1, PresetQ2, PresetQ3, PresetQ4:
		return quarterRange(today.Year, quarterIndex(p)), nil
	case PresetLastYearQ1, PresetLastYearQ2, PresetLastYearQ3, PresetLastYearQ4:
		return quarterRange(today.Year-1, quarterIndex(p)), nil
	default:
		return Range{}, fmt.Errorf("%w: %q", ErrUnknownPreset, p)
	}
}

func quarterIndex(p Preset) int {
	switch p {
	case PresetQ1, PresetLastYearQ1:
		return 1
	case PresetQ2, PresetLastYearQ2:
		return 2
	case PresetQ3, PresetLastYearQ3:
		return 3
	default:
		return 4
	}
}

func monthRange(year, month int) Range {
	return Range{
		Start: Date{Year: year, Month: month, Day: 1},
		End:   Date{Year: year, Month: month, Day: monthLength(year, month)},
	}
}

func yearRange(year int) Range {
	return Range{
		Start: Date{Year: year, Month: 1, Day: 1},
		End:   Date{Year: year, Month: 12, Day: monthLength(year, 12)},
	}
}

func quarterRange(year, q int) Range {
	first := (q-1)*3 + 1
	last := q * 3
	return Range{
		Start: Date{Year: year, Month: first, Day: 1},
		End:   Date{Year: year, Month: last, Day: monthLength(year, last)},
	}
}
