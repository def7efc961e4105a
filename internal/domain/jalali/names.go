package jalali

// MonthNames holds the Persian month names, Farvardin first.
var MonthNames = [12]string{
	"فروردین", "اردیبهشت", "خرداد", "تیر", "مرداد", "شهریور",
	"مهر", "آبان", "آذر", "دی", "بهمن", "اسفند",
}

// MonthName returns the Persian name of month 1..12, or "" when out of range.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return MonthNames[month-1]
}

// MonthName returns the Persian name of d's month.
func (d Date) MonthName() string {
	return MonthName(d.Month)
}

// Weekday is a day of the Persian week. Saturday is day zero because the
// Iranian week starts on Saturday and Friday is the weekend.
type Weekday int

const (
	Saturday Weekday = iota
	Sunday
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
)

// WeekdayNames holds the Persian weekday names, Saturday first.
var WeekdayNames = [7]string{
	"شنبه", "یکشنبه", "دوشنبه", "سه‌شنبه", "چهارشنبه", "پنج‌شنبه", "جمعه",
}

// String returns the Persian name of w.
func (w Weekday) String() string {
	if w < Saturday || w > Friday {
		return ""
	}
	return WeekdayNames[w]
}
