package jalali

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zarinpos/core/internal/domain/format"
)

// Parse reads a date in "1403/05/12" or "1403-05-12" form. Persian and
// Arabic-Indic digits are accepted, since that is what the sale screens send.
// Anything that does not name a real calendar day returns ErrInvalidDate.
func Parse(s string) (Date, error) {
	normalized := format.ToEnglishDigits(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, "-", "/")
	parts := strings.Split(normalized, "/")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		nums[i] = n
	}
	return New(nums[0], nums[1], nums[2])
}

// Format renders d as "1403/05/12".
func (d Date) Format() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, d.Month, d.Day)
}

// FormatPersian renders d as "۱۴۰۳/۰۵/۱۲".
func (d Date) FormatPersian() string {
	return format.ToPersianDigits(d.Format())
}

// FormatLong renders d as "۱۲ مرداد ۱۴۰۳".
func (d Date) FormatLong() string {
	return fmt.Sprintf("%s %s %s",
		format.ToPersianDigits(strconv.Itoa(d.Day)),
		d.MonthName(),
		format.ToPersianDigits(strconv.Itoa(d.Year)))
}

// String implements fmt.Stringer.
func (d Date) String() string {
	return d.Format()
}

// MarshalJSON renders d as the quoted "1403/05/12" form.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.Format())), nil
}

// UnmarshalJSON accepts the same forms Parse does.
func (d *Date) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDate, data)
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
