package format

import (
	"strconv"
	"strings"
)

// decimalSeparator is the Persian decimal mark (momayyez, U+066B).
const decimalSeparator = "٫"

// GroupThousands renders n with comma separators every three digits,
// e.g. 2500000 -> "2,500,000".
func GroupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if len(s) > 3 {
		var b strings.Builder
		head := len(s) % 3
		if head > 0 {
			b.WriteString(s[:head])
		}
		for i := head; i < len(s); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(s[i : i+3])
		}
		s = b.String()
	}
	if neg {
		return "-" + s
	}
	return s
}

// Number renders n with thousand grouping in Persian digits,
// e.g. 2500000 -> "۲,۵۰۰,۰۰۰".
func Number(n int64) string {
	return ToPersianDigits(GroupThousands(n))
}

// Toman renders an amount as grouped Persian digits followed by the currency
// word, e.g. 2500000 -> "۲,۵۰۰,۰۰۰ تومان".
func Toman(amount int64) string {
	return Number(amount) + " تومان"
}

// Decimal renders v with up to prec fractional digits, trailing zeros
// trimmed, using Persian digits and the Persian decimal mark.
// Decimal(4.608, 3) -> "۴٫۶۰۸", Decimal(2, 3) -> "۲".
func Decimal(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	s = strings.ReplaceAll(s, ".", decimalSeparator)
	return ToPersianDigits(s)
}
