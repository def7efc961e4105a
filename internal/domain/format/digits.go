// Package format provides the string formatting helpers shared by every
// UI-facing surface: digit transliteration between ASCII and Persian script,
// thousand grouping, and currency/weight suffixing. All functions are pure.
package format

import "strings"

// persianDigits maps ASCII digit values to Extended Arabic-Indic (Persian)
// digits U+06F0..U+06F9.
var persianDigits = [10]rune{'۰', '۱', '۲', '۳', '۴', '۵', '۶', '۷', '۸', '۹'}

// ToPersianDigits replaces every ASCII digit in s with its Persian-script
// equivalent. Non-digit runes pass through unchanged.
func ToPersianDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(persianDigits[r-'0'])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ToEnglishDigits replaces Persian-script digits with ASCII digits. Arabic-Indic
// forms U+0660..U+0669 are folded as well, since Persian keyboards emit both.
// Non-digit runes pass through unchanged.
func ToEnglishDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= '۰' && r <= '۹':
			b.WriteRune('0' + (r - '۰'))
		case r >= '٠' && r <= '٩':
			b.WriteRune('0' + (r - '٠'))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
