// Package weights converts between the mass units used in the Iranian gold
// trade. Gram is the pivot unit: every other unit is defined by its weight in
// grams, and a conversion is a single multiply-divide through that pivot.
package weights

import (
	"errors"
	"fmt"

	"github.com/zarinpos/core/internal/domain/format"
)

// ErrUnknownUnit is returned when a unit key is not one of the supported units.
var ErrUnknownUnit = errors.New("unknown weight unit")

// Unit identifies a supported mass unit.
type Unit string

const (
	Gram    Unit = "gram"
	Mesghal Unit = "mesghal"
	Soot    Unit = "soot"
	Dirham  Unit = "dirham"
	Ounce   Unit = "ounce"
	Tola    Unit = "tola"
)

// grams holds the weight of one unit in grams. Soot is defined as one
// twentieth of a mesghal, so 20 soot equal exactly one mesghal.
var grams = map[Unit]float64{
	Gram:    1,
	Mesghal: 4.608,
	Soot:    0.2304,
	Dirham:  3.125,
	Ounce:   28.3495,
	Tola:    11.6638,
}

// labels holds the Persian display name of each unit.
var labels = map[Unit]string{
	Gram:    "گرم",
	Mesghal: "مثقال",
	Soot:    "سوت",
	Dirham:  "درهم",
	Ounce:   "اونس",
	Tola:    "تولا",
}

// unitOrder fixes the listing order for Units.
var unitOrder = []Unit{Gram, Mesghal, Soot, Dirham, Ounce, Tola}

// Units returns all supported units in a stable order.
func Units() []Unit {
	out := make([]Unit, len(unitOrder))
	copy(out, unitOrder)
	return out
}

// Label returns the Persian display name of u, or the raw key if u is unknown.
func (u Unit) Label() string {
	if l, ok := labels[u]; ok {
		return l
	}
	return string(u)
}

// Grams returns the weight of one u in grams.
func (u Unit) Grams() (float64, error) {
	g, ok := grams[u]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, u)
	}
	return g, nil
}

// ParseUnit resolves a unit from its key or its Persian label.
func ParseUnit(s string) (Unit, error) {
	u := Unit(s)
	if _, ok := grams[u]; ok {
		return u, nil
	}
	for unit, label := range labels {
		if s == label {
			return unit, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// Convert converts value from one unit to another by passing through grams.
func Convert(value float64, from, to Unit) (float64, error) {
	fg, err := from.Grams()
	if err != nil {
		return 0, err
	}
	tg, err := to.Grams()
	if err != nil {
		return 0, err
	}
	return value * fg / tg, nil
}

// ToGrams converts value of the given unit into grams.
func ToGrams(value float64, from Unit) (float64, error) {
	return Convert(value, from, Gram)
}

// Format renders a weight value with its Persian unit label,
// e.g. Format(4.608, Gram) -> "۴٫۶۰۸ گرم".
func Format(value float64, u Unit) string {
	return format.Decimal(value, 4) + " " + u.Label()
}
