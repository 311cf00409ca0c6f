// Package renderer builds the markdown views shown by the fov tool.
package renderer

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/folioview/folioview"
)

// amount formats a monetary value in its currency, e.g. "$1,234.56".
func amount(v float64, cur folioview.Currency) string {
	return money.NewFromFloat(v, string(cur)).Display()
}

// signedAmount is amount with an explicit sign; zero renders as "-".
func signedAmount(v float64, cur folioview.Currency) string {
	switch {
	case v == 0:
		return "-"
	case v > 0:
		return "+" + amount(v, cur)
	default:
		return "-" + amount(-v, cur)
	}
}

// trend picks the direction marker for a change: zero counts as positive.
func trend(p folioview.Percent) string {
	if p.Positive() {
		return "▲"
	}
	return "▼"
}

// quantity trims trailing zeros so "0.0500000" reads as "0.05".
func quantity(v float64) string {
	s := fmt.Sprintf("%.8f", v)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}

// optional renders a possibly-absent numeric field.
func optional(v *float64, format func(float64) string) string {
	if v == nil {
		return "-"
	}
	return format(*v)
}
