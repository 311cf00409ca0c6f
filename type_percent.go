package folioview

import "fmt"

// Percent is a percentage value in the 0-100 scale (1.25 means 1.25%).
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// Positive reports the trend direction: zero counts as positive/neutral,
// never negative. It drives icon and color selection.
func (p Percent) Positive() bool { return p >= 0 }

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
