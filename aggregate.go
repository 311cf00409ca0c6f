package folioview

import "github.com/shopspring/decimal"

// Display-only derivations. The backend pre-computes every per-holding
// figure; what remains here is chart plumbing: percentage-of-total for
// allocation buckets, absolute deltas for percentage-only metrics, and
// stable color assignment.

// AllocationTotal sums the values of all allocation buckets.
func AllocationTotal(buckets []AssetAllocation) float64 {
	total := decimal.Zero
	for _, b := range buckets {
		total = total.Add(decimal.NewFromFloat(b.Value))
	}
	return total.InexactFloat64()
}

// AllocationShares returns each bucket's share of the total, in bucket
// order, rounded to two decimals. When the total is zero every share is
// zero, never NaN.
func AllocationShares(buckets []AssetAllocation) []Percent {
	shares := make([]Percent, len(buckets))
	total := decimal.Zero
	for _, b := range buckets {
		total = total.Add(decimal.NewFromFloat(b.Value))
	}
	if total.IsZero() {
		return shares
	}
	hundred := decimal.NewFromInt(100)
	for i, b := range buckets {
		share := decimal.NewFromFloat(b.Value).Div(total).Mul(hundred).Round(2)
		shares[i] = Percent(share.InexactFloat64())
	}
	return shares
}

// ImpliedChange converts a percentage-only metric into an absolute delta:
// base × percent ÷ 100. Used when the backend reports only the percentage
// and the view needs the absolute figure.
func ImpliedChange(base float64, percent Percent) float64 {
	return decimal.NewFromFloat(base).
		Mul(decimal.NewFromFloat(float64(percent))).
		Div(decimal.NewFromInt(100)).
		InexactFloat64()
}

// holdingPalette is cycled in list order to color holdings of a portfolio.
var holdingPalette = []string{
	"#3b82f6", "#ec4899", "#eab308", "#14b8a6", "#a855f7", "#f97316", "#6366f1",
}

// HoldingColor returns the display color for the holding at index i.
func HoldingColor(i int) string {
	return holdingPalette[i%len(holdingPalette)]
}

// allocationColors fixes a color per known category tag; unknown labels
// cycle the default palette instead.
var allocationColors = map[string]string{
	"stock":  "#3b82f6",
	"etf":    "#10b981",
	"crypto": "#f97316",
	"cash":   "#9ca3af",
	"fiat":   "#6b7280",
}

var allocationPalette = []string{
	"#3b82f6", "#10b981", "#f97316", "#9ca3af", "#eab308", "#ec4899",
}

// AllocationColor returns the display color for an allocation bucket with
// the given lowercase label, at index i of the breakdown.
func AllocationColor(label string, i int) string {
	if c, ok := allocationColors[label]; ok {
		return c
	}
	return allocationPalette[i%len(allocationPalette)]
}
