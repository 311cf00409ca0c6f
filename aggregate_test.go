package folioview

import "testing"

func TestAllocationShares(t *testing.T) {
	testCases := []struct {
		name   string
		values []float64
		want   []Percent
	}{
		{"Even split", []float64{50, 50}, []Percent{50, 50}},
		{"Rounded to two decimals", []float64{1, 2}, []Percent{33.33, 66.67}},
		{"Zero total yields zero shares", []float64{0, 0, 0}, []Percent{0, 0, 0}},
		{"Empty list", nil, nil},
		{"Single bucket", []float64{15545.67}, []Percent{100}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buckets := make([]AssetAllocation, len(tc.values))
			for i, v := range tc.values {
				buckets[i] = AssetAllocation{Value: v}
			}
			got := AllocationShares(buckets)
			if len(got) != len(tc.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tc.want))
			}
			for i := range got {
				if !got[i].Equal(tc.want[i]) {
					t.Errorf("share[%d] = %v, want %v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestAllocationSharesSumToHundred(t *testing.T) {
	buckets := []AssetAllocation{
		{Value: 60800}, {Value: 45600}, {Value: 30400}, {Value: 15545.67},
	}
	var sum Percent
	for _, s := range AllocationShares(buckets) {
		sum += s
	}
	// two-decimal rounding per bucket leaves at most a cent-scale drift
	if sum < 99.9 || sum > 100.1 {
		t.Errorf("shares sum to %v, want ~100", sum)
	}
}

func TestImpliedChange(t *testing.T) {
	testCases := []struct {
		name    string
		base    float64
		percent Percent
		want    float64
	}{
		{"Ten percent of 200", 200, 10, 20},
		{"Negative percent", 1000, -2.5, -25},
		{"Zero percent", 152345.67, 0, 0},
		{"Zero base", 0, 18.5, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ImpliedChange(tc.base, tc.percent); got != tc.want {
				t.Errorf("ImpliedChange(%v, %v) = %v, want %v", tc.base, tc.percent, got, tc.want)
			}
		})
	}
}

func TestPercentPositive(t *testing.T) {
	testCases := []struct {
		name string
		p    Percent
		want bool
	}{
		{"Positive", 1.25, true},
		{"Zero is positive, not negative", 0, true},
		{"Negative", -0.01, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.Positive(); got != tc.want {
				t.Errorf("(%v).Positive() = %v, want %v", tc.p, got, tc.want)
			}
		})
	}
}

func TestHoldingColorCycles(t *testing.T) {
	if HoldingColor(0) != HoldingColor(len(holdingPalette)) {
		t.Error("palette does not cycle in list order")
	}
}

func TestAllocationColor(t *testing.T) {
	if got := AllocationColor("crypto", 3); got != "#f97316" {
		t.Errorf("AllocationColor(crypto) = %q", got)
	}
	if got := AllocationColor("mystery", 1); got != allocationPalette[1] {
		t.Errorf("AllocationColor(unknown) = %q, want palette fallback", got)
	}
}

func TestAllocationTotal(t *testing.T) {
	buckets := []AssetAllocation{{Value: 1.1}, {Value: 2.2}}
	if got := AllocationTotal(buckets); got != 3.3 {
		t.Errorf("AllocationTotal = %v, want 3.3", got)
	}
}
