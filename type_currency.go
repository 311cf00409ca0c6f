package folioview

// Currency is one of the two settlement currencies the backend knows about.
type Currency string

const (
	USD Currency = "USD"
	TWD Currency = "TWD"
)

// ParseCurrency maps a wire code to a Currency. Anything that is not the
// secondary code falls back to USD.
func ParseCurrency(code string) Currency {
	if code == "TWD" {
		return TWD
	}
	return USD
}

func (c Currency) String() string { return string(c) }
