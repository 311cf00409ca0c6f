package folioview

// TransactionType is the display kind of a transaction.
type TransactionType string

const (
	Buy        TransactionType = "Buy"
	Sell       TransactionType = "Sell"
	Dividend   TransactionType = "Dividend"
	Deposit    TransactionType = "Deposit"
	Withdrawal TransactionType = "Withdrawal"
)

// The backend tag for a withdrawal is "withdraw", not "withdrawal".
var txTypeFromWire = map[string]TransactionType{
	"buy":      Buy,
	"sell":     Sell,
	"dividend": Dividend,
	"deposit":  Deposit,
	"withdraw": Withdrawal,
}

var txTypeToWire = map[TransactionType]string{
	Buy:        "buy",
	Sell:       "sell",
	Dividend:   "dividend",
	Deposit:    "deposit",
	Withdrawal: "withdraw",
}

// ParseTransactionType returns the display kind for a wire tag.
// Unrecognized tags map to Buy rather than failing the record.
func ParseTransactionType(wire string) TransactionType {
	if t, ok := txTypeFromWire[wire]; ok {
		return t
	}
	return Buy
}

// Wire returns the backend tag for the kind.
func (t TransactionType) Wire() string {
	if w, ok := txTypeToWire[t]; ok {
		return w
	}
	return "buy"
}

func (t TransactionType) String() string { return string(t) }

// IsOutflow reports whether the kind moves value out of the account.
// Amounts are stored as unsigned magnitudes; direction lives here.
func (t TransactionType) IsOutflow() bool { return t == Withdrawal }
