package folioview

// View models. Every value is constructed fresh from a backend response
// (or the built-in sample data) at fetch time and never mutated in place;
// edits go through the write calls, which return replacement records.

// Asset is a priced instrument known to the backend.
type Asset struct {
	ID           string
	Ticker       string
	Name         string
	Type         AssetType
	Currency     Currency
	CurrentPrice float64
	LastUpdated  string
}

// Account is a brokerage, exchange or bank account.
type Account struct {
	ID          string
	Name        string
	Currency    Currency
	Balance     float64
	LastUpdated string
}

// Transaction is a single movement on an account.
//
// Amount is always derived, never stored: quantity × unit price, with the
// unit price treated as 1 when there is no linked asset and no price (a
// deposit or withdrawal at face value). Amount is an unsigned magnitude;
// the direction of the movement is carried by Type alone.
type Transaction struct {
	ID           string
	Date         string
	AccountID    string
	AccountName  string
	Type         TransactionType
	AssetID      string // empty when the transaction has no linked asset
	AssetSymbol  string // "-" when there is no linked asset
	Quantity     *float64
	PricePerUnit *float64
	Amount       float64
	Fee          float64
	Notes        string
}

// PortfolioListItem is the row shown in the portfolio list.
type PortfolioListItem struct {
	ID                 string
	Name               string
	TotalValue         float64
	DailyChange        float64
	DailyChangePercent Percent
}

// Portfolio is the editable portfolio record, including which accounts
// are linked to it.
type Portfolio struct {
	ID          string
	Name        string
	Description string
	AccountIDs  []string
	CreatedAt   string
}

// Holding is a position in one asset within a portfolio.
//
// Allocation is backend-supplied and passed through unchanged; only the
// display color is assigned locally, by cycling a fixed palette in list
// order.
type Holding struct {
	ID            string
	Ticker        string
	Name          string
	CurrentPrice  float64
	Quantity      float64
	AverageCost   float64
	MarketValue   float64
	Profit        float64
	ProfitPercent Percent
	Allocation    Percent
	Color         string
}

// ConnectedAccount is an account linked to a portfolio, as reported by
// the portfolio summary endpoint.
type ConnectedAccount struct {
	ID      string
	Name    string
	Type    string
	Balance float64
}

// PortfolioSummary is the detail view of one portfolio: aggregates plus
// the ordered holdings and the connected accounts.
type PortfolioSummary struct {
	ID                 string
	Name               string
	TotalValue         float64
	TotalProfit        float64
	TotalProfitPercent Percent
	DailyChange        float64
	DailyChangePercent Percent
	Holdings           []Holding
	Accounts           []ConnectedAccount
}

// AssetAllocation is one bucket of the dashboard allocation breakdown.
type AssetAllocation struct {
	Type  AssetType
	Value float64
	Color string
}

// DashboardStats is the overview shown on the dashboard.
type DashboardStats struct {
	NetWorth          float64
	NetWorthChange    Percent // 24h, percentage only; see ImpliedChange
	TotalProfit       float64
	TotalProfitChange Percent
	TopPerformerName  string // empty when the backend has no performer yet
	TopPerformerChange Percent
	Allocation        []AssetAllocation
}
