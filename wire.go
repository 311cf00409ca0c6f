package folioview

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Wire records: the JSON shapes the backend returns. Keys are snake_case,
// enum values are lowercase tags, and decimal fields come as
// numeric-literal strings (e.g. "65432.10").

type assetWire struct {
	ID           int64  `json:"id"`
	Ticker       string `json:"ticker"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Currency     string `json:"currency"`
	CurrentPrice string `json:"current_price"`
	LastUpdated  string `json:"last_updated"`
}

type accountWire struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Currency     string `json:"currency"`
	CreatedAt    string `json:"created_at"`
	TotalBalance string `json:"total_balance"` // absent from the read schema on some backends
}

type transactionWire struct {
	ID              int64  `json:"id"`
	AccountID       int64  `json:"account_id"`
	AccountName     string `json:"account_name"`
	AssetID         *int64 `json:"asset_id"`
	AssetName       string `json:"asset_name"` // used as the ticker symbol
	Type            string `json:"type"`
	Quantity        string `json:"quantity"`
	PricePerUnit    string `json:"price_per_unit"`
	Fee             string `json:"fee"`
	TransactionTime string `json:"transaction_time"`
	Notes           string `json:"notes"`
}

type portfolioListItemWire struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	TotalValue         string `json:"total_value"`
	DailyChange        string `json:"daily_change"`
	DailyChangePercent string `json:"daily_change_percent"`
}

type portfolioWire struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	CreatedAt   string        `json:"created_at"`
	Accounts    []accountWire `json:"accounts"`
}

type holdingWire struct {
	ID            string `json:"id"`
	Ticker        string `json:"ticker"`
	Name          string `json:"name"`
	CurrentPrice  string `json:"current_price"`
	Quantity      string `json:"quantity"`
	AverageCost   string `json:"average_cost"`
	MarketValue   string `json:"market_value"`
	Profit        string `json:"profit"`
	ProfitPercent string `json:"profit_percent"`
	Allocation    string `json:"allocation"`
}

type connectedAccountWire struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Balance string `json:"balance"`
}

type portfolioSummaryWire struct {
	ID                 int64                  `json:"id"`
	Name               string                 `json:"name"`
	TotalValue         string                 `json:"total_value"`
	TotalProfit        string                 `json:"total_profit"`
	TotalProfitPercent string                 `json:"total_profit_percent"`
	DailyChange        string                 `json:"daily_change"`
	DailyChangePercent string                 `json:"daily_change_percent"`
	Holdings           []holdingWire          `json:"holdings"`
	Accounts           []connectedAccountWire `json:"accounts"`
}

type allocationBucketWire struct {
	Label      string  `json:"label"`
	Value      string  `json:"value"`
	Percentage float64 `json:"percentage"`
}

type dashboardStatsWire struct {
	NetWorth            string                 `json:"net_worth"`
	NetWorthChange24h   float64                `json:"net_worth_change_24h"`
	TotalProfit         string                 `json:"total_profit"`
	TotalProfitChange24 float64                `json:"total_profit_change_24h"`
	TopPerformerName    *string                `json:"top_performer_name"`
	TopPerformerChange  *float64               `json:"top_performer_change"`
	Allocation          []allocationBucketWire `json:"allocation"`
}

// ValidateResult is the backend's answer to a ticker lookup. When Valid is
// true the remaining fields can pre-fill an asset creation form.
type ValidateResult struct {
	Ticker       string
	Name         string
	Currency     Currency
	CurrentPrice float64
	Type         AssetType
	Valid        bool
}

type validateWire struct {
	Ticker       string  `json:"ticker"`
	Name         string  `json:"name"`
	Currency     string  `json:"currency"`
	CurrentPrice string  `json:"current_price"`
	Valid        bool    `json:"valid"`
	Type         *string `json:"type"`
}

// dec parses a backend string-encoded decimal. Missing or malformed
// values default to zero, never to an error.
func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// num is dec collapsed to a display float.
func num(s string) float64 { return dec(s).InexactFloat64() }

const displayTimeLayout = "2006-01-02 15:04"

// displayTime renders an ISO-8601 wire timestamp as a local display
// string. Unparsable timestamps pass through verbatim.
func displayTime(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return t.Local().Format(displayTimeLayout)
}

// displayDate keeps only the date part, for transaction rows.
func displayDate(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return t.Format("2006-01-02")
}

func (w assetWire) toView() Asset {
	return Asset{
		ID:           strconv.FormatInt(w.ID, 10),
		Ticker:       w.Ticker,
		Name:         w.Name,
		Type:         ParseAssetType(w.Type),
		Currency:     ParseCurrency(w.Currency),
		CurrentPrice: num(w.CurrentPrice),
		LastUpdated:  displayTime(w.LastUpdated),
	}
}

func (w accountWire) toView() Account {
	return Account{
		ID:          strconv.FormatInt(w.ID, 10),
		Name:        w.Name,
		Currency:    ParseCurrency(w.Currency),
		Balance:     num(w.TotalBalance),
		LastUpdated: displayTime(w.CreatedAt),
	}
}

func (w transactionWire) toView() Transaction {
	var quantity, price *float64
	q := dec(w.Quantity)
	p := dec(w.PricePerUnit)
	if w.Quantity != "" {
		v := q.InexactFloat64()
		quantity = &v
	}
	if w.PricePerUnit != "" {
		v := p.InexactFloat64()
		price = &v
	}

	// Deposits and withdrawals carry no asset and no unit price: the
	// quantity is the face value, so the price is 1.
	if p.IsZero() && w.AssetID == nil && !q.IsZero() {
		p = decimal.NewFromInt(1)
	}
	amount := q.Mul(p)

	assetID := ""
	if w.AssetID != nil {
		assetID = strconv.FormatInt(*w.AssetID, 10)
	}
	symbol := w.AssetName
	if symbol == "" {
		symbol = "-"
	}

	return Transaction{
		ID:           strconv.FormatInt(w.ID, 10),
		Date:         displayDate(w.TransactionTime),
		AccountID:    strconv.FormatInt(w.AccountID, 10),
		AccountName:  w.AccountName,
		Type:         ParseTransactionType(w.Type),
		AssetID:      assetID,
		AssetSymbol:  symbol,
		Quantity:     quantity,
		PricePerUnit: price,
		Amount:       amount.InexactFloat64(),
		Fee:          num(w.Fee),
		Notes:        w.Notes,
	}
}

func (w portfolioListItemWire) toView() PortfolioListItem {
	return PortfolioListItem{
		ID:                 strconv.FormatInt(w.ID, 10),
		Name:               w.Name,
		TotalValue:         num(w.TotalValue),
		DailyChange:        num(w.DailyChange),
		DailyChangePercent: Percent(num(w.DailyChangePercent)),
	}
}

func (w portfolioWire) toView() Portfolio {
	ids := make([]string, 0, len(w.Accounts))
	for _, a := range w.Accounts {
		ids = append(ids, strconv.FormatInt(a.ID, 10))
	}
	return Portfolio{
		ID:          strconv.FormatInt(w.ID, 10),
		Name:        w.Name,
		Description: w.Description,
		AccountIDs:  ids,
		CreatedAt:   w.CreatedAt,
	}
}

func (w portfolioSummaryWire) toView() PortfolioSummary {
	holdings := make([]Holding, 0, len(w.Holdings))
	for i, h := range w.Holdings {
		holdings = append(holdings, Holding{
			ID:            h.ID,
			Ticker:        h.Ticker,
			Name:          h.Name,
			CurrentPrice:  num(h.CurrentPrice),
			Quantity:      num(h.Quantity),
			AverageCost:   num(h.AverageCost),
			MarketValue:   num(h.MarketValue),
			Profit:        num(h.Profit),
			ProfitPercent: Percent(num(h.ProfitPercent)),
			Allocation:    Percent(num(h.Allocation)),
			Color:         HoldingColor(i),
		})
	}
	accounts := make([]ConnectedAccount, 0, len(w.Accounts))
	for _, a := range w.Accounts {
		accounts = append(accounts, ConnectedAccount{
			ID:      strconv.FormatInt(a.ID, 10),
			Name:    a.Name,
			Type:    a.Type,
			Balance: num(a.Balance),
		})
	}
	return PortfolioSummary{
		ID:                 strconv.FormatInt(w.ID, 10),
		Name:               w.Name,
		TotalValue:         num(w.TotalValue),
		TotalProfit:        num(w.TotalProfit),
		TotalProfitPercent: Percent(num(w.TotalProfitPercent)),
		DailyChange:        num(w.DailyChange),
		DailyChangePercent: Percent(num(w.DailyChangePercent)),
		Holdings:           holdings,
		Accounts:           accounts,
	}
}

func (w dashboardStatsWire) toView() DashboardStats {
	allocation := make([]AssetAllocation, 0, len(w.Allocation))
	for i, b := range w.Allocation {
		allocation = append(allocation, AssetAllocation{
			Type:  ParseAssetType(strings.ToLower(b.Label)),
			Value: num(b.Value),
			Color: AllocationColor(strings.ToLower(b.Label), i),
		})
	}
	stats := DashboardStats{
		NetWorth:          num(w.NetWorth),
		NetWorthChange:    Percent(w.NetWorthChange24h),
		TotalProfit:       num(w.TotalProfit),
		TotalProfitChange: Percent(w.TotalProfitChange24),
		Allocation:        allocation,
	}
	if w.TopPerformerName != nil {
		stats.TopPerformerName = *w.TopPerformerName
	}
	if w.TopPerformerChange != nil {
		stats.TopPerformerChange = Percent(*w.TopPerformerChange)
	}
	return stats
}

func (w validateWire) toView() ValidateResult {
	r := ValidateResult{
		Ticker:       w.Ticker,
		Name:         w.Name,
		Currency:     ParseCurrency(w.Currency),
		CurrentPrice: num(w.CurrentPrice),
		Type:         Stock,
		Valid:        w.Valid,
	}
	if w.Type != nil {
		r.Type = ParseAssetType(*w.Type)
	}
	return r
}
