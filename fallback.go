package folioview

// Built-in sample data, substituted whenever a read call cannot reach the
// backend. Every function returns a fresh copy so callers never alias a
// shared slice.

// SampleAssets returns the fallback asset list.
func SampleAssets() []Asset {
	return []Asset{
		{ID: "1", Ticker: "BTC", Name: "Bitcoin", Type: Crypto, Currency: USD, CurrentPrice: 65432.10, LastUpdated: "2 mins ago"},
		{ID: "2", Ticker: "ETH", Name: "Ethereum", Type: Crypto, Currency: USD, CurrentPrice: 3456.78, LastUpdated: "2 mins ago"},
		{ID: "3", Ticker: "AAPL", Name: "Apple Inc.", Type: Stock, Currency: USD, CurrentPrice: 195.89, LastUpdated: "15 mins ago"},
		{ID: "4", Ticker: "TSLA", Name: "Tesla, Inc.", Type: Stock, Currency: USD, CurrentPrice: 182.01, LastUpdated: "15 mins ago"},
		{ID: "5", Ticker: "NVDA", Name: "NVIDIA Corporation", Type: Stock, Currency: USD, CurrentPrice: 120.90, LastUpdated: "15 mins ago"},
		{ID: "6", Ticker: "VTI", Name: "Vanguard Total Stock Market ETF", Type: ETF, Currency: USD, CurrentPrice: 263.45, LastUpdated: "15 mins ago"},
	}
}

// SampleAccounts returns the fallback account list.
func SampleAccounts() []Account {
	return []Account{
		{ID: "1", Name: "Binance", Currency: USD, Balance: 15430.25, LastUpdated: "2023-10-26 15:30"},
		{ID: "2", Name: "Firstrade", Currency: USD, Balance: 120890.11, LastUpdated: "2023-10-26 09:00"},
		{ID: "3", Name: "玉山銀行", Currency: TWD, Balance: 850321, LastUpdated: "2023-10-25 18:45"},
		{ID: "4", Name: "Cold Wallet", Currency: USD, Balance: 5123.45, LastUpdated: "2023-10-24 11:20"},
		{ID: "5", Name: "國泰世華", Currency: TWD, Balance: 1235680, LastUpdated: "2023-10-26 12:00"},
	}
}

// SampleTransactions returns the fallback transaction list. Amounts are
// unsigned magnitudes; the withdrawal row renders negative, it is not
// stored negative.
func SampleTransactions() []Transaction {
	return []Transaction{
		{ID: "1", Date: "2023-10-26", AccountID: "2", AccountName: "Firstrade", Type: Buy, AssetSymbol: "AAPL", Quantity: f(10), PricePerUnit: f(170.50), Amount: 1705.00, Fee: 1.00},
		{ID: "2", Date: "2023-10-25", AccountID: "2", AccountName: "Firstrade", Type: Sell, AssetSymbol: "GOOGL", Quantity: f(5), PricePerUnit: f(135.20), Amount: 676.00, Fee: 1.00},
		{ID: "3", Date: "2023-10-24", AccountID: "1", AccountName: "Binance", Type: Buy, AssetSymbol: "BTC", Quantity: f(0.05), PricePerUnit: f(34500.00), Amount: 1725.00, Fee: 2.50},
		{ID: "4", Date: "2023-10-23", AccountID: "5", AccountName: "Cash", Type: Deposit, AssetSymbol: "-", Amount: 5000.00},
		{ID: "5", Date: "2023-10-22", AccountID: "5", AccountName: "Cash", Type: Withdrawal, AssetSymbol: "-", Amount: 500.00},
	}
}

// SamplePortfolios returns the fallback portfolio list.
func SamplePortfolios() []PortfolioListItem {
	return []PortfolioListItem{
		{ID: "1", Name: "退休基金", TotalValue: 125430.50, DailyChange: 1280.15, DailyChangePercent: 1.03},
		{ID: "2", Name: "加密貨幣波段", TotalValue: 48912.88, DailyChange: -2345.60, DailyChangePercent: -4.58},
		{ID: "3", Name: "子女教育基金", TotalValue: 76820.00, DailyChange: 650.40, DailyChangePercent: 0.85},
	}
}

// SamplePortfolioID is the only portfolio id the sample dataset can serve
// a summary for.
const SamplePortfolioID = "1"

// SamplePortfolioSummary returns the fallback detail view for the sample
// portfolio.
func SamplePortfolioSummary() PortfolioSummary {
	holdings := []Holding{
		{ID: "h1", Ticker: "AAPL", Name: "Apple Inc.", CurrentPrice: 195.89, Quantity: 250, AverageCost: 150.20, MarketValue: 48972.50, Profit: 11422.50, ProfitPercent: 30.42, Allocation: 39.04},
		{ID: "h2", Ticker: "VTI", Name: "Vanguard Total Stock Market ETF", CurrentPrice: 263.45, Quantity: 180, AverageCost: 221.10, MarketValue: 47421.00, Profit: 7623.00, ProfitPercent: 19.15, Allocation: 37.81},
		{ID: "h3", Ticker: "BTC", Name: "Bitcoin", CurrentPrice: 65432.10, Quantity: 0.4435, AverageCost: 41200.00, MarketValue: 29037.00, Profit: 10764.78, ProfitPercent: 58.91, Allocation: 23.15},
	}
	for i := range holdings {
		holdings[i].Color = HoldingColor(i)
	}
	return PortfolioSummary{
		ID:                 SamplePortfolioID,
		Name:               "退休基金",
		TotalValue:         125430.50,
		TotalProfit:        29810.28,
		TotalProfitPercent: 31.18,
		DailyChange:        1280.15,
		DailyChangePercent: 1.03,
		Holdings:           holdings,
		Accounts: []ConnectedAccount{
			{ID: "2", Name: "Firstrade", Type: "Brokerage", Balance: 96393.50},
			{ID: "1", Name: "Binance", Type: "Exchange", Balance: 29037.00},
		},
	}
}

// SampleDashboard returns the fallback dashboard statistics.
func SampleDashboard() DashboardStats {
	return DashboardStats{
		NetWorth:           152345.67,
		NetWorthChange:     1.25,
		TotalProfit:        25876.12,
		TotalProfitChange:  18.5,
		TopPerformerName:   "TSLA",
		TopPerformerChange: 8.21,
		Allocation: []AssetAllocation{
			{Type: Stock, Value: 60800, Color: "#3b82f6"},
			{Type: ETF, Value: 45600, Color: "#10b981"},
			{Type: Crypto, Value: 30400, Color: "#f97316"},
			{Type: Cash, Value: 15545.67, Color: "#9ca3af"},
		},
	}
}

func f(v float64) *float64 { return &v }
