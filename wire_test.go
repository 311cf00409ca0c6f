package folioview

import (
	"encoding/json"
	"testing"
)

func TestParseAssetType(t *testing.T) {
	testCases := []struct {
		name string
		wire string
		want AssetType
	}{
		{"Stock", "stock", Stock},
		{"ETF", "etf", ETF},
		{"Crypto", "crypto", Crypto},
		{"Fiat", "fiat", Fiat},
		{"Cash", "cash", Cash},
		{"Unknown tag defaults to Stock", "bond", Stock},
		{"Empty tag defaults to Stock", "", Stock},
		{"Display casing is not a wire tag", "Crypto", Stock},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseAssetType(tc.wire); got != tc.want {
				t.Errorf("ParseAssetType(%q) = %v, want %v", tc.wire, got, tc.want)
			}
		})
	}
}

func TestAssetTypeRoundTrip(t *testing.T) {
	for wire := range assetTypeFromWire {
		if got := ParseAssetType(wire).Wire(); got != wire {
			t.Errorf("round trip of %q = %q", wire, got)
		}
	}
}

func TestParseTransactionType(t *testing.T) {
	testCases := []struct {
		name string
		wire string
		want TransactionType
	}{
		{"Buy", "buy", Buy},
		{"Sell", "sell", Sell},
		{"Dividend", "dividend", Dividend},
		{"Deposit", "deposit", Deposit},
		{"Withdraw tag maps to Withdrawal", "withdraw", Withdrawal},
		{"Unknown tag defaults to Buy", "transfer", Buy},
		{"Empty tag defaults to Buy", "", Buy},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseTransactionType(tc.wire); got != tc.want {
				t.Errorf("ParseTransactionType(%q) = %v, want %v", tc.wire, got, tc.want)
			}
		})
	}

	if got := Withdrawal.Wire(); got != "withdraw" {
		t.Errorf("Withdrawal.Wire() = %q, want %q", got, "withdraw")
	}
}

func TestParseCurrency(t *testing.T) {
	testCases := []struct {
		name string
		code string
		want Currency
	}{
		{"USD", "USD", USD},
		{"TWD", "TWD", TWD},
		{"Anything else defaults to USD", "EUR", USD},
		{"Empty defaults to USD", "", USD},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseCurrency(tc.code); got != tc.want {
				t.Errorf("ParseCurrency(%q) = %v, want %v", tc.code, got, tc.want)
			}
		})
	}
}

func TestAssetWireToView(t *testing.T) {
	raw := `{"id":1,"ticker":"BTC","type":"crypto","currency":"USD","current_price":"65432.10","last_updated":"2024-01-01T00:00:00Z","name":"Bitcoin"}`

	var w assetWire
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	a := w.toView()

	if a.ID != "1" {
		t.Errorf("ID = %q, want %q", a.ID, "1")
	}
	if a.Type != Crypto {
		t.Errorf("Type = %v, want %v", a.Type, Crypto)
	}
	if a.CurrentPrice != 65432.10 {
		t.Errorf("CurrentPrice = %v, want %v", a.CurrentPrice, 65432.10)
	}
	if a.Currency != USD {
		t.Errorf("Currency = %v, want %v", a.Currency, USD)
	}
	if a.LastUpdated == "" || a.LastUpdated == "2024-01-01T00:00:00Z" {
		t.Errorf("LastUpdated = %q, want a rendered display string", a.LastUpdated)
	}
}

func TestAccountWireMissingBalance(t *testing.T) {
	raw := `{"id":3,"name":"Cash","currency":"TWD","created_at":"2024-01-01T00:00:00Z"}`

	var w accountWire
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	a := w.toView()

	if a.Balance != 0 {
		t.Errorf("Balance = %v, want 0 when total_balance is absent", a.Balance)
	}
	if a.Currency != TWD {
		t.Errorf("Currency = %v, want TWD", a.Currency)
	}
}

func TestTransactionAmount(t *testing.T) {
	asset := int64(7)
	testCases := []struct {
		name       string
		wire       transactionWire
		wantAmount float64
		wantType   TransactionType
	}{
		{
			name:       "Quantity times price",
			wire:       transactionWire{Type: "buy", AssetID: &asset, Quantity: "10", PricePerUnit: "170.50", Fee: "1.00"},
			wantAmount: 1705.00,
			wantType:   Buy,
		},
		{
			name:       "No asset and no price treats the quantity as face value",
			wire:       transactionWire{Type: "deposit", Quantity: "5000", Fee: "0"},
			wantAmount: 5000,
			wantType:   Deposit,
		},
		{
			name:       "Withdrawal is not sign-flipped",
			wire:       transactionWire{Type: "withdraw", Quantity: "500", Fee: "0"},
			wantAmount: 500,
			wantType:   Withdrawal,
		},
		{
			name:       "Linked asset without a price stays at zero",
			wire:       transactionWire{Type: "buy", AssetID: &asset, Quantity: "10", Fee: "0"},
			wantAmount: 0,
			wantType:   Buy,
		},
		{
			name:       "Exact decimal product",
			wire:       transactionWire{Type: "buy", AssetID: &asset, Quantity: "0.05", PricePerUnit: "34500.00", Fee: "2.50"},
			wantAmount: 1725.00,
			wantType:   Buy,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tx := tc.wire.toView()
			if tx.Amount != tc.wantAmount {
				t.Errorf("Amount = %v, want %v", tx.Amount, tc.wantAmount)
			}
			if tx.Type != tc.wantType {
				t.Errorf("Type = %v, want %v", tx.Type, tc.wantType)
			}
		})
	}
}

func TestTransactionOptionalFields(t *testing.T) {
	w := transactionWire{ID: 4, AccountID: 5, AccountName: "Cash", Type: "deposit", Quantity: "5000", Fee: "0", TransactionTime: "2023-10-23T08:00:00Z"}
	tx := w.toView()

	if tx.AssetID != "" {
		t.Errorf("AssetID = %q, want empty", tx.AssetID)
	}
	if tx.AssetSymbol != "-" {
		t.Errorf("AssetSymbol = %q, want %q", tx.AssetSymbol, "-")
	}
	if tx.Quantity == nil || *tx.Quantity != 5000 {
		t.Errorf("Quantity = %v, want 5000", tx.Quantity)
	}
	if tx.PricePerUnit != nil {
		t.Errorf("PricePerUnit = %v, want nil when absent from the wire", *tx.PricePerUnit)
	}
	if tx.Date != "2023-10-23" {
		t.Errorf("Date = %q, want %q", tx.Date, "2023-10-23")
	}
}

func TestAssetUpdateRoundTrip(t *testing.T) {
	a := Asset{ID: "1", Ticker: "BTC", Name: "Bitcoin", Type: Crypto, Currency: USD, CurrentPrice: 65432.10}

	raw, err := json.Marshal(a.Update().wire())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := map[string]any{
		"ticker":        "BTC",
		"name":          "Bitcoin",
		"type":          "crypto",
		"currency":      "USD",
		"current_price": 65432.10,
	}
	for key, value := range want {
		if payload[key] != value {
			t.Errorf("payload[%q] = %v, want %v", key, payload[key], value)
		}
	}
}

func TestUpdatePayloadsOmitUnsetFields(t *testing.T) {
	name := "Test"
	raw, err := json.Marshal(AccountUpdate{Name: &name}.wire())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"name":"Test"}` {
		t.Errorf("payload = %s, want only the name field", raw)
	}
}

func TestDisplayTimePassThrough(t *testing.T) {
	if got := displayTime("not a timestamp"); got != "not a timestamp" {
		t.Errorf("displayTime = %q, want verbatim pass-through", got)
	}
}

func TestDashboardWireToView(t *testing.T) {
	raw := `{
		"net_worth":"152345.67",
		"net_worth_change_24h":1.25,
		"total_profit":"25876.12",
		"total_profit_change_24h":18.5,
		"top_performer_name":null,
		"top_performer_change":null,
		"allocation":[
			{"label":"Stock","value":"60800","percentage":40.0},
			{"label":"mystery","value":"100","percentage":1.0}
		]
	}`

	var w dashboardStatsWire
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	stats := w.toView()

	if stats.NetWorth != 152345.67 {
		t.Errorf("NetWorth = %v", stats.NetWorth)
	}
	if stats.TopPerformerName != "" {
		t.Errorf("TopPerformerName = %q, want empty for null", stats.TopPerformerName)
	}
	if stats.Allocation[0].Type != Stock || stats.Allocation[0].Color != "#3b82f6" {
		t.Errorf("allocation[0] = %+v, want Stock with its fixed color", stats.Allocation[0])
	}
	if stats.Allocation[1].Type != Stock {
		t.Errorf("allocation[1].Type = %v, want Stock for unknown label", stats.Allocation[1].Type)
	}
	if stats.Allocation[1].Color != allocationPalette[1] {
		t.Errorf("allocation[1].Color = %q, want palette cycling", stats.Allocation[1].Color)
	}
}

func TestHoldingAllocationPassThrough(t *testing.T) {
	// Two holdings with equal market values but deliberately unequal
	// backend-supplied allocations: the mapper must not recompute them.
	w := portfolioSummaryWire{
		ID: 1, Name: "p",
		Holdings: []holdingWire{
			{ID: "a", Ticker: "AAA", MarketValue: "50", Allocation: "70"},
			{ID: "b", Ticker: "BBB", MarketValue: "50", Allocation: "30"},
		},
	}
	s := w.toView()

	if !s.Holdings[0].Allocation.Equal(70) || !s.Holdings[1].Allocation.Equal(30) {
		t.Errorf("allocations = %v/%v, want 70/30 passed through unchanged",
			s.Holdings[0].Allocation, s.Holdings[1].Allocation)
	}
	if s.Holdings[0].Color != holdingPalette[0] || s.Holdings[1].Color != holdingPalette[1] {
		t.Errorf("colors = %q/%q, want palette in list order", s.Holdings[0].Color, s.Holdings[1].Color)
	}
}
