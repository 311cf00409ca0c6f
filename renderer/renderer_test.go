package renderer

import (
	"strings"
	"testing"

	"github.com/folioview/folioview"
)

func TestDashboardMarkdown(t *testing.T) {
	stats := folioview.SampleDashboard()
	recent := folioview.SampleTransactions()

	out := DashboardMarkdown(stats, recent)

	for _, want := range []string{
		"# Dashboard",
		"Net Worth",
		"$152,345.67",
		"▲ +1.25%",
		"Top Performer",
		"TSLA",
		"## Allocation",
		"## Recent Transactions",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dashboard markdown is missing %q\n%s", want, out)
		}
	}
}

func TestDashboardAllocationShares(t *testing.T) {
	stats := folioview.DashboardStats{
		NetWorth: 100,
		Allocation: []folioview.AssetAllocation{
			{Type: folioview.Stock, Value: 50},
			{Type: folioview.Crypto, Value: 50},
		},
	}
	out := DashboardMarkdown(stats, nil)
	if !strings.Contains(out, "50.00%") {
		t.Errorf("allocation share missing from\n%s", out)
	}
}

func TestTransactionsMarkdownSignConvention(t *testing.T) {
	out := TransactionsMarkdown(folioview.SampleTransactions())

	if !strings.Contains(out, "-$500.00") {
		t.Errorf("withdrawal should render negative:\n%s", out)
	}
	if !strings.Contains(out, "$5,000.00") || strings.Contains(out, "-$5,000.00") {
		t.Errorf("deposit should render positive:\n%s", out)
	}
}

func TestTransactionOneLiners(t *testing.T) {
	txs := folioview.SampleTransactions()

	testCases := []struct {
		name string
		tx   folioview.Transaction
		want string
	}{
		{"Buy", txs[0], "Bought 10 of AAPL for $1,705.00"},
		{"Deposit", txs[3], "Deposited $5,000.00 into Cash"},
		{"Withdrawal", txs[4], "Withdrew $500.00 from Cash"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Transaction(tc.tx); got != tc.want {
				t.Errorf("Transaction() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPortfolioSummaryMarkdown(t *testing.T) {
	out := PortfolioSummaryMarkdown(folioview.SamplePortfolioSummary())

	for _, want := range []string{"退休基金", "## Holdings", "AAPL", "39.04%", "## Connected Accounts", "Firstrade"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary markdown is missing %q", want)
		}
	}
}

func TestEmptyLists(t *testing.T) {
	if out := AssetsMarkdown(nil); !strings.Contains(out, "No assets.") {
		t.Errorf("empty assets view = %q", out)
	}
	if out := AccountsMarkdown(nil); !strings.Contains(out, "No accounts.") {
		t.Errorf("empty accounts view = %q", out)
	}
	if out := PortfoliosMarkdown(nil); !strings.Contains(out, "No portfolios.") {
		t.Errorf("empty portfolios view = %q", out)
	}
	if out := TransactionsMarkdown(nil); !strings.Contains(out, "No transactions.") {
		t.Errorf("empty transactions view = %q", out)
	}
}

func TestQuantityTrimsZeros(t *testing.T) {
	testCases := []struct {
		in   float64
		want string
	}{
		{0.05, "0.05"},
		{10, "10"},
		{0.4435, "0.4435"},
	}
	for _, tc := range testCases {
		if got := quantity(tc.in); got != tc.want {
			t.Errorf("quantity(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
