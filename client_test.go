package folioview

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, srv.Client())
}

// deadClient points at a server that is already gone, so every call fails
// at the transport level.
func deadClient(t *testing.T) *Client {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()
	return NewClient(addr, nil)
}

func TestAssetsMapsWireRecords(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/assets/" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.URL.Query().Get("limit") != "100" {
			t.Errorf("limit = %q, want 100", r.URL.Query().Get("limit"))
		}
		w.Write([]byte(`[{"id":1,"ticker":"BTC","type":"crypto","currency":"USD","current_price":"65432.10","last_updated":"2024-01-01T00:00:00Z","name":"Bitcoin"}]`))
	})

	assets := c.Assets(context.Background())
	if len(assets) != 1 {
		t.Fatalf("len = %d, want 1", len(assets))
	}
	a := assets[0]
	if a.Ticker != "BTC" || a.Type != Crypto || a.Currency != USD || a.CurrentPrice != 65432.10 {
		t.Errorf("mapped asset = %+v", a)
	}
}

func TestReadsFallBackToSampleData(t *testing.T) {
	c := deadClient(t)
	ctx := context.Background()

	if got := c.Assets(ctx); !reflect.DeepEqual(got, SampleAssets()) {
		t.Error("Assets did not fall back to the sample list")
	}
	if got := c.Accounts(ctx); !reflect.DeepEqual(got, SampleAccounts()) {
		t.Error("Accounts did not fall back to the sample list")
	}
	if got := c.Portfolios(ctx); !reflect.DeepEqual(got, SamplePortfolios()) {
		t.Error("Portfolios did not fall back to the sample list")
	}
	if got := c.Transactions(ctx, TransactionFilter{}); !reflect.DeepEqual(got, SampleTransactions()) {
		t.Error("Transactions did not fall back to the sample list")
	}
	if got := c.Dashboard(ctx); !reflect.DeepEqual(got, SampleDashboard()) {
		t.Error("Dashboard did not fall back to the sample stats")
	}
}

func TestReadsFallBackOnServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	if got := c.Assets(context.Background()); !reflect.DeepEqual(got, SampleAssets()) {
		t.Error("Assets did not fall back on a 500")
	}
}

func TestPortfolioSummaryFallbackOnlyForSampleID(t *testing.T) {
	c := deadClient(t)
	ctx := context.Background()

	s, err := c.PortfolioSummary(ctx, SamplePortfolioID)
	if err != nil {
		t.Fatalf("summary for the sample portfolio: %v", err)
	}
	if !reflect.DeepEqual(s, SamplePortfolioSummary()) {
		t.Error("summary is not the sample summary")
	}

	if _, err := c.PortfolioSummary(ctx, "42"); err == nil {
		t.Error("summary for an unknown portfolio should propagate the failure")
	}
}

func TestCreateAccountSurfacesBackendDetail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":"account name already taken"}`))
	})

	_, err := c.CreateAccount(context.Background(), AccountCreate{Name: "Test", Currency: TWD})
	if err == nil {
		t.Fatal("create should fail on a non-2xx status")
	}
	if !strings.Contains(err.Error(), "account name already taken") {
		t.Errorf("error %q does not carry the backend detail", err)
	}
}

func TestWriteFailurePropagates(t *testing.T) {
	c := deadClient(t)
	ctx := context.Background()

	if _, err := c.CreateAccount(ctx, AccountCreate{Name: "Test", Currency: TWD}); err == nil {
		t.Error("CreateAccount swallowed a transport failure")
	}
	if err := c.DeleteAsset(ctx, "1"); err == nil {
		t.Error("DeleteAsset swallowed a transport failure")
	}
	if err := c.RefreshPrices(ctx); err == nil {
		t.Error("RefreshPrices swallowed a transport failure")
	}
}

func TestCreateAccountSendsWirePayload(t *testing.T) {
	var payload map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Write([]byte(`{"id":9,"name":"Test","currency":"TWD","created_at":"2024-01-01T00:00:00Z"}`))
	})

	account, err := c.CreateAccount(context.Background(), AccountCreate{Name: "Test", Currency: TWD})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if payload["name"] != "Test" || payload["currency"] != "TWD" {
		t.Errorf("request body = %v", payload)
	}
	if account.ID != "9" || account.Currency != TWD {
		t.Errorf("created account = %+v", account)
	}
}

func TestTransactionsFilterQuery(t *testing.T) {
	var query map[string][]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`[]`))
	})

	c.Transactions(context.Background(), TransactionFilter{Limit: 20, Offset: 40, AccountID: "3"})

	want := map[string][]string{"limit": {"20"}, "offset": {"40"}, "account_id": {"3"}}
	if !reflect.DeepEqual(query, want) {
		t.Errorf("query = %v, want %v", query, want)
	}
}

func TestTransactionsEmptyListIsNotAFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	txs := c.Transactions(context.Background(), TransactionFilter{})
	if len(txs) != 0 {
		t.Errorf("len = %d, want 0 (no fallback for an empty backend)", len(txs))
	}
}

func TestValidateTicker(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/assets/validate" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"ticker":"AAPL","name":"Apple Inc.","currency":"USD","current_price":"195.89","valid":true,"type":"stock"}`))
	})

	result, err := c.ValidateTicker(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !result.Valid || result.Type != Stock || result.CurrentPrice != 195.89 {
		t.Errorf("result = %+v", result)
	}
}

func TestPortfolioDetailPropagatesFailure(t *testing.T) {
	if _, err := deadClient(t).Portfolio(context.Background(), "1"); err == nil {
		t.Error("Portfolio should not substitute sample data")
	}
}
