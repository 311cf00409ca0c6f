package folioview

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// DefaultBaseURL is where the backend listens when run locally.
const DefaultBaseURL = "http://localhost:8000"

const apiPrefix = "/api/v1"

// DefaultListLimit is the page size requested by the list views.
const DefaultListLimit = 100

// Client talks to the wealth-tracker backend.
//
// Read methods (Assets, Accounts, Portfolios, PortfolioSummary,
// Transactions, Dashboard) never fail: on any transport error or non-2xx
// status they log a warning and return the built-in sample data, so a
// view can always render. Write methods propagate failures as errors
// whose message is fit for direct display.
//
// A Client is safe for concurrent use; every call builds fresh values.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client for the backend at baseURL. An empty baseURL
// selects DefaultBaseURL; a nil httpClient selects http.DefaultClient
// (whatever timeout it carries — the client adds none of its own).
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/") + apiPrefix,
		http:    httpClient,
	}
}

// onReadFailure is the read-path recovery policy: warn and substitute the
// sample dataset. Reads have no retry; a single failed attempt falls back.
func onReadFailure[T any](entity string, err error, fallback func() T) T {
	logger.Warn().Err(err).Str("entity", entity).Msg("read failed, falling back to sample data")
	return fallback()
}

// --- Assets ---

func (c *Client) fetchAssets(ctx context.Context) ([]Asset, error) {
	var wires []assetWire
	query := url.Values{"limit": {strconv.Itoa(DefaultListLimit)}}
	if err := c.jget(ctx, "/assets/", query, &wires); err != nil {
		return nil, err
	}
	assets := make([]Asset, 0, len(wires))
	for _, w := range wires {
		assets = append(assets, w.toView())
	}
	return assets, nil
}

// Assets returns the asset list, or the sample assets when the backend
// is unreachable.
func (c *Client) Assets(ctx context.Context) []Asset {
	assets, err := c.fetchAssets(ctx)
	if err != nil {
		return onReadFailure("assets", err, SampleAssets)
	}
	return assets
}

// CreateAsset registers a new asset and returns the stored record.
func (c *Client) CreateAsset(ctx context.Context, create AssetCreate) (Asset, error) {
	var w assetWire
	if err := c.jsend(ctx, http.MethodPost, "/assets/", create.wire(), &w); err != nil {
		return Asset{}, err
	}
	return w.toView(), nil
}

// UpdateAsset patches the asset and returns the replacement record.
func (c *Client) UpdateAsset(ctx context.Context, id string, update AssetUpdate) (Asset, error) {
	var w assetWire
	if err := c.jsend(ctx, http.MethodPatch, "/assets/"+url.PathEscape(id), update.wire(), &w); err != nil {
		return Asset{}, err
	}
	return w.toView(), nil
}

// DeleteAsset removes the asset.
func (c *Client) DeleteAsset(ctx context.Context, id string) error {
	return c.jdelete(ctx, "/assets/"+url.PathEscape(id))
}

// ValidateTicker asks the backend to look up a ticker. A failed lookup is
// an error; an unknown ticker is a result with Valid set to false.
func (c *Client) ValidateTicker(ctx context.Context, ticker string) (ValidateResult, error) {
	in := struct {
		Ticker string `json:"ticker"`
	}{Ticker: ticker}
	var w validateWire
	if err := c.jsend(ctx, http.MethodPost, "/assets/validate", in, &w); err != nil {
		return ValidateResult{}, err
	}
	return w.toView(), nil
}

// RefreshPrices triggers a bulk price refresh on the backend.
func (c *Client) RefreshPrices(ctx context.Context) error {
	return c.jsend(ctx, http.MethodPost, "/assets/update_prices", nil, nil)
}

// --- Accounts ---

func (c *Client) fetchAccounts(ctx context.Context) ([]Account, error) {
	var wires []accountWire
	query := url.Values{"limit": {strconv.Itoa(DefaultListLimit)}}
	if err := c.jget(ctx, "/accounts/", query, &wires); err != nil {
		return nil, err
	}
	accounts := make([]Account, 0, len(wires))
	for _, w := range wires {
		accounts = append(accounts, w.toView())
	}
	return accounts, nil
}

// Accounts returns the account list, or the sample accounts when the
// backend is unreachable.
func (c *Client) Accounts(ctx context.Context) []Account {
	accounts, err := c.fetchAccounts(ctx)
	if err != nil {
		return onReadFailure("accounts", err, SampleAccounts)
	}
	return accounts
}

// CreateAccount registers a new account and returns the stored record.
func (c *Client) CreateAccount(ctx context.Context, create AccountCreate) (Account, error) {
	var w accountWire
	if err := c.jsend(ctx, http.MethodPost, "/accounts/", create.wire(), &w); err != nil {
		return Account{}, err
	}
	return w.toView(), nil
}

// UpdateAccount patches the account and returns the replacement record.
func (c *Client) UpdateAccount(ctx context.Context, id string, update AccountUpdate) (Account, error) {
	var w accountWire
	if err := c.jsend(ctx, http.MethodPatch, "/accounts/"+url.PathEscape(id), update.wire(), &w); err != nil {
		return Account{}, err
	}
	return w.toView(), nil
}

// DeleteAccount removes the account.
func (c *Client) DeleteAccount(ctx context.Context, id string) error {
	return c.jdelete(ctx, "/accounts/"+url.PathEscape(id))
}

// --- Portfolios ---

func (c *Client) fetchPortfolios(ctx context.Context) ([]PortfolioListItem, error) {
	var wires []portfolioListItemWire
	query := url.Values{"limit": {strconv.Itoa(DefaultListLimit)}}
	if err := c.jget(ctx, "/portfolios/", query, &wires); err != nil {
		return nil, err
	}
	items := make([]PortfolioListItem, 0, len(wires))
	for _, w := range wires {
		items = append(items, w.toView())
	}
	return items, nil
}

// Portfolios returns the portfolio list, or the sample portfolios when
// the backend is unreachable.
func (c *Client) Portfolios(ctx context.Context) []PortfolioListItem {
	items, err := c.fetchPortfolios(ctx)
	if err != nil {
		return onReadFailure("portfolios", err, SamplePortfolios)
	}
	return items
}

// Portfolio returns the editable portfolio record, including its linked
// account ids. Unlike the list reads this propagates failures: the edit
// form cannot be filled from sample data.
func (c *Client) Portfolio(ctx context.Context, id string) (Portfolio, error) {
	var w portfolioWire
	if err := c.jget(ctx, "/portfolios/"+url.PathEscape(id), nil, &w); err != nil {
		return Portfolio{}, err
	}
	return w.toView(), nil
}

func (c *Client) fetchPortfolioSummary(ctx context.Context, id string) (PortfolioSummary, error) {
	var w portfolioSummaryWire
	if err := c.jget(ctx, "/portfolios/"+url.PathEscape(id)+"/summary", nil, &w); err != nil {
		return PortfolioSummary{}, err
	}
	return w.toView(), nil
}

// PortfolioSummary returns the detail view of one portfolio. The sample
// dataset only covers SamplePortfolioID; for any other id a failure is
// returned to the caller instead of substituted.
func (c *Client) PortfolioSummary(ctx context.Context, id string) (PortfolioSummary, error) {
	summary, err := c.fetchPortfolioSummary(ctx, id)
	if err != nil {
		if id == SamplePortfolioID {
			return onReadFailure("portfolio summary", err, SamplePortfolioSummary), nil
		}
		return PortfolioSummary{}, err
	}
	return summary, nil
}

// CreatePortfolio registers a new portfolio.
func (c *Client) CreatePortfolio(ctx context.Context, create PortfolioCreate) error {
	return c.jsend(ctx, http.MethodPost, "/portfolios/", create.wire(), nil)
}

// UpdatePortfolio patches the portfolio.
func (c *Client) UpdatePortfolio(ctx context.Context, id string, update PortfolioUpdate) error {
	return c.jsend(ctx, http.MethodPatch, "/portfolios/"+url.PathEscape(id), update.wire(), nil)
}

// DeletePortfolio removes the portfolio.
func (c *Client) DeletePortfolio(ctx context.Context, id string) error {
	return c.jdelete(ctx, "/portfolios/"+url.PathEscape(id))
}

// --- Transactions ---

// TransactionFilter narrows a transaction listing. The zero value lists
// the first DefaultListLimit transactions across all accounts.
type TransactionFilter struct {
	Limit     int
	Offset    int
	AccountID string
}

func (f TransactionFilter) query() url.Values {
	q := url.Values{}
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	q.Set("limit", strconv.Itoa(limit))
	if f.Offset > 0 {
		q.Set("offset", strconv.Itoa(f.Offset))
	}
	if f.AccountID != "" {
		q.Set("account_id", f.AccountID)
	}
	return q
}

func (c *Client) fetchTransactions(ctx context.Context, filter TransactionFilter) ([]Transaction, error) {
	var wires []transactionWire
	if err := c.jget(ctx, "/transactions/", filter.query(), &wires); err != nil {
		return nil, err
	}
	txs := make([]Transaction, 0, len(wires))
	for _, w := range wires {
		txs = append(txs, w.toView())
	}
	return txs, nil
}

// Transactions returns the filtered transaction list, or the sample
// transactions when the backend is unreachable.
func (c *Client) Transactions(ctx context.Context, filter TransactionFilter) []Transaction {
	txs, err := c.fetchTransactions(ctx, filter)
	if err != nil {
		return onReadFailure("transactions", err, SampleTransactions)
	}
	return txs
}

// CreateTransaction records a new transaction.
func (c *Client) CreateTransaction(ctx context.Context, create TransactionCreate) error {
	return c.jsend(ctx, http.MethodPost, "/transactions/", create.wire(), nil)
}

// UpdateTransaction patches the transaction.
func (c *Client) UpdateTransaction(ctx context.Context, id string, update TransactionUpdate) error {
	return c.jsend(ctx, http.MethodPatch, "/transactions/"+url.PathEscape(id), update.wire(), nil)
}

// DeleteTransaction removes the transaction.
func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	return c.jdelete(ctx, "/transactions/"+url.PathEscape(id))
}

// --- Dashboard ---

func (c *Client) fetchDashboard(ctx context.Context) (DashboardStats, error) {
	var w dashboardStatsWire
	if err := c.jget(ctx, "/dashboard/", nil, &w); err != nil {
		return DashboardStats{}, err
	}
	return w.toView(), nil
}

// Dashboard returns the overview statistics, or the sample dashboard when
// the backend is unreachable.
func (c *Client) Dashboard(ctx context.Context) DashboardStats {
	stats, err := c.fetchDashboard(ctx)
	if err != nil {
		return onReadFailure("dashboard", err, SampleDashboard)
	}
	return stats
}
