package folioview

import "strconv"

// Write payloads. Request bodies carry snake_case keys, lowercase enum
// tags, and plain numbers for monetary and quantity fields. Update
// payloads serialize only the fields being changed.

// AssetCreate is the body of POST /assets/.
type AssetCreate struct {
	Ticker   string
	Name     string
	Type     AssetType
	Currency Currency
}

type assetCreateWire struct {
	Ticker   string `json:"ticker"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Currency string `json:"currency,omitempty"`
}

func (c AssetCreate) wire() assetCreateWire {
	return assetCreateWire{
		Ticker:   c.Ticker,
		Name:     c.Name,
		Type:     c.Type.Wire(),
		Currency: string(c.Currency),
	}
}

// AssetUpdate is the body of PATCH /assets/{id}. Nil fields are omitted.
type AssetUpdate struct {
	Ticker       *string
	Name         *string
	Type         *AssetType
	Currency     *Currency
	CurrentPrice *float64
}

type assetUpdateWire struct {
	Ticker       *string  `json:"ticker,omitempty"`
	Name         *string  `json:"name,omitempty"`
	Type         *string  `json:"type,omitempty"`
	Currency     *string  `json:"currency,omitempty"`
	CurrentPrice *float64 `json:"current_price,omitempty"`
}

func (u AssetUpdate) wire() assetUpdateWire {
	w := assetUpdateWire{
		Ticker:       u.Ticker,
		Name:         u.Name,
		CurrentPrice: u.CurrentPrice,
	}
	if u.Type != nil {
		tag := u.Type.Wire()
		w.Type = &tag
	}
	if u.Currency != nil {
		code := string(*u.Currency)
		w.Currency = &code
	}
	return w
}

// Update builds the full replacement payload for the asset, preserving
// ticker, name, category tag and currency code round-trip.
func (a Asset) Update() AssetUpdate {
	ticker, name := a.Ticker, a.Name
	typ, cur, price := a.Type, a.Currency, a.CurrentPrice
	return AssetUpdate{
		Ticker:       &ticker,
		Name:         &name,
		Type:         &typ,
		Currency:     &cur,
		CurrentPrice: &price,
	}
}

// AccountCreate is the body of POST /accounts/.
type AccountCreate struct {
	Name     string
	Currency Currency
}

type accountCreateWire struct {
	Name     string `json:"name"`
	Currency string `json:"currency,omitempty"`
}

func (c AccountCreate) wire() accountCreateWire {
	return accountCreateWire{Name: c.Name, Currency: string(c.Currency)}
}

// AccountUpdate is the body of PATCH /accounts/{id}.
type AccountUpdate struct {
	Name     *string
	Currency *Currency
}

type accountUpdateWire struct {
	Name     *string `json:"name,omitempty"`
	Currency *string `json:"currency,omitempty"`
}

func (u AccountUpdate) wire() accountUpdateWire {
	w := accountUpdateWire{Name: u.Name}
	if u.Currency != nil {
		code := string(*u.Currency)
		w.Currency = &code
	}
	return w
}

// PortfolioCreate is the body of POST /portfolios/.
type PortfolioCreate struct {
	Name        string
	Description string
	AccountIDs  []string
}

type portfolioCreateWire struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	AccountIDs  []int64 `json:"account_ids,omitempty"`
}

func (c PortfolioCreate) wire() portfolioCreateWire {
	return portfolioCreateWire{
		Name:        c.Name,
		Description: c.Description,
		AccountIDs:  numericIDs(c.AccountIDs),
	}
}

// PortfolioUpdate is the body of PATCH /portfolios/{id}.
type PortfolioUpdate struct {
	Name        *string
	Description *string
	AccountIDs  []string // nil leaves the linked accounts untouched
}

type portfolioUpdateWire struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	AccountIDs  []int64 `json:"account_ids,omitempty"`
}

func (u PortfolioUpdate) wire() portfolioUpdateWire {
	return portfolioUpdateWire{
		Name:        u.Name,
		Description: u.Description,
		AccountIDs:  numericIDs(u.AccountIDs),
	}
}

// TransactionCreate is the body of POST /transactions/. TransactionTime
// defaults to now when empty.
type TransactionCreate struct {
	AccountID       string
	AssetID         string // empty for deposits/withdrawals
	Type            TransactionType
	Quantity        *float64
	PricePerUnit    *float64
	Fee             *float64
	TransactionTime string // ISO-8601
	Notes           string
}

type transactionCreateWire struct {
	AccountID       int64    `json:"account_id"`
	AssetID         *int64   `json:"asset_id,omitempty"`
	Type            string   `json:"type"`
	Quantity        *float64 `json:"quantity,omitempty"`
	PricePerUnit    *float64 `json:"price_per_unit,omitempty"`
	Fee             *float64 `json:"fee,omitempty"`
	TransactionTime string   `json:"transaction_time,omitempty"`
	Notes           string   `json:"notes,omitempty"`
}

func (c TransactionCreate) wire() transactionCreateWire {
	return transactionCreateWire{
		AccountID:       numericID(c.AccountID),
		AssetID:         optionalNumericID(c.AssetID),
		Type:            c.Type.Wire(),
		Quantity:        c.Quantity,
		PricePerUnit:    c.PricePerUnit,
		Fee:             c.Fee,
		TransactionTime: c.TransactionTime,
		Notes:           c.Notes,
	}
}

// TransactionUpdate is the body of PATCH /transactions/{id}.
type TransactionUpdate struct {
	AccountID       string
	AssetID         string
	Type            *TransactionType
	Quantity        *float64
	PricePerUnit    *float64
	Fee             *float64
	TransactionTime string
	Notes           *string
}

type transactionUpdateWire struct {
	AccountID       *int64   `json:"account_id,omitempty"`
	AssetID         *int64   `json:"asset_id,omitempty"`
	Type            *string  `json:"type,omitempty"`
	Quantity        *float64 `json:"quantity,omitempty"`
	PricePerUnit    *float64 `json:"price_per_unit,omitempty"`
	Fee             *float64 `json:"fee,omitempty"`
	TransactionTime string   `json:"transaction_time,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
}

func (u TransactionUpdate) wire() transactionUpdateWire {
	w := transactionUpdateWire{
		AccountID:       optionalNumericID(u.AccountID),
		AssetID:         optionalNumericID(u.AssetID),
		Quantity:        u.Quantity,
		PricePerUnit:    u.PricePerUnit,
		Fee:             u.Fee,
		TransactionTime: u.TransactionTime,
		Notes:           u.Notes,
	}
	if u.Type != nil {
		tag := u.Type.Wire()
		w.Type = &tag
	}
	return w
}

// View-model ids are strings; the backend addresses records by integer id.

func numericID(id string) int64 {
	n, _ := strconv.ParseInt(id, 10, 64)
	return n
}

func optionalNumericID(id string) *int64 {
	if id == "" {
		return nil
	}
	n := numericID(id)
	return &n
}

func numericIDs(ids []string) []int64 {
	if ids == nil {
		return nil
	}
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		out = append(out, numericID(id))
	}
	return out
}
