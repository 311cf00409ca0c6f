package folioview

// AssetType is the display category of an asset.
type AssetType string

const (
	Stock  AssetType = "Stock"
	ETF    AssetType = "ETF"
	Crypto AssetType = "Crypto"
	Fiat   AssetType = "Fiat"
	Cash   AssetType = "Cash"
)

// assetTypeFromWire maps the backend's lowercase tags to display categories.
var assetTypeFromWire = map[string]AssetType{
	"stock":  Stock,
	"etf":    ETF,
	"crypto": Crypto,
	"fiat":   Fiat,
	"cash":   Cash,
}

// assetTypeToWire is the reverse table, used when building request bodies.
var assetTypeToWire = map[AssetType]string{
	Stock:  "stock",
	ETF:    "etf",
	Crypto: "crypto",
	Fiat:   "fiat",
	Cash:   "cash",
}

// ParseAssetType returns the display category for a wire tag.
// Unrecognized tags map to Stock rather than failing the record.
func ParseAssetType(wire string) AssetType {
	if t, ok := assetTypeFromWire[wire]; ok {
		return t
	}
	return Stock
}

// Wire returns the backend tag for the category.
func (t AssetType) Wire() string {
	if w, ok := assetTypeToWire[t]; ok {
		return w
	}
	return "stock"
}

func (t AssetType) String() string { return string(t) }
