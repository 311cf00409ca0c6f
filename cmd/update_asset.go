package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/folioview/folioview"
	"github.com/google/subcommands"
)

// updateAssetCmd holds the flags for the 'update-asset' subcommand.
// Editing bypasses the ticker lookup entirely.
type updateAssetCmd struct {
	ticker   string
	name     string
	typ      string
	currency string
	price    float64
}

func (*updateAssetCmd) Name() string     { return "update-asset" }
func (*updateAssetCmd) Synopsis() string { return "edit an existing asset" }
func (*updateAssetCmd) Usage() string {
	return `fov update-asset <id> [-ticker <ticker>] [-name <name>] [-type <type>] [-currency <code>] [-price <price>]

  Patches the given fields of an asset; omitted flags are left untouched.
`
}

func (c *updateAssetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "New ticker symbol.")
	f.StringVar(&c.name, "name", "", "New display name.")
	f.StringVar(&c.typ, "type", "", "New category: stock, etf, crypto, fiat or cash.")
	f.StringVar(&c.currency, "currency", "", "New currency code: USD or TWD.")
	f.Float64Var(&c.price, "price", -1, "New current price.")
}

func (c *updateAssetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected an asset id")
		return subcommands.ExitUsageError
	}

	var update folioview.AssetUpdate
	if c.ticker != "" {
		update.Ticker = &c.ticker
	}
	if c.name != "" {
		update.Name = &c.name
	}
	if c.typ != "" {
		typ := folioview.ParseAssetType(c.typ)
		update.Type = &typ
	}
	if c.currency != "" {
		cur := folioview.ParseCurrency(c.currency)
		update.Currency = &cur
	}
	if c.price >= 0 {
		update.CurrentPrice = &c.price
	}

	asset, err := client().UpdateAsset(ctx, f.Arg(0), update)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error updating asset: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated asset %s (%s)\n", asset.Ticker, asset.Type)
	return subcommands.ExitSuccess
}
