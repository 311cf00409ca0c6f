package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/folioview/folioview"
	"github.com/google/subcommands"
)

// addAssetCmd holds the flags for the 'add-asset' subcommand.
type addAssetCmd struct {
	ticker   string
	name     string
	typ      string
	currency string
	noLookup bool
}

func (*addAssetCmd) Name() string     { return "add-asset" }
func (*addAssetCmd) Synopsis() string { return "register a new asset" }
func (*addAssetCmd) Usage() string {
	return `fov add-asset -ticker <ticker> [-name <name>] [-type <type>] [-currency <code>] [-no-lookup]

  Registers a new asset. By default the ticker is validated against the
  backend's lookup first, and name, type and currency are pre-filled from
  the lookup result; explicit flags override the pre-fill. With
  -no-lookup the validation is bypassed and -name is required.

Usage Examples:
# Lookup fills in everything.
$ fov add-asset -ticker NVDA

# Manual entry, no lookup.
$ fov add-asset -ticker MYTOKEN -name "My Token" -type crypto -no-lookup
`
}

func (c *addAssetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "Ticker symbol of the asset.")
	f.StringVar(&c.name, "name", "", "Display name (pre-filled by the lookup).")
	f.StringVar(&c.typ, "type", "", "Category: stock, etf, crypto, fiat or cash.")
	f.StringVar(&c.currency, "currency", "", "Currency code: USD or TWD.")
	f.BoolVar(&c.noLookup, "no-lookup", false, "Skip the backend ticker validation.")
}

func (c *addAssetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: -ticker is required")
		return subcommands.ExitUsageError
	}

	api := client()
	create := folioview.AssetCreate{
		Ticker:   c.ticker,
		Name:     c.name,
		Type:     folioview.ParseAssetType(c.typ),
		Currency: folioview.ParseCurrency(c.currency),
	}

	if c.noLookup {
		if c.name == "" {
			fmt.Fprintln(os.Stderr, "Error: -name is required with -no-lookup")
			return subcommands.ExitUsageError
		}
	} else {
		result, err := api.ValidateTicker(ctx, c.ticker)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error validating ticker %q: %v\n", c.ticker, err)
			return subcommands.ExitFailure
		}
		if !result.Valid {
			fmt.Fprintf(os.Stderr, "Error: ticker %q is not recognized (use -no-lookup to add it anyway)\n", c.ticker)
			return subcommands.ExitFailure
		}
		if c.name == "" {
			create.Name = result.Name
		}
		if c.typ == "" {
			create.Type = result.Type
		}
		if c.currency == "" {
			create.Currency = result.Currency
		}
	}

	asset, err := api.CreateAsset(ctx, create)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating asset: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added asset %s (%s) at id %s\n", asset.Ticker, asset.Type, asset.ID)
	return subcommands.ExitSuccess
}
