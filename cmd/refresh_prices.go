package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type refreshPricesCmd struct{}

func (*refreshPricesCmd) Name() string             { return "refresh-prices" }
func (*refreshPricesCmd) Synopsis() string         { return "trigger a bulk price refresh" }
func (*refreshPricesCmd) SetFlags(f *flag.FlagSet) {}
func (*refreshPricesCmd) Usage() string {
	return `fov refresh-prices

  Asks the backend to refresh the current price of every asset.
`
}

func (c *refreshPricesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := client().RefreshPrices(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error refreshing prices: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Prices refreshed.")
	return subcommands.ExitSuccess
}
