package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type validateCmd struct{}

func (*validateCmd) Name() string             { return "validate" }
func (*validateCmd) Synopsis() string         { return "look up a ticker on the backend" }
func (*validateCmd) SetFlags(f *flag.FlagSet) {}
func (*validateCmd) Usage() string {
	return `fov validate <ticker>

  Asks the backend whether it recognizes the ticker, and shows the
  details it would pre-fill for add-asset.
`
}

func (c *validateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected a ticker")
		return subcommands.ExitUsageError
	}

	result, err := client().ValidateTicker(ctx, f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if !result.Valid {
		fmt.Fprintf(os.Stderr, "Ticker %q is not recognized\n", f.Arg(0))
		return subcommands.ExitFailure
	}

	fmt.Printf("%s: %s (%s, %s) at %.2f\n", result.Ticker, result.Name, result.Type, result.Currency, result.CurrentPrice)
	return subcommands.ExitSuccess
}
