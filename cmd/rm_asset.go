package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmAssetCmd struct{}

func (*rmAssetCmd) Name() string             { return "rm-asset" }
func (*rmAssetCmd) Synopsis() string         { return "delete an asset" }
func (*rmAssetCmd) SetFlags(f *flag.FlagSet) {}
func (*rmAssetCmd) Usage() string {
	return `fov rm-asset <id>

  Deletes the asset.
`
}

func (c *rmAssetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected an asset id")
		return subcommands.ExitUsageError
	}
	if err := client().DeleteAsset(ctx, f.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting asset: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Deleted asset", f.Arg(0))
	return subcommands.ExitSuccess
}
