package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmTxCmd struct{}

func (*rmTxCmd) Name() string             { return "rm-tx" }
func (*rmTxCmd) Synopsis() string         { return "delete a transaction" }
func (*rmTxCmd) SetFlags(f *flag.FlagSet) {}
func (*rmTxCmd) Usage() string {
	return `fov rm-tx <id>

  Deletes the transaction.
`
}

func (c *rmTxCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected a transaction id")
		return subcommands.ExitUsageError
	}
	if err := client().DeleteTransaction(ctx, f.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Deleted transaction", f.Arg(0))
	return subcommands.ExitSuccess
}
