package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmAccountCmd struct{}

func (*rmAccountCmd) Name() string             { return "rm-account" }
func (*rmAccountCmd) Synopsis() string         { return "delete an account" }
func (*rmAccountCmd) SetFlags(f *flag.FlagSet) {}
func (*rmAccountCmd) Usage() string {
	return `fov rm-account <id>

  Deletes the account.
`
}

func (c *rmAccountCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected an account id")
		return subcommands.ExitUsageError
	}
	if err := client().DeleteAccount(ctx, f.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting account: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Deleted account", f.Arg(0))
	return subcommands.ExitSuccess
}
