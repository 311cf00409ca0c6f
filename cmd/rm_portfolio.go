package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmPortfolioCmd struct{}

func (*rmPortfolioCmd) Name() string             { return "rm-portfolio" }
func (*rmPortfolioCmd) Synopsis() string         { return "delete a portfolio" }
func (*rmPortfolioCmd) SetFlags(f *flag.FlagSet) {}
func (*rmPortfolioCmd) Usage() string {
	return `fov rm-portfolio <id>

  Deletes the portfolio. Accounts linked to it are not touched.
`
}

func (c *rmPortfolioCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected a portfolio id")
		return subcommands.ExitUsageError
	}
	if err := client().DeletePortfolio(ctx, f.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Deleted portfolio", f.Arg(0))
	return subcommands.ExitSuccess
}
