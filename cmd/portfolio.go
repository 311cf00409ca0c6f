package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/folioview/folioview/renderer"
	"github.com/google/subcommands"
)

// portfolioCmd holds the flags for the 'portfolio' subcommand.
type portfolioCmd struct{}

func (*portfolioCmd) Name() string             { return "portfolio" }
func (*portfolioCmd) Synopsis() string         { return "display one portfolio with holdings and accounts" }
func (*portfolioCmd) SetFlags(f *flag.FlagSet) {}
func (*portfolioCmd) Usage() string {
	return `fov portfolio <id>

  Displays the summary of one portfolio: aggregates, holdings with their
  allocation, and the connected accounts.
`
}

func (c *portfolioCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected a portfolio id")
		return subcommands.ExitUsageError
	}

	summary, err := client().PortfolioSummary(ctx, f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PortfolioSummaryMarkdown(summary))
	return subcommands.ExitSuccess
}
