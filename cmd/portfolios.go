package cmd

import (
	"context"
	"flag"

	"github.com/folioview/folioview/renderer"
	"github.com/google/subcommands"
)

type portfoliosCmd struct{}

func (*portfoliosCmd) Name() string             { return "portfolios" }
func (*portfoliosCmd) Synopsis() string         { return "display the portfolio list" }
func (*portfoliosCmd) SetFlags(f *flag.FlagSet) {}
func (*portfoliosCmd) Usage() string {
	return `fov portfolios

  Displays all portfolios with their total value and daily change.
`
}

func (c *portfoliosCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.PortfoliosMarkdown(client().Portfolios(ctx)))
	return subcommands.ExitSuccess
}
