package cmd

import (
	"context"
	"flag"

	"github.com/folioview/folioview/renderer"
	"github.com/google/subcommands"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string             { return "accounts" }
func (*accountsCmd) Synopsis() string         { return "display the account list" }
func (*accountsCmd) SetFlags(f *flag.FlagSet) {}
func (*accountsCmd) Usage() string {
	return `fov accounts

  Displays all accounts with their currency and balance.
`
}

func (c *accountsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.AccountsMarkdown(client().Accounts(ctx)))
	return subcommands.ExitSuccess
}
