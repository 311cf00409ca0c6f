package cmd

import (
	"context"
	"flag"

	"github.com/folioview/folioview"
	"github.com/folioview/folioview/renderer"
	"github.com/google/subcommands"
)

// transactionsCmd holds the flags for the 'transactions' subcommand.
type transactionsCmd struct {
	limit   int
	offset  int
	account string
}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "display the transaction list" }
func (*transactionsCmd) Usage() string {
	return `fov transactions [-n <limit>] [-offset <n>] [-account <id>]

  Displays transactions, newest first, optionally restricted to one
  account. Pages with -n and -offset.
`
}

func (c *transactionsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", folioview.DefaultListLimit, "Maximum number of transactions to list.")
	f.IntVar(&c.offset, "offset", 0, "Number of transactions to skip.")
	f.StringVar(&c.account, "account", "", "Restrict the listing to one account id.")
}

func (c *transactionsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	txs := client().Transactions(ctx, folioview.TransactionFilter{
		Limit:     c.limit,
		Offset:    c.offset,
		AccountID: c.account,
	})
	printMarkdown(renderer.TransactionsMarkdown(txs))
	return subcommands.ExitSuccess
}
