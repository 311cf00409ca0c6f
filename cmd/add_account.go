package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/folioview/folioview"
	"github.com/google/subcommands"
)

// addAccountCmd holds the flags for the 'add-account' subcommand.
type addAccountCmd struct {
	name     string
	currency string
}

func (*addAccountCmd) Name() string     { return "add-account" }
func (*addAccountCmd) Synopsis() string { return "register a new account" }
func (*addAccountCmd) Usage() string {
	return `fov add-account -name <name> [-currency <code>]

  Registers a new account.
`
}

func (c *addAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Account name.")
	f.StringVar(&c.currency, "currency", "USD", "Currency code: USD or TWD.")
}

func (c *addAccountCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required")
		return subcommands.ExitUsageError
	}

	account, err := client().CreateAccount(ctx, folioview.AccountCreate{
		Name:     c.name,
		Currency: folioview.ParseCurrency(c.currency),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating account: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added account %s (%s) at id %s\n", account.Name, account.Currency, account.ID)
	return subcommands.ExitSuccess
}
