package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/folioview/folioview"
	"github.com/google/subcommands"
)

// updateAccountCmd holds the flags for the 'update-account' subcommand.
type updateAccountCmd struct {
	name     string
	currency string
}

func (*updateAccountCmd) Name() string     { return "update-account" }
func (*updateAccountCmd) Synopsis() string { return "edit an existing account" }
func (*updateAccountCmd) Usage() string {
	return `fov update-account <id> [-name <name>] [-currency <code>]

  Patches the given fields of an account; omitted flags are left untouched.
`
}

func (c *updateAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "New account name.")
	f.StringVar(&c.currency, "currency", "", "New currency code: USD or TWD.")
}

func (c *updateAccountCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected an account id")
		return subcommands.ExitUsageError
	}

	var update folioview.AccountUpdate
	if c.name != "" {
		update.Name = &c.name
	}
	if c.currency != "" {
		cur := folioview.ParseCurrency(c.currency)
		update.Currency = &cur
	}

	account, err := client().UpdateAccount(ctx, f.Arg(0), update)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error updating account: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated account %s (%s)\n", account.Name, account.Currency)
	return subcommands.ExitSuccess
}
