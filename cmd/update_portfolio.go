package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/folioview/folioview"
	"github.com/google/subcommands"
)

// updatePortfolioCmd holds the flags for the 'update-portfolio' subcommand.
type updatePortfolioCmd struct {
	name        string
	description string
	accounts    string
	descSet     bool
}

func (*updatePortfolioCmd) Name() string     { return "update-portfolio" }
func (*updatePortfolioCmd) Synopsis() string { return "edit an existing portfolio" }
func (*updatePortfolioCmd) Usage() string {
	return `fov update-portfolio <id> [-name <name>] [-desc <description>] [-accounts <id,id,...>]

  Patches the given fields of a portfolio. -accounts replaces the full
  set of linked accounts; omitted flags are left untouched.
`
}

func (c *updatePortfolioCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "New portfolio name.")
	f.Func("desc", "New description (may be empty to clear it).", func(v string) error {
		c.description = v
		c.descSet = true
		return nil
	})
	f.StringVar(&c.accounts, "accounts", "", "Comma-separated account ids replacing the linked set.")
}

func (c *updatePortfolioCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected a portfolio id")
		return subcommands.ExitUsageError
	}

	var update folioview.PortfolioUpdate
	if c.name != "" {
		update.Name = &c.name
	}
	if c.descSet {
		update.Description = &c.description
	}
	if c.accounts != "" {
		update.AccountIDs = splitIDs(c.accounts)
	}

	if err := client().UpdatePortfolio(ctx, f.Arg(0), update); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println("Updated portfolio", f.Arg(0))
	return subcommands.ExitSuccess
}
