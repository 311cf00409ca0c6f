package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/folioview/folioview"
	"github.com/google/subcommands"
)

// addPortfolioCmd holds the flags for the 'add-portfolio' subcommand.
type addPortfolioCmd struct {
	name        string
	description string
	accounts    string
}

func (*addPortfolioCmd) Name() string     { return "add-portfolio" }
func (*addPortfolioCmd) Synopsis() string { return "create a new portfolio" }
func (*addPortfolioCmd) Usage() string {
	return `fov add-portfolio -name <name> [-desc <description>] [-accounts <id,id,...>]

  Creates a new portfolio, optionally linking it to existing accounts.
`
}

func (c *addPortfolioCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Portfolio name.")
	f.StringVar(&c.description, "desc", "", "Portfolio description.")
	f.StringVar(&c.accounts, "accounts", "", "Comma-separated account ids to link.")
}

func (c *addPortfolioCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required")
		return subcommands.ExitUsageError
	}

	err := client().CreatePortfolio(ctx, folioview.PortfolioCreate{
		Name:        c.name,
		Description: c.description,
		AccountIDs:  splitIDs(c.accounts),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added portfolio %s\n", c.name)
	return subcommands.ExitSuccess
}

// splitIDs parses a comma-separated id list, dropping empty entries.
func splitIDs(s string) []string {
	if s == "" {
		return nil
	}
	var ids []string
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
