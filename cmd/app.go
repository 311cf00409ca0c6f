// Package cmd implements the CLI application to browse and edit a
// wealth-tracker backend.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/folioview/folioview"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&dashboardCmd{}, "views")
	c.Register(&assetsCmd{}, "views")
	c.Register(&accountsCmd{}, "views")
	c.Register(&portfoliosCmd{}, "views")
	c.Register(&portfolioCmd{}, "views")
	c.Register(&transactionsCmd{}, "views")

	c.Register(&addAssetCmd{}, "assets")
	c.Register(&updateAssetCmd{}, "assets")
	c.Register(&rmAssetCmd{}, "assets")
	c.Register(&validateCmd{}, "assets")
	c.Register(&refreshPricesCmd{}, "assets")

	c.Register(&addAccountCmd{}, "accounts")
	c.Register(&updateAccountCmd{}, "accounts")
	c.Register(&rmAccountCmd{}, "accounts")

	c.Register(&addPortfolioCmd{}, "portfolios")
	c.Register(&updatePortfolioCmd{}, "portfolios")
	c.Register(&rmPortfolioCmd{}, "portfolios")

	c.Register(&addTxCmd{}, "transactions")
	c.Register(&updateTxCmd{}, "transactions")
	c.Register(&rmTxCmd{}, "transactions")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var apiURL = flag.String("api-url", "", "Base URL of the backend API.\n If missing it will read the environment variable \"FOLIOVIEW_API_URL\", then default to "+folioview.DefaultBaseURL+".")

// client builds the API client from the global configuration.
func client() *folioview.Client {
	addr := *apiURL
	if addr == "" {
		addr = os.Getenv("FOLIOVIEW_API_URL")
	}
	return folioview.NewClient(addr, nil)
}

// printMarkdown renders a markdown report to the terminal.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		// degraded but readable
		fmt.Println(markdown)
		return
	}
	fmt.Print(out)
}
