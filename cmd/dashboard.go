package cmd

import (
	"context"
	"flag"
	"sync"

	"github.com/folioview/folioview"
	"github.com/folioview/folioview/renderer"
	"github.com/google/subcommands"
)

// dashboardCmd holds the flags for the 'dashboard' subcommand.
type dashboardCmd struct {
	recent int
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display net worth, profit and allocation overview" }
func (*dashboardCmd) Usage() string {
	return `fov dashboard [-n <count>]

  Displays the dashboard: net worth and profit with their 24h change, the
  top performer, the allocation breakdown, and the most recent
  transactions. Renders sample data when the backend is unreachable.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.recent, "n", 5, "Number of recent transactions to show.")
}

func (c *dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	api := client()

	// the two fetches are independent; issue them concurrently and wait
	// for both before rendering
	var (
		stats  folioview.DashboardStats
		recent []folioview.Transaction
		wg     sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		stats = api.Dashboard(ctx)
	}()
	go func() {
		defer wg.Done()
		recent = api.Transactions(ctx, folioview.TransactionFilter{Limit: c.recent})
	}()
	wg.Wait()

	printMarkdown(renderer.DashboardMarkdown(stats, recent))
	return subcommands.ExitSuccess
}
