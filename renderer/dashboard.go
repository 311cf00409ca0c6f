package renderer

import (
	"bytes"
	"fmt"

	"github.com/folioview/folioview"
	md "github.com/nao1215/markdown"
)

// DashboardMarkdown renders the overview: KPIs, the allocation breakdown
// and the most recent transactions.
func DashboardMarkdown(stats folioview.DashboardStats, recent []folioview.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Dashboard")

	// the backend reports the 24h changes as percentages only; derive the
	// absolute deltas locally for display
	netDelta := folioview.ImpliedChange(stats.NetWorth, stats.NetWorthChange)
	profitDelta := folioview.ImpliedChange(stats.TotalProfit, stats.TotalProfitChange)

	kpis := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Metric", "Value", "24h"},
		Rows: [][]string{
			{md.Bold("Net Worth"), amount(stats.NetWorth, folioview.USD),
				fmt.Sprintf("%s %s (%s)", trend(stats.NetWorthChange), stats.NetWorthChange.SignedString(), signedAmount(netDelta, folioview.USD))},
			{md.Bold("Total Profit"), amount(stats.TotalProfit, folioview.USD),
				fmt.Sprintf("%s %s (%s)", trend(stats.TotalProfitChange), stats.TotalProfitChange.SignedString(), signedAmount(profitDelta, folioview.USD))},
		},
	}
	if stats.TopPerformerName != "" {
		kpis.Rows = append(kpis.Rows, []string{
			md.Bold("Top Performer"), stats.TopPerformerName,
			fmt.Sprintf("%s %s", trend(stats.TopPerformerChange), stats.TopPerformerChange.SignedString()),
		})
	}
	doc.Table(kpis)

	if len(stats.Allocation) > 0 {
		doc.H2("Allocation")
		shares := folioview.AllocationShares(stats.Allocation)
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
			Header:    []string{"Category", "Value", "Share"},
		}
		for i, bucket := range stats.Allocation {
			table.Rows = append(table.Rows, []string{
				bucket.Type.String(),
				amount(bucket.Value, folioview.USD),
				shares[i].String(),
			})
		}
		table.Rows = append(table.Rows, []string{
			md.Bold("Total"),
			md.Bold(amount(folioview.AllocationTotal(stats.Allocation), folioview.USD)),
			"",
		})
		doc.Table(table)
	}

	if len(recent) > 0 {
		doc.H2("Recent Transactions")
		doc.Table(transactionTable(recent))
	}

	return doc.String()
}
