package renderer

import (
	"bytes"
	"fmt"

	"github.com/folioview/folioview"
	md "github.com/nao1215/markdown"
)

// PortfoliosMarkdown renders the portfolio list view.
func PortfoliosMarkdown(items []folioview.PortfolioListItem) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolios")
	if len(items) == 0 {
		doc.PlainText("No portfolios.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight,
		},
		Header: []string{"ID", "Name", "Total Value", "Daily Change"},
	}
	for _, p := range items {
		table.Rows = append(table.Rows, []string{
			p.ID,
			md.Bold(p.Name),
			amount(p.TotalValue, folioview.USD),
			fmt.Sprintf("%s %s (%s)", trend(p.DailyChangePercent),
				signedAmount(p.DailyChange, folioview.USD), p.DailyChangePercent.SignedString()),
		})
	}
	doc.Table(table)
	return doc.String()
}

// PortfolioSummaryMarkdown renders the detail view of one portfolio:
// aggregates, the holdings table and the connected accounts.
func PortfolioSummaryMarkdown(s folioview.PortfolioSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(s.Name)

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"", "Value", "Percent"},
		Rows: [][]string{
			{md.Bold("Total Value"), amount(s.TotalValue, folioview.USD), ""},
			{md.Bold("Total Profit"), signedAmount(s.TotalProfit, folioview.USD), s.TotalProfitPercent.SignedString()},
			{md.Bold("Daily Change"), signedAmount(s.DailyChange, folioview.USD), s.DailyChangePercent.SignedString()},
		},
	})

	if len(s.Holdings) > 0 {
		doc.H2("Holdings")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight,
				md.AlignRight, md.AlignRight, md.AlignRight,
			},
			Header: []string{"Ticker", "Quantity", "Avg Cost", "Price", "Market Value", "Profit", "Allocation"},
		}
		for _, h := range s.Holdings {
			table.Rows = append(table.Rows, []string{
				md.Bold(h.Ticker),
				quantity(h.Quantity),
				amount(h.AverageCost, folioview.USD),
				amount(h.CurrentPrice, folioview.USD),
				amount(h.MarketValue, folioview.USD),
				fmt.Sprintf("%s (%s)", signedAmount(h.Profit, folioview.USD), h.ProfitPercent.SignedString()),
				h.Allocation.String(),
			})
		}
		doc.Table(table)
	}

	if len(s.Accounts) > 0 {
		doc.H2("Connected Accounts")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
			Header:    []string{"Name", "Type", "Balance"},
		}
		for _, a := range s.Accounts {
			table.Rows = append(table.Rows, []string{md.Bold(a.Name), a.Type, amount(a.Balance, folioview.USD)})
		}
		doc.Table(table)
	}

	return doc.String()
}
