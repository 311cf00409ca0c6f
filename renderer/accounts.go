package renderer

import (
	"bytes"

	"github.com/folioview/folioview"
	md "github.com/nao1215/markdown"
)

// AccountsMarkdown renders the account list view.
func AccountsMarkdown(accounts []folioview.Account) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Accounts")
	if len(accounts) == 0 {
		doc.PlainText("No accounts.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft,
		},
		Header: []string{"Name", "Currency", "Balance", "Updated"},
	}
	for _, a := range accounts {
		table.Rows = append(table.Rows, []string{
			md.Bold(a.Name),
			a.Currency.String(),
			amount(a.Balance, a.Currency),
			a.LastUpdated,
		})
	}
	doc.Table(table)
	return doc.String()
}
